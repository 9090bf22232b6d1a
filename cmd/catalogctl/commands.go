package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/config"
)

type options struct {
	catalogPath string
	outputJSON  bool
}

func rootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "catalogctl",
		Short: "Inspect the storefront catalog",
		Long: `Inspect the storefront catalog without starting the API.

Examples:
  catalogctl audit                          # Report seed inconsistencies
  catalogctl featured --json                # Featured products as JSON
  catalogctl filter --category electronics --max-price 1000
  catalogctl --catalog ./seed.yaml categories
`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", os.Getenv(config.EnvCatalogPath), "YAML catalog seed (defaults to the embedded catalog)")
	cmd.PersistentFlags().BoolVar(&opts.outputJSON, "json", false, "Output results as JSON")

	cmd.AddCommand(
		categoriesCmd(opts),
		featuredCmd(opts),
		filterCmd(opts),
		auditCmd(opts),
	)
	return cmd
}

func categoriesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List categories with their product counts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := catalog.LoadFile(opts.catalogPath)
			if err != nil {
				return err
			}
			categories := store.Categories()
			if opts.outputJSON {
				return writeJSON(cmd.OutOrStdout(), categories)
			}
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "ID\tNAME\tPRODUCTS")
			for _, c := range categories {
				fmt.Fprintf(tw, "%s\t%s\t%d\n", c.ID, c.Name, c.ProductCount)
			}
			return tw.Flush()
		},
	}
}

func featuredCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "featured",
		Short: "List featured products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := catalog.LoadFile(opts.catalogPath)
			if err != nil {
				return err
			}
			return writeProducts(cmd.OutOrStdout(), store.FeaturedProducts(), opts.outputJSON)
		},
	}
}

func filterCmd(opts *options) *cobra.Command {
	var (
		category  string
		minPrice  string
		maxPrice  string
		minRating float64
		inStock   bool
	)
	defaults := catalog.DefaultFilterOptions()

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Evaluate a product filter against the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := catalog.FilterOptions{
				Category:  category,
				MinRating: minRating,
				InStock:   inStock,
			}
			var err error
			if filter.MinPrice, err = decimal.NewFromString(minPrice); err != nil {
				return fmt.Errorf("invalid --min-price: %w", err)
			}
			if filter.MaxPrice, err = decimal.NewFromString(maxPrice); err != nil {
				return fmt.Errorf("invalid --max-price: %w", err)
			}

			store, err := catalog.LoadFile(opts.catalogPath)
			if err != nil {
				return err
			}
			return writeProducts(cmd.OutOrStdout(), store.Filter(filter), opts.outputJSON)
		},
	}

	cmd.Flags().StringVar(&category, "category", defaults.Category, "Category id (empty matches all)")
	cmd.Flags().StringVar(&minPrice, "min-price", defaults.MinPrice.String(), "Minimum price, inclusive")
	cmd.Flags().StringVar(&maxPrice, "max-price", defaults.MaxPrice.String(), "Maximum price, inclusive")
	cmd.Flags().Float64Var(&minRating, "min-rating", defaults.MinRating, "Minimum rating, inclusive")
	cmd.Flags().BoolVar(&inStock, "in-stock", defaults.InStock, "Only products in stock")
	return cmd
}

func auditCmd(opts *options) *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "audit",
		Short: "Report inconsistencies in the catalog seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := catalog.LoadFile(opts.catalogPath)
			if err != nil {
				return err
			}
			findings := store.Audit()
			if opts.outputJSON {
				if err := writeJSON(cmd.OutOrStdout(), findings); err != nil {
					return err
				}
			} else if len(findings) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "catalog is consistent")
			} else {
				tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
				fmt.Fprintln(tw, "KIND\tSUBJECT\tMESSAGE")
				for _, f := range findings {
					fmt.Fprintf(tw, "%s\t%s\t%s\n", f.Kind, f.Subject, f.Message)
				}
				if err := tw.Flush(); err != nil {
					return err
				}
			}
			if strict && len(findings) > 0 {
				return fmt.Errorf("%d audit finding(s)", len(findings))
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero when findings are reported")
	return cmd
}

func writeProducts(w io.Writer, products []catalog.Product, asJSON bool) error {
	if asJSON {
		return writeJSON(w, products)
	}
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tNAME\tCATEGORY\tPRICE\tRATING\tIN STOCK")
	for _, p := range products {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%.1f\t%t\n", p.ID, p.Name, p.Category, p.Price.StringFixed(2), p.Rating, p.InStock)
	}
	return tw.Flush()
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
