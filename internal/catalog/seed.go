package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"
	"gopkg.in/yaml.v3"
)

//go:embed seed.yaml
var defaultSeed []byte

// Seed is the on-disk shape of a catalog.
type Seed struct {
	Categories []CategorySeed `yaml:"categories" validate:"required,dive"`
	Products   []ProductSeed  `yaml:"products" validate:"dive"`
}

type CategorySeed struct {
	ID           string `yaml:"id" validate:"required"`
	Name         string `yaml:"name" validate:"required"`
	Image        string `yaml:"image"`
	ProductCount int    `yaml:"product_count" validate:"gte=0"`
}

type ProductSeed struct {
	ID            string   `yaml:"id" validate:"required"`
	Name          string   `yaml:"name" validate:"required"`
	Price         string   `yaml:"price" validate:"required"`
	OriginalPrice string   `yaml:"original_price"`
	Category      string   `yaml:"category" validate:"required"`
	Image         string   `yaml:"image"`
	Rating        float64  `yaml:"rating" validate:"gte=0,lte=5"`
	Reviews       int      `yaml:"reviews" validate:"gte=0"`
	Description   string   `yaml:"description"`
	Features      []string `yaml:"features"`
	InStock       bool     `yaml:"in_stock"`
	Discount      *int     `yaml:"discount" validate:"omitempty,gte=0,lte=100"`
}

var validate = validator.New()

// ParseSeed decodes a YAML catalog.
func ParseSeed(raw []byte) (Seed, error) {
	var seed Seed
	if err := yaml.Unmarshal(raw, &seed); err != nil {
		return Seed{}, fmt.Errorf("decode catalog seed: %w", err)
	}
	return seed, nil
}

// LoadDefault builds the store from the catalog compiled into the binary.
func LoadDefault() (*Store, error) {
	seed, err := ParseSeed(defaultSeed)
	if err != nil {
		return nil, err
	}
	return NewStore(seed)
}

// LoadFile builds the store from a YAML file, or from the embedded catalog when path is empty.
func LoadFile(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return LoadDefault()
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog seed: %w", err)
	}
	seed, err := ParseSeed(raw)
	if err != nil {
		return nil, err
	}
	return NewStore(seed)
}

// build validates the whole seed and reports every problem at once.
func (s Seed) build() ([]Category, []Product, error) {
	if err := validate.Struct(s); err != nil {
		return nil, nil, fmt.Errorf("invalid catalog seed: %w", err)
	}

	var errs error
	categories := make([]Category, 0, len(s.Categories))
	known := make(map[string]struct{}, len(s.Categories))
	for _, c := range s.Categories {
		if _, dup := known[c.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate category id %q", c.ID))
			continue
		}
		known[c.ID] = struct{}{}
		categories = append(categories, Category{
			ID:                   c.ID,
			Name:                 c.Name,
			Image:                c.Image,
			DeclaredProductCount: c.ProductCount,
		})
	}

	products := make([]Product, 0, len(s.Products))
	seen := make(map[string]struct{}, len(s.Products))
	for _, p := range s.Products {
		if _, dup := seen[p.ID]; dup {
			errs = multierr.Append(errs, fmt.Errorf("duplicate product id %q", p.ID))
			continue
		}
		seen[p.ID] = struct{}{}

		if _, ok := known[p.Category]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("product %q references unknown category %q", p.ID, p.Category))
		}
		product, err := p.toProduct()
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		products = append(products, product)
	}
	if errs != nil {
		return nil, nil, errs
	}
	return categories, products, nil
}

func (p ProductSeed) toProduct() (Product, error) {
	price, err := parseAmount(p.Price)
	if err != nil {
		return Product{}, fmt.Errorf("product %q price: %w", p.ID, err)
	}
	product := Product{
		ID:          p.ID,
		Name:        p.Name,
		Price:       price,
		Category:    p.Category,
		Image:       p.Image,
		Rating:      p.Rating,
		Reviews:     p.Reviews,
		Description: p.Description,
		Features:    append([]string(nil), p.Features...),
		InStock:     p.InStock,
		Discount:    p.Discount,
	}
	if strings.TrimSpace(p.OriginalPrice) != "" {
		orig, err := parseAmount(p.OriginalPrice)
		if err != nil {
			return Product{}, fmt.Errorf("product %q original price: %w", p.ID, err)
		}
		product.OriginalPrice = &orig
	}
	return product, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Zero, err
	}
	if amount.IsNegative() {
		return decimal.Zero, fmt.Errorf("amount %s must be non-negative", amount)
	}
	return amount, nil
}
