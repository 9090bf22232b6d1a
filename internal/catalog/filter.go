package catalog

import (
	"github.com/shopspring/decimal"
)

// DefaultMaxPrice is the upper end of the storefront's price slider.
var DefaultMaxPrice = decimal.NewFromInt(3000)

// FilterOptions narrows the catalog. All criteria are ANDed.
type FilterOptions struct {
	// Category restricts results to one category; empty means any.
	Category string
	// MinPrice and MaxPrice are inclusive bounds.
	MinPrice decimal.Decimal
	MaxPrice decimal.Decimal
	// MinRating is an inclusive lower bound.
	MinRating float64
	// InStock, when true, drops out-of-stock products.
	InStock bool
}

// DefaultFilterOptions matches every product priced within the slider range.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		MinPrice: decimal.Zero,
		MaxPrice: DefaultMaxPrice,
	}
}

// IsActive reports whether opts narrows anything compared to the defaults.
func (o FilterOptions) IsActive() bool {
	return o.Category != "" ||
		o.MinPrice.IsPositive() ||
		o.MaxPrice.LessThan(DefaultMaxPrice) ||
		o.MinRating > 0 ||
		o.InStock
}

// Matches reports whether p satisfies every criterion.
func (o FilterOptions) Matches(p Product) bool {
	if o.Category != "" && p.Category != o.Category {
		return false
	}
	if p.Price.LessThan(o.MinPrice) || p.Price.GreaterThan(o.MaxPrice) {
		return false
	}
	if p.Rating < o.MinRating {
		return false
	}
	if o.InStock && !p.InStock {
		return false
	}
	return true
}

// Filter returns the products matching opts, preserving their order. It is pure and keeps
// no state between calls.
func Filter(products []Product, opts FilterOptions) []Product {
	out := []Product{}
	for _, p := range products {
		if opts.Matches(p) {
			out = append(out, p.clone())
		}
	}
	return out
}
