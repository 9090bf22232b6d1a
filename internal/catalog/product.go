package catalog

import (
	"slices"

	"github.com/shopspring/decimal"
)

// Product is an immutable catalog entry.
type Product struct {
	ID            string           `json:"id"`
	Name          string           `json:"name"`
	Price         decimal.Decimal  `json:"price"`
	OriginalPrice *decimal.Decimal `json:"original_price,omitempty"`
	Category      string           `json:"category"`
	Image         string           `json:"image"`
	Rating        float64          `json:"rating"`
	Reviews       int              `json:"reviews"`
	Description   string           `json:"description"`
	Features      []string         `json:"features"`
	InStock       bool             `json:"in_stock"`
	Discount      *int             `json:"discount,omitempty"`
}

// DiscountPercent returns the advertised discount, or zero when none is set.
func (p Product) DiscountPercent() int {
	if p.Discount == nil {
		return 0
	}
	return *p.Discount
}

// Savings is the difference between the original and the current price, never negative.
func (p Product) Savings() decimal.Decimal {
	if p.OriginalPrice == nil || !p.OriginalPrice.GreaterThan(p.Price) {
		return decimal.Zero
	}
	return p.OriginalPrice.Sub(p.Price)
}

func (p Product) clone() Product {
	out := p
	out.Features = slices.Clone(p.Features)
	if p.OriginalPrice != nil {
		orig := *p.OriginalPrice
		out.OriginalPrice = &orig
	}
	if p.Discount != nil {
		discount := *p.Discount
		out.Discount = &discount
	}
	return out
}

// Category groups products. ProductCount is derived from the catalog when it is loaded;
// DeclaredProductCount keeps the count written in the seed so drift can be audited.
type Category struct {
	ID                   string `json:"id"`
	Name                 string `json:"name"`
	Image                string `json:"image"`
	ProductCount         int    `json:"product_count"`
	DeclaredProductCount int    `json:"-"`
}
