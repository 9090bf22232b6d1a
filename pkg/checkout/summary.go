package checkout

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/pkg/config"
)

// Policy holds the shipping and tax rules applied to a cart subtotal.
type Policy struct {
	FreeShippingThreshold decimal.Decimal
	FlatShipping          decimal.Decimal
	TaxRate               decimal.Decimal
}

// PolicyFromConfig maps the checkout section of the service config.
func PolicyFromConfig(cfg config.CheckoutConfig) Policy {
	return Policy{
		FreeShippingThreshold: cfg.FreeShippingThreshold,
		FlatShipping:          cfg.FlatShipping,
		TaxRate:               cfg.TaxRate,
	}
}

// DefaultPolicy is the storefront's standard policy: free shipping from 99, 9.99 otherwise, 8% tax.
func DefaultPolicy() Policy {
	return Policy{
		FreeShippingThreshold: decimal.NewFromInt(99),
		FlatShipping:          decimal.RequireFromString("9.99"),
		TaxRate:               decimal.RequireFromString("0.08"),
	}
}

// Summary is the order summary rendered next to the cart.
type Summary struct {
	ItemCount             int             `json:"item_count"`
	Subtotal              decimal.Decimal `json:"subtotal"`
	Shipping              decimal.Decimal `json:"shipping"`
	FreeShipping          bool            `json:"free_shipping"`
	Tax                   decimal.Decimal `json:"tax"`
	Total                 decimal.Decimal `json:"total"`
	FreeShippingRemaining decimal.Decimal `json:"free_shipping_remaining"`
}

// Summarize applies the policy to a subtotal. Amounts are rounded half-up to cents.
// An empty cart summarizes to all zeros.
func (p Policy) Summarize(subtotal decimal.Decimal, itemCount int) Summary {
	subtotal = subtotal.Round(2)
	if itemCount <= 0 {
		return Summary{
			Subtotal:              decimal.Zero,
			Shipping:              decimal.Zero,
			Tax:                   decimal.Zero,
			Total:                 decimal.Zero,
			FreeShippingRemaining: decimal.Zero,
		}
	}

	summary := Summary{
		ItemCount:             itemCount,
		Subtotal:              subtotal,
		Shipping:              p.FlatShipping.Round(2),
		FreeShippingRemaining: decimal.Zero,
	}
	if subtotal.GreaterThanOrEqual(p.FreeShippingThreshold) {
		summary.Shipping = decimal.Zero
		summary.FreeShipping = true
	} else {
		summary.FreeShippingRemaining = p.FreeShippingThreshold.Sub(subtotal).Round(2)
	}
	summary.Tax = subtotal.Mul(p.TaxRate).Round(2)
	summary.Total = subtotal.Add(summary.Shipping).Add(summary.Tax)
	return summary
}
