package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FindingKind classifies catalog inconsistencies. None of them block loading.
type FindingKind string

const (
	FindingCategoryCountDrift      FindingKind = "category_count_drift"
	FindingDiscountWithoutOriginal FindingKind = "discount_without_original_price"
	FindingOriginalNotAbovePrice   FindingKind = "original_price_not_above_price"
	FindingDiscountMismatch        FindingKind = "discount_mismatch"
)

// Finding is one audit result.
type Finding struct {
	Kind    FindingKind `json:"kind"`
	Subject string      `json:"subject"`
	Message string      `json:"message"`
}

var hundred = decimal.NewFromInt(100)

// Audit reports seed values that disagree with the catalog: declared category counts that
// drifted from actual membership, and discounts that do not line up with the prices.
func (s *Store) Audit() []Finding {
	var findings []Finding
	for _, c := range s.categories {
		if c.DeclaredProductCount != c.ProductCount {
			findings = append(findings, Finding{
				Kind:    FindingCategoryCountDrift,
				Subject: c.ID,
				Message: fmt.Sprintf("declared %d products, catalog has %d", c.DeclaredProductCount, c.ProductCount),
			})
		}
	}

	for _, p := range s.products {
		if p.OriginalPrice != nil && !p.OriginalPrice.GreaterThan(p.Price) {
			findings = append(findings, Finding{
				Kind:    FindingOriginalNotAbovePrice,
				Subject: p.ID,
				Message: fmt.Sprintf("original price %s is not above price %s", p.OriginalPrice, p.Price),
			})
			continue
		}
		if p.Discount == nil {
			continue
		}
		if p.OriginalPrice == nil {
			findings = append(findings, Finding{
				Kind:    FindingDiscountWithoutOriginal,
				Subject: p.ID,
				Message: fmt.Sprintf("discount %d%% set without an original price", *p.Discount),
			})
			continue
		}
		if actual := impliedDiscount(p.Price, *p.OriginalPrice); actual != *p.Discount {
			findings = append(findings, Finding{
				Kind:    FindingDiscountMismatch,
				Subject: p.ID,
				Message: fmt.Sprintf("discount %d%% but prices imply %d%%", *p.Discount, actual),
			})
		}
	}
	return findings
}

func impliedDiscount(price, original decimal.Decimal) int {
	if original.IsZero() {
		return 0
	}
	return int(original.Sub(price).Div(original).Mul(hundred).Round(0).IntPart())
}
