package cart

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
)

// Item is one line of the cart. Quantity is always at least 1 in a stored cart.
type Item struct {
	Product  catalog.Product `json:"product"`
	Quantity int             `json:"quantity"`
}

// Subtotal is price × quantity for the line.
func (i Item) Subtotal() decimal.Decimal {
	return i.Product.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Cart is the value owned by the state machine. Total and ItemCount are derived from Items
// and are only ever produced by recompute.
type Cart struct {
	Items     []Item          `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
}

// Empty returns the initial cart.
func Empty() Cart {
	return Cart{
		Items: []Item{},
		Total: decimal.Zero,
	}
}

// TotalPrice returns the stored total.
func (c Cart) TotalPrice() decimal.Decimal {
	return c.Total
}

// IsEmpty reports whether the cart has no lines.
func (c Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// Find returns the line for productID.
func (c Cart) Find(productID string) (Item, bool) {
	if idx := c.indexOf(productID); idx >= 0 {
		return c.Items[idx], true
	}
	return Item{}, false
}

// Clone returns a copy that shares no line storage with c.
func (c Cart) Clone() Cart {
	items := make([]Item, len(c.Items))
	copy(items, c.Items)
	return Cart{Items: items, Total: c.Total, ItemCount: c.ItemCount}
}

func (c Cart) indexOf(productID string) int {
	for i, item := range c.Items {
		if item.Product.ID == productID {
			return i
		}
	}
	return -1
}

// canAdd reports whether adding quantity keeps every line and the item count within int range.
// A line never exceeds ItemCount, so checking the cart-wide count covers the line too.
func (c Cart) canAdd(quantity int) bool {
	return quantity >= 1 && c.ItemCount <= math.MaxInt-quantity
}

// canSet reports whether replacing productID's line with quantity keeps the item count in range.
func (c Cart) canSet(productID string, quantity int) bool {
	rest := c.ItemCount
	if item, ok := c.Find(productID); ok {
		rest -= item.Quantity
	}
	return rest <= math.MaxInt-quantity
}

// recompute rebuilds both aggregates from the full item list.
func recompute(items []Item) Cart {
	total := decimal.Zero
	count := 0
	for _, item := range items {
		total = total.Add(item.Subtotal())
		count += item.Quantity
	}
	if items == nil {
		items = []Item{}
	}
	return Cart{Items: items, Total: total, ItemCount: count}
}
