package controllers

import (
	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/internal/cart"
	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/internal/notifications"
)

type productResponse struct {
	catalog.Product
	Savings decimal.Decimal `json:"savings"`
}

func newProductResponse(p catalog.Product) productResponse {
	return productResponse{Product: p, Savings: p.Savings()}
}

func newProductList(products []catalog.Product) []productResponse {
	out := make([]productResponse, 0, len(products))
	for _, p := range products {
		out = append(out, newProductResponse(p))
	}
	return out
}

type categoryDetailResponse struct {
	Category catalog.Category  `json:"category"`
	Preview  []productResponse `json:"preview"`
}

type filterResponse struct {
	Category  string          `json:"category,omitempty"`
	MinPrice  decimal.Decimal `json:"min_price"`
	MaxPrice  decimal.Decimal `json:"max_price"`
	MinRating float64         `json:"min_rating"`
	InStock   bool            `json:"in_stock"`
	Active    bool            `json:"active"`
}

func newFilterResponse(opts catalog.FilterOptions) filterResponse {
	return filterResponse{
		Category:  opts.Category,
		MinPrice:  opts.MinPrice,
		MaxPrice:  opts.MaxPrice,
		MinRating: opts.MinRating,
		InStock:   opts.InStock,
		Active:    opts.IsActive(),
	}
}

type productListResponse struct {
	Products []productResponse `json:"products"`
	Filter   filterResponse    `json:"filter"`
}

type cartItemResponse struct {
	Product  productResponse `json:"product"`
	Quantity int             `json:"quantity"`
	Subtotal decimal.Decimal `json:"subtotal"`
}

type cartResponse struct {
	Items      []cartItemResponse `json:"items"`
	Total      decimal.Decimal    `json:"total"`
	ItemCount  int                `json:"item_count"`
	TotalPrice decimal.Decimal    `json:"total_price"`
}

func newCartResponse(c cart.Cart) cartResponse {
	items := make([]cartItemResponse, 0, len(c.Items))
	for _, item := range c.Items {
		items = append(items, cartItemResponse{
			Product:  newProductResponse(item.Product),
			Quantity: item.Quantity,
			Subtotal: item.Subtotal(),
		})
	}
	return cartResponse{
		Items:      items,
		Total:      c.Total,
		ItemCount:  c.ItemCount,
		TotalPrice: c.TotalPrice(),
	}
}

type commandResponse struct {
	Cart         cartResponse                `json:"cart"`
	Notification *notifications.Notification `json:"notification,omitempty"`
}

func newCommandResponse(outcome cart.Outcome) commandResponse {
	return commandResponse{
		Cart:         newCartResponse(outcome.Cart),
		Notification: outcome.Notification,
	}
}

type addCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  *int   `json:"quantity" validate:"omitempty,min=1"`
}

func (r addCartItemRequest) quantity() int {
	if r.Quantity == nil {
		return 1
	}
	return *r.Quantity
}

type updateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}
