package notifications

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/angelmondragon/storefront-backend/pkg/enums"
)

// Variant mirrors the toast styles the storefront renders.
type Variant string

const (
	VariantDefault     Variant = "default"
	VariantDestructive Variant = "destructive"
)

// Notification is the user-facing outcome of a cart command.
type Notification struct {
	ID          uuid.UUID              `json:"id"`
	Kind        enums.NotificationKind `json:"kind"`
	Reason      enums.RejectionReason  `json:"reason,omitempty"`
	ProductID   string                 `json:"product_id,omitempty"`
	ProductName string                 `json:"product_name,omitempty"`
	Title       string                 `json:"title"`
	Description string                 `json:"description"`
	Variant     Variant                `json:"variant"`
	CreatedAt   time.Time              `json:"created_at"`
}

func newNotification(kind enums.NotificationKind, title, description string) Notification {
	return Notification{
		ID:          uuid.New(),
		Kind:        kind,
		Title:       title,
		Description: description,
		Variant:     VariantDefault,
		CreatedAt:   time.Now().UTC(),
	}
}

// Added reports a successful add.
func Added(productID, productName string) Notification {
	n := newNotification(enums.NotificationKindAdded, "Added to Cart", fmt.Sprintf("%s has been added to your cart.", productName))
	n.ProductID = productID
	n.ProductName = productName
	return n
}

// Rejected reports an add that did not change the cart.
func Rejected(productID, productName string, reason enums.RejectionReason) Notification {
	description := "This product could not be added to your cart."
	title := "Not Added"
	if reason == enums.RejectionReasonOutOfStock {
		title = "Out of Stock"
		description = "This product is currently out of stock."
	}
	n := newNotification(enums.NotificationKindRejected, title, description)
	n.Reason = reason
	n.ProductID = productID
	n.ProductName = productName
	n.Variant = VariantDestructive
	return n
}

// Removed reports a removal. An empty name produces the generic message.
func Removed(productID, productName string) Notification {
	description := "Item has been removed from your cart."
	if productName != "" {
		description = fmt.Sprintf("%s has been removed from your cart.", productName)
	}
	n := newNotification(enums.NotificationKindRemoved, "Removed from Cart", description)
	n.ProductID = productID
	n.ProductName = productName
	return n
}

// Cleared reports that every line was removed.
func Cleared() Notification {
	return newNotification(enums.NotificationKindCleared, "Cart Cleared", "All items have been removed from your cart.")
}
