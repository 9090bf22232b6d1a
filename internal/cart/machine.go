package cart

import (
	"context"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/internal/notifications"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

// Outcome is what a command hands back to the caller: the cart after the transition and the
// notification it emitted, if any.
type Outcome struct {
	Cart         Cart                        `json:"cart"`
	Notification *notifications.Notification `json:"notification,omitempty"`
	// Changed is false when the command left the cart as it was.
	Changed bool `json:"-"`
}

// Machine owns one session's cart. Its mutex is the single writer for that cart: commands
// run to completion one at a time.
type Machine struct {
	mu        sync.Mutex
	sessionID string
	cart      Cart
	notifier  notifications.Notifier
}

func NewMachine(sessionID string, notifier notifications.Notifier) *Machine {
	return &Machine{
		sessionID: sessionID,
		cart:      Empty(),
		notifier:  notifier,
	}
}

func (m *Machine) SessionID() string {
	return m.sessionID
}

// Cart returns a snapshot of the current cart.
func (m *Machine) Cart() Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.Clone()
}

// GetTotalPrice returns the total kept by the last transition.
func (m *Machine) GetTotalPrice() decimal.Decimal {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cart.TotalPrice()
}

// AddToCart adds quantity units of product. Out-of-stock products are refused here: the cart
// is left untouched, a rejection is emitted and an OUT_OF_STOCK error returned.
func (m *Machine) AddToCart(ctx context.Context, product catalog.Product, quantity int) (Outcome, error) {
	if quantity < 1 {
		return Outcome{}, pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if !product.InStock {
		n := notifications.Rejected(product.ID, product.Name, enums.RejectionReasonOutOfStock)
		m.emit(ctx, n)
		err := pkgerrors.New(pkgerrors.CodeOutOfStock, "product is out of stock").
			WithDetails(map[string]any{"product_id": product.ID})
		return Outcome{Cart: m.cart.Clone(), Notification: &n}, err
	}

	if !m.cart.canAdd(quantity) {
		return Outcome{Cart: m.cart.Clone()}, errQuantityOverflow(product.ID)
	}

	m.cart = Reduce(m.cart, AddCommand(product, quantity))
	n := notifications.Added(product.ID, product.Name)
	m.emit(ctx, n)
	return Outcome{Cart: m.cart.Clone(), Notification: &n, Changed: true}, nil
}

// RemoveFromCart deletes the line for productID. Removing an absent product is a no-op that
// still reports a generic removal.
func (m *Machine) RemoveFromCart(ctx context.Context, productID string) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.removeLocked(ctx, productID)
}

// UpdateQuantity sets the line quantity exactly; quantity <= 0 removes the line instead.
// A quantity that would overflow the item count is refused with the cart unchanged.
func (m *Machine) UpdateQuantity(ctx context.Context, productID string, quantity int) (Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if quantity <= 0 {
		return m.removeLocked(ctx, productID), nil
	}
	item, ok := m.cart.Find(productID)
	if !ok {
		return Outcome{Cart: m.cart.Clone()}, nil
	}
	if !m.cart.canSet(productID, quantity) {
		return Outcome{Cart: m.cart.Clone()}, errQuantityOverflow(productID)
	}
	m.cart = Reduce(m.cart, UpdateQuantityCommand(productID, quantity))
	return Outcome{Cart: m.cart.Clone(), Changed: item.Quantity != quantity}, nil
}

// ClearCart resets to the empty cart.
func (m *Machine) ClearCart(ctx context.Context) Outcome {
	m.mu.Lock()
	defer m.mu.Unlock()

	changed := !m.cart.IsEmpty()
	m.cart = Reduce(m.cart, ClearCommand())
	n := notifications.Cleared()
	m.emit(ctx, n)
	return Outcome{Cart: m.cart.Clone(), Notification: &n, Changed: changed}
}

func (m *Machine) removeLocked(ctx context.Context, productID string) Outcome {
	item, present := m.cart.Find(productID)
	m.cart = Reduce(m.cart, RemoveCommand(productID))

	n := notifications.Removed(productID, item.Product.Name)
	m.emit(ctx, n)
	return Outcome{Cart: m.cart.Clone(), Notification: &n, Changed: present}
}

func errQuantityOverflow(productID string) error {
	return pkgerrors.New(pkgerrors.CodeValidation, "quantity is too large").
		WithDetails(map[string]any{"product_id": productID})
}

func (m *Machine) emit(ctx context.Context, n notifications.Notification) {
	if m.notifier == nil {
		return
	}
	m.notifier.Notify(ctx, m.sessionID, n)
}
