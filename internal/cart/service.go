package cart

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	"github.com/angelmondragon/storefront-backend/pkg/checkout"
	"github.com/angelmondragon/storefront-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
)

const (
	outcomeApplied  = "applied"
	outcomeNoop     = "noop"
	outcomeRejected = "rejected"
	outcomeInvalid  = "invalid"
)

type productLoader interface {
	ProductByID(id string) (catalog.Product, bool)
}

type commandRecorder interface {
	IncCommand(command, outcome string)
	SetSessions(n int)
}

// Service exposes the cart commands keyed by session.
type Service interface {
	GetCart(ctx context.Context, sessionID string) Cart
	GetTotalPrice(ctx context.Context, sessionID string) decimal.Decimal
	AddToCart(ctx context.Context, sessionID, productID string, quantity int) (Outcome, error)
	RemoveFromCart(ctx context.Context, sessionID, productID string) Outcome
	UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (Outcome, error)
	ClearCart(ctx context.Context, sessionID string) Outcome
	Summary(ctx context.Context, sessionID string) checkout.Summary
}

type service struct {
	sessions *MemoryStore
	products productLoader
	metrics  commandRecorder
	policy   checkout.Policy
}

// NewService builds a cart service over the session store and catalog.
func NewService(sessions *MemoryStore, products productLoader, metrics commandRecorder, policy checkout.Policy) (Service, error) {
	if sessions == nil {
		return nil, fmt.Errorf("session store required")
	}
	if products == nil {
		return nil, fmt.Errorf("product loader required")
	}
	return &service{
		sessions: sessions,
		products: products,
		metrics:  metrics,
		policy:   policy,
	}, nil
}

// GetCart returns the session's cart, or an empty one when the session holds none. Reading
// never creates a session.
func (s *service) GetCart(_ context.Context, sessionID string) Cart {
	machine, ok := s.sessions.Peek(sessionID)
	if !ok {
		return Empty()
	}
	return machine.Cart()
}

func (s *service) GetTotalPrice(_ context.Context, sessionID string) decimal.Decimal {
	machine, ok := s.sessions.Peek(sessionID)
	if !ok {
		return decimal.Zero
	}
	return machine.GetTotalPrice()
}

func (s *service) AddToCart(ctx context.Context, sessionID, productID string, quantity int) (Outcome, error) {
	product, ok := s.products.ProductByID(productID)
	if !ok {
		s.record(enums.CartCommandAdd, outcomeInvalid)
		return Outcome{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found").
			WithDetails(map[string]any{"product_id": productID})
	}

	machine := s.sessions.Acquire(sessionID)
	s.publishSessions()
	outcome, err := machine.AddToCart(ctx, product, quantity)
	if err != nil {
		if pkgerrors.IsCode(err, pkgerrors.CodeOutOfStock) {
			s.record(enums.CartCommandAdd, outcomeRejected)
		} else {
			s.record(enums.CartCommandAdd, outcomeInvalid)
		}
		return outcome, err
	}
	s.record(enums.CartCommandAdd, outcomeApplied)
	return outcome, nil
}

func (s *service) RemoveFromCart(ctx context.Context, sessionID, productID string) Outcome {
	machine := s.sessions.Acquire(sessionID)
	s.publishSessions()
	outcome := machine.RemoveFromCart(ctx, productID)
	s.recordOutcome(enums.CartCommandRemove, outcome)
	return outcome
}

func (s *service) UpdateQuantity(ctx context.Context, sessionID, productID string, quantity int) (Outcome, error) {
	machine := s.sessions.Acquire(sessionID)
	s.publishSessions()
	outcome, err := machine.UpdateQuantity(ctx, productID, quantity)
	if err != nil {
		s.record(enums.CartCommandUpdateQuantity, outcomeInvalid)
		return outcome, err
	}
	s.recordOutcome(enums.CartCommandUpdateQuantity, outcome)
	return outcome, nil
}

func (s *service) ClearCart(ctx context.Context, sessionID string) Outcome {
	machine := s.sessions.Acquire(sessionID)
	s.publishSessions()
	outcome := machine.ClearCart(ctx)
	s.recordOutcome(enums.CartCommandClear, outcome)
	return outcome
}

// Summary prices the session's cart under the configured shipping and tax policy.
func (s *service) Summary(ctx context.Context, sessionID string) checkout.Summary {
	c := s.GetCart(ctx, sessionID)
	return s.policy.Summarize(c.Total, c.ItemCount)
}

func (s *service) recordOutcome(command enums.CartCommand, outcome Outcome) {
	if outcome.Changed {
		s.record(command, outcomeApplied)
		return
	}
	s.record(command, outcomeNoop)
}

func (s *service) record(command enums.CartCommand, outcome string) {
	if s.metrics == nil {
		return
	}
	s.metrics.IncCommand(command.String(), outcome)
}

func (s *service) publishSessions() {
	if s.metrics == nil {
		return
	}
	s.metrics.SetSessions(s.sessions.Len())
}
