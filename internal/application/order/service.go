package order

import (
	"context"
	"sync"

	"github.com/aromatta/backend/internal/domain/cart"
	"github.com/aromatta/backend/internal/domain/order"
	"github.com/aromatta/backend/internal/domain/shared"
	"github.com/aromatta/backend/internal/infrastructure/kv"
	"go.uber.org/zap"
)

// StorageKey is where the order history is persisted
const StorageKey = "aromatta-orders"

// Cart is the slice of the cart service checkout needs
type Cart interface {
	Summary(ctx context.Context) cart.Summary
	Clear(ctx context.Context) error
}

// Service turns carts into orders and tracks their lifecycle
type Service struct {
	store  kv.Store
	bus    shared.EventPublisher
	cart   Cart
	logger *zap.Logger

	mu     sync.Mutex
	orders []order.Order
}

// NewService loads the persisted order history
func NewService(ctx context.Context, store kv.Store, bus shared.EventPublisher, cartSvc Cart, logger *zap.Logger) (*Service, error) {
	s := &Service{
		store:  store,
		bus:    bus,
		cart:   cartSvc,
		logger: logger,
	}
	if _, err := store.Get(ctx, StorageKey, &s.orders); err != nil {
		return nil, err
	}
	return s, nil
}

// Checkout freezes the current cart into a pending order, clears the
// cart and announces the order on the event bus.
func (s *Service) Checkout(ctx context.Context, userID string) (*order.Order, error) {
	summary := s.cart.Summary(ctx)
	o, err := order.FromSummary(userID, summary)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.orders = append([]order.Order{*o}, s.orders...)
	err = s.store.Set(ctx, StorageKey, s.orders)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	if err := s.cart.Clear(ctx); err != nil {
		s.logger.Warn("Clearing cart after checkout failed", zap.Error(err))
	}
	if s.bus != nil {
		if err := s.bus.Publish(ctx, order.NewPlacedEvent(o)); err != nil {
			s.logger.Warn("Publishing order event failed", zap.Error(err))
		}
	}

	s.logger.Info("Order placed",
		zap.String("order_id", o.ID),
		zap.Int64("total", o.Total),
	)
	return o, nil
}

// List returns the user's orders, newest first. An empty userID lists
// every order.
func (s *Service) List(ctx context.Context, userID string) []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]order.Order, 0)
	for _, o := range s.orders {
		if userID == "" || o.UserID == userID {
			out = append(out, o)
		}
	}
	return out
}

// GetByID finds one order
func (s *Service) GetByID(ctx context.Context, id string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			o := s.orders[i]
			return &o, nil
		}
	}
	return nil, shared.ErrNotFound
}

// UpdateStatus advances an order through its lifecycle
func (s *Service) UpdateStatus(ctx context.Context, id, status string) (*order.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID != id {
			continue
		}
		if err := s.orders[i].UpdateStatus(status); err != nil {
			return nil, err
		}
		if err := s.store.Set(ctx, StorageKey, s.orders); err != nil {
			return nil, err
		}
		o := s.orders[i]
		return &o, nil
	}
	return nil, shared.ErrNotFound
}
