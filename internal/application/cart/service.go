package cart

import (
	"context"
	"sync"

	"github.com/aromatta/backend/internal/domain/cart"
	"github.com/aromatta/backend/internal/domain/catalog"
	"github.com/aromatta/backend/internal/domain/shared"
	"github.com/aromatta/backend/internal/infrastructure/kv"
	"go.uber.org/zap"
)

// StorageKey is where the cart lines are persisted
const StorageKey = "aromatta-cart"

// ProductFinder resolves catalog listings by ID
type ProductFinder interface {
	GetByID(ctx context.Context, id int64) (*catalog.Product, error)
}

// Service manages the shopping cart. Quantities are clamped to the
// stock snapshot taken when an item enters the cart, and every change
// is persisted and announced on the event bus.
type Service struct {
	store    kv.Store
	bus      shared.EventPublisher
	products ProductFinder
	logger   *zap.Logger

	mu     sync.Mutex
	items  []cart.Item
	coupon *cart.Coupon
}

// NewService loads the persisted cart lines
func NewService(ctx context.Context, store kv.Store, bus shared.EventPublisher, products ProductFinder, logger *zap.Logger) (*Service, error) {
	s := &Service{
		store:    store,
		bus:      bus,
		products: products,
		logger:   logger,
	}
	if _, err := store.Get(ctx, StorageKey, &s.items); err != nil {
		return nil, err
	}
	return s, nil
}

// save persists the lines and publishes a cart updated event.
// Callers hold the lock.
func (s *Service) save(ctx context.Context) error {
	if err := s.store.Set(ctx, StorageKey, s.items); err != nil {
		return err
	}
	if s.bus != nil {
		if err := s.bus.Publish(ctx, cart.NewUpdatedEvent(s.items)); err != nil {
			s.logger.Warn("Publishing cart event failed", zap.Error(err))
		}
	}
	return nil
}

// Add puts a product in the cart, or tops up its quantity when the
// line already exists.
func (s *Service) Add(ctx context.Context, productID int64, quantity int) (cart.Summary, error) {
	if quantity < 1 {
		quantity = 1
	}
	product, err := s.products.GetByID(ctx, productID)
	if err != nil {
		return cart.Summary{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	found := false
	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].Add(quantity)
			found = true
			break
		}
	}
	if !found {
		s.items = append(s.items, cart.NewItem(*product, quantity))
	}

	if err := s.save(ctx); err != nil {
		return cart.Summary{}, err
	}
	return cart.Summarize(s.items, s.coupon), nil
}

// Remove drops a line from the cart
func (s *Service) Remove(ctx context.Context, productID int64) (cart.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if err := s.save(ctx); err != nil {
				return cart.Summary{}, err
			}
			return cart.Summarize(s.items, s.coupon), nil
		}
	}
	return cart.Summary{}, shared.ErrNotFound
}

// UpdateQuantity sets a line's quantity. Zero or less removes the line;
// anything above the stock snapshot is clamped down to it.
func (s *Service) UpdateQuantity(ctx context.Context, productID int64, quantity int) (cart.Summary, error) {
	if quantity <= 0 {
		return s.Remove(ctx, productID)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.items {
		if s.items[i].ID == productID {
			s.items[i].SetQuantity(quantity)
			if err := s.save(ctx); err != nil {
				return cart.Summary{}, err
			}
			return cart.Summarize(s.items, s.coupon), nil
		}
	}
	return cart.Summary{}, shared.ErrNotFound
}

// Clear empties the cart and drops any applied coupon
func (s *Service) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = nil
	s.coupon = nil
	return s.save(ctx)
}

// ApplyCoupon validates and applies a coupon code
func (s *Service) ApplyCoupon(ctx context.Context, code string) (cart.Summary, error) {
	coupon, err := cart.LookupCoupon(code)
	if err != nil {
		return cart.Summary{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = &coupon
	return cart.Summarize(s.items, s.coupon), nil
}

// RemoveCoupon drops the applied coupon
func (s *Service) RemoveCoupon(ctx context.Context) cart.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.coupon = nil
	return cart.Summarize(s.items, nil)
}

// Summary prices the current cart
func (s *Service) Summary(ctx context.Context) cart.Summary {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cart.Summarize(s.items, s.coupon)
}

// Total is the undiscounted sum of all lines
func (s *Service) Total(ctx context.Context) int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	var total int64
	for _, item := range s.items {
		total += item.Subtotal()
	}
	return total
}

// Count is the number of units across all lines
func (s *Service) Count(ctx context.Context) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}
