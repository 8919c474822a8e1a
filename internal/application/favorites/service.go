package favorites

import (
	"context"
	"slices"
	"sync"

	"github.com/aromatta/backend/internal/domain/catalog"
	"github.com/aromatta/backend/internal/domain/shared"
	"github.com/aromatta/backend/internal/infrastructure/kv"
	"go.uber.org/zap"
)

// StorageKey is where the favorite product IDs are persisted
const StorageKey = "aromatta-favorites"

// ProductFinder resolves catalog listings by ID
type ProductFinder interface {
	GetByID(ctx context.Context, id int64) (*catalog.Product, error)
}

// Service keeps the user's favorite listings as a persisted ID set
type Service struct {
	store    kv.Store
	products ProductFinder
	logger   *zap.Logger

	mu  sync.Mutex
	ids []int64
}

// NewService loads the persisted favorites
func NewService(ctx context.Context, store kv.Store, products ProductFinder, logger *zap.Logger) (*Service, error) {
	s := &Service{
		store:    store,
		products: products,
		logger:   logger,
	}
	if _, err := store.Get(ctx, StorageKey, &s.ids); err != nil {
		return nil, err
	}
	return s, nil
}

// Toggle flips a product in or out of the favorites. It returns true
// when the product is a favorite afterwards.
func (s *Service) Toggle(ctx context.Context, productID int64) (bool, error) {
	if _, err := s.products.GetByID(ctx, productID); err != nil {
		return false, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if idx := slices.Index(s.ids, productID); idx >= 0 {
		s.ids = slices.Delete(s.ids, idx, idx+1)
		return false, s.store.Set(ctx, StorageKey, s.ids)
	}
	s.ids = append(s.ids, productID)
	return true, s.store.Set(ctx, StorageKey, s.ids)
}

// Remove drops a product from the favorites
func (s *Service) Remove(ctx context.Context, productID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.ids, productID)
	if idx < 0 {
		return shared.ErrNotFound
	}
	s.ids = slices.Delete(s.ids, idx, idx+1)
	return s.store.Set(ctx, StorageKey, s.ids)
}

// Contains reports whether a product is a favorite
func (s *Service) Contains(ctx context.Context, productID int64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Contains(s.ids, productID)
}

// List resolves the favorite IDs against the catalog. Favorites whose
// listing has since been deleted are silently dropped.
func (s *Service) List(ctx context.Context) []catalog.Product {
	s.mu.Lock()
	ids := slices.Clone(s.ids)
	s.mu.Unlock()

	out := make([]catalog.Product, 0, len(ids))
	for _, id := range ids {
		p, err := s.products.GetByID(ctx, id)
		if err != nil {
			continue
		}
		out = append(out, *p)
	}
	return out
}
