package catalog

import (
	"context"
	"sync"

	"github.com/aromatta/backend/internal/domain/catalog"
	"github.com/aromatta/backend/internal/domain/shared"
	"github.com/aromatta/backend/internal/infrastructure/kv"
	"go.uber.org/zap"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// StorageKey is where the catalog is persisted
const StorageKey = "aromatta-products"

// Service manages the product catalog. The catalog is held in memory
// and written back to the store as a whole after every mutation.
type Service struct {
	store    kv.Store
	bus      shared.EventPublisher
	logger   *zap.Logger
	collator *collate.Collator

	mu       sync.RWMutex
	products []catalog.Product
}

// NewService loads the persisted catalog, falling back to the seed
// listing when nothing usable is stored.
func NewService(ctx context.Context, store kv.Store, bus shared.EventPublisher, logger *zap.Logger) (*Service, error) {
	s := &Service{
		store:    store,
		bus:      bus,
		logger:   logger,
		collator: collate.New(language.Spanish),
	}

	var saved []catalog.Product
	ok, err := store.Get(ctx, StorageKey, &saved)
	if err != nil {
		return nil, err
	}
	if ok && len(saved) > 0 {
		s.products = saved
		logger.Info("Catalog loaded", zap.Int("products", len(saved)))
	} else {
		s.products = catalog.SeedProducts()
		logger.Info("Catalog seeded", zap.Int("products", len(s.products)))
		if err := store.Set(ctx, StorageKey, s.products); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// persist writes the whole catalog back. Callers hold the write lock.
func (s *Service) persist(ctx context.Context) error {
	return s.store.Set(ctx, StorageKey, s.products)
}

func (s *Service) publish(ctx context.Context, events ...shared.DomainEvent) {
	if s.bus == nil {
		return
	}
	if err := s.bus.Publish(ctx, events...); err != nil {
		s.logger.Warn("Publishing catalog events failed", zap.Error(err))
	}
}

// List returns every listing, newest additions first
func (s *Service) List(ctx context.Context) []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Product, len(s.products))
	copy(out, s.products)
	return out
}

// ListSortedByName returns the catalog ordered by product name using
// Spanish collation, so accented names sort where users expect them.
func (s *Service) ListSortedByName(ctx context.Context) []catalog.Product {
	out := s.List(ctx)
	s.collator.Sort(byName(out))
	return out
}

type byName []catalog.Product

func (p byName) Len() int           { return len(p) }
func (p byName) Swap(i, j int)      { p[i], p[j] = p[j], p[i] }
func (p byName) Bytes(i int) []byte { return []byte(p[i].Name) }

// GetByID finds a listing by its ID
func (s *Service) GetByID(ctx context.Context, id int64) (*catalog.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, shared.ErrNotFound
}

// ByCategory returns listings whose category contains the given text,
// case-insensitively.
func (s *Service) ByCategory(ctx context.Context, category string) []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Product, 0)
	for _, p := range s.products {
		if p.InCategory(category) {
			out = append(out, p)
		}
	}
	return out
}

// Search returns listings matching the query in any of name, category,
// seller or description.
func (s *Service) Search(ctx context.Context, query string) []catalog.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]catalog.Product, 0)
	for _, p := range s.products {
		if p.MatchesQuery(query) {
			out = append(out, p)
		}
	}
	return out
}

// AddProductRequest carries the seller-supplied fields of a new listing
type AddProductRequest struct {
	Name          string `json:"name" binding:"required,notblank"`
	Price         int64  `json:"price" binding:"required,gt=0"`
	OriginalPrice int64  `json:"originalPrice"`
	Image         string `json:"image"`
	Category      string `json:"category" binding:"required"`
	Seller        string `json:"seller" binding:"required"`
	Discount      int    `json:"discount"`
	Stock         int    `json:"stock" binding:"gte=0"`
	Description   string `json:"description"`
	Origin        string `json:"origin"`
	Variety       string `json:"variety"`
	RoastLevel    string `json:"roastLevel"`
	Weight        string `json:"weight"`
	Altitude      string `json:"altitude"`
}

// Add creates a new listing and prepends it to the catalog
func (s *Service) Add(ctx context.Context, req AddProductRequest) (*catalog.Product, error) {
	p, err := catalog.NewProduct(req.Name, req.Price, req.Image, req.Category, req.Seller, req.Description, req.Stock)
	if err != nil {
		return nil, err
	}
	p.OriginalPrice = req.OriginalPrice
	p.Discount = req.Discount
	p.Origin = req.Origin
	p.Variety = req.Variety
	p.RoastLevel = req.RoastLevel
	p.Weight = req.Weight
	p.Altitude = req.Altitude

	s.mu.Lock()
	s.products = append([]catalog.Product{*p}, s.products...)
	err = s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	s.publish(ctx, catalog.NewProductAddedEvent(*p), catalog.NewStockChangedEvent(*p))
	return p, nil
}

// UpdateProductRequest carries a partial listing update. Nil fields
// are left untouched.
type UpdateProductRequest struct {
	Name          *string  `json:"name"`
	Price         *int64   `json:"price"`
	OriginalPrice *int64   `json:"originalPrice"`
	Image         *string  `json:"image"`
	Rating        *float64 `json:"rating"`
	Reviews       *int     `json:"reviews"`
	Category      *string  `json:"category"`
	Seller        *string  `json:"seller"`
	Discount      *int     `json:"discount"`
	Stock         *int     `json:"stock"`
	Description   *string  `json:"description"`
	Origin        *string  `json:"origin"`
	Variety       *string  `json:"variety"`
	RoastLevel    *string  `json:"roastLevel"`
	Weight        *string  `json:"weight"`
	Altitude      *string  `json:"altitude"`
	Status        *string  `json:"status"`
}

// Update merges the non-nil fields of the request into the listing
func (s *Service) Update(ctx context.Context, id int64, req UpdateProductRequest) (*catalog.Product, error) {
	s.mu.Lock()
	idx := -1
	for i := range s.products {
		if s.products[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		s.mu.Unlock()
		return nil, shared.ErrNotFound
	}

	updated := s.products[idx]
	stockBefore := updated.Stock
	applyUpdates(&updated, req)
	if err := updated.Validate(); err != nil {
		s.mu.Unlock()
		return nil, err
	}

	s.products[idx] = updated
	err := s.persist(ctx)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	events := []shared.DomainEvent{catalog.NewProductUpdatedEvent(updated)}
	if updated.Stock != stockBefore {
		events = append(events, catalog.NewStockChangedEvent(updated))
	}
	s.publish(ctx, events...)
	return &updated, nil
}

func applyUpdates(p *catalog.Product, req UpdateProductRequest) {
	if req.Name != nil {
		p.Name = *req.Name
	}
	if req.Price != nil {
		p.Price = *req.Price
	}
	if req.OriginalPrice != nil {
		p.OriginalPrice = *req.OriginalPrice
	}
	if req.Image != nil {
		p.Image = *req.Image
	}
	if req.Rating != nil {
		p.Rating = *req.Rating
	}
	if req.Reviews != nil {
		p.Reviews = *req.Reviews
	}
	if req.Category != nil {
		p.Category = *req.Category
	}
	if req.Seller != nil {
		p.Seller = *req.Seller
	}
	if req.Discount != nil {
		p.Discount = *req.Discount
	}
	if req.Stock != nil {
		p.Stock = *req.Stock
	}
	if req.Description != nil {
		p.Description = *req.Description
	}
	if req.Origin != nil {
		p.Origin = *req.Origin
	}
	if req.Variety != nil {
		p.Variety = *req.Variety
	}
	if req.RoastLevel != nil {
		p.RoastLevel = *req.RoastLevel
	}
	if req.Weight != nil {
		p.Weight = *req.Weight
	}
	if req.Altitude != nil {
		p.Altitude = *req.Altitude
	}
	if req.Status != nil {
		p.Status = *req.Status
	}
}

// Delete removes a listing from the catalog
func (s *Service) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.products {
		if s.products[i].ID == id {
			s.products = append(s.products[:i], s.products[i+1:]...)
			return s.persist(ctx)
		}
	}
	return shared.ErrNotFound
}
