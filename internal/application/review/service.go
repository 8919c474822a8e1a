package review

import (
	"context"
	"sync"

	catalogapp "github.com/aromatta/backend/internal/application/catalog"
	"github.com/aromatta/backend/internal/domain/catalog"
	"github.com/aromatta/backend/internal/infrastructure/kv"
	"go.uber.org/zap"
)

// StorageKey is where reviews are persisted
const StorageKey = "aromatta-reviews"

// Catalog is the slice of the catalog service reviews need: resolving
// a listing and writing back its recomputed rating.
type Catalog interface {
	GetByID(ctx context.Context, id int64) (*catalog.Product, error)
	Update(ctx context.Context, id int64, req catalogapp.UpdateProductRequest) (*catalog.Product, error)
}

// Service stores product reviews and keeps each listing's rating and
// review count in sync with them.
type Service struct {
	store   kv.Store
	catalog Catalog
	logger  *zap.Logger

	mu      sync.Mutex
	reviews []catalog.Review
}

// NewService loads the persisted reviews
func NewService(ctx context.Context, store kv.Store, cat Catalog, logger *zap.Logger) (*Service, error) {
	s := &Service{
		store:   store,
		catalog: cat,
		logger:  logger,
	}
	if _, err := store.Get(ctx, StorageKey, &s.reviews); err != nil {
		return nil, err
	}
	return s, nil
}

// AddRequest carries the review form fields
type AddRequest struct {
	ProductID int64  `json:"productId" binding:"required"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Rating    int    `json:"rating" binding:"required,min=1,max=5"`
	Comment   string `json:"comment"`
}

// Add stores a review and updates the product's aggregate rating
func (s *Service) Add(ctx context.Context, req AddRequest) (*catalog.Review, error) {
	if _, err := s.catalog.GetByID(ctx, req.ProductID); err != nil {
		return nil, err
	}

	r, err := catalog.NewReview(req.ProductID, req.UserID, req.UserName, req.Rating, req.Comment)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.reviews = append([]catalog.Review{*r}, s.reviews...)
	err = s.store.Set(ctx, StorageKey, s.reviews)
	forProduct := s.byProduct(req.ProductID)
	s.mu.Unlock()
	if err != nil {
		return nil, err
	}

	rating := catalog.AverageRating(forProduct)
	count := len(forProduct)
	if _, err := s.catalog.Update(ctx, req.ProductID, catalogapp.UpdateProductRequest{
		Rating:  &rating,
		Reviews: &count,
	}); err != nil {
		s.logger.Warn("Updating product rating failed",
			zap.Int64("product_id", req.ProductID),
			zap.Error(err),
		)
	}
	return r, nil
}

// byProduct filters reviews for one product. Callers hold the lock.
func (s *Service) byProduct(productID int64) []catalog.Review {
	out := make([]catalog.Review, 0)
	for _, r := range s.reviews {
		if r.ProductID == productID {
			out = append(out, r)
		}
	}
	return out
}

// ListByProduct returns a product's reviews, newest first
func (s *Service) ListByProduct(ctx context.Context, productID int64) []catalog.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.byProduct(productID)
}

// ListByUser returns the reviews written by one user
func (s *Service) ListByUser(ctx context.Context, userID string) []catalog.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]catalog.Review, 0)
	for _, r := range s.reviews {
		if r.UserID == userID {
			out = append(out, r)
		}
	}
	return out
}
