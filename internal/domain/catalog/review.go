package catalog

import (
	"strings"
	"time"

	"github.com/aromatta/backend/internal/domain/shared"
)

// Review is a buyer's rating of a product
type Review struct {
	ID        int64     `json:"id"`
	ProductID int64     `json:"productId"`
	UserID    string    `json:"userId"`
	UserName  string    `json:"userName"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewReview creates a review after validating the rating range
func NewReview(productID int64, userID, userName string, rating int, comment string) (*Review, error) {
	if rating < 1 || rating > 5 {
		return nil, shared.NewDomainError("INVALID_REVIEW", "Rating must be between 1 and 5")
	}
	if strings.TrimSpace(userID) == "" {
		return nil, shared.NewDomainError("INVALID_REVIEW", "Review author is required")
	}
	return &Review{
		ID:        time.Now().UnixMilli(),
		ProductID: productID,
		UserID:    userID,
		UserName:  userName,
		Rating:    rating,
		Comment:   strings.TrimSpace(comment),
		CreatedAt: time.Now(),
	}, nil
}

// AverageRating computes the mean rating of a set of reviews,
// rounded to one decimal place.
func AverageRating(reviews []Review) float64 {
	if len(reviews) == 0 {
		return 0
	}
	var sum int
	for _, r := range reviews {
		sum += r.Rating
	}
	avg := float64(sum) / float64(len(reviews))
	return float64(int(avg*10+0.5)) / 10
}
