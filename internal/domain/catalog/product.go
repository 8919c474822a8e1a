package catalog

import (
	"strings"
	"time"

	"github.com/aromatta/backend/internal/domain/shared"
)

// Product status values
const (
	StatusActive     = "active"
	StatusOutOfStock = "out_of_stock"
	StatusPaused     = "paused"
)

// Product is a storefront listing. IDs are millisecond timestamps for
// listings created at runtime; seed products use small fixed IDs.
type Product struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Price         int64   `json:"price"`
	OriginalPrice int64   `json:"originalPrice,omitempty"`
	Image         string  `json:"image"`
	Rating        float64 `json:"rating"`
	Reviews       int     `json:"reviews"`
	Category      string  `json:"category"`
	Seller        string  `json:"seller"`
	Discount      int     `json:"discount,omitempty"`
	Stock         int     `json:"stock"`
	Description   string  `json:"description"`
	Origin        string  `json:"origin,omitempty"`
	Variety       string  `json:"variety,omitempty"`
	RoastLevel    string  `json:"roastLevel,omitempty"`
	Weight        string  `json:"weight,omitempty"`
	Altitude      string  `json:"altitude,omitempty"`
	CreatedAt     string  `json:"createdAt"`
	Status        string  `json:"status"`
}

// NewProduct creates a listing with a timestamp ID, zeroed rating and
// review count, and today's creation date.
func NewProduct(name string, price int64, image, category, seller, description string, stock int) (*Product, error) {
	p := &Product{
		ID:          time.Now().UnixMilli(),
		Name:        name,
		Price:       price,
		Image:       image,
		Category:    category,
		Seller:      seller,
		Stock:       stock,
		Description: description,
		CreatedAt:   time.Now().Format("2006-01-02"),
		Status:      StatusActive,
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	return p, nil
}

// Validate checks the listing's required fields and status
func (p *Product) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return shared.NewDomainError("INVALID_PRODUCT", "Product name is required")
	}
	if p.Price < 0 {
		return shared.NewDomainError("INVALID_PRODUCT", "Product price cannot be negative")
	}
	if p.Stock < 0 {
		return shared.NewDomainError("INVALID_PRODUCT", "Product stock cannot be negative")
	}
	switch p.Status {
	case StatusActive, StatusOutOfStock, StatusPaused:
		return nil
	default:
		return shared.NewDomainError("INVALID_PRODUCT", "Unknown product status: "+p.Status)
	}
}

// IsLowStock reports whether the listing is nearly sold out but not empty
func (p *Product) IsLowStock() bool {
	return p.Stock > 0 && p.Stock <= 3
}

// MatchesQuery reports whether the listing matches a free-text search.
// Name, category, seller and description are all searched.
func (p *Product) MatchesQuery(query string) bool {
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q) ||
		strings.Contains(strings.ToLower(p.Seller), q) ||
		strings.Contains(strings.ToLower(p.Description), q)
}

// InCategory reports whether the listing belongs to the given category.
// Matching is a case-insensitive substring test so "café" finds "Café".
func (p *Product) InCategory(category string) bool {
	return strings.Contains(strings.ToLower(p.Category), strings.ToLower(category))
}
