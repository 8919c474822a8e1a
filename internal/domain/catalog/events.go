package catalog

import "github.com/aromatta/backend/internal/domain/shared"

// Event types published by the catalog
const (
	EventProductAdded        = "catalog.product_added"
	EventProductUpdated      = "catalog.product_updated"
	EventProductStockChanged = "catalog.stock_changed"
)

// ProductAddedEvent is published when a new listing is created
type ProductAddedEvent struct {
	shared.BaseDomainEvent
	Product Product `json:"product"`
}

// NewProductAddedEvent creates a product added event
func NewProductAddedEvent(product Product) *ProductAddedEvent {
	return &ProductAddedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductAdded),
		Product:         product,
	}
}

// ProductUpdatedEvent is published after a listing changes
type ProductUpdatedEvent struct {
	shared.BaseDomainEvent
	Product Product `json:"product"`
}

// NewProductUpdatedEvent creates a product updated event
func NewProductUpdatedEvent(product Product) *ProductUpdatedEvent {
	return &ProductUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductUpdated),
		Product:         product,
	}
}

// StockChangedEvent is published whenever a listing's stock level moves.
// The low stock watcher subscribes to it.
type StockChangedEvent struct {
	shared.BaseDomainEvent
	ProductID   int64  `json:"productId"`
	ProductName string `json:"productName"`
	Stock       int    `json:"stock"`
}

// NewStockChangedEvent creates a stock changed event
func NewStockChangedEvent(product Product) *StockChangedEvent {
	return &StockChangedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventProductStockChanged),
		ProductID:       product.ID,
		ProductName:     product.Name,
		Stock:           product.Stock,
	}
}
