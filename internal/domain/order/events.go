package order

import "github.com/aromatta/backend/internal/domain/shared"

// EventOrderPlaced is published when a checkout completes
const EventOrderPlaced = "order.placed"

// PlacedEvent announces a new order
type PlacedEvent struct {
	shared.BaseDomainEvent
	OrderID string `json:"orderId"`
	UserID  string `json:"userId"`
	Total   int64  `json:"total"`
	Items   int    `json:"items"`
}

// NewPlacedEvent creates an order placed event
func NewPlacedEvent(o *Order) *PlacedEvent {
	var items int
	for _, line := range o.Lines {
		items += line.Quantity
	}
	return &PlacedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventOrderPlaced),
		OrderID:         o.ID,
		UserID:          o.UserID,
		Total:           o.Total,
		Items:           items,
	}
}
