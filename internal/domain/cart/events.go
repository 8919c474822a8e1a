package cart

import "github.com/aromatta/backend/internal/domain/shared"

// EventCartUpdated is published whenever the cart's contents change
const EventCartUpdated = "cart.updated"

// UpdatedEvent carries a snapshot of the cart after a change
type UpdatedEvent struct {
	shared.BaseDomainEvent
	Items []Item `json:"items"`
	Total int64  `json:"total"`
	Count int    `json:"count"`
}

// NewUpdatedEvent creates a cart updated event from the current lines
func NewUpdatedEvent(items []Item) *UpdatedEvent {
	var total int64
	var count int
	for _, item := range items {
		total += item.Subtotal()
		count += item.Quantity
	}
	snapshot := make([]Item, len(items))
	copy(snapshot, items)
	return &UpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventCartUpdated),
		Items:           snapshot,
		Total:           total,
		Count:           count,
	}
}
