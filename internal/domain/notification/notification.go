package notification

import (
	"strconv"
	"time"

	"github.com/aromatta/backend/internal/domain/shared"
)

// Notification types
const (
	TypeOrder   = "order"
	TypeMessage = "message"
	TypeReview  = "review"
	TypeStock   = "stock"
	TypeOffer   = "offer"
	TypeSystem  = "system"
)

// Notification priorities
const (
	PriorityHigh   = "high"
	PriorityMedium = "medium"
	PriorityLow    = "low"
)

// Notification is an in-app alert shown to the user
type Notification struct {
	ID        string         `json:"id"`
	Type      string         `json:"type"`
	Title     string         `json:"title"`
	Message   string         `json:"message"`
	Timestamp time.Time      `json:"timestamp"`
	Read      bool           `json:"read"`
	Priority  string         `json:"priority"`
	ActionURL string         `json:"actionUrl,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// New creates a notification with a timestamp ID
func New(notifType, title, message, priority string) (*Notification, error) {
	if !validType(notifType) {
		return nil, shared.NewDomainError("INVALID_NOTIFICATION", "Unknown notification type: "+notifType)
	}
	if !validPriority(priority) {
		return nil, shared.NewDomainError("INVALID_NOTIFICATION", "Unknown notification priority: "+priority)
	}
	return &Notification{
		ID:        strconv.FormatInt(time.Now().UnixMilli(), 10),
		Type:      notifType,
		Title:     title,
		Message:   message,
		Timestamp: time.Now(),
		Priority:  priority,
	}, nil
}

func validType(t string) bool {
	switch t {
	case TypeOrder, TypeMessage, TypeReview, TypeStock, TypeOffer, TypeSystem:
		return true
	}
	return false
}

func validPriority(p string) bool {
	switch p {
	case PriorityHigh, PriorityMedium, PriorityLow:
		return true
	}
	return false
}

// ProductID extracts the product reference from metadata, if present.
// Stock alerts carry one so duplicates can be suppressed.
func (n *Notification) ProductID() (int64, bool) {
	raw, ok := n.Metadata["productId"]
	if !ok {
		return 0, false
	}
	switch v := raw.(type) {
	case int64:
		return v, true
	case float64:
		return int64(v), true
	case int:
		return int64(v), true
	}
	return 0, false
}
