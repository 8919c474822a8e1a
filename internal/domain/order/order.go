package order

import (
	"fmt"
	"time"

	"github.com/aromatta/backend/internal/domain/cart"
	"github.com/aromatta/backend/internal/domain/shared"
)

// Order statuses
const (
	StatusPending    = "pending"
	StatusProcessing = "processing"
	StatusShipped    = "shipped"
	StatusDelivered  = "delivered"
	StatusCancelled  = "cancelled"
)

// Line is a purchased item frozen at checkout time
type Line struct {
	ProductID int64  `json:"productId"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Image     string `json:"image"`
	Seller    string `json:"seller"`
	Quantity  int    `json:"quantity"`
}

// Order is a completed checkout
type Order struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	Lines         []Line    `json:"lines"`
	Subtotal      int64     `json:"subtotal"`
	CouponCode    string    `json:"couponCode,omitempty"`
	Discount      int64     `json:"discount"`
	Shipping      int64     `json:"shipping"`
	Total         int64     `json:"total"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"createdAt"`
	DeliveredDate string    `json:"deliveredDate,omitempty"`
}

// FromSummary freezes a priced cart into a new pending order
func FromSummary(userID string, summary cart.Summary) (*Order, error) {
	if len(summary.Items) == 0 {
		return nil, shared.ErrEmptyCart
	}

	now := time.Now()
	lines := make([]Line, 0, len(summary.Items))
	for _, item := range summary.Items {
		lines = append(lines, Line{
			ProductID: item.ID,
			Name:      item.Name,
			Price:     item.Price,
			Image:     item.Image,
			Seller:    item.Seller,
			Quantity:  item.Quantity,
		})
	}

	o := &Order{
		ID:        fmt.Sprintf("ORD-%d", now.UnixMilli()),
		UserID:    userID,
		Lines:     lines,
		Subtotal:  summary.Subtotal,
		Discount:  summary.Discount,
		Shipping:  summary.Shipping,
		Total:     summary.Total,
		Status:    StatusPending,
		CreatedAt: now,
	}
	if summary.Coupon != nil {
		o.CouponCode = summary.Coupon.Code
	}
	return o, nil
}

// transitions lists the statuses reachable from each status
var transitions = map[string][]string{
	StatusPending:    {StatusProcessing, StatusCancelled},
	StatusProcessing: {StatusShipped, StatusCancelled},
	StatusShipped:    {StatusDelivered},
}

// UpdateStatus advances the order through its lifecycle
func (o *Order) UpdateStatus(next string) error {
	for _, allowed := range transitions[o.Status] {
		if next == allowed {
			o.Status = next
			if next == StatusDelivered {
				o.DeliveredDate = time.Now().Format("2006-01-02")
			}
			return nil
		}
	}
	return shared.NewDomainError("INVALID_STATUS",
		fmt.Sprintf("Cannot move order from %s to %s", o.Status, next))
}
