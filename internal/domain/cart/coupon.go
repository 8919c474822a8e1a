package cart

import (
	"strings"

	"github.com/aromatta/backend/internal/domain/shared"
	"github.com/shopspring/decimal"
)

// Shipping thresholds in Colombian pesos
const (
	FreeShippingMinimum = 80000
	ShippingCost        = 8000
)

// validCoupons maps coupon codes to their percentage discount
var validCoupons = map[string]int{
	"CAFE10":     10,
	"PRIMERA15":  15,
	"AROMATTA20": 20,
}

// Coupon is a percentage discount applied to the cart subtotal
type Coupon struct {
	Code     string `json:"code"`
	Discount int    `json:"discount"`
}

// LookupCoupon resolves a coupon code, normalizing to upper case
func LookupCoupon(code string) (Coupon, error) {
	normalized := strings.ToUpper(strings.TrimSpace(code))
	discount, ok := validCoupons[normalized]
	if !ok {
		return Coupon{}, shared.ErrInvalidCoupon
	}
	return Coupon{Code: normalized, Discount: discount}, nil
}

// Summary is the priced breakdown of a cart
type Summary struct {
	Items    []Item  `json:"items"`
	Subtotal int64   `json:"subtotal"`
	Coupon   *Coupon `json:"coupon,omitempty"`
	Discount int64   `json:"discount"`
	Shipping int64   `json:"shipping"`
	Total    int64   `json:"total"`
	Count    int     `json:"count"`
}

// Summarize prices a set of cart lines. Shipping is free above the
// threshold, and the coupon discount is a percentage of the subtotal.
func Summarize(items []Item, coupon *Coupon) Summary {
	var subtotal int64
	var count int
	for _, item := range items {
		subtotal += item.Subtotal()
		count += item.Quantity
	}

	var discount int64
	if coupon != nil {
		discount = decimal.NewFromInt(subtotal).
			Mul(decimal.NewFromInt(int64(coupon.Discount))).
			Div(decimal.NewFromInt(100)).
			Round(0).IntPart()
	}

	var shipping int64
	if subtotal < FreeShippingMinimum {
		shipping = ShippingCost
	}
	if len(items) == 0 {
		shipping = 0
	}

	snapshot := make([]Item, len(items))
	copy(snapshot, items)
	return Summary{
		Items:    snapshot,
		Subtotal: subtotal,
		Coupon:   coupon,
		Discount: discount,
		Shipping: shipping,
		Total:    subtotal - discount + shipping,
		Count:    count,
	}
}
