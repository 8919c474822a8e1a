package cart

import (
	"testing"

	"github.com/aromatta/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCoupon(t *testing.T) {
	c, err := LookupCoupon(" cafe10 ")
	require.NoError(t, err)
	assert.Equal(t, "CAFE10", c.Code)
	assert.Equal(t, 10, c.Discount)

	c, err = LookupCoupon("AROMATTA20")
	require.NoError(t, err)
	assert.Equal(t, 20, c.Discount)

	_, err = LookupCoupon("DESCUENTO50")
	assert.ErrorIs(t, err, shared.ErrInvalidCoupon)
}

func TestSummarize_ShippingThreshold(t *testing.T) {
	// Below the free shipping threshold.
	items := []Item{{ID: 9, Price: 15000, Quantity: 2, Stock: 100}}
	s := Summarize(items, nil)
	assert.Equal(t, int64(30000), s.Subtotal)
	assert.Equal(t, int64(ShippingCost), s.Shipping)
	assert.Equal(t, int64(38000), s.Total)

	// At the threshold shipping is free.
	items = []Item{{ID: 1, Price: 40000, Quantity: 2, Stock: 25}}
	s = Summarize(items, nil)
	assert.Equal(t, int64(80000), s.Subtotal)
	assert.Zero(t, s.Shipping)
	assert.Equal(t, int64(80000), s.Total)
}

func TestSummarize_CouponDiscount(t *testing.T) {
	items := []Item{{ID: 1, Price: 45000, Quantity: 2, Stock: 25}}
	coupon := Coupon{Code: "CAFE10", Discount: 10}

	s := Summarize(items, &coupon)
	assert.Equal(t, int64(90000), s.Subtotal)
	assert.Equal(t, int64(9000), s.Discount)
	assert.Zero(t, s.Shipping)
	assert.Equal(t, int64(81000), s.Total)
	assert.Equal(t, 2, s.Count)
}

func TestSummarize_EmptyCart(t *testing.T) {
	s := Summarize(nil, nil)
	assert.Zero(t, s.Subtotal)
	assert.Zero(t, s.Shipping)
	assert.Zero(t, s.Total)
	assert.Empty(t, s.Items)
}
