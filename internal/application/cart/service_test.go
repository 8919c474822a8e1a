package cart

import (
	"context"
	"testing"

	catalogapp "github.com/aromatta/backend/internal/application/catalog"
	domain "github.com/aromatta/backend/internal/domain/cart"
	"github.com/aromatta/backend/internal/domain/shared"
	"github.com/aromatta/backend/internal/infrastructure/event"
	"github.com/aromatta/backend/internal/infrastructure/kv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T) (*Service, *event.InMemoryEventBus, kv.Store) {
	t.Helper()
	store := kv.NewMemoryStore()
	bus := event.NewInMemoryEventBus(zap.NewNop())
	products, err := catalogapp.NewService(context.Background(), store, nil, zap.NewNop())
	require.NoError(t, err)
	svc, err := NewService(context.Background(), store, bus, products, zap.NewNop())
	require.NoError(t, err)
	return svc, bus, store
}

// Product 7 is the seed fertilizer: price 35000, stock 60.
func TestService_AddUpdateRemoveFlow(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	summary, err := svc.Add(ctx, 7, 2)
	require.NoError(t, err)
	assert.Equal(t, int64(70000), summary.Subtotal)
	assert.Equal(t, 2, summary.Count)

	// Requesting far more than stock clamps to the snapshot.
	summary, err = svc.UpdateQuantity(ctx, 7, 100)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 60, summary.Items[0].Quantity)
	assert.Equal(t, int64(2100000), summary.Subtotal)

	summary, err = svc.Remove(ctx, 7)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
	assert.Zero(t, summary.Total)
}

func TestService_AddExistingTopsUp(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, 2)
	require.NoError(t, err)
	summary, err := svc.Add(ctx, 7, 3)
	require.NoError(t, err)

	require.Len(t, summary.Items, 1)
	assert.Equal(t, 5, summary.Items[0].Quantity)
}

func TestService_AddClampsToStock(t *testing.T) {
	svc, _, _ := newTestService(t)

	// Product 12 has only 2 units.
	summary, err := svc.Add(context.Background(), 12, 10)
	require.NoError(t, err)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, 2, summary.Items[0].Quantity)
}

func TestService_AddUnknownProduct(t *testing.T) {
	svc, _, _ := newTestService(t)
	_, err := svc.Add(context.Background(), 999999, 1)
	assert.ErrorIs(t, err, shared.ErrNotFound)
}

func TestService_UpdateQuantityZeroRemoves(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, 2)
	require.NoError(t, err)

	summary, err := svc.UpdateQuantity(ctx, 7, 0)
	require.NoError(t, err)
	assert.Empty(t, summary.Items)
}

func TestService_PersistsAcrossRestart(t *testing.T) {
	svc, _, store := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, 2)
	require.NoError(t, err)

	products, err := catalogapp.NewService(ctx, store, nil, zap.NewNop())
	require.NoError(t, err)
	reloaded, err := NewService(ctx, store, nil, products, zap.NewNop())
	require.NoError(t, err)

	summary := reloaded.Summary(ctx)
	require.Len(t, summary.Items, 1)
	assert.Equal(t, int64(7), summary.Items[0].ID)
	assert.Equal(t, 2, summary.Items[0].Quantity)
}

func TestService_PublishesCartUpdated(t *testing.T) {
	svc, bus, _ := newTestService(t)
	ctx := context.Background()

	var events []*domain.UpdatedEvent
	bus.SubscribeFunc(func(_ context.Context, e shared.DomainEvent) error {
		events = append(events, e.(*domain.UpdatedEvent))
		return nil
	}, domain.EventCartUpdated)

	_, err := svc.Add(ctx, 7, 2)
	require.NoError(t, err)
	_, err = svc.Remove(ctx, 7)
	require.NoError(t, err)

	require.Len(t, events, 2)
	assert.Equal(t, 2, events[0].Count)
	assert.Zero(t, events[1].Count)
}

func TestService_Coupons(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	// Two units of product 1 cross the free shipping threshold.
	_, err := svc.Add(ctx, 1, 2)
	require.NoError(t, err)

	summary, err := svc.ApplyCoupon(ctx, "cafe10")
	require.NoError(t, err)
	require.NotNil(t, summary.Coupon)
	assert.Equal(t, int64(9000), summary.Discount)
	assert.Equal(t, int64(81000), summary.Total)

	_, err = svc.ApplyCoupon(ctx, "FALSO99")
	assert.ErrorIs(t, err, shared.ErrInvalidCoupon)

	summary = svc.RemoveCoupon(ctx)
	assert.Nil(t, summary.Coupon)
	assert.Equal(t, int64(90000), summary.Total)
}

func TestService_TotalAndCount(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, 2)
	require.NoError(t, err)
	_, err = svc.Add(ctx, 9, 3)
	require.NoError(t, err)

	assert.Equal(t, int64(70000+45000), svc.Total(ctx))
	assert.Equal(t, 5, svc.Count(ctx))
}

func TestService_Clear(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	_, err := svc.Add(ctx, 7, 2)
	require.NoError(t, err)
	_, err = svc.ApplyCoupon(ctx, "CAFE10")
	require.NoError(t, err)

	require.NoError(t, svc.Clear(ctx))
	summary := svc.Summary(ctx)
	assert.Empty(t, summary.Items)
	assert.Nil(t, summary.Coupon)
}
