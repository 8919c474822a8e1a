package event

import (
	"context"
	"errors"
	"testing"

	"github.com/aromatta/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testEvent struct {
	shared.BaseDomainEvent
}

func newTestEvent(eventType string) *testEvent {
	return &testEvent{BaseDomainEvent: shared.NewBaseDomainEvent(eventType)}
}

type recordingHandler struct {
	types    []string
	received []string
	err      error
}

func (h *recordingHandler) Handle(_ context.Context, event shared.DomainEvent) error {
	h.received = append(h.received, event.EventType())
	return h.err
}

func (h *recordingHandler) EventTypes() []string {
	return h.types
}

func TestInMemoryEventBus_DispatchesToSubscribedTypes(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())
	require.NoError(t, bus.Start(context.Background()))

	handler := &recordingHandler{types: []string{"cart.updated"}}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("cart.updated")))
	require.NoError(t, bus.Publish(context.Background(), newTestEvent("order.placed")))

	assert.Equal(t, []string{"cart.updated"}, handler.received)
}

func TestInMemoryEventBus_EmptyTypesReceivesAll(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := &recordingHandler{}
	bus.Subscribe(handler)

	require.NoError(t, bus.Publish(context.Background(),
		newTestEvent("cart.updated"),
		newTestEvent("order.placed"),
	))

	assert.Equal(t, []string{"cart.updated", "order.placed"}, handler.received)
}

func TestInMemoryEventBus_FailingHandlerDoesNotBlockOthers(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	failing := &recordingHandler{types: []string{"cart.updated"}, err: errors.New("boom")}
	healthy := &recordingHandler{types: []string{"cart.updated"}}
	bus.Subscribe(failing)
	bus.Subscribe(healthy)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("cart.updated")))

	assert.Len(t, failing.received, 1)
	assert.Len(t, healthy.received, 1)
}

func TestInMemoryEventBus_Unsubscribe(t *testing.T) {
	bus := NewInMemoryEventBus(zap.NewNop())

	handler := &recordingHandler{types: []string{"cart.updated"}}
	bus.Subscribe(handler)
	bus.Unsubscribe(handler)

	require.NoError(t, bus.Publish(context.Background(), newTestEvent("cart.updated")))
	assert.Empty(t, handler.received)
}
