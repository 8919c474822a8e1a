package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	n, err := New(TypeStock, "Stock bajo", "Quedan 2 unidades", PriorityHigh)
	require.NoError(t, err)

	assert.NotEmpty(t, n.ID)
	assert.False(t, n.Read)
	assert.False(t, n.Timestamp.IsZero())
}

func TestNew_RejectsUnknownValues(t *testing.T) {
	_, err := New("promo", "t", "m", PriorityLow)
	assert.Error(t, err)

	_, err = New(TypeOrder, "t", "m", "urgent")
	assert.Error(t, err)
}

func TestNotification_ProductID(t *testing.T) {
	n := Notification{Metadata: map[string]any{"productId": int64(7)}}
	id, ok := n.ProductID()
	require.True(t, ok)
	assert.Equal(t, int64(7), id)

	// JSON round trips land as float64.
	n.Metadata["productId"] = float64(11)
	id, ok = n.ProductID()
	require.True(t, ok)
	assert.Equal(t, int64(11), id)

	n.Metadata = nil
	_, ok = n.ProductID()
	assert.False(t, ok)
}
