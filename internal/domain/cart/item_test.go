package cart

import (
	"testing"

	"github.com/aromatta/backend/internal/domain/catalog"
	"github.com/stretchr/testify/assert"
)

func testProduct() catalog.Product {
	return catalog.Product{
		ID:       7,
		Name:     "Fertilizante Orgánico para Café",
		Price:    35000,
		Image:    "/fertilizante.jpg",
		Seller:   "Abonos Naturales",
		Category: "Fertilizantes",
		Stock:    60,
		Status:   catalog.StatusActive,
	}
}

func TestNewItem_ClampsToStock(t *testing.T) {
	item := NewItem(testProduct(), 100)
	assert.Equal(t, 60, item.Quantity)

	item = NewItem(testProduct(), 2)
	assert.Equal(t, 2, item.Quantity)
}

func TestItem_Add(t *testing.T) {
	item := NewItem(testProduct(), 55)
	item.Add(10)
	assert.Equal(t, 60, item.Quantity)
}

func TestItem_SetQuantity(t *testing.T) {
	item := NewItem(testProduct(), 2)
	item.SetQuantity(100)
	assert.Equal(t, 60, item.Quantity)

	item.SetQuantity(5)
	assert.Equal(t, 5, item.Quantity)
}

func TestItem_Subtotal(t *testing.T) {
	item := NewItem(testProduct(), 2)
	assert.Equal(t, int64(70000), item.Subtotal())
}

func TestNewUpdatedEvent(t *testing.T) {
	items := []Item{
		NewItem(testProduct(), 2),
		{ID: 9, Price: 15000, Quantity: 3, Stock: 100},
	}

	evt := NewUpdatedEvent(items)
	assert.Equal(t, EventCartUpdated, evt.EventType())
	assert.Equal(t, int64(70000+45000), evt.Total)
	assert.Equal(t, 5, evt.Count)
	assert.Len(t, evt.Items, 2)

	// The event keeps its own copy of the lines.
	items[0].Quantity = 1
	assert.Equal(t, 2, evt.Items[0].Quantity)
}
