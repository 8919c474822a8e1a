package cart

import "github.com/aromatta/backend/internal/domain/catalog"

// Item is a single cart line. Quantity is always clamped to the stock
// snapshot taken when the product was added.
type Item struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	Price         int64  `json:"price"`
	OriginalPrice int64  `json:"originalPrice,omitempty"`
	Image         string `json:"image"`
	Seller        string `json:"seller"`
	Quantity      int    `json:"quantity"`
	Stock         int    `json:"stock"`
	Category      string `json:"category"`
}

// NewItem builds a cart line from a product, clamping quantity to stock
func NewItem(product catalog.Product, quantity int) Item {
	return Item{
		ID:            product.ID,
		Name:          product.Name,
		Price:         product.Price,
		OriginalPrice: product.OriginalPrice,
		Image:         product.Image,
		Seller:        product.Seller,
		Quantity:      min(quantity, product.Stock),
		Stock:         product.Stock,
		Category:      product.Category,
	}
}

// Add increases the quantity, clamped to the stock snapshot
func (i *Item) Add(quantity int) {
	i.Quantity = min(i.Quantity+quantity, i.Stock)
}

// SetQuantity replaces the quantity, clamped to the stock snapshot.
// Callers remove the line entirely for quantities of zero or less.
func (i *Item) SetQuantity(quantity int) {
	i.Quantity = min(quantity, i.Stock)
}

// Subtotal is price times quantity
func (i Item) Subtotal() int64 {
	return i.Price * int64(i.Quantity)
}
