package notification

import (
	"context"
	"fmt"

	"github.com/aromatta/backend/internal/domain/cart"
	"github.com/aromatta/backend/internal/domain/catalog"
	"github.com/aromatta/backend/internal/domain/notification"
	"github.com/aromatta/backend/internal/domain/order"
	"github.com/aromatta/backend/internal/domain/shared"
	"go.uber.org/zap"
)

// LowStockWatcher raises a high priority alert when a listing's stock
// drops to three units or fewer. At most one alert exists per product.
type LowStockWatcher struct {
	service *Service
	logger  *zap.Logger
}

// NewLowStockWatcher creates the watcher
func NewLowStockWatcher(service *Service, logger *zap.Logger) *LowStockWatcher {
	return &LowStockWatcher{service: service, logger: logger}
}

// EventTypes subscribes the watcher to stock changes and cart snapshots
func (w *LowStockWatcher) EventTypes() []string {
	return []string{catalog.EventProductStockChanged, cart.EventCartUpdated}
}

// Handle raises an alert for any product that crossed the threshold
func (w *LowStockWatcher) Handle(ctx context.Context, e shared.DomainEvent) error {
	switch evt := e.(type) {
	case *catalog.StockChangedEvent:
		return w.raise(ctx, evt.ProductID, evt.ProductName, evt.Stock)
	case *cart.UpdatedEvent:
		for _, item := range evt.Items {
			if err := w.raise(ctx, item.ID, item.Name, item.Stock); err != nil {
				return err
			}
		}
	}
	return nil
}

func (w *LowStockWatcher) raise(ctx context.Context, productID int64, name string, stock int) error {
	if stock <= 0 || stock > 3 {
		return nil
	}
	if w.service.hasStockAlert(productID) {
		return nil
	}

	_, err := w.service.Add(ctx, AddRequest{
		Type:      notification.TypeStock,
		Title:     "Stock bajo",
		Message:   fmt.Sprintf("%s tiene solo %d unidades disponibles", name, stock),
		Priority:  notification.PriorityHigh,
		ActionURL: fmt.Sprintf("/product/%d", productID),
		Metadata:  map[string]any{"productId": productID},
	})
	if err != nil {
		return err
	}

	w.logger.Info("Low stock alert raised",
		zap.Int64("product_id", productID),
		zap.Int("stock", stock),
	)
	return nil
}

// OrderPlacedHandler notifies the user when a checkout completes
type OrderPlacedHandler struct {
	service *Service
}

// NewOrderPlacedHandler creates the handler
func NewOrderPlacedHandler(service *Service) *OrderPlacedHandler {
	return &OrderPlacedHandler{service: service}
}

// EventTypes subscribes the handler to placed orders
func (h *OrderPlacedHandler) EventTypes() []string {
	return []string{order.EventOrderPlaced}
}

// Handle raises an order confirmation notification
func (h *OrderPlacedHandler) Handle(ctx context.Context, e shared.DomainEvent) error {
	evt, ok := e.(*order.PlacedEvent)
	if !ok {
		return nil
	}

	_, err := h.service.Add(ctx, AddRequest{
		Type:      notification.TypeOrder,
		Title:     "Pedido confirmado",
		Message:   fmt.Sprintf("Tu pedido %s fue recibido y está en proceso", evt.OrderID),
		Priority:  notification.PriorityMedium,
		ActionURL: "/orders",
		Metadata:  map[string]any{"orderId": evt.OrderID},
	})
	return err
}
