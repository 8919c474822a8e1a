package handler

import (
	orderapp "github.com/aromatta/backend/internal/application/order"
	"github.com/aromatta/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// OrderHandler serves checkout and order history endpoints
type OrderHandler struct {
	BaseHandler
	orders *orderapp.Service
}

// NewOrderHandler creates the handler
func NewOrderHandler(orders *orderapp.Service) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// Checkout handles POST /orders
func (h *OrderHandler) Checkout(c *gin.Context) {
	o, err := h.orders.Checkout(c.Request.Context(), middleware.GetUserID(c))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, o)
}

// List handles GET /orders, scoped to the authenticated user
func (h *OrderHandler) List(c *gin.Context) {
	orders := h.orders.List(c.Request.Context(), middleware.GetUserID(c))
	h.BaseHandler.List(c, orders, len(orders))
}

// Get handles GET /orders/:id
func (h *OrderHandler) Get(c *gin.Context) {
	o, err := h.orders.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, o)
}

type updateStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=pending processing shipped delivered cancelled"`
}

// UpdateStatus handles PUT /orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	var req updateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid status payload: "+err.Error())
		return
	}

	o, err := h.orders.UpdateStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, o)
}
