package handler

import (
	"strconv"

	cartapp "github.com/aromatta/backend/internal/application/cart"
	"github.com/gin-gonic/gin"
)

// CartHandler serves the shopping cart endpoints
type CartHandler struct {
	BaseHandler
	cart *cartapp.Service
}

// NewCartHandler creates the handler
func NewCartHandler(cart *cartapp.Service) *CartHandler {
	return &CartHandler{cart: cart}
}

// Get handles GET /cart
func (h *CartHandler) Get(c *gin.Context) {
	h.Success(c, h.cart.Summary(c.Request.Context()))
}

type addItemRequest struct {
	ProductID int64 `json:"productId" binding:"required"`
	Quantity  int   `json:"quantity"`
}

// AddItem handles POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid cart payload: "+err.Error())
		return
	}

	summary, err := h.cart.Add(c.Request.Context(), req.ProductID, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

type updateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// UpdateItem handles PUT /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Product ID must be a number")
		return
	}

	var req updateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid quantity payload: "+err.Error())
		return
	}

	summary, err := h.cart.UpdateQuantity(c.Request.Context(), id, req.Quantity)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// RemoveItem handles DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Product ID must be a number")
		return
	}

	summary, err := h.cart.Remove(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// Clear handles DELETE /cart
func (h *CartHandler) Clear(c *gin.Context) {
	if err := h.cart.Clear(c.Request.Context()); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

type applyCouponRequest struct {
	Code string `json:"code" binding:"required"`
}

// ApplyCoupon handles POST /cart/coupon
func (h *CartHandler) ApplyCoupon(c *gin.Context) {
	var req applyCouponRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid coupon payload: "+err.Error())
		return
	}

	summary, err := h.cart.ApplyCoupon(c.Request.Context(), req.Code)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}

// RemoveCoupon handles DELETE /cart/coupon
func (h *CartHandler) RemoveCoupon(c *gin.Context) {
	h.Success(c, h.cart.RemoveCoupon(c.Request.Context()))
}
