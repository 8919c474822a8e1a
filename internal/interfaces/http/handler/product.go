package handler

import (
	"strconv"

	catalogapp "github.com/aromatta/backend/internal/application/catalog"
	reviewapp "github.com/aromatta/backend/internal/application/review"
	"github.com/aromatta/backend/internal/domain/catalog"
	"github.com/gin-gonic/gin"
)

// ProductHandler serves the catalog endpoints
type ProductHandler struct {
	BaseHandler
	catalog *catalogapp.Service
	reviews *reviewapp.Service
}

// NewProductHandler creates the handler
func NewProductHandler(catalog *catalogapp.Service, reviews *reviewapp.Service) *ProductHandler {
	return &ProductHandler{catalog: catalog, reviews: reviews}
}

func parseProductID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, false
	}
	return id, true
}

// List handles GET /products. Supports ?category=, ?q= and ?sort=name.
func (h *ProductHandler) List(c *gin.Context) {
	ctx := c.Request.Context()

	var results []catalog.Product
	switch {
	case c.Query("q") != "":
		results = h.catalog.Search(ctx, c.Query("q"))
	case c.Query("category") != "":
		results = h.catalog.ByCategory(ctx, c.Query("category"))
	case c.Query("sort") == "name":
		results = h.catalog.ListSortedByName(ctx)
	default:
		results = h.catalog.List(ctx)
	}
	h.BaseHandler.List(c, results, len(results))
}

// Get handles GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		h.BadRequest(c, "Product ID must be a number")
		return
	}

	product, err := h.catalog.GetByID(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Create handles POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req catalogapp.AddProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid product payload: "+err.Error())
		return
	}

	product, err := h.catalog.Add(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, product)
}

// Update handles PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		h.BadRequest(c, "Product ID must be a number")
		return
	}

	var req catalogapp.UpdateProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid product payload: "+err.Error())
		return
	}

	product, err := h.catalog.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, product)
}

// Delete handles DELETE /products/:id
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		h.BadRequest(c, "Product ID must be a number")
		return
	}

	if err := h.catalog.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Reviews handles GET /products/:id/reviews
func (h *ProductHandler) Reviews(c *gin.Context) {
	id, ok := parseProductID(c)
	if !ok {
		h.BadRequest(c, "Product ID must be a number")
		return
	}
	h.Success(c, h.reviews.ListByProduct(c.Request.Context(), id))
}
