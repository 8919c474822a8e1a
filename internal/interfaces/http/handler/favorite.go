package handler

import (
	"strconv"

	favoritesapp "github.com/aromatta/backend/internal/application/favorites"
	"github.com/gin-gonic/gin"
)

// FavoriteHandler serves the favorites endpoints
type FavoriteHandler struct {
	BaseHandler
	favorites *favoritesapp.Service
}

// NewFavoriteHandler creates the handler
func NewFavoriteHandler(favorites *favoritesapp.Service) *FavoriteHandler {
	return &FavoriteHandler{favorites: favorites}
}

// List handles GET /favorites
func (h *FavoriteHandler) List(c *gin.Context) {
	list := h.favorites.List(c.Request.Context())
	h.BaseHandler.List(c, list, len(list))
}

// Toggle handles POST /favorites/:id/toggle
func (h *FavoriteHandler) Toggle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Product ID must be a number")
		return
	}

	favorite, err := h.favorites.Toggle(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{"productId": id, "favorite": favorite})
}

// Remove handles DELETE /favorites/:id
func (h *FavoriteHandler) Remove(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		h.BadRequest(c, "Product ID must be a number")
		return
	}

	if err := h.favorites.Remove(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
