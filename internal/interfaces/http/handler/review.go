package handler

import (
	reviewapp "github.com/aromatta/backend/internal/application/review"
	"github.com/aromatta/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ReviewHandler serves the review endpoints
type ReviewHandler struct {
	BaseHandler
	reviews *reviewapp.Service
}

// NewReviewHandler creates the handler
func NewReviewHandler(reviews *reviewapp.Service) *ReviewHandler {
	return &ReviewHandler{reviews: reviews}
}

// Create handles POST /reviews. The author is taken from the session.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reviewapp.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid review payload: "+err.Error())
		return
	}
	if userID := middleware.GetUserID(c); userID != "" {
		req.UserID = userID
	}

	r, err := h.reviews.Add(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, r)
}

// Mine handles GET /reviews/mine
func (h *ReviewHandler) Mine(c *gin.Context) {
	list := h.reviews.ListByUser(c.Request.Context(), middleware.GetUserID(c))
	h.BaseHandler.List(c, list, len(list))
}
