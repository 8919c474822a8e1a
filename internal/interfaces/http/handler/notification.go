package handler

import (
	notificationapp "github.com/aromatta/backend/internal/application/notification"
	"github.com/gin-gonic/gin"
)

// NotificationHandler serves the notification tray endpoints
type NotificationHandler struct {
	BaseHandler
	notifications *notificationapp.Service
}

// NewNotificationHandler creates the handler
func NewNotificationHandler(notifications *notificationapp.Service) *NotificationHandler {
	return &NotificationHandler{notifications: notifications}
}

// List handles GET /notifications
func (h *NotificationHandler) List(c *gin.Context) {
	list := h.notifications.List(c.Request.Context())
	h.BaseHandler.List(c, list, len(list))
}

// Create handles POST /notifications
func (h *NotificationHandler) Create(c *gin.Context) {
	var req notificationapp.AddRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid notification payload: "+err.Error())
		return
	}

	n, err := h.notifications.Add(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, n)
}

// MarkAsRead handles PUT /notifications/:id/read
func (h *NotificationHandler) MarkAsRead(c *gin.Context) {
	if err := h.notifications.MarkAsRead(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// MarkAllAsRead handles PUT /notifications/read-all
func (h *NotificationHandler) MarkAllAsRead(c *gin.Context) {
	h.notifications.MarkAllAsRead(c.Request.Context())
	h.NoContent(c)
}

// Delete handles DELETE /notifications/:id
func (h *NotificationHandler) Delete(c *gin.Context) {
	if err := h.notifications.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// UnreadCount handles GET /notifications/unread-count
func (h *NotificationHandler) UnreadCount(c *gin.Context) {
	h.Success(c, gin.H{"count": h.notifications.UnreadCount(c.Request.Context())})
}
