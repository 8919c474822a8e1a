package handler

import (
	chatapp "github.com/aromatta/backend/internal/application/chat"
	"github.com/gin-gonic/gin"
)

// ChatHandler serves the storefront assistant endpoints
type ChatHandler struct {
	BaseHandler
	chat *chatapp.Service
}

// NewChatHandler creates the handler
func NewChatHandler(chat *chatapp.Service) *ChatHandler {
	return &ChatHandler{chat: chat}
}

type sendMessageRequest struct {
	Text string `json:"text" binding:"required,notblank"`
}

// Send handles POST /chat/messages
func (h *ChatHandler) Send(c *gin.Context) {
	var req sendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid message payload: "+err.Error())
		return
	}

	reply, err := h.chat.Send(c.Request.Context(), req.Text)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, reply)
}

// Transcript handles GET /chat/messages
func (h *ChatHandler) Transcript(c *gin.Context) {
	transcript := h.chat.Transcript(c.Request.Context())
	h.BaseHandler.List(c, transcript, len(transcript))
}

// Reset handles DELETE /chat/messages
func (h *ChatHandler) Reset(c *gin.Context) {
	h.chat.Reset(c.Request.Context())
	h.NoContent(c)
}
