package api

import (
	"net/http"

	"github.com/VoloBuilds/super-coach-pro/internal/service"
	"github.com/gin-gonic/gin"
)

// ChatHandler holds the coach service dependency.
type ChatHandler struct {
	coachService service.CoachService
}

// NewChatHandler creates a new ChatHandler.
func NewChatHandler(coachService service.CoachService) *ChatHandler {
	return &ChatHandler{coachService: coachService}
}

// chatRequest is the body of POST /api/chat.
type chatRequest struct {
	Message string                `json:"message" binding:"required"`
	History []service.ChatMessage `json:"history"`
}

// Chat runs one coach conversation turn. Upstream failures surface as 400
// with the error message passed through; there are no retries.
func (h *ChatHandler) Chat(c *gin.Context) {
	_, ok := requireIdentity(c)
	if !ok {
		return
	}
	var req chatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Chat message is required: "+err.Error())
		return
	}
	result, err := h.coachService.Chat(c.Request.Context(), req.Message, req.History)
	if err != nil {
		abortWithError(c, http.StatusBadRequest, err.Error())
		return
	}
	c.JSON(http.StatusOK, result)
}
