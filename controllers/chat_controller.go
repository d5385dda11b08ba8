package controllers

import (
	"net/http"
	"strings"

	"backend/services"

	"github.com/gin-gonic/gin"
)

type ChatController struct{ Svc *services.ChatService }

func NewChatController(svc *services.ChatService) *ChatController {
	return &ChatController{Svc: svc}
}

type chatReq struct {
	Message string `json:"message"`
}

// POST /api/chat
// Replies are returned bare (no success envelope); the chat widget consumes
// them as-is.
func (h *ChatController) Chat(c *gin.Context) {
	var req chatReq
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Message) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Message cannot be empty"})
		return
	}
	c.JSON(http.StatusOK, h.Svc.Reply(req.Message))
}
