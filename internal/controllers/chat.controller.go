package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotelops/internal/services"
	"hotelops/internal/store"
)

// ChatController exposes the assistant: chat, chat history and voice
// intent parsing.
type ChatController struct {
	assistant *services.AssistantService
	store     *store.Store
}

func NewChatController(assistant *services.AssistantService, st *store.Store) *ChatController {
	return &ChatController{assistant: assistant, store: st}
}

// PostChat handles POST /api/chat. The response is populated before
// replying; interpreter failures degrade to the documented apology.
func (cc *ChatController) PostChat(c *gin.Context) {
	var req struct {
		UserID  string `json:"userId"`
		HotelID string `json:"hotelId"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "message is required"})
		return
	}

	msg := cc.assistant.Answer(c.Request.Context(), req.UserID, req.HotelID, req.Message)
	c.JSON(http.StatusOK, msg)
}

// GetHistory handles GET /api/chat/:userId?limit=N. A missing or
// malformed limit falls back to 50.
func (cc *ChatController) GetHistory(c *gin.Context) {
	limit := queryInt(c, "limit", 50)
	c.JSON(http.StatusOK, cc.store.ChatHistory(c.Param("userId"), limit))
}

// ProcessVoice handles POST /api/voice/process.
func (cc *ChatController) ProcessVoice(c *gin.Context) {
	var req struct {
		Transcript string `json:"transcript" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "transcript is required"})
		return
	}

	c.JSON(http.StatusOK, cc.assistant.ParseVoice(c.Request.Context(), req.Transcript))
}
