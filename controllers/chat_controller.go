// File: /controllers/chat_controller.go
package controllers

import (
	"github.com/gin-gonic/gin"
	"net/http"
	"wanderspot-api/models"
	"wanderspot-api/services"
	"wanderspot-api/utils"
)

type ChatController struct {
	repo      services.ChatRepository
	generator services.ReplyGenerator
}

func NewChatController(repo services.ChatRepository, generator services.ReplyGenerator) *ChatController {
	return &ChatController{
		repo:      repo,
		generator: generator,
	}
}

type SendMessageRequest struct {
	Content string `json:"content" binding:"required"`
}

func (cc *ChatController) session(c *gin.Context) (*services.ChatSession, bool) {
	session := services.NewChatSession(cc.repo, cc.generator)
	if err := session.Resolve(c.GetString("user_id")); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to load conversation")
		return nil, false
	}
	return session, true
}

// GetMessages returns the transcript in append order
func (cc *ChatController) GetMessages(c *gin.Context) {
	session, ok := cc.session(c)
	if !ok {
		return
	}

	messages := session.Messages()
	if messages == nil {
		messages = []models.Message{}
	}

	c.JSON(http.StatusOK, gin.H{
		"conversation_id": session.Conversation().ID,
		"messages":        messages,
	})
}

// SendMessage appends a user message and returns the assistant reply
func (cc *ChatController) SendMessage(c *gin.Context) {
	var req SendMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.SendValidationError(c, err.Error())
		return
	}

	session, ok := cc.session(c)
	if !ok {
		return
	}

	reply, err := session.SendMessage(c.Request.Context(), req.Content)
	if err != nil {
		utils.SendError(c, http.StatusBadGateway, err.Error())
		return
	}
	if reply == nil {
		utils.SendError(c, http.StatusBadRequest, "Message cannot be empty")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":  reply,
		"messages": session.Messages(),
	})
}

// ClearChat deletes the conversation's transcript. Irreversible; the app
// asks the user to confirm before calling this.
func (cc *ChatController) ClearChat(c *gin.Context) {
	session, ok := cc.session(c)
	if !ok {
		return
	}

	if err := session.ClearChat(); err != nil {
		utils.SendError(c, http.StatusInternalServerError, "Failed to clear chat")
		return
	}

	utils.SendSuccess(c, "Chat cleared", nil)
}
