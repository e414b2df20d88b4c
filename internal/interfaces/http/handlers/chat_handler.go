package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"cvnest.backend/internal/domain/entities"
	domainerrors "cvnest.backend/internal/domain/errors"
	"cvnest.backend/internal/interfaces/http/middleware"
	"cvnest.backend/internal/interfaces/http/response"
)

type chatService interface {
	CreateThread(ctx context.Context, userID uuid.UUID, input *entities.CreateThreadInput) (*entities.ChatThread, *entities.ChatMessage, error)
	ListThreads(ctx context.Context, userID uuid.UUID) ([]*entities.ChatThread, error)
	GetMessages(ctx context.Context, userID, threadID uuid.UUID) ([]*entities.ChatMessage, error)
	PostMessage(ctx context.Context, userID, threadID uuid.UUID, input *entities.PostMessageInput) (*entities.ChatMessage, error)
	DeleteThread(ctx context.Context, userID, threadID uuid.UUID) error
}

// ChatHandler handles assistant conversation endpoints
type ChatHandler struct {
	chatService chatService
}

// NewChatHandler creates a new chat handler
func NewChatHandler(chatService chatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

// CreateThread opens a conversation
// POST /api/v1/chat/threads
func (h *ChatHandler) CreateThread(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.CreateThreadInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	thread, reply, err := h.chatService.CreateThread(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"thread": thread,
		"reply":  reply,
	})
}

// ListThreads returns the caller's conversations
// GET /api/v1/chat/threads
func (h *ChatHandler) ListThreads(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	threads, err := h.chatService.ListThreads(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"threads": threads})
}

// GetMessages returns the history of one conversation
// GET /api/v1/chat/threads/:id
func (h *ChatHandler) GetMessages(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid thread id"))
		return
	}

	messages, err := h.chatService.GetMessages(c.Request.Context(), userID, threadID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"messages": messages})
}

// PostMessage appends a message and returns the assistant reply
// POST /api/v1/chat/threads/:id/messages
func (h *ChatHandler) PostMessage(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid thread id"))
		return
	}

	var input entities.PostMessageInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	reply, err := h.chatService.PostMessage(c.Request.Context(), userID, threadID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"reply": reply})
}

// DeleteThread removes a conversation
// DELETE /api/v1/chat/threads/:id
func (h *ChatHandler) DeleteThread(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	threadID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, domainerrors.BadRequest("invalid thread id"))
		return
	}

	if err := h.chatService.DeleteThread(c.Request.Context(), userID, threadID); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"message": "thread deleted"})
}
