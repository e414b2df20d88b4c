package entities

import (
	"time"

	"github.com/google/uuid"
)

// ChatRole distinguishes who wrote a chat message
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatThread represents a conversation between a user and the assistant
type ChatThread struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ChatMessage represents one message inside a thread
type ChatMessage struct {
	ID        uuid.UUID `json:"id"`
	ThreadID  uuid.UUID `json:"threadId"`
	Role      ChatRole  `json:"role"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"createdAt"`
}

// PostMessageInput represents input for posting a message to a thread
type PostMessageInput struct {
	Content string `json:"content" binding:"required,max=8000"`
}

// CreateThreadInput represents input for opening a thread
type CreateThreadInput struct {
	Title   string `json:"title" binding:"omitempty,max=200"`
	Content string `json:"content" binding:"required,max=8000"`
}
