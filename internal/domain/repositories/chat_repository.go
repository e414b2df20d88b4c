package repositories

import (
	"context"

	"github.com/google/uuid"
	"cvnest.backend/internal/domain/entities"
)

// ChatRepository defines chat thread and message data operations
type ChatRepository interface {
	CreateThread(ctx context.Context, thread *entities.ChatThread) error
	GetThread(ctx context.Context, id uuid.UUID) (*entities.ChatThread, error)
	ListThreads(ctx context.Context, userID uuid.UUID) ([]*entities.ChatThread, error)
	DeleteThread(ctx context.Context, id uuid.UUID) error
	AppendMessage(ctx context.Context, msg *entities.ChatMessage) error
	ListMessages(ctx context.Context, threadID uuid.UUID) ([]*entities.ChatMessage, error)
}
