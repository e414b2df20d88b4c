package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"cvnest.backend/internal/domain/entities"
	domainerrors "cvnest.backend/internal/domain/errors"
	"cvnest.backend/internal/infrastructure/models"
)

// ChatRepository implements chat thread and message data operations
type ChatRepository struct {
	db *gorm.DB
}

// NewChatRepository creates a new chat repository
func NewChatRepository(db *gorm.DB) *ChatRepository {
	return &ChatRepository{db: db}
}

// CreateThread opens a new thread
func (r *ChatRepository) CreateThread(ctx context.Context, thread *entities.ChatThread) error {
	m := &models.ChatThread{
		ID:        thread.ID,
		UserID:    thread.UserID,
		Title:     thread.Title,
		CreatedAt: thread.CreatedAt,
		UpdatedAt: thread.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	thread.ID = m.ID
	return nil
}

// GetThread gets a thread by ID
func (r *ChatRepository) GetThread(ctx context.Context, id uuid.UUID) (*entities.ChatThread, error) {
	var m models.ChatThread
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return &entities.ChatThread{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}, nil
}

// ListThreads lists threads for a user, most recent activity first
func (r *ChatRepository) ListThreads(ctx context.Context, userID uuid.UUID) ([]*entities.ChatThread, error) {
	var threadModels []models.ChatThread
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&threadModels).Error
	if err != nil {
		return nil, err
	}

	threads := make([]*entities.ChatThread, 0, len(threadModels))
	for i := range threadModels {
		m := threadModels[i]
		threads = append(threads, &entities.ChatThread{
			ID:        m.ID,
			UserID:    m.UserID,
			Title:     m.Title,
			CreatedAt: m.CreatedAt,
			UpdatedAt: m.UpdatedAt,
		})
	}
	return threads, nil
}

// DeleteThread soft deletes a thread
func (r *ChatRepository) DeleteThread(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.ChatThread{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// AppendMessage stores a message and touches the thread
func (r *ChatRepository) AppendMessage(ctx context.Context, msg *entities.ChatMessage) error {
	m := &models.ChatMessage{
		ID:        msg.ID,
		ThreadID:  msg.ThreadID,
		Role:      string(msg.Role),
		Content:   msg.Content,
		CreatedAt: msg.CreatedAt,
	}

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(m).Error; err != nil {
			return err
		}
		msg.ID = m.ID
		return tx.Model(&models.ChatThread{}).Where("id = ?", msg.ThreadID).
			Update("updated_at", time.Now()).Error
	})
}

// ListMessages lists messages in a thread, oldest first
func (r *ChatRepository) ListMessages(ctx context.Context, threadID uuid.UUID) ([]*entities.ChatMessage, error) {
	var msgModels []models.ChatMessage
	err := r.db.WithContext(ctx).
		Where("thread_id = ?", threadID).
		Order("created_at ASC").
		Find(&msgModels).Error
	if err != nil {
		return nil, err
	}

	msgs := make([]*entities.ChatMessage, 0, len(msgModels))
	for i := range msgModels {
		m := msgModels[i]
		msgs = append(msgs, &entities.ChatMessage{
			ID:        m.ID,
			ThreadID:  m.ThreadID,
			Role:      entities.ChatRole(m.Role),
			Content:   m.Content,
			CreatedAt: m.CreatedAt,
		})
	}
	return msgs, nil
}
