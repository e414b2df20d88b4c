package repositories

import (
	"context"

	"github.com/google/uuid"
	"cvnest.backend/internal/domain/entities"
)

// ResumeRepository defines resume data operations
type ResumeRepository interface {
	Create(ctx context.Context, resume *entities.Resume) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Resume, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Resume, error)
	Update(ctx context.Context, resume *entities.Resume) error
	Delete(ctx context.Context, id uuid.UUID) error
}
