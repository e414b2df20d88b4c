package repositories

import (
	"context"

	"github.com/google/uuid"
	"cvnest.backend/internal/domain/entities"
)

// JobRepository defines job listing data operations
type JobRepository interface {
	Create(ctx context.Context, job *entities.JobListing) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.JobListing, error)
	List(ctx context.Context, filter entities.JobFilter, offset, limit int) ([]*entities.JobListing, int64, error)
	Update(ctx context.Context, job *entities.JobListing) error
	Delete(ctx context.Context, id uuid.UUID) error
}
