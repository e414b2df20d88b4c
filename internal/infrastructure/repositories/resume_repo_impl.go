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

// ResumeRepository implements resume data operations
type ResumeRepository struct {
	db *gorm.DB
}

// NewResumeRepository creates a new resume repository
func NewResumeRepository(db *gorm.DB) *ResumeRepository {
	return &ResumeRepository{db: db}
}

// Create creates a new resume
func (r *ResumeRepository) Create(ctx context.Context, resume *entities.Resume) error {
	m := &models.Resume{
		ID:        resume.ID,
		UserID:    resume.UserID,
		Title:     resume.Title,
		Template:  resume.Template,
		Content:   resume.Content,
		CreatedAt: resume.CreatedAt,
		UpdatedAt: resume.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	resume.ID = m.ID
	return nil
}

// GetByID gets a resume by ID
func (r *ResumeRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Resume, error) {
	var m models.Resume
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return resumeToEntity(&m), nil
}

// ListByUser lists resumes owned by a user
func (r *ResumeRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Resume, error) {
	var resumeModels []models.Resume
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("updated_at DESC").
		Find(&resumeModels).Error
	if err != nil {
		return nil, err
	}

	resumes := make([]*entities.Resume, 0, len(resumeModels))
	for i := range resumeModels {
		resumes = append(resumes, resumeToEntity(&resumeModels[i]))
	}
	return resumes, nil
}

// Update updates a resume
func (r *ResumeRepository) Update(ctx context.Context, resume *entities.Resume) error {
	result := r.db.WithContext(ctx).Model(&models.Resume{}).Where("id = ?", resume.ID).Updates(map[string]interface{}{
		"title":      resume.Title,
		"template":   resume.Template,
		"content":    resume.Content,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete soft deletes a resume
func (r *ResumeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.Resume{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func resumeToEntity(m *models.Resume) *entities.Resume {
	return &entities.Resume{
		ID:        m.ID,
		UserID:    m.UserID,
		Title:     m.Title,
		Template:  m.Template,
		Content:   m.Content,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}
