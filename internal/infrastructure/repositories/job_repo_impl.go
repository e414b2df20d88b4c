package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"cvnest.backend/internal/domain/entities"
	domainerrors "cvnest.backend/internal/domain/errors"
	"cvnest.backend/internal/infrastructure/models"
)

// JobRepository implements job listing data operations
type JobRepository struct {
	db *gorm.DB
}

// NewJobRepository creates a new job repository
func NewJobRepository(db *gorm.DB) *JobRepository {
	return &JobRepository{db: db}
}

// Create creates a new job listing
func (r *JobRepository) Create(ctx context.Context, job *entities.JobListing) error {
	m := &models.JobListing{
		ID:          job.ID,
		Title:       job.Title,
		Company:     job.Company,
		Location:    job.Location,
		Description: job.Description,
		Salary:      job.Salary.Ptr(),
		ApplyURL:    job.ApplyURL.Ptr(),
		Active:      job.Active,
		CreatedBy:   job.CreatedBy,
		CreatedAt:   job.CreatedAt,
		UpdatedAt:   job.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	job.ID = m.ID
	return nil
}

// GetByID gets a job listing by ID
func (r *JobRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.JobListing, error) {
	var m models.JobListing
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return jobToEntity(&m), nil
}

// List lists job listings filtered by keyword/location with pagination
func (r *JobRepository) List(ctx context.Context, filter entities.JobFilter, offset, limit int) ([]*entities.JobListing, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.JobListing{})

	if filter.OnlyActive {
		query = query.Where("active = ?", true)
	}
	if filter.Keyword != "" {
		term := "%" + filter.Keyword + "%"
		query = query.Where("title LIKE ? OR company LIKE ? OR description LIKE ?", term, term, term)
	}
	if filter.Location != "" {
		query = query.Where("location LIKE ?", "%"+filter.Location+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var jobModels []models.JobListing
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&jobModels).Error; err != nil {
		return nil, 0, err
	}

	jobs := make([]*entities.JobListing, 0, len(jobModels))
	for i := range jobModels {
		jobs = append(jobs, jobToEntity(&jobModels[i]))
	}
	return jobs, total, nil
}

// Update updates a job listing
func (r *JobRepository) Update(ctx context.Context, job *entities.JobListing) error {
	result := r.db.WithContext(ctx).Model(&models.JobListing{}).Where("id = ?", job.ID).Updates(map[string]interface{}{
		"title":       job.Title,
		"company":     job.Company,
		"location":    job.Location,
		"description": job.Description,
		"salary":      job.Salary.Ptr(),
		"apply_url":   job.ApplyURL.Ptr(),
		"active":      job.Active,
		"updated_at":  time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Delete soft deletes a job listing
func (r *JobRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.JobListing{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func jobToEntity(m *models.JobListing) *entities.JobListing {
	return &entities.JobListing{
		ID:          m.ID,
		Title:       m.Title,
		Company:     m.Company,
		Location:    m.Location,
		Description: m.Description,
		Salary:      null.StringFromPtr(m.Salary),
		ApplyURL:    null.StringFromPtr(m.ApplyURL),
		Active:      m.Active,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
