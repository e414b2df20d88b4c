package usecases

import (
	"context"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"

	"cvnest.backend/internal/domain/entities"
	"cvnest.backend/internal/domain/repositories"
	"cvnest.backend/pkg/utils"
)

// JobUsecase covers the job board. Listing is public, mutation is reserved
// for moderators and admins and enforced at the routing layer.
type JobUsecase struct {
	jobRepo repositories.JobRepository
}

// NewJobUsecase creates a new job usecase
func NewJobUsecase(jobRepo repositories.JobRepository) *JobUsecase {
	return &JobUsecase{jobRepo: jobRepo}
}

// Create publishes a new listing
func (u *JobUsecase) Create(ctx context.Context, createdBy uuid.UUID, input *entities.CreateJobInput) (*entities.JobListing, error) {
	job := &entities.JobListing{
		ID:          uuid.New(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		Description: input.Description,
		Active:      true,
		CreatedBy:   createdBy,
	}
	if input.Salary != "" {
		job.Salary = null.StringFrom(input.Salary)
	}
	if input.ApplyURL != "" {
		job.ApplyURL = null.StringFrom(input.ApplyURL)
	}

	if err := u.jobRepo.Create(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Get returns one listing
func (u *JobUsecase) Get(ctx context.Context, id uuid.UUID) (*entities.JobListing, error) {
	return u.jobRepo.GetByID(ctx, id)
}

// List returns listings matching the filter with pagination
func (u *JobUsecase) List(ctx context.Context, filter entities.JobFilter, params utils.PaginationParams) ([]*entities.JobListing, *utils.PaginationMeta, error) {
	jobs, total, err := u.jobRepo.List(ctx, filter, params.CalculateOffset(), params.Limit)
	if err != nil {
		return nil, nil, err
	}
	meta := utils.NewPaginationMeta(params, total)
	return jobs, &meta, nil
}

// Update applies partial changes to a listing
func (u *JobUsecase) Update(ctx context.Context, id uuid.UUID, input *entities.UpdateJobInput) (*entities.JobListing, error) {
	job, err := u.jobRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Title != "" {
		job.Title = input.Title
	}
	if input.Company != "" {
		job.Company = input.Company
	}
	if input.Location != "" {
		job.Location = input.Location
	}
	if input.Description != "" {
		job.Description = input.Description
	}
	if input.Salary != "" {
		job.Salary = null.StringFrom(input.Salary)
	}
	if input.ApplyURL != "" {
		job.ApplyURL = null.StringFrom(input.ApplyURL)
	}
	if input.Active != nil {
		job.Active = *input.Active
	}

	if err := u.jobRepo.Update(ctx, job); err != nil {
		return nil, err
	}
	return job, nil
}

// Delete removes a listing
func (u *JobUsecase) Delete(ctx context.Context, id uuid.UUID) error {
	return u.jobRepo.Delete(ctx, id)
}
