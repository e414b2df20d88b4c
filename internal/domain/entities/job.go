package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// JobListing represents a published job advert
type JobListing struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Company     string      `json:"company"`
	Location    string      `json:"location"`
	Description string      `json:"description"`
	Salary      null.String `json:"salary,omitempty"`
	ApplyURL    null.String `json:"applyUrl,omitempty"`
	Active      bool        `json:"active"`
	CreatedBy   uuid.UUID   `json:"createdBy"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// CreateJobInput represents input for publishing a job listing
type CreateJobInput struct {
	Title       string `json:"title" binding:"required,max=200"`
	Company     string `json:"company" binding:"required,max=200"`
	Location    string `json:"location" binding:"required,max=200"`
	Description string `json:"description" binding:"required"`
	Salary      string `json:"salary"`
	ApplyURL    string `json:"applyUrl" binding:"omitempty,url"`
}

// UpdateJobInput represents input for updating a job listing
type UpdateJobInput struct {
	Title       string `json:"title" binding:"omitempty,max=200"`
	Company     string `json:"company" binding:"omitempty,max=200"`
	Location    string `json:"location" binding:"omitempty,max=200"`
	Description string `json:"description"`
	Salary      string `json:"salary"`
	ApplyURL    string `json:"applyUrl" binding:"omitempty,url"`
	Active      *bool  `json:"active"`
}

// JobFilter narrows job listing queries
type JobFilter struct {
	Keyword  string
	Location string
	OnlyActive bool
}
