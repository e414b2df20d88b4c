package entities

import (
	"time"

	"github.com/google/uuid"
)

// Resume represents a stored CV document
type Resume struct {
	ID        uuid.UUID `json:"id"`
	UserID    uuid.UUID `json:"userId"`
	Title     string    `json:"title"`
	Template  string    `json:"template"`
	Content   string    `json:"content"` // JSON document produced by the builder UI
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// CreateResumeInput represents input for creating a resume
type CreateResumeInput struct {
	Title    string `json:"title" binding:"required,max=200"`
	Template string `json:"template" binding:"required,max=50"`
	Content  string `json:"content" binding:"required"`
}

// UpdateResumeInput represents input for updating a resume
type UpdateResumeInput struct {
	Title    string `json:"title" binding:"omitempty,max=200"`
	Template string `json:"template" binding:"omitempty,max=50"`
	Content  string `json:"content"`
}

// EnhanceResumeInput asks the AI service to rewrite one section
type EnhanceResumeInput struct {
	Section string `json:"section" binding:"required,max=100"`
	Text    string `json:"text" binding:"required"`
	Tone    string `json:"tone"`
}

// EnhanceResumeResult carries the rewritten section text
type EnhanceResumeResult struct {
	Section string `json:"section"`
	Text    string `json:"text"`
}
