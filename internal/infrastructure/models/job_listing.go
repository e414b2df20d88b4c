package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type JobListing struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Title       string    `gorm:"type:varchar(200);not null;index"`
	Company     string    `gorm:"type:varchar(200);not null"`
	Location    string    `gorm:"type:varchar(200);not null;index"`
	Description string    `gorm:"type:text;not null"`
	Salary      *string   `gorm:"type:varchar(100)"`
	ApplyURL    *string   `gorm:"type:varchar(500)"`
	Active      bool      `gorm:"not null;default:true;index"`
	CreatedBy   uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`
}
