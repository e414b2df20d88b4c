package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ChatThread struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Title     string    `gorm:"type:varchar(200);not null"`
	CreatedAt time.Time
	UpdatedAt time.Time
	DeletedAt gorm.DeletedAt `gorm:"index"`
}

type ChatMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	ThreadID  uuid.UUID `gorm:"type:uuid;not null;index"`
	Role      string    `gorm:"type:varchar(20);not null"`
	Content   string    `gorm:"type:text;not null"`
	CreatedAt time.Time

	// Associations
	Thread ChatThread `gorm:"foreignKey:ThreadID"`
}
