package models

import (
	"time"

	"github.com/google/uuid"
)

// VerificationCode holds the single outstanding code per (user, purpose).
// No soft delete: a cleared slot is gone.
type VerificationCode struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_verification_user_purpose"`
	Purpose   string    `gorm:"type:varchar(30);not null;uniqueIndex:idx_verification_user_purpose"`
	Code      string    `gorm:"type:varchar(10);not null"`
	NewEmail  *string   `gorm:"type:varchar(255)"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time

	// Associations
	User User `gorm:"foreignKey:UserID"`
}
