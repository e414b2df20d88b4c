package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Plan struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Code         string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	Name         string    `gorm:"type:varchar(100);not null"`
	PriceCents   int64     `gorm:"not null"`
	DurationDays int       `gorm:"not null"`
	Active       bool      `gorm:"not null;default:true"`
	CreatedAt    time.Time
}

type Sale struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index"`
	PlanID      uuid.UUID `gorm:"type:uuid;not null"`
	CouponID    *string   `gorm:"type:uuid"`
	AmountCents int64     `gorm:"not null"`
	Status      string    `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	Reference   string    `gorm:"type:varchar(100);not null"`
	ApprovedAt  *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
	DeletedAt   gorm.DeletedAt `gorm:"index"`

	// Associations
	User User `gorm:"foreignKey:UserID"`
	Plan Plan `gorm:"foreignKey:PlanID"`
}

type Coupon struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey;default:uuid_generate_v4()"`
	Code       string    `gorm:"type:varchar(50);uniqueIndex;not null"`
	PercentOff int       `gorm:"not null"`
	MaxUses    int       `gorm:"not null;default:0"`
	Uses       int       `gorm:"not null;default:0"`
	ExpiresAt  *time.Time
	Active     bool `gorm:"not null;default:true"`
	CreatedAt  time.Time
}
