package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// SaleStatus tracks the manual bank-transfer approval lifecycle
type SaleStatus string

const (
	SaleStatusPending  SaleStatus = "PENDING"
	SaleStatusApproved SaleStatus = "APPROVED"
	SaleStatusRejected SaleStatus = "REJECTED"
)

// Plan represents a purchasable subscription plan
type Plan struct {
	ID           uuid.UUID `json:"id"`
	Code         string    `json:"code"`
	Name         string    `json:"name"`
	PriceCents   int64     `json:"priceCents"`
	DurationDays int       `json:"durationDays"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"createdAt"`
}

// Sale records a manual bank-transfer order. Payments are recorded, not
// processed; an admin approves the transfer which activates the subscription.
type Sale struct {
	ID          uuid.UUID   `json:"id"`
	UserID      uuid.UUID   `json:"userId"`
	PlanID      uuid.UUID   `json:"planId"`
	CouponID    null.String `json:"couponId,omitempty"`
	AmountCents int64       `json:"amountCents"`
	Status      SaleStatus  `json:"status"`
	Reference   string      `json:"reference"` // bank transfer reference the user declares
	ApprovedAt  null.Time   `json:"approvedAt,omitempty"`
	CreatedAt   time.Time   `json:"createdAt"`
	UpdatedAt   time.Time   `json:"updatedAt"`
}

// Coupon represents a discount code
type Coupon struct {
	ID         uuid.UUID `json:"id"`
	Code       string    `json:"code"`
	PercentOff int       `json:"percentOff"`
	MaxUses    int       `json:"maxUses"`
	Uses       int       `json:"uses"`
	ExpiresAt  null.Time `json:"expiresAt,omitempty"`
	Active     bool      `json:"active"`
	CreatedAt  time.Time `json:"createdAt"`
}

// Usable reports whether the coupon can still be redeemed at the given instant
func (c *Coupon) Usable(now time.Time) bool {
	if !c.Active || c.PercentOff <= 0 {
		return false
	}
	if c.MaxUses > 0 && c.Uses >= c.MaxUses {
		return false
	}
	if c.ExpiresAt.Valid && !now.Before(c.ExpiresAt.Time) {
		return false
	}
	return true
}

// Discounted applies the coupon discount to a price
func (c *Coupon) Discounted(priceCents int64) int64 {
	return priceCents - priceCents*int64(c.PercentOff)/100
}

// CreateOrderInput represents input for recording a bank-transfer order
type CreateOrderInput struct {
	PlanCode   string `json:"planCode" binding:"required"`
	CouponCode string `json:"couponCode"`
	Reference  string `json:"reference" binding:"required,max=100"`
}

// CreateCouponInput represents input for creating a coupon
type CreateCouponInput struct {
	Code       string     `json:"code" binding:"required,min=3,max=50"`
	PercentOff int        `json:"percentOff" binding:"required,min=1,max=100"`
	MaxUses    int        `json:"maxUses" binding:"min=0"`
	ExpiresAt  *time.Time `json:"expiresAt"`
}
