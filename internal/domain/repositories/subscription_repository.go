package repositories

import (
	"context"

	"github.com/google/uuid"
	"cvnest.backend/internal/domain/entities"
)

// PlanRepository defines subscription plan data operations
type PlanRepository interface {
	GetByCode(ctx context.Context, code string) (*entities.Plan, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Plan, error)
	List(ctx context.Context) ([]*entities.Plan, error)
}

// SaleRepository defines bank-transfer sale record operations
type SaleRepository interface {
	Create(ctx context.Context, sale *entities.Sale) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.Sale, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Sale, error)
	ListByStatus(ctx context.Context, status entities.SaleStatus, offset, limit int) ([]*entities.Sale, int64, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entities.SaleStatus) error
	CountByStatus(ctx context.Context, status entities.SaleStatus) (int64, error)
}

// CouponRepository defines coupon data operations
type CouponRepository interface {
	Create(ctx context.Context, coupon *entities.Coupon) error
	GetByCode(ctx context.Context, code string) (*entities.Coupon, error)
	List(ctx context.Context) ([]*entities.Coupon, error)
	IncrementUses(ctx context.Context, id uuid.UUID) error
	Deactivate(ctx context.Context, id uuid.UUID) error
}
