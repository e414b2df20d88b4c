package usecases

import (
	"context"

	"cvnest.backend/internal/domain/entities"
	"cvnest.backend/internal/domain/repositories"
	"cvnest.backend/pkg/utils"
)

// AdminStats summarizes platform activity for the dashboard
type AdminStats struct {
	TotalUsers     int64 `json:"totalUsers"`
	PendingOrders  int64 `json:"pendingOrders"`
	ApprovedOrders int64 `json:"approvedOrders"`
}

// AdminUsecase covers the moderation surface: user listing and dashboard
// counters. Order approval lives in SubscriptionUsecase.
type AdminUsecase struct {
	userRepo repositories.UserRepository
	saleRepo repositories.SaleRepository
}

// NewAdminUsecase creates a new admin usecase
func NewAdminUsecase(userRepo repositories.UserRepository, saleRepo repositories.SaleRepository) *AdminUsecase {
	return &AdminUsecase{userRepo: userRepo, saleRepo: saleRepo}
}

// ListUsers returns accounts matching the search term, paginated
func (u *AdminUsecase) ListUsers(ctx context.Context, search string, params utils.PaginationParams) ([]*entities.User, *utils.PaginationMeta, error) {
	users, total, err := u.userRepo.List(ctx, search, params.CalculateOffset(), params.Limit)
	if err != nil {
		return nil, nil, err
	}
	meta := utils.NewPaginationMeta(params, total)
	return users, &meta, nil
}

// Stats returns dashboard counters
func (u *AdminUsecase) Stats(ctx context.Context) (*AdminStats, error) {
	users, err := u.userRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	pending, err := u.saleRepo.CountByStatus(ctx, entities.SaleStatusPending)
	if err != nil {
		return nil, err
	}
	approved, err := u.saleRepo.CountByStatus(ctx, entities.SaleStatusApproved)
	if err != nil {
		return nil, err
	}
	return &AdminStats{
		TotalUsers:     users,
		PendingOrders:  pending,
		ApprovedOrders: approved,
	}, nil
}
