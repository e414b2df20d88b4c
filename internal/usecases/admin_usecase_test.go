package usecases

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"cvnest.backend/internal/domain/entities"
	"cvnest.backend/pkg/utils"
)

func TestAdminListUsers(t *testing.T) {
	var gotSearch string
	userRepo := &stubUserRepo{
		listFn: func(ctx context.Context, search string, offset, limit int) ([]*entities.User, int64, error) {
			gotSearch = search
			return []*entities.User{{ID: uuid.New()}}, 1, nil
		},
	}
	uc := NewAdminUsecase(userRepo, &stubSaleRepo{})

	users, meta, err := uc.ListUsers(context.Background(), "ada", utils.GetPaginationParams(1, 20))
	require.NoError(t, err)
	require.Len(t, users, 1)
	require.Equal(t, "ada", gotSearch)
	require.Equal(t, int64(1), meta.TotalCount)
}

func TestAdminStats(t *testing.T) {
	userRepo := &stubUserRepo{
		countFn: func(ctx context.Context) (int64, error) { return 120, nil },
	}
	saleRepo := &stubSaleRepo{
		countByStatusFn: func(ctx context.Context, status entities.SaleStatus) (int64, error) {
			switch status {
			case entities.SaleStatusPending:
				return 4, nil
			case entities.SaleStatusApproved:
				return 37, nil
			}
			return 0, nil
		},
	}
	uc := NewAdminUsecase(userRepo, saleRepo)

	stats, err := uc.Stats(context.Background())
	require.NoError(t, err)
	require.Equal(t, int64(120), stats.TotalUsers)
	require.Equal(t, int64(4), stats.PendingOrders)
	require.Equal(t, int64(37), stats.ApprovedOrders)
}
