package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"cvnest.backend/internal/domain/entities"
	domainerrors "cvnest.backend/internal/domain/errors"
)

func TestPlanRepository(t *testing.T) {
	db := newTestDB(t)
	createPlanTable(t, db)
	repo := NewPlanRepository(db)
	ctx := context.Background()

	mustExec(t, db, `INSERT INTO plans (id, code, name, price_cents, duration_days, active, created_at)
		VALUES (?, 'monthly', 'Monthly', 9900, 30, 1, ?)`, uuid.New().String(), time.Now())
	mustExec(t, db, `INSERT INTO plans (id, code, name, price_cents, duration_days, active, created_at)
		VALUES (?, 'legacy', 'Legacy', 100, 30, 0, ?)`, uuid.New().String(), time.Now())

	plan, err := repo.GetByCode(ctx, "monthly")
	require.NoError(t, err)
	require.Equal(t, int64(9900), plan.PriceCents)
	require.Equal(t, 30, plan.DurationDays)

	_, err = repo.GetByCode(ctx, "legacy")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)

	plans, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, plans, 1)
}

func TestSaleRepository(t *testing.T) {
	db := newTestDB(t)
	createSaleTable(t, db)
	repo := NewSaleRepository(db)
	ctx := context.Background()

	userID := uuid.New()
	sale := &entities.Sale{
		ID:          uuid.New(),
		UserID:      userID,
		PlanID:      uuid.New(),
		AmountCents: 9900,
		Status:      entities.SaleStatusPending,
		Reference:   "TR-2026-0001",
	}
	require.NoError(t, repo.Create(ctx, sale))

	got, err := repo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	require.Equal(t, entities.SaleStatusPending, got.Status)
	require.False(t, got.ApprovedAt.Valid)

	pending, total, err := repo.ListByStatus(ctx, entities.SaleStatusPending, 0, 10)
	require.NoError(t, err)
	require.Equal(t, int64(1), total)
	require.Len(t, pending, 1)

	require.NoError(t, repo.UpdateStatus(ctx, sale.ID, entities.SaleStatusApproved))
	got, err = repo.GetByID(ctx, sale.ID)
	require.NoError(t, err)
	require.Equal(t, entities.SaleStatusApproved, got.Status)
	require.True(t, got.ApprovedAt.Valid)

	byUser, err := repo.ListByUser(ctx, userID)
	require.NoError(t, err)
	require.Len(t, byUser, 1)

	count, err := repo.CountByStatus(ctx, entities.SaleStatusApproved)
	require.NoError(t, err)
	require.Equal(t, int64(1), count)

	require.ErrorIs(t, repo.UpdateStatus(ctx, uuid.New(), entities.SaleStatusRejected), domainerrors.ErrNotFound)
}

func TestCouponRepository(t *testing.T) {
	db := newTestDB(t)
	createCouponTable(t, db)
	repo := NewCouponRepository(db)
	ctx := context.Background()

	c := &entities.Coupon{
		ID:         uuid.New(),
		Code:       "WELCOME20",
		PercentOff: 20,
		MaxUses:    2,
		Active:     true,
	}
	require.NoError(t, repo.Create(ctx, c))

	got, err := repo.GetByCode(ctx, "WELCOME20")
	require.NoError(t, err)
	require.True(t, got.Usable(time.Now()))
	require.Equal(t, int64(7920), got.Discounted(9900))

	require.NoError(t, repo.IncrementUses(ctx, c.ID))
	require.NoError(t, repo.IncrementUses(ctx, c.ID))

	got, err = repo.GetByCode(ctx, "WELCOME20")
	require.NoError(t, err)
	require.Equal(t, 2, got.Uses)
	require.False(t, got.Usable(time.Now()))

	require.NoError(t, repo.Deactivate(ctx, c.ID))
	got, err = repo.GetByCode(ctx, "WELCOME20")
	require.NoError(t, err)
	require.False(t, got.Active)

	list, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	_, err = repo.GetByCode(ctx, "MISSING")
	require.ErrorIs(t, err, domainerrors.ErrNotFound)
}
