package usecases

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"go.uber.org/zap"

	"cvnest.backend/internal/domain/entities"
	domainErrors "cvnest.backend/internal/domain/errors"
	"cvnest.backend/internal/domain/repositories"
	"cvnest.backend/pkg/logger"
	"cvnest.backend/pkg/utils"
)

// SubscriptionUsecase covers plans, manual bank-transfer orders, coupons and
// the admin approval that actually activates a subscription. No payment
// processor is involved: users declare a transfer reference and an admin
// checks the bank account.
type SubscriptionUsecase struct {
	planRepo   repositories.PlanRepository
	saleRepo   repositories.SaleRepository
	couponRepo repositories.CouponRepository
	userRepo   repositories.UserRepository
}

// NewSubscriptionUsecase creates a new subscription usecase
func NewSubscriptionUsecase(
	planRepo repositories.PlanRepository,
	saleRepo repositories.SaleRepository,
	couponRepo repositories.CouponRepository,
	userRepo repositories.UserRepository,
) *SubscriptionUsecase {
	return &SubscriptionUsecase{
		planRepo:   planRepo,
		saleRepo:   saleRepo,
		couponRepo: couponRepo,
		userRepo:   userRepo,
	}
}

// ListPlans returns the purchasable plans
func (u *SubscriptionUsecase) ListPlans(ctx context.Context) ([]*entities.Plan, error) {
	return u.planRepo.List(ctx)
}

// CreateOrder records a pending bank-transfer order. A valid coupon is
// applied to the amount and its use is counted immediately so it cannot be
// reused while the transfer is pending.
func (u *SubscriptionUsecase) CreateOrder(ctx context.Context, userID uuid.UUID, input *entities.CreateOrderInput) (*entities.Sale, error) {
	plan, err := u.planRepo.GetByCode(ctx, input.PlanCode)
	if err != nil {
		return nil, err
	}
	if !plan.Active {
		return nil, domainErrors.ErrNotFound
	}

	amount := plan.PriceCents
	var coupon *entities.Coupon
	if input.CouponCode != "" {
		coupon, err = u.couponRepo.GetByCode(ctx, strings.ToUpper(input.CouponCode))
		if err != nil {
			return nil, err
		}
		if !coupon.Usable(time.Now()) {
			return nil, domainErrors.ErrInvalidInput
		}
		amount = coupon.Discounted(amount)
	}

	sale := &entities.Sale{
		ID:          uuid.New(),
		UserID:      userID,
		PlanID:      plan.ID,
		AmountCents: amount,
		Status:      entities.SaleStatusPending,
		Reference:   input.Reference,
	}
	if coupon != nil {
		sale.CouponID = null.StringFrom(coupon.ID.String())
	}

	if err := u.saleRepo.Create(ctx, sale); err != nil {
		return nil, err
	}

	if coupon != nil {
		if err := u.couponRepo.IncrementUses(ctx, coupon.ID); err != nil {
			logger.WithContext(ctx).Error("coupon use count update failed",
				zap.String("coupon_id", coupon.ID.String()),
				zap.Error(err))
		}
	}

	return sale, nil
}

// ListOrders returns the caller's orders
func (u *SubscriptionUsecase) ListOrders(ctx context.Context, userID uuid.UUID) ([]*entities.Sale, error) {
	return u.saleRepo.ListByUser(ctx, userID)
}

// ListPendingOrders returns orders awaiting approval, paginated
func (u *SubscriptionUsecase) ListPendingOrders(ctx context.Context, params utils.PaginationParams) ([]*entities.Sale, *utils.PaginationMeta, error) {
	sales, total, err := u.saleRepo.ListByStatus(ctx, entities.SaleStatusPending, params.CalculateOffset(), params.Limit)
	if err != nil {
		return nil, nil, err
	}
	meta := utils.NewPaginationMeta(params, total)
	return sales, &meta, nil
}

// ApproveOrder marks a pending order approved and extends the buyer's
// subscription by the plan duration. An already active subscription is
// extended from its current end, not from today.
func (u *SubscriptionUsecase) ApproveOrder(ctx context.Context, saleID uuid.UUID) (*entities.Sale, error) {
	sale, err := u.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return nil, err
	}
	if sale.Status != entities.SaleStatusPending {
		return nil, domainErrors.ErrInvalidInput
	}

	plan, err := u.planRepo.GetByID(ctx, sale.PlanID)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.GetByID(ctx, sale.UserID)
	if err != nil {
		return nil, err
	}

	from := time.Now()
	if user.HasActiveSubscription(from) {
		from = user.SubscriptionUntil.Time
	}
	until := from.AddDate(0, 0, plan.DurationDays)

	if err := u.userRepo.SetSubscriptionUntil(ctx, user.ID, until); err != nil {
		return nil, err
	}
	if err := u.saleRepo.UpdateStatus(ctx, sale.ID, entities.SaleStatusApproved); err != nil {
		return nil, err
	}

	sale.Status = entities.SaleStatusApproved
	sale.ApprovedAt = null.TimeFrom(time.Now())
	return sale, nil
}

// RejectOrder marks a pending order rejected
func (u *SubscriptionUsecase) RejectOrder(ctx context.Context, saleID uuid.UUID) error {
	sale, err := u.saleRepo.GetByID(ctx, saleID)
	if err != nil {
		return err
	}
	if sale.Status != entities.SaleStatusPending {
		return domainErrors.ErrInvalidInput
	}
	return u.saleRepo.UpdateStatus(ctx, saleID, entities.SaleStatusRejected)
}

// ValidateCoupon checks a code and returns the coupon when redeemable
func (u *SubscriptionUsecase) ValidateCoupon(ctx context.Context, code string) (*entities.Coupon, error) {
	coupon, err := u.couponRepo.GetByCode(ctx, strings.ToUpper(code))
	if err != nil {
		return nil, err
	}
	if !coupon.Usable(time.Now()) {
		return nil, domainErrors.ErrInvalidInput
	}
	return coupon, nil
}

// CreateCoupon registers a new discount code
func (u *SubscriptionUsecase) CreateCoupon(ctx context.Context, input *entities.CreateCouponInput) (*entities.Coupon, error) {
	existing, err := u.couponRepo.GetByCode(ctx, strings.ToUpper(input.Code))
	if err != nil && !errors.Is(err, domainErrors.ErrNotFound) {
		return nil, err
	}
	if existing != nil {
		return nil, domainErrors.ErrAlreadyExists
	}

	coupon := &entities.Coupon{
		ID:         uuid.New(),
		Code:       strings.ToUpper(input.Code),
		PercentOff: input.PercentOff,
		MaxUses:    input.MaxUses,
		Active:     true,
	}
	if input.ExpiresAt != nil {
		coupon.ExpiresAt = null.TimeFrom(*input.ExpiresAt)
	}

	if err := u.couponRepo.Create(ctx, coupon); err != nil {
		return nil, err
	}
	return coupon, nil
}

// ListCoupons returns all coupons
func (u *SubscriptionUsecase) ListCoupons(ctx context.Context) ([]*entities.Coupon, error) {
	return u.couponRepo.List(ctx)
}

// DeactivateCoupon retires a coupon without deleting its redemption history
func (u *SubscriptionUsecase) DeactivateCoupon(ctx context.Context, id uuid.UUID) error {
	return u.couponRepo.Deactivate(ctx, id)
}
