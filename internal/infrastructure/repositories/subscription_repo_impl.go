package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"

	"cvnest.backend/internal/domain/entities"
	domainerrors "cvnest.backend/internal/domain/errors"
	"cvnest.backend/internal/infrastructure/models"
)

// PlanRepository implements subscription plan data operations
type PlanRepository struct {
	db *gorm.DB
}

// NewPlanRepository creates a new plan repository
func NewPlanRepository(db *gorm.DB) *PlanRepository {
	return &PlanRepository{db: db}
}

// GetByCode gets an active plan by its code
func (r *PlanRepository) GetByCode(ctx context.Context, code string) (*entities.Plan, error) {
	var m models.Plan
	if err := r.db.WithContext(ctx).Where("code = ? AND active = ?", code, true).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return planToEntity(&m), nil
}

// GetByID gets a plan by its id, active or not
func (r *PlanRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Plan, error) {
	var m models.Plan
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return planToEntity(&m), nil
}

// List lists active plans
func (r *PlanRepository) List(ctx context.Context) ([]*entities.Plan, error) {
	var planModels []models.Plan
	if err := r.db.WithContext(ctx).Where("active = ?", true).Order("price_cents ASC").Find(&planModels).Error; err != nil {
		return nil, err
	}
	plans := make([]*entities.Plan, 0, len(planModels))
	for i := range planModels {
		plans = append(plans, planToEntity(&planModels[i]))
	}
	return plans, nil
}

func planToEntity(m *models.Plan) *entities.Plan {
	return &entities.Plan{
		ID:           m.ID,
		Code:         m.Code,
		Name:         m.Name,
		PriceCents:   m.PriceCents,
		DurationDays: m.DurationDays,
		Active:       m.Active,
		CreatedAt:    m.CreatedAt,
	}
}

// SaleRepository implements bank-transfer sale record operations
type SaleRepository struct {
	db *gorm.DB
}

// NewSaleRepository creates a new sale repository
func NewSaleRepository(db *gorm.DB) *SaleRepository {
	return &SaleRepository{db: db}
}

// Create records a new sale
func (r *SaleRepository) Create(ctx context.Context, sale *entities.Sale) error {
	m := &models.Sale{
		ID:          sale.ID,
		UserID:      sale.UserID,
		PlanID:      sale.PlanID,
		CouponID:    sale.CouponID.Ptr(),
		AmountCents: sale.AmountCents,
		Status:      string(sale.Status),
		Reference:   sale.Reference,
		CreatedAt:   sale.CreatedAt,
		UpdatedAt:   sale.UpdatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	sale.ID = m.ID
	return nil
}

// GetByID gets a sale by ID
func (r *SaleRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.Sale, error) {
	var m models.Sale
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return saleToEntity(&m), nil
}

// ListByUser lists sales for one user
func (r *SaleRepository) ListByUser(ctx context.Context, userID uuid.UUID) ([]*entities.Sale, error) {
	var saleModels []models.Sale
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&saleModels).Error
	if err != nil {
		return nil, err
	}
	sales := make([]*entities.Sale, 0, len(saleModels))
	for i := range saleModels {
		sales = append(sales, saleToEntity(&saleModels[i]))
	}
	return sales, nil
}

// ListByStatus lists sales in a given status with pagination
func (r *SaleRepository) ListByStatus(ctx context.Context, status entities.SaleStatus, offset, limit int) ([]*entities.Sale, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.Sale{}).Where("status = ?", string(status))

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var saleModels []models.Sale
	if err := query.Order("created_at ASC").Offset(offset).Limit(limit).Find(&saleModels).Error; err != nil {
		return nil, 0, err
	}

	sales := make([]*entities.Sale, 0, len(saleModels))
	for i := range saleModels {
		sales = append(sales, saleToEntity(&saleModels[i]))
	}
	return sales, total, nil
}

// UpdateStatus transitions a sale; approval stamps approved_at
func (r *SaleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entities.SaleStatus) error {
	updates := map[string]interface{}{
		"status":     string(status),
		"updated_at": time.Now(),
	}
	if status == entities.SaleStatusApproved {
		updates["approved_at"] = time.Now()
	}

	result := r.db.WithContext(ctx).Model(&models.Sale{}).Where("id = ?", id).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// CountByStatus counts sales in a given status
func (r *SaleRepository) CountByStatus(ctx context.Context, status entities.SaleStatus) (int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.Sale{}).Where("status = ?", string(status)).Count(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

func saleToEntity(m *models.Sale) *entities.Sale {
	return &entities.Sale{
		ID:          m.ID,
		UserID:      m.UserID,
		PlanID:      m.PlanID,
		CouponID:    null.StringFromPtr(m.CouponID),
		AmountCents: m.AmountCents,
		Status:      entities.SaleStatus(m.Status),
		Reference:   m.Reference,
		ApprovedAt:  null.TimeFromPtr(m.ApprovedAt),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

// CouponRepository implements coupon data operations
type CouponRepository struct {
	db *gorm.DB
}

// NewCouponRepository creates a new coupon repository
func NewCouponRepository(db *gorm.DB) *CouponRepository {
	return &CouponRepository{db: db}
}

// Create creates a new coupon
func (r *CouponRepository) Create(ctx context.Context, coupon *entities.Coupon) error {
	m := &models.Coupon{
		ID:         coupon.ID,
		Code:       coupon.Code,
		PercentOff: coupon.PercentOff,
		MaxUses:    coupon.MaxUses,
		Uses:       coupon.Uses,
		ExpiresAt:  coupon.ExpiresAt.Ptr(),
		Active:     coupon.Active,
		CreatedAt:  coupon.CreatedAt,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	coupon.ID = m.ID
	return nil
}

// GetByCode gets a coupon by its code
func (r *CouponRepository) GetByCode(ctx context.Context, code string) (*entities.Coupon, error) {
	var m models.Coupon
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return couponToEntity(&m), nil
}

// List lists all coupons
func (r *CouponRepository) List(ctx context.Context) ([]*entities.Coupon, error) {
	var couponModels []models.Coupon
	if err := r.db.WithContext(ctx).Order("created_at DESC").Find(&couponModels).Error; err != nil {
		return nil, err
	}
	coupons := make([]*entities.Coupon, 0, len(couponModels))
	for i := range couponModels {
		coupons = append(coupons, couponToEntity(&couponModels[i]))
	}
	return coupons, nil
}

// IncrementUses bumps the redemption counter
func (r *CouponRepository) IncrementUses(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Coupon{}).Where("id = ?", id).
		UpdateColumn("uses", gorm.Expr("uses + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// Deactivate disables a coupon
func (r *CouponRepository) Deactivate(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Model(&models.Coupon{}).Where("id = ?", id).
		Update("active", false)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

func couponToEntity(m *models.Coupon) *entities.Coupon {
	return &entities.Coupon{
		ID:         m.ID,
		Code:       m.Code,
		PercentOff: m.PercentOff,
		MaxUses:    m.MaxUses,
		Uses:       m.Uses,
		ExpiresAt:  null.TimeFromPtr(m.ExpiresAt),
		Active:     m.Active,
		CreatedAt:  m.CreatedAt,
	}
}
