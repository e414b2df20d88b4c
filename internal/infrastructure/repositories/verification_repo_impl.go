package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"cvnest.backend/internal/domain/entities"
	domainerrors "cvnest.backend/internal/domain/errors"
	"cvnest.backend/internal/infrastructure/models"
)

// VerificationRepository implements the verification state store on a
// purpose-tagged single slot per account. Issue is last-write-wins;
// Consume validates and clears inside one transaction.
type VerificationRepository struct {
	db *gorm.DB
}

// NewVerificationRepository creates a new verification repository
func NewVerificationRepository(db *gorm.DB) *VerificationRepository {
	return &VerificationRepository{db: db}
}

// Issue overwrites any existing code for the same (user, purpose)
func (r *VerificationRepository) Issue(ctx context.Context, code *entities.VerificationCode) error {
	if code.ID == uuid.Nil {
		code.ID = uuid.New()
	}
	if code.CreatedAt.IsZero() {
		code.CreatedAt = time.Now()
	}

	m := &models.VerificationCode{
		ID:        code.ID,
		UserID:    code.UserID,
		Purpose:   string(code.Purpose),
		Code:      code.Code,
		NewEmail:  code.NewEmail.Ptr(),
		ExpiresAt: code.ExpiresAt,
		CreatedAt: code.CreatedAt,
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "user_id"}, {Name: "purpose"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"code", "new_email", "expires_at", "created_at",
		}),
	}).Create(m).Error
}

// Get returns the outstanding code for (user, purpose)
func (r *VerificationRepository) Get(ctx context.Context, userID uuid.UUID, purpose entities.VerificationPurpose) (*entities.VerificationCode, error) {
	var m models.VerificationCode
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND purpose = ?", userID, purpose).
		First(&m).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return verificationToEntity(&m), nil
}

// Consume validates the presented code and clears the slot on success.
// An expired slot is cleared as well; the caller must request a new code.
// A mismatched code leaves the slot in place so the user can retry.
func (r *VerificationRepository) Consume(ctx context.Context, userID uuid.UUID, purpose entities.VerificationPurpose, presented string, now time.Time) (*entities.VerificationCode, error) {
	var consumed *entities.VerificationCode

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var m models.VerificationCode
		err := tx.Where("user_id = ? AND purpose = ?", userID, purpose).
			First(&m).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrNotFound
			}
			return err
		}

		entity := verificationToEntity(&m)
		if entity.Expired(now) {
			if err := tx.Delete(&models.VerificationCode{}, "id = ?", m.ID).Error; err != nil {
				return err
			}
			return domainerrors.ErrCodeExpired
		}

		if m.Code != presented {
			return domainerrors.ErrInvalidCode
		}

		if err := tx.Delete(&models.VerificationCode{}, "id = ?", m.ID).Error; err != nil {
			return err
		}
		consumed = entity
		return nil
	})
	if err != nil {
		return nil, err
	}
	return consumed, nil
}

// Clear drops the slot regardless of its contents
func (r *VerificationRepository) Clear(ctx context.Context, userID uuid.UUID, purpose entities.VerificationPurpose) error {
	return r.db.WithContext(ctx).
		Delete(&models.VerificationCode{}, "user_id = ? AND purpose = ?", userID, purpose).Error
}

// DeleteExpired removes codes whose expiry is at or before the cutoff
func (r *VerificationRepository) DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error) {
	result := r.db.WithContext(ctx).
		Delete(&models.VerificationCode{}, "expires_at <= ?", cutoff)
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

func verificationToEntity(m *models.VerificationCode) *entities.VerificationCode {
	return &entities.VerificationCode{
		ID:        m.ID,
		UserID:    m.UserID,
		Purpose:   entities.VerificationPurpose(m.Purpose),
		Code:      m.Code,
		NewEmail:  null.StringFromPtr(m.NewEmail),
		ExpiresAt: m.ExpiresAt,
		CreatedAt: m.CreatedAt,
	}
}
