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

// UserRepository implements user data operations
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *entities.User) error {
	m := &models.User{
		ID:                user.ID,
		Email:             user.Email,
		Name:              user.Name,
		PasswordHash:      user.PasswordHash,
		Phone:             user.Phone.Ptr(),
		Role:              string(user.Role),
		SubscriptionUntil: user.SubscriptionUntil.Ptr(),
		CreatedAt:         user.CreatedAt,
		UpdatedAt:         user.UpdatedAt,
	}

	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	user.ID = m.ID
	return nil
}

// GetByID gets a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// GetByEmail gets a user by email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entities.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domainerrors.ErrNotFound
		}
		return nil, err
	}
	return userToEntity(&m), nil
}

// Update updates profile fields
func (r *UserRepository) Update(ctx context.Context, user *entities.User) error {
	updates := map[string]interface{}{
		"name":       user.Name,
		"role":       string(user.Role),
		"phone":      user.Phone.Ptr(),
		"updated_at": time.Now(),
	}

	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", user.ID).Updates(updates)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdatePassword replaces the stored password hash
func (r *UserRepository) UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"password_hash": passwordHash,
		"updated_at":    time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// UpdateEmail swaps the account email
func (r *UserRepository) UpdateEmail(ctx context.Context, id uuid.UUID, email string) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"email":      email,
		"updated_at": time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// SetSubscriptionUntil extends the paid window
func (r *UserRepository) SetSubscriptionUntil(ctx context.Context, id uuid.UUID, until time.Time) error {
	result := r.db.WithContext(ctx).Model(&models.User{}).Where("id = ?", id).Updates(map[string]interface{}{
		"subscription_until": until,
		"updated_at":         time.Now(),
	})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrNotFound
	}
	return nil
}

// List lists users with optional search filter and pagination
func (r *UserRepository) List(ctx context.Context, search string, offset, limit int) ([]*entities.User, int64, error) {
	query := r.db.WithContext(ctx).Model(&models.User{})

	if search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var userModels []models.User
	if err := query.Order("created_at DESC").Offset(offset).Limit(limit).Find(&userModels).Error; err != nil {
		return nil, 0, err
	}

	users := make([]*entities.User, 0, len(userModels))
	for i := range userModels {
		users = append(users, userToEntity(&userModels[i]))
	}
	return users, total, nil
}

// Count returns the number of non-deleted users
func (r *UserRepository) Count(ctx context.Context) (int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.User{}).Count(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

func userToEntity(m *models.User) *entities.User {
	return &entities.User{
		ID:                m.ID,
		Email:             m.Email,
		Name:              m.Name,
		PasswordHash:      m.PasswordHash,
		Phone:             null.StringFromPtr(m.Phone),
		Role:              entities.UserRole(m.Role),
		SubscriptionUntil: null.TimeFromPtr(m.SubscriptionUntil),
		CreatedAt:         m.CreatedAt,
		UpdatedAt:         m.UpdatedAt,
	}
}
