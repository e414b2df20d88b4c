package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"cvnest.backend/internal/domain/entities"
)

// UserRepository defines user data operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) error
	GetByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	GetByEmail(ctx context.Context, email string) (*entities.User, error)
	Update(ctx context.Context, user *entities.User) error
	UpdatePassword(ctx context.Context, id uuid.UUID, passwordHash string) error
	UpdateEmail(ctx context.Context, id uuid.UUID, email string) error
	SetSubscriptionUntil(ctx context.Context, id uuid.UUID, until time.Time) error
	List(ctx context.Context, search string, offset, limit int) ([]*entities.User, int64, error)
	Count(ctx context.Context) (int64, error)
}

// VerificationRepository is the verification state store: one outstanding
// code per (account, purpose), last write wins.
type VerificationRepository interface {
	// Issue overwrites any existing code for the same account and purpose.
	Issue(ctx context.Context, code *entities.VerificationCode) error

	// Get returns the outstanding code or domainerrors.ErrNotFound.
	Get(ctx context.Context, userID uuid.UUID, purpose entities.VerificationPurpose) (*entities.VerificationCode, error)

	// Consume validates the presented code and atomically clears the slot on
	// success. It returns the stored record so the caller can read the
	// purpose payload (pending email). Failure modes:
	// ErrNotFound (no slot), ErrInvalidCode (mismatch),
	// ErrCodeExpired (slot cleared, new code required).
	Consume(ctx context.Context, userID uuid.UUID, purpose entities.VerificationPurpose, presented string, now time.Time) (*entities.VerificationCode, error)

	// Clear drops the slot regardless of its contents.
	Clear(ctx context.Context, userID uuid.UUID, purpose entities.VerificationPurpose) error

	// DeleteExpired removes codes whose expiry is at or before the cutoff.
	DeleteExpired(ctx context.Context, cutoff time.Time) (int64, error)
}
