package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// VerificationPurpose tags a one-time code with the flow that issued it.
// Each purpose has its own slot per account so a password-reset code can
// never clobber a pending email change.
type VerificationPurpose string

const (
	PurposeLogin         VerificationPurpose = "LOGIN"
	PurposePasswordReset VerificationPurpose = "PASSWORD_RESET"
	PurposeEmailChange   VerificationPurpose = "EMAIL_CHANGE"
)

// VerificationCode is the single outstanding code for (account, purpose).
// Issuing a new code for the same pair overwrites the previous one.
type VerificationCode struct {
	ID        uuid.UUID           `json:"id"`
	UserID    uuid.UUID           `json:"userId"`
	Purpose   VerificationPurpose `json:"purpose"`
	Code      string              `json:"-"`
	NewEmail  null.String         `json:"-"`
	ExpiresAt time.Time           `json:"expiresAt"`
	CreatedAt time.Time           `json:"createdAt"`
}

// Expired reports whether the code is no longer consumable at the given instant.
// The boundary is inclusive: a code presented at exactly ExpiresAt is expired.
func (v *VerificationCode) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt)
}

// ChallengePolicy names how a flow reacts when the delivery channel cannot
// carry the code.
type ChallengePolicy string

const (
	// ChallengePolicyRequireIfDeliverable grants access without a challenge
	// when the code cannot be delivered. An unreachable channel must never
	// lock users out of login.
	ChallengePolicyRequireIfDeliverable ChallengePolicy = "REQUIRE_IF_DELIVERABLE"

	// ChallengePolicyRequireStrict fails the flow when the code cannot be
	// delivered. Used for credential-adjacent actions.
	ChallengePolicyRequireStrict ChallengePolicy = "REQUIRE_STRICT"
)
