package entities

import (
	"time"

	"github.com/google/uuid"
	"github.com/volatiletech/null/v8"
)

// UserRole represents user roles
type UserRole string

const (
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleModerator UserRole = "MODERATOR"
	UserRoleUser      UserRole = "USER"
)

// User represents a user entity
type User struct {
	ID                 uuid.UUID   `json:"id"`
	Email              string      `json:"email"`
	Name               string      `json:"name"`
	PasswordHash       string      `json:"-"`
	Phone              null.String `json:"phone,omitempty"`
	Role               UserRole    `json:"role"`
	SubscriptionUntil  null.Time   `json:"subscriptionUntil,omitempty"`
	CreatedAt          time.Time   `json:"createdAt"`
	UpdatedAt          time.Time   `json:"updatedAt"`
}

// HasActiveSubscription reports whether the account has a paid window covering now
func (u *User) HasActiveSubscription(now time.Time) bool {
	return u.SubscriptionUntil.Valid && u.SubscriptionUntil.Time.After(now)
}

// RegisterInput represents input for creating a user
type RegisterInput struct {
	Email    string `json:"email" binding:"required,email"`
	Name     string `json:"name" binding:"required,min=2,max=100"`
	Password string `json:"password" binding:"required,min=8"`
	Phone    string `json:"phone"`
}

// LoginInput represents input for user login
type LoginInput struct {
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required"`
	UseSession bool   `json:"useSession"`
}

// LoginResult describes the outcome of a login attempt.
// When RequiresVerification is true the tokens are empty and the caller
// must complete the verify-code step to receive them.
type LoginResult struct {
	RequiresVerification bool   `json:"requiresVerification"`
	Message              string `json:"message"`
	AccessToken          string `json:"accessToken,omitempty"`
	RefreshToken         string `json:"refreshToken,omitempty"`
	SessionID            string `json:"sessionId,omitempty"`
	User                 *User  `json:"user,omitempty"`
}

// VerifyCodeInput represents input for consuming a login code
type VerifyCodeInput struct {
	Email      string `json:"email" binding:"required,email"`
	Code       string `json:"code" binding:"required"`
	UseSession bool   `json:"useSession"`
}

// ForgotPasswordInput represents input for the WhatsApp reset-code flow
type ForgotPasswordInput struct {
	Email string `json:"email" binding:"required,email"`
}

// SendCodeInput represents input for the email reset-code flow
type SendCodeInput struct {
	Email string `json:"email" binding:"required,email"`
}

// ResetPasswordInput represents input for resetting a forgotten password
type ResetPasswordInput struct {
	Email       string `json:"email" binding:"required,email"`
	Code        string `json:"code" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=8"`
}

// ChangePasswordInput represents input for changing the password of an authenticated user
type ChangePasswordInput struct {
	CurrentPassword string `json:"currentPassword" binding:"required,min=8"`
	NewPassword     string `json:"newPassword" binding:"required,min=8"`
}

// EmailChangeRequestInput starts the email-change flow
type EmailChangeRequestInput struct {
	NewEmail string `json:"newEmail" binding:"required,email"`
}

// EmailChangeConfirmInput completes the email-change flow
type EmailChangeConfirmInput struct {
	Code string `json:"code" binding:"required"`
}

// UpdateProfileInput represents input for updating profile fields
type UpdateProfileInput struct {
	Name  string `json:"name" binding:"omitempty,min=2,max=100"`
	Phone string `json:"phone"`
}
