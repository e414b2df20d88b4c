package handlers

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"cvnest.backend/internal/domain/entities"
	domainerrors "cvnest.backend/internal/domain/errors"
	"cvnest.backend/internal/interfaces/http/middleware"
	"cvnest.backend/internal/interfaces/http/response"
	"cvnest.backend/pkg/jwt"
	"cvnest.backend/pkg/logger"
	"cvnest.backend/pkg/redis"
)

const sessionTTL = 24 * time.Hour

type authService interface {
	Register(ctx context.Context, input *entities.RegisterInput) (*entities.User, error)
	Login(ctx context.Context, input *entities.LoginInput) (*entities.LoginResult, error)
	VerifyCode(ctx context.Context, input *entities.VerifyCodeInput) (*entities.LoginResult, error)
	ForgotPassword(ctx context.Context, email string) (string, error)
	SendResetCodeEmail(ctx context.Context, email string) error
	ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error
	RequestEmailChange(ctx context.Context, userID uuid.UUID, newEmail string) (string, error)
	ConfirmEmailChange(ctx context.Context, userID uuid.UUID, code string) (*entities.User, error)
	ChangePassword(ctx context.Context, userID uuid.UUID, input *entities.ChangePasswordInput) error
	RefreshToken(ctx context.Context, refreshToken string) (*jwt.TokenPair, error)
	GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input *entities.UpdateProfileInput) (*entities.User, error)
}

type sessionManager interface {
	CreateSession(ctx context.Context, sessionID string, data *redis.SessionData, expiration time.Duration) error
	DeleteSession(ctx context.Context, sessionID string) error
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	authService  authService
	sessionStore sessionManager
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService authService, sessionStore sessionManager) *AuthHandler {
	return &AuthHandler{
		authService:  authService,
		sessionStore: sessionStore,
	}
}

// Register handles account creation
// POST /api/v1/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var input entities.RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.Register(c.Request.Context(), &input)
	if err != nil {
		if err == domainerrors.ErrAlreadyExists {
			response.Error(c, domainerrors.Conflict("email already registered"))
			return
		}
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"message": "registration successful",
		"user":    publicUser(user),
	})
}

// Login handles the first step of login. Depending on the account and the
// state of the verification channel the response either carries tokens or
// asks for the code that was sent.
// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var input entities.LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.Login(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	if result.RequiresVerification {
		response.Success(c, http.StatusOK, gin.H{
			"requiresVerification": true,
			"message":              result.Message,
		})
		return
	}

	h.respondGranted(c, result, input.UseSession)
}

// VerifyCode completes a challenged login
// POST /api/v1/auth/verify-code
func (h *AuthHandler) VerifyCode(c *gin.Context) {
	var input entities.VerifyCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	result, err := h.authService.VerifyCode(c.Request.Context(), &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.respondGranted(c, result, input.UseSession)
}

// ForgotPassword sends a reset code over WhatsApp
// POST /api/v1/auth/forgot-password
func (h *AuthHandler) ForgotPassword(c *gin.Context) {
	var input entities.ForgotPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	masked, err := h.authService.ForgotPassword(c.Request.Context(), input.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "reset code sent via WhatsApp",
		"phone":   masked,
	})
}

// SendCode sends a reset code over email
// POST /api/v1/auth/send-code
func (h *AuthHandler) SendCode(c *gin.Context) {
	var input entities.SendCodeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authService.SendResetCodeEmail(c.Request.Context(), input.Email); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "reset code sent by email",
	})
}

// ResetPassword consumes a reset code and sets a new password
// POST /api/v1/auth/reset-password
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var input entities.ResetPasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authService.ResetPassword(c.Request.Context(), &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "password reset successful",
	})
}

// RequestEmailChange stages a new email address behind a WhatsApp code
// POST /api/v1/auth/email-verification
func (h *AuthHandler) RequestEmailChange(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.EmailChangeRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	masked, err := h.authService.RequestEmailChange(c.Request.Context(), userID, input.NewEmail)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "verification code sent via WhatsApp",
		"phone":   masked,
	})
}

// ConfirmEmailChange applies a staged email change
// PUT /api/v1/auth/email-verification
func (h *AuthHandler) ConfirmEmailChange(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.EmailChangeConfirmInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.ConfirmEmailChange(c.Request.Context(), userID, input.Code)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "email updated",
		"user":    publicUser(user),
	})
}

// ChangePassword replaces the password of the authenticated user
// POST /api/v1/auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.ChangePasswordInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	if err := h.authService.ChangePassword(c.Request.Context(), userID, &input); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"message": "password changed",
	})
}

// RefreshToken exchanges a refresh token for a new pair
// POST /api/v1/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	var input struct {
		RefreshToken string `json:"refreshToken" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	pair, err := h.authService.RefreshToken(c.Request.Context(), input.RefreshToken)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, pair)
}

// Me returns the authenticated account
// GET /api/v1/auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	user, err := h.authService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": publicUser(user)})
}

// UpdateProfile updates name and phone of the authenticated user
// PUT /api/v1/auth/me
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		response.Error(c, domainerrors.Unauthorized("authentication required"))
		return
	}

	var input entities.UpdateProfileInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.Error(c, domainerrors.BadRequest(err.Error()))
		return
	}

	user, err := h.authService.UpdateProfile(c.Request.Context(), userID, &input)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, http.StatusOK, gin.H{"user": publicUser(user)})
}

func (h *AuthHandler) respondGranted(c *gin.Context, result *entities.LoginResult, useSession bool) {
	body := gin.H{
		"requiresVerification": false,
		"message":              result.Message,
		"accessToken":          result.AccessToken,
		"refreshToken":         result.RefreshToken,
		"user":                 publicUser(result.User),
	}

	if useSession && h.sessionStore != nil {
		sessionID := uuid.New().String()
		err := h.sessionStore.CreateSession(c.Request.Context(), sessionID, &redis.SessionData{
			UserID:       result.User.ID.String(),
			AccessToken:  result.AccessToken,
			RefreshToken: result.RefreshToken,
		}, sessionTTL)
		if err != nil {
			logger.WithContext(c.Request.Context()).Error("session creation failed",
				zap.String("user_id", result.User.ID.String()),
				zap.Error(err))
		} else {
			body["sessionId"] = sessionID
		}
	}

	response.Success(c, http.StatusOK, body)
}

func publicUser(u *entities.User) gin.H {
	out := gin.H{
		"id":    u.ID,
		"email": u.Email,
		"name":  u.Name,
		"role":  u.Role,
	}
	if u.Phone.Valid {
		out["phone"] = u.Phone.String
	}
	if u.SubscriptionUntil.Valid {
		out["subscriptionUntil"] = u.SubscriptionUntil.Time
	}
	return out
}
