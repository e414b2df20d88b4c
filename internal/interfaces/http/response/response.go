package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	domainerrors "cvnest.backend/internal/domain/errors"
)

// Success sends a success response
func Success(c *gin.Context, status int, data interface{}) {
	c.JSON(status, data)
}

// Error sends an error response. Domain sentinels map to their fixed status
// and code, an AppError passes through as is, anything else is a 500.
func Error(c *gin.Context, err error) {
	appErr := toAppError(err)
	c.JSON(appErr.Status, gin.H{
		"code":    appErr.Code,
		"message": appErr.Message,
		"error":   appErr.Message,
	})
}

func toAppError(err error) *domainerrors.AppError {
	var appErr *domainerrors.AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, domainerrors.ErrNotFound):
		return domainerrors.NotFound("resource not found")
	case errors.Is(err, domainerrors.ErrAlreadyExists):
		return domainerrors.Conflict("resource already exists")
	case errors.Is(err, domainerrors.ErrInvalidInput):
		return domainerrors.BadRequest("invalid input")
	case errors.Is(err, domainerrors.ErrInvalidPhone):
		return domainerrors.BadRequest("invalid phone number")
	case errors.Is(err, domainerrors.ErrPhoneRequired):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeBadRequest, "no phone number on the account", err)
	case errors.Is(err, domainerrors.ErrInvalidCredentials):
		return domainerrors.NewAppError(http.StatusUnauthorized, domainerrors.CodeInvalidCredentials, "invalid email or password", err)
	case errors.Is(err, domainerrors.ErrUnauthorized):
		return domainerrors.Unauthorized("unauthorized")
	case errors.Is(err, domainerrors.ErrForbidden):
		return domainerrors.Forbidden("insufficient permissions")
	case errors.Is(err, domainerrors.ErrBotDetected):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeBotDetected, "bot activity detected, login blocked", err)
	case errors.Is(err, domainerrors.ErrInvalidCode):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeInvalidCode, "invalid verification code", err)
	case errors.Is(err, domainerrors.ErrCodeExpired):
		return domainerrors.NewAppError(http.StatusBadRequest, domainerrors.CodeCodeExpired, "verification code expired, request a new one", err)
	case errors.Is(err, domainerrors.ErrChannelUnavailable):
		return domainerrors.ServiceUnavailable("verification channel is unavailable, try again later")
	case errors.Is(err, domainerrors.ErrEmailDeliveryFailed):
		return domainerrors.NewAppError(http.StatusServiceUnavailable, domainerrors.CodeChannelDown, "could not deliver the code by email", err)
	}
	return domainerrors.InternalError(err)
}
