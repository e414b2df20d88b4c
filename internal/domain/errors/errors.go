package errors

import (
	"errors"
	"net/http"
)

// Domain errors
var (
	ErrNotFound            = errors.New("resource not found")
	ErrAlreadyExists       = errors.New("resource already exists")
	ErrInvalidInput        = errors.New("invalid input")
	ErrUnauthorized        = errors.New("unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrBotDetected         = errors.New("bot detected")
	ErrPhoneRequired       = errors.New("phone number required")
	ErrInvalidPhone        = errors.New("invalid phone number")
	ErrInvalidCode         = errors.New("invalid verification code")
	ErrCodeExpired         = errors.New("verification code expired")
	ErrChannelUnavailable  = errors.New("messaging channel unavailable")
	ErrEmailDeliveryFailed = errors.New("email delivery failed")
)

// Error codes returned to clients
const (
	CodeNotFound           = "NOT_FOUND"
	CodeAlreadyExists      = "ALREADY_EXISTS"
	CodeBadRequest         = "BAD_REQUEST"
	CodeUnauthorized       = "UNAUTHORIZED"
	CodeForbidden          = "FORBIDDEN"
	CodeInvalidCredentials = "INVALID_CREDENTIALS"
	CodeBotDetected        = "BOT_DETECTED"
	CodeInvalidCode        = "INVALID_CODE"
	CodeCodeExpired        = "CODE_EXPIRED"
	CodeChannelDown        = "CHANNEL_UNAVAILABLE"
	CodeInternal           = "INTERNAL_ERROR"
)

// AppError represents an application error with HTTP status
type AppError struct {
	Status  int    `json:"-"`
	Code    string `json:"code"`
	Message string `json:"message"`
	Err     error  `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new app error
func NewAppError(status int, code, message string, err error) *AppError {
	return &AppError{
		Status:  status,
		Code:    code,
		Message: message,
		Err:     err,
	}
}

// Common error constructors

func NotFound(message string) *AppError {
	return NewAppError(http.StatusNotFound, CodeNotFound, message, ErrNotFound)
}

func BadRequest(message string) *AppError {
	return NewAppError(http.StatusBadRequest, CodeBadRequest, message, ErrInvalidInput)
}

func Conflict(message string) *AppError {
	return NewAppError(http.StatusConflict, CodeAlreadyExists, message, ErrAlreadyExists)
}

func Unauthorized(message string) *AppError {
	return NewAppError(http.StatusUnauthorized, CodeUnauthorized, message, ErrUnauthorized)
}

func Forbidden(message string) *AppError {
	return NewAppError(http.StatusForbidden, CodeForbidden, message, ErrForbidden)
}

func ServiceUnavailable(message string) *AppError {
	return NewAppError(http.StatusServiceUnavailable, CodeChannelDown, message, ErrChannelUnavailable)
}

func InternalError(err error) *AppError {
	return NewAppError(http.StatusInternalServerError, CodeInternal, "internal server error", err)
}
