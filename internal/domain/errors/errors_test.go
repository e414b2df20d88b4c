package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppErrorMessageAndUnwrap(t *testing.T) {
	inner := errors.New("db down")
	appErr := NewAppError(http.StatusInternalServerError, CodeInternal, "internal server error", inner)

	require.Equal(t, "db down", appErr.Error())
	require.ErrorIs(t, appErr, inner)

	noInner := &AppError{Status: http.StatusBadRequest, Code: CodeBadRequest, Message: "missing field"}
	require.Equal(t, "missing field", noInner.Error())
}

func TestConstructors(t *testing.T) {
	cases := []struct {
		err      *AppError
		status   int
		code     string
		sentinel error
	}{
		{NotFound("x"), http.StatusNotFound, CodeNotFound, ErrNotFound},
		{BadRequest("x"), http.StatusBadRequest, CodeBadRequest, ErrInvalidInput},
		{Conflict("x"), http.StatusConflict, CodeAlreadyExists, ErrAlreadyExists},
		{Unauthorized("x"), http.StatusUnauthorized, CodeUnauthorized, ErrUnauthorized},
		{Forbidden("x"), http.StatusForbidden, CodeForbidden, ErrForbidden},
		{ServiceUnavailable("x"), http.StatusServiceUnavailable, CodeChannelDown, ErrChannelUnavailable},
	}

	for _, tc := range cases {
		require.Equal(t, tc.status, tc.err.Status)
		require.Equal(t, tc.code, tc.err.Code)
		require.ErrorIs(t, tc.err, tc.sentinel)
	}

	internal := InternalError(errors.New("boom"))
	require.Equal(t, http.StatusInternalServerError, internal.Status)
	require.Equal(t, "internal server error", internal.Message)
}
