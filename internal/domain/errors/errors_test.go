package errors

import (
	"context"
	"net/http"
	"testing"

	"dropmarks/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBaseError_WrapMessageKeepsIdentity(t *testing.T) {
	err := ErrAuthenticationUnavailable.WrapMessage("user lookup failed")

	assert.True(t, errors.Is(err, ErrAuthenticationUnavailable))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "AUTHENTICATION_UNAVAILABLE", appErr.ErrorCode())
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails("username too short")

	assert.Equal(t, "username too short", detailed.Details())
	assert.Equal(t, ErrValidationFailed.ErrorCode(), detailed.ErrorCode())
	assert.Empty(t, ErrValidationFailed.Details())
}

func TestDatabaseExecuteError(t *testing.T) {
	err := NewDatabaseExecuteError(context.DeadlineExceeded, "find user")

	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.Equal(t, "DATABASE_EXECUTE_FAILED", err.ErrorCode())
	assert.Equal(t, "find user", err.Details())
	assert.Contains(t, err.Error(), "database execution failed")
}

func TestAsAppError_PlainError(t *testing.T) {
	_, ok := AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestAuthenticationUnavailableError(t *testing.T) {
	cause := context.DeadlineExceeded
	err := NewAuthenticationUnavailableError(cause)

	assert.True(t, errors.Is(err, ErrAuthenticationUnavailable))
	assert.True(t, errors.Is(err, context.DeadlineExceeded))
	assert.False(t, errors.Is(err, ErrInvalidCredentials))
	assert.Contains(t, err.Error(), "authentication is temporarily unavailable")
	assert.Contains(t, err.Error(), "deadline exceeded")

	appErr, ok := AsAppError(err)
	require.True(t, ok)
	assert.Equal(t, "AUTHENTICATION_UNAVAILABLE", appErr.ErrorCode())
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}
