package errors

import (
	stderrors "errors"
	"net/http"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidationError_DetectedThroughWrapping(t *testing.T) {
	err := errors.Wrap(NewValidationError("email", "must be set"), "create user")

	assert.True(t, IsValidationError(err))
	assert.False(t, IsValidationError(ErrUserNotFound))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.HTTPCode())
	assert.Equal(t, "VALIDATION_FAILED", appErr.ErrorCode())
	assert.Equal(t, "email: must be set", appErr.Message())
	assert.Equal(t, "email", appErr.Details())
}

func TestConstraintViolationError_KeepsCause(t *testing.T) {
	cause := stderrors.New("duplicated key not allowed")
	err := errors.WithStack(NewConstraintViolationError(ConstraintUnique, "user", cause))

	assert.True(t, errors.Is(err, cause))

	var appErr AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusConflict, appErr.HTTPCode())
	assert.Equal(t, "user already exists", appErr.Message())

	fk := NewConstraintViolationError(ConstraintForeignKey, "delivery address", cause)
	assert.Equal(t, http.StatusUnprocessableEntity, fk.HTTPCode())
	assert.Equal(t, "foreign_key", fk.Details())
}

func TestDatabaseExecuteError_Unwrap(t *testing.T) {
	cause := stderrors.New("connection reset")
	err := NewDatabaseExecuteError(cause, "find user")

	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, http.StatusInternalServerError, err.HTTPCode())
	assert.Contains(t, err.Error(), "connection reset")
}

func TestBaseError_WithDetails(t *testing.T) {
	detailed := ErrAddressNotFound.WithDetails("id=42")

	assert.Equal(t, "id=42", detailed.Details())
	assert.Equal(t, ErrAddressNotFound.ErrorCode(), detailed.ErrorCode())
	assert.Empty(t, ErrAddressNotFound.Details())
}
