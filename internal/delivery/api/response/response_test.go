package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "account/internal/delivery/context"
	domainerrors "account/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type errorEnvelope struct {
	Error struct {
		Code    string         `json:"code"`
		Message string         `json:"message"`
		Details map[string]any `json:"details"`
	} `json:"error"`
	Meta struct {
		RequestID string `json:"request_id"`
	} `json:"meta"`
}

func newContext() (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	deliverycontext.SetRequestID(c, "req-1")

	return c, rec
}

func TestHandleAppError_Details(t *testing.T) {
	tests := []struct {
		name          string
		err           error
		expectStatus  int
		expectCode    string
		expectDetails map[string]any
	}{
		{
			name:          "validation error maps field to reason",
			err:           errors.WithStack(domainerrors.NewValidationError("role", "unknown role")),
			expectStatus:  http.StatusBadRequest,
			expectCode:    "VALIDATION_FAILED",
			expectDetails: map[string]any{"role": "unknown role"},
		},
		{
			name:         "validation error without field has no details",
			err:          domainerrors.NewValidationError("", "bad input"),
			expectStatus: http.StatusBadRequest,
			expectCode:   "VALIDATION_FAILED",
		},
		{
			name:          "constraint violation names the constraint",
			err:           errors.WithStack(domainerrors.NewConstraintViolationError(domainerrors.ConstraintForeignKey, "address", errors.New("fk"))),
			expectStatus:  http.StatusUnprocessableEntity,
			expectCode:    "CONSTRAINT_VIOLATION",
			expectDetails: map[string]any{"constraint": "foreign_key"},
		},
		{
			name:          "base error details are wrapped",
			err:           errors.Wrap(domainerrors.ErrAddressNotFound.WithDetails("id=42"), "delete address"),
			expectStatus:  http.StatusNotFound,
			expectCode:    "ADDRESS_NOT_FOUND",
			expectDetails: map[string]any{"detail": "id=42"},
		},
		{
			name:         "base error without details",
			err:          errors.Wrap(domainerrors.ErrAddressNotFound, "delete address"),
			expectStatus: http.StatusNotFound,
			expectCode:   "ADDRESS_NOT_FOUND",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, rec := newContext()

			require.NoError(t, HandleAppError(c, tt.err))
			require.Equal(t, tt.expectStatus, rec.Code)

			var env errorEnvelope
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
			assert.Equal(t, tt.expectCode, env.Error.Code)
			assert.Equal(t, "req-1", env.Meta.RequestID)
			assert.Equal(t, tt.expectDetails, env.Error.Details)
		})
	}
}

func TestHandleAppError_PassesThroughUnknownErrors(t *testing.T) {
	c, rec := newContext()
	cause := errors.New("boom")

	err := HandleAppError(c, cause)

	require.Error(t, err)
	assert.ErrorIs(t, err, cause)
	assert.False(t, c.Response().Committed)
	assert.Empty(t, rec.Body.String())
}

func TestError_StripsDetailsForAuthAndServerErrors(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden, http.StatusInternalServerError} {
		c, rec := newContext()

		require.NoError(t, Error(c, status, "CODE", "message", map[string]string{"k": "v"}))

		assert.Equal(t, status, rec.Code)
		assert.NotContains(t, rec.Body.String(), `"details"`)
	}
}
