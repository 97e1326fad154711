package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"account/internal/domain/entity"
	"account/internal/domain/service"
	mockSvc "account/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runAuthenticated(t *testing.T, m *AuthMiddleware, authHeader string, next echo.HandlerFunc) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/profile", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, m.Authenticate(next)(c))

	return rec
}

func TestAuthenticate_ValidToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()

	tokenSvc.EXPECT().
		ValidateToken("good-token").
		Return(&service.Claims{UserID: userID, Roles: []string{"customer", "staff"}}, nil)

	var gotID uuid.UUID
	var gotRoles entity.Roles
	rec := runAuthenticated(t, NewAuthMiddleware(tokenSvc), "Bearer good-token", func(c echo.Context) error {
		var ok bool
		gotID, ok = GetUserID(c)
		require.True(t, ok)
		gotRoles, ok = GetRoles(c)
		require.True(t, ok)

		return c.NoContent(http.StatusNoContent)
	})

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, userID, gotID)
	assert.Equal(t, entity.Roles{entity.RoleCustomer, entity.RoleStaff}, gotRoles)
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name       string
		header     string
		setup      func(*mockSvc.MockTokenService)
		expectCode string
	}{
		{
			name:       "missing header",
			header:     "",
			expectCode: "MISSING_TOKEN",
		},
		{
			name:       "wrong scheme",
			header:     "Basic dXNlcjpwYXNz",
			expectCode: "INVALID_TOKEN",
		},
		{
			name:       "empty bearer",
			header:     "Bearer ",
			expectCode: "INVALID_TOKEN",
		},
		{
			name:   "token rejected",
			header: "Bearer expired",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("expired").Return(nil, errors.New("token is expired"))
			},
			expectCode: "INVALID_TOKEN",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			rec := runAuthenticated(t, NewAuthMiddleware(tokenSvc), tt.header, func(c echo.Context) error {
				t.Fatal("next handler must not run")

				return nil
			})

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.expectCode)
		})
	}
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))

	tests := []struct {
		name       string
		roles      any
		expectCode int
	}{
		{name: "holds role", roles: entity.Roles{entity.RoleCustomer, entity.RoleStaff}, expectCode: http.StatusNoContent},
		{name: "lacks role", roles: entity.Roles{entity.RoleCustomer}, expectCode: http.StatusForbidden},
		{name: "no roles on context", roles: nil, expectCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := echo.New()
			rec := httptest.NewRecorder()
			c := e.NewContext(httptest.NewRequest(http.MethodGet, "/admin/users", nil), rec)
			if tt.roles != nil {
				c.Set(contextKeyRoles, tt.roles)
			}

			err := m.RequireRole(entity.RoleStaff)(func(c echo.Context) error {
				return c.NoContent(http.StatusNoContent)
			})(c)

			require.NoError(t, err)
			assert.Equal(t, tt.expectCode, rec.Code)
		})
	}
}

func TestGetUserID_RejectsNil(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	_, ok := GetUserID(c)
	assert.False(t, ok)

	c.Set(contextKeyUserID, uuid.Nil)
	_, ok = GetUserID(c)
	assert.False(t, ok)
}
