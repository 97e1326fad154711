package handler

import (
	"net/http"
	"testing"
	"time"

	domainerrors "account/internal/domain/errors"
	"account/internal/domain/entity"
	mockUsecase "account/internal/mocks/usecase"
	"account/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthHandler(t *testing.T) (*AuthHandler, *mockUsecase.MockAccountUsecase) {
	accountUC := mockUsecase.NewMockAccountUsecase(t)

	return NewAuthHandler(AuthHandlerParams{AccountUC: accountUC, Logger: newDiscardLogger()}), accountUC
}

func TestAuthHandler_Register(t *testing.T) {
	h, accountUC := newAuthHandler(t)
	user := &entity.User{
		ID:         uuid.New(),
		Email:      "ada@example.com",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		Role:       entity.RoleCustomer,
		IsActive:   true,
		DateJoined: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	accountUC.EXPECT().
		Register(mock.Anything, &usecase.RegisterInput{
			Email:     "ada@example.com",
			Password:  "correct-horse",
			FirstName: "Ada",
			LastName:  "Lovelace",
		}).
		Return(user, nil)

	c, rec := newTestContext(http.MethodPost, "/auth/register",
		`{"email":"ada@example.com","password":"correct-horse","first_name":"Ada","last_name":"Lovelace"}`)

	require.NoError(t, h.Register(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	resp := decodeData[UserResponse](t, rec)
	assert.Equal(t, user.ID, resp.ID)
	assert.Equal(t, "Ada Lovelace", resp.FullName)
	assert.Equal(t, "customer", resp.Role)
	assert.Equal(t, "Customer", resp.RoleLabel)
	assert.NotContains(t, rec.Body.String(), "password")
}

func TestAuthHandler_Register_ValidationFailed(t *testing.T) {
	h, _ := newAuthHandler(t)

	c, rec := newTestContext(http.MethodPost, "/auth/register", `{"email":"not-an-email","password":"short"}`)

	require.NoError(t, h.Register(c))
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "email", env.Error.Details["email"])
	assert.Equal(t, "min", env.Error.Details["password"])
}

func TestAuthHandler_Register_DuplicateEmail(t *testing.T) {
	h, accountUC := newAuthHandler(t)

	accountUC.EXPECT().
		Register(mock.Anything, mock.Anything).
		Return(nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "create user"))

	c, rec := newTestContext(http.MethodPost, "/auth/register", `{"email":"ada@example.com","password":"correct-horse"}`)

	require.NoError(t, h.Register(c))
	assertErrorCode(t, rec, http.StatusConflict, "USER_ALREADY_EXISTS")
}

func TestAuthHandler_Login(t *testing.T) {
	h, accountUC := newAuthHandler(t)
	user := &entity.User{ID: uuid.New(), Email: "ada@example.com", Role: entity.RoleCustomer, IsActive: true}

	accountUC.EXPECT().
		Login(mock.Anything, &usecase.LoginInput{Email: "ada@example.com", Password: "correct-horse"}).
		Return(&usecase.LoginOutput{AccessToken: "signed.jwt.token", User: user}, nil)

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"correct-horse"}`)

	require.NoError(t, h.Login(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeData[LoginResponse](t, rec)
	assert.Equal(t, "signed.jwt.token", resp.AccessToken)
	assert.Equal(t, "Bearer", resp.TokenType)
	require.NotNil(t, resp.User)
	assert.Equal(t, user.ID, resp.User.ID)
}

func TestAuthHandler_Login_InvalidCredentials(t *testing.T) {
	h, accountUC := newAuthHandler(t)

	accountUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, errors.WithStack(domainerrors.ErrInvalidCredentials))

	c, rec := newTestContext(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"wrong"}`)

	require.NoError(t, h.Login(c))
	assertErrorCode(t, rec, http.StatusUnauthorized, "INVALID_CREDENTIALS")
}

func TestAuthHandler_Login_UnexpectedErrorIsReturned(t *testing.T) {
	h, accountUC := newAuthHandler(t)
	cause := errors.New("connection reset")

	accountUC.EXPECT().
		Login(mock.Anything, mock.Anything).
		Return(nil, cause)

	c, _ := newTestContext(http.MethodPost, "/auth/login", `{"email":"ada@example.com","password":"pw"}`)

	err := h.Login(c)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))
}

func TestHealthCheck(t *testing.T) {
	c, rec := newTestContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, map[string]string{"status": "ok"}, decodeData[map[string]string](t, rec))
}
