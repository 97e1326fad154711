package impl

import (
	"context"
	"testing"

	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	mockRepo "account/internal/mocks/repository"
	mockSvc "account/internal/mocks/service"
	"account/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// accountServiceFixtures holds all test dependencies for account service tests.
type accountServiceFixtures struct {
	service      usecase.AccountUsecase
	txManager    *mockRepo.MockTransactionManager
	hasher       *mockSvc.MockPasswordHasher
	tokenService *mockSvc.MockTokenService
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	service := NewAccountService(AccountServiceParams{
		TxManager:    txManager,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       newDiscardLogger(),
	})

	return accountServiceFixtures{
		service:      service,
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func TestAccountService_CreateUser_AppliesDefaults(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	repos := newRepoMocks(t)

	fx.hasher.EXPECT().Hash("s3cret").Return("hashed", nil)
	expectExecute(ctx, fx.txManager, repos)
	repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = uuid.New()

			return nil
		})

	user, err := fx.service.CreateUser(ctx, "  Alice@Example.COM ", "s3cret", usecase.UserFields{})

	require.NoError(t, err)
	assert.Equal(t, "Alice@example.com", user.Email)
	assert.Equal(t, "hashed", user.PasswordHash)
	assert.Equal(t, entity.RoleCustomer, user.Role)
	assert.True(t, user.IsActive)
	assert.False(t, user.IsStaff)
	assert.False(t, user.IsSuperuser)
	assert.NotEqual(t, uuid.Nil, user.ID)
}

func TestAccountService_CreateUser_EmptyEmail(t *testing.T) {
	fx := createTestAccountService(t)

	for _, email := range []string{"", "   "} {
		user, err := fx.service.CreateUser(context.Background(), email, "s3cret", usecase.UserFields{})

		assert.Nil(t, user)
		require.Error(t, err)
		assert.True(t, domainerrors.IsValidationError(err))
	}
}

func TestAccountService_CreateUser_OverridesWin(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	repos := newRepoMocks(t)

	first := "Ada"
	role := entity.RoleStaff
	expectExecute(ctx, fx.txManager, repos)
	repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.CreateUser(ctx, "ada@example.com", "", usecase.UserFields{
		FirstName: &first,
		Role:      &role,
		IsActive:  boolPtr(false),
		IsStaff:   boolPtr(true),
	})

	require.NoError(t, err)
	assert.Equal(t, "Ada", user.FirstName)
	assert.Equal(t, entity.RoleStaff, user.Role)
	assert.False(t, user.IsActive)
	assert.True(t, user.IsStaff)
	assert.False(t, user.HasUsablePassword())
}

func TestAccountService_CreateUser_PropagatesStorageError(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	repos := newRepoMocks(t)

	cause := errors.New("duplicated key not allowed")
	storageErr := domainerrors.NewConstraintViolationError(domainerrors.ConstraintUnique, "user", cause)

	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	expectExecute(ctx, fx.txManager, repos)
	repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(storageErr)

	user, err := fx.service.CreateUser(ctx, "dup@example.com", "pw", usecase.UserFields{})

	assert.Nil(t, user)
	require.Error(t, err)
	assert.True(t, errors.Is(err, cause))

	var violation *domainerrors.ConstraintViolationError
	require.True(t, errors.As(err, &violation))
	assert.Equal(t, domainerrors.ConstraintUnique, violation.Kind)
}

func TestAccountService_CreateUser_HashFailure(t *testing.T) {
	fx := createTestAccountService(t)

	fx.hasher.EXPECT().Hash("pw").Return("", errors.New("cost out of range"))

	_, err := fx.service.CreateUser(context.Background(), "a@example.com", "pw", usecase.UserFields{})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordHashFailed))
}

func TestAccountService_CreatePrivilegedUser_ForcesPrivileges(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	repos := newRepoMocks(t)

	customer := entity.RoleCustomer
	fx.hasher.EXPECT().Hash("root").Return("hashed", nil)
	expectExecute(ctx, fx.txManager, repos)
	repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.CreatePrivilegedUser(ctx, "root@example.com", "root", usecase.UserFields{Role: &customer})

	require.NoError(t, err)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsSuperuser)
	assert.Equal(t, entity.RoleAdmin, user.Role)
	assert.True(t, user.IsPrivileged())
}

func TestAccountService_CreatePrivilegedUser_ExplicitTrueIsAccepted(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	repos := newRepoMocks(t)

	fx.hasher.EXPECT().Hash("root").Return("hashed", nil)
	expectExecute(ctx, fx.txManager, repos)
	repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)

	user, err := fx.service.CreatePrivilegedUser(ctx, "root@example.com", "root", usecase.UserFields{
		IsStaff:     boolPtr(true),
		IsSuperuser: boolPtr(true),
	})

	require.NoError(t, err)
	assert.True(t, user.IsPrivileged())
}

func TestAccountService_CreatePrivilegedUser_RejectsContradictoryFlags(t *testing.T) {
	tests := []struct {
		name   string
		fields usecase.UserFields
		field  string
	}{
		{name: "staff false", fields: usecase.UserFields{IsStaff: boolPtr(false)}, field: "is_staff"},
		{name: "superuser false", fields: usecase.UserFields{IsSuperuser: boolPtr(false)}, field: "is_superuser"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)

			user, err := fx.service.CreatePrivilegedUser(context.Background(), "root@example.com", "root", tt.fields)

			assert.Nil(t, user)
			var validationErr *domainerrors.ValidationError
			require.True(t, errors.As(err, &validationErr))
			assert.Equal(t, tt.field, validationErr.Field)
		})
	}
}

func TestAccountService_Register_CreatesUserAndProfile(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	repos := newRepoMocks(t)
	userID := uuid.New()

	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	expectExecute(ctx, fx.txManager, repos)
	repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).
		RunAndReturn(func(_ context.Context, user *entity.User) error {
			user.ID = userID

			return nil
		})
	repos.profiles.EXPECT().Create(ctx, mock.MatchedBy(func(p *entity.Profile) bool {
		return p.UserID == userID
	})).Return(nil)

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{
		Email:     "new@Example.com",
		Password:  "pw",
		FirstName: "New",
		LastName:  "User",
	})

	require.NoError(t, err)
	assert.Equal(t, "new@example.com", user.Email)
	assert.Equal(t, "New User", user.FullName())
	require.NotNil(t, user.Profile)
	assert.Equal(t, userID, user.Profile.UserID)
}

func TestAccountService_Register_RequiresPassword(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Register(context.Background(), &usecase.RegisterInput{Email: "new@example.com"})

	assert.True(t, domainerrors.IsValidationError(err))
}

func TestAccountService_Register_ProfileFailureFailsWhole(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	repos := newRepoMocks(t)

	fx.hasher.EXPECT().Hash("pw").Return("hashed", nil)
	expectExecute(ctx, fx.txManager, repos)
	repos.users.EXPECT().Create(ctx, mock.AnythingOfType("*entity.User")).Return(nil)
	repos.profiles.EXPECT().Create(ctx, mock.AnythingOfType("*entity.Profile")).Return(errors.New("db down"))

	user, err := fx.service.Register(ctx, &usecase.RegisterInput{Email: "new@example.com", Password: "pw"})

	assert.Nil(t, user)
	assert.ErrorContains(t, err, "failed to create profile during registration")
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	repos := newRepoMocks(t)

	stored := &entity.User{
		ID:           uuid.New(),
		Email:        "staff@example.com",
		Role:         entity.RoleCustomer,
		PasswordHash: "hashed",
		IsStaff:      true,
		IsActive:     true,
	}

	expectExecute(ctx, fx.txManager, repos)
	repos.users.EXPECT().FindByEmail(ctx, "staff@example.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
	repos.users.EXPECT().Update(ctx, stored).Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(stored.ID, []string{"customer", "staff"}).Return("token", nil)

	out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: " staff@EXAMPLE.com", Password: "pw"})

	require.NoError(t, err)
	assert.Equal(t, "token", out.AccessToken)
	assert.Equal(t, stored, out.User)
	assert.NotNil(t, stored.LastLogin)
}

func TestAccountService_Login_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		setup func(fx accountServiceFixtures, repos *repoMocks)
	}{
		{
			name: "unknown email",
			setup: func(_ accountServiceFixtures, repos *repoMocks) {
				repos.users.EXPECT().FindByEmail(mock.Anything, "who@example.com").Return(nil, repository.ErrUserNotFound)
			},
		},
		{
			name: "inactive user",
			setup: func(_ accountServiceFixtures, repos *repoMocks) {
				repos.users.EXPECT().FindByEmail(mock.Anything, "who@example.com").
					Return(&entity.User{PasswordHash: "hashed", IsActive: false}, nil)
			},
		},
		{
			name: "unusable password",
			setup: func(_ accountServiceFixtures, repos *repoMocks) {
				repos.users.EXPECT().FindByEmail(mock.Anything, "who@example.com").
					Return(&entity.User{PasswordHash: "!locked", IsActive: true}, nil)
			},
		},
		{
			name: "wrong password",
			setup: func(fx accountServiceFixtures, repos *repoMocks) {
				repos.users.EXPECT().FindByEmail(mock.Anything, "who@example.com").
					Return(&entity.User{PasswordHash: "hashed", IsActive: true}, nil)
				fx.hasher.EXPECT().Check("pw", "hashed").Return(false)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestAccountService(t)
			ctx := context.Background()
			repos := newRepoMocks(t)

			expectExecute(ctx, fx.txManager, repos)
			tt.setup(fx, repos)

			out, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "who@example.com", Password: "pw"})

			assert.Nil(t, out)
			assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
		})
	}
}

func TestAccountService_Login_TokenFailure(t *testing.T) {
	fx := createTestAccountService(t)
	ctx := context.Background()
	repos := newRepoMocks(t)

	stored := &entity.User{ID: uuid.New(), Role: entity.RoleAdmin, PasswordHash: "hashed", IsActive: true}

	expectExecute(ctx, fx.txManager, repos)
	repos.users.EXPECT().FindByEmail(ctx, "a@example.com").Return(stored, nil)
	fx.hasher.EXPECT().Check("pw", "hashed").Return(true)
	repos.users.EXPECT().Update(ctx, stored).Return(nil)
	fx.tokenService.EXPECT().GenerateAccessToken(stored.ID, []string{"admin"}).Return("", errors.New("no key"))

	_, err := fx.service.Login(ctx, &usecase.LoginInput{Email: "a@example.com", Password: "pw"})

	assert.True(t, errors.Is(err, domainerrors.ErrTokenGenerationFailed))
}
