// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "account/internal/delivery/context"
	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/domain/service"
	"account/internal/infra/metrics"
	"account/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	creationKindRegular    = "regular"
	creationKindPrivileged = "privileged"
)

// accountService implements the AccountUsecase interface.
type accountService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	return &accountService{
		txManager:    params.TxManager,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// CreateUser normalizes the email, hashes the password and persists the user.
// Unset fields take the defaults: active, not staff, not superuser, customer role.
func (srv *accountService) CreateUser(ctx context.Context, email, password string, fields usecase.UserFields) (*entity.User, error) {
	user, err := srv.createUser(ctx, email, password, fields)
	metrics.ObserveUserCreation(creationKindRegular, metrics.ResultOf(err, domainerrors.IsValidationError))

	return user, err
}

// CreatePrivilegedUser creates a user holding every permission.
// Explicitly passing is_staff=false or is_superuser=false is rejected.
func (srv *accountService) CreatePrivilegedUser(ctx context.Context, email, password string, fields usecase.UserFields) (*entity.User, error) {
	user, err := srv.createPrivilegedUser(ctx, email, password, fields)
	metrics.ObserveUserCreation(creationKindPrivileged, metrics.ResultOf(err, domainerrors.IsValidationError))

	return user, err
}

func (srv *accountService) createPrivilegedUser(ctx context.Context, email, password string, fields usecase.UserFields) (*entity.User, error) {
	if fields.IsStaff != nil && !*fields.IsStaff {
		return nil, domainerrors.NewValidationError("is_staff", "superuser must have is_staff=true")
	}
	if fields.IsSuperuser != nil && !*fields.IsSuperuser {
		return nil, domainerrors.NewValidationError("is_superuser", "superuser must have is_superuser=true")
	}

	staff, superuser, role := true, true, entity.RoleAdmin
	fields.IsStaff = &staff
	fields.IsSuperuser = &superuser
	fields.Role = &role

	return srv.createUser(ctx, email, password, fields)
}

func (srv *accountService) createUser(ctx context.Context, email, password string, fields usecase.UserFields) (*entity.User, error) {
	user, err := srv.buildUser(email, password, fields)
	if err != nil {
		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create user", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user creation transaction")
	}

	srv.log(ctx).Info("User created",
		slog.Any("userID", user.ID),
		slog.String("role", user.Role.String()),
		slog.Bool("isStaff", user.IsStaff),
		slog.Bool("isSuperuser", user.IsSuperuser),
	)

	return user, nil
}

// buildUser applies the defaults and the overrides, then sets the credential.
func (srv *accountService) buildUser(email, password string, fields usecase.UserFields) (*entity.User, error) {
	normalized := entity.NormalizeEmail(email)
	if normalized == "" {
		return nil, domainerrors.NewValidationError("email", "the email must be set")
	}

	user := &entity.User{
		Email:    normalized,
		Role:     entity.RoleCustomer,
		IsActive: true,
	}
	applyUserFields(user, fields)

	if err := srv.setPassword(user, password); err != nil {
		return nil, err
	}

	return user, nil
}

func applyUserFields(user *entity.User, fields usecase.UserFields) {
	if fields.FirstName != nil {
		user.FirstName = *fields.FirstName
	}
	if fields.LastName != nil {
		user.LastName = *fields.LastName
	}
	if fields.Role != nil {
		user.Role = *fields.Role
	}
	if fields.IsStaff != nil {
		user.IsStaff = *fields.IsStaff
	}
	if fields.IsSuperuser != nil {
		user.IsSuperuser = *fields.IsSuperuser
	}
	if fields.IsActive != nil {
		user.IsActive = *fields.IsActive
	}
}

// setPassword hashes the password. An empty password leaves the account without a usable one.
func (srv *accountService) setPassword(user *entity.User, password string) error {
	if password == "" {
		user.SetUnusablePassword()

		return nil
	}

	hash, err := srv.hasher.Hash(password)
	if err != nil {
		return errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
	}
	user.PasswordHash = hash

	return nil
}

// Register creates a customer account together with its empty profile.
func (srv *accountService) Register(ctx context.Context, input *usecase.RegisterInput) (*entity.User, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	if input.Password == "" {
		return nil, domainerrors.NewValidationError("password", "the password must be set")
	}

	user, err := srv.buildUser(input.Email, input.Password, usecase.UserFields{
		FirstName: &input.FirstName,
		LastName:  &input.LastName,
	})
	if err != nil {
		metrics.ObserveUserCreation(creationKindRegular, metrics.ResultOf(err, domainerrors.IsValidationError))

		return nil, err
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().Create(ctx, user); err != nil {
			return errors.Wrap(err, "failed to create user during registration")
		}

		profile := &entity.Profile{UserID: user.ID}
		if err := repoFactory.NewProfileRepository().Create(ctx, profile); err != nil {
			return errors.Wrap(err, "failed to create profile during registration")
		}
		user.Profile = profile

		return nil
	})
	metrics.ObserveUserCreation(creationKindRegular, metrics.ResultOf(err, domainerrors.IsValidationError))
	if err != nil {
		srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", user.Email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute registration transaction")
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return user, nil
}

// Login verifies the credential, stamps the last login time and issues an access token.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	email := entity.NormalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting user login", slog.String("email", email))

	var output *usecase.LoginOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.NewUserRepository()

		user, err := userRepo.FindByEmail(ctx, email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}
		if err != nil {
			return errors.Wrap(err, "failed to find user by email")
		}

		if !srv.verifyCredential(user, input.Password) {
			return errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		now := time.Now().UTC()
		user.LastLogin = &now
		if err := userRepo.Update(ctx, user); err != nil {
			return errors.Wrap(err, "failed to record last login")
		}

		accessToken, err := srv.tokenService.GenerateAccessToken(user.ID, user.TokenRoles().ToStrings())
		if err != nil {
			return errors.Wrap(domainerrors.ErrTokenGenerationFailed, err.Error())
		}

		output = &usecase.LoginOutput{AccessToken: accessToken, User: user}

		return nil
	})
	metrics.ObserveLogin(metrics.ResultOf(err, isInvalidCredentials))
	if err != nil {
		srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user login transaction")
	}

	srv.log(ctx).Debug("User logged in successfully", slog.Any("userID", output.User.ID))

	return output, nil
}

func (srv *accountService) verifyCredential(user entity.Authenticatable, password string) bool {
	if !user.CanAuthenticate() || !user.HasUsablePassword() {
		return false
	}

	return srv.hasher.Check(password, user.CredentialHash())
}

func isInvalidCredentials(err error) bool {
	return errors.Is(err, domainerrors.ErrInvalidCredentials)
}
