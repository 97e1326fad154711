package impl

import (
	"context"
	"log/slog"

	"account/config"
	deliverycontext "account/internal/delivery/context"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// adminService implements the AdminUsecase interface.
type adminService struct {
	txManager       repository.TransactionManager
	userPageSize    int
	profilePageSize int
	logger          *slog.Logger
}

// AdminServiceParams holds dependencies for AdminService, injected by Fx.
type AdminServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAdminService is the constructor for adminService.
func NewAdminService(params AdminServiceParams) usecase.AdminUsecase {
	userPageSize, profilePageSize := config.DefaultUserPageSize, config.DefaultProfilePageSize
	if params.Config != nil && params.Config.Admin != nil {
		if params.Config.Admin.UserPageSize > 0 {
			userPageSize = params.Config.Admin.UserPageSize
		}
		if params.Config.Admin.ProfilePageSize > 0 {
			profilePageSize = params.Config.Admin.ProfilePageSize
		}
	}

	return &adminService{
		txManager:       params.TxManager,
		userPageSize:    userPageSize,
		profilePageSize: profilePageSize,
		logger:          params.Logger,
	}
}

func (srv *adminService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ListUsers returns one page of users ordered by first name then last name.
func (srv *adminService) ListUsers(ctx context.Context, query *usecase.UserListQuery) (*usecase.UserPage, error) {
	if query.Role != nil && !query.Role.IsValid() {
		return nil, domainerrors.NewValidationError("role", "unknown role")
	}

	filter := repository.UserListFilter{
		Search:   query.Search,
		Role:     query.Role,
		IsActive: query.IsActive,
		Page:     repository.Page{Number: normalizePage(query.Page), Size: srv.userPageSize},
	}

	page := &usecase.UserPage{PageInfo: usecase.PageInfo{Page: filter.Page.Number, PageSize: filter.Page.Size}}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		users, total, err := repoFactory.NewUserRepository().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list users")
		}
		page.Users = users
		page.Total = total

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list users", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list users")
	}

	return page, nil
}

// ListProfiles returns one page of profiles ordered by creation time.
func (srv *adminService) ListProfiles(ctx context.Context, query *usecase.ProfileListQuery) (*usecase.ProfilePage, error) {
	if query.Gender != nil && !query.Gender.IsValid() {
		return nil, domainerrors.NewValidationError("gender", "must be one of M, F, O")
	}
	if query.CreatedAfter != nil && query.CreatedBefore != nil && query.CreatedBefore.Before(*query.CreatedAfter) {
		return nil, domainerrors.NewValidationError("created_before", "must not precede created_after")
	}

	filter := repository.ProfileListFilter{
		Search:        query.Search,
		Gender:        query.Gender,
		CreatedAfter:  query.CreatedAfter,
		CreatedBefore: query.CreatedBefore,
		Page:          repository.Page{Number: normalizePage(query.Page), Size: srv.profilePageSize},
	}

	page := &usecase.ProfilePage{PageInfo: usecase.PageInfo{Page: filter.Page.Number, PageSize: filter.Page.Size}}
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profiles, total, err := repoFactory.NewProfileRepository().List(ctx, filter)
		if err != nil {
			return errors.Wrap(err, "failed to list profiles")
		}
		page.Profiles = profiles
		page.Total = total

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to list profiles", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to list profiles")
	}

	return page, nil
}

func normalizePage(page int) int {
	if page < 1 {
		return 1
	}

	return page
}
