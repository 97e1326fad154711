package impl

import (
	"context"
	"testing"
	"time"

	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	mockRepo "account/internal/mocks/repository"
	"account/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// adminServiceFixtures holds all test dependencies for admin service tests.
type adminServiceFixtures struct {
	service   usecase.AdminUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestAdminService(t *testing.T, userPageSize, profilePageSize int) adminServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return adminServiceFixtures{
		service: NewAdminService(AdminServiceParams{
			TxManager: txManager,
			Config:    newTestConfig(userPageSize, profilePageSize),
			Logger:    newDiscardLogger(),
		}),
		txManager: txManager,
	}
}

func TestAdminService_ListUsers_BuildsFilter(t *testing.T) {
	fx := createTestAdminService(t, 10, 20)
	ctx := context.Background()
	repos := newRepoMocks(t)

	role := entity.RoleStaff
	active := true
	users := []*entity.User{{Email: "a@example.com"}}

	expectExecute(ctx, fx.txManager, repos)
	repos.users.EXPECT().List(ctx, repository.UserListFilter{
		Search:   "ann",
		Role:     &role,
		IsActive: &active,
		Page:     repository.Page{Number: 3, Size: 10},
	}).Return(users, 21, nil)

	page, err := fx.service.ListUsers(ctx, &usecase.UserListQuery{Search: "ann", Role: &role, IsActive: &active, Page: 3})

	require.NoError(t, err)
	assert.Equal(t, users, page.Users)
	assert.Equal(t, usecase.PageInfo{Page: 3, PageSize: 10, Total: 21}, page.PageInfo)
}

func TestAdminService_ListUsers_DefaultsToFirstPage(t *testing.T) {
	fx := createTestAdminService(t, 0, 0)
	ctx := context.Background()
	repos := newRepoMocks(t)

	expectExecute(ctx, fx.txManager, repos)
	repos.users.EXPECT().List(ctx, repository.UserListFilter{Page: repository.Page{Number: 1, Size: 10}}).Return(nil, 0, nil)

	page, err := fx.service.ListUsers(ctx, &usecase.UserListQuery{Page: -4})

	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
}

func TestAdminService_ListUsers_RejectsUnknownRole(t *testing.T) {
	fx := createTestAdminService(t, 10, 20)

	role := entity.Role("owner")
	_, err := fx.service.ListUsers(context.Background(), &usecase.UserListQuery{Role: &role})

	assert.True(t, domainerrors.IsValidationError(err))
}

func TestAdminService_ListProfiles_BuildsFilter(t *testing.T) {
	fx := createTestAdminService(t, 10, 20)
	ctx := context.Background()
	repos := newRepoMocks(t)

	gender := entity.GenderOther
	after := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	before := after.AddDate(0, 1, 0)

	expectExecute(ctx, fx.txManager, repos)
	repos.profiles.EXPECT().List(ctx, repository.ProfileListFilter{
		Search:        "555",
		Gender:        &gender,
		CreatedAfter:  &after,
		CreatedBefore: &before,
		Page:          repository.Page{Number: 1, Size: 20},
	}).Return([]*entity.Profile{{}}, 1, nil)

	page, err := fx.service.ListProfiles(ctx, &usecase.ProfileListQuery{
		Search:        "555",
		Gender:        &gender,
		CreatedAfter:  &after,
		CreatedBefore: &before,
	})

	require.NoError(t, err)
	assert.Len(t, page.Profiles, 1)
	assert.Equal(t, 20, page.PageSize)
}

func TestAdminService_ListProfiles_RejectsInvertedRange(t *testing.T) {
	fx := createTestAdminService(t, 10, 20)

	after := time.Now()
	before := after.Add(-time.Hour)
	_, err := fx.service.ListProfiles(context.Background(), &usecase.ProfileListQuery{CreatedAfter: &after, CreatedBefore: &before})

	assert.True(t, domainerrors.IsValidationError(err))
}

func TestAdminService_ListProfiles_PropagatesError(t *testing.T) {
	fx := createTestAdminService(t, 10, 20)
	ctx := context.Background()
	repos := newRepoMocks(t)

	expectExecute(ctx, fx.txManager, repos)
	repos.profiles.EXPECT().List(ctx, repository.ProfileListFilter{Page: repository.Page{Number: 1, Size: 20}}).
		Return(nil, 0, errors.New("db down"))

	_, err := fx.service.ListProfiles(ctx, &usecase.ProfileListQuery{})

	assert.ErrorContains(t, err, "db down")
}
