package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	mockRepo "account/internal/mocks/repository"
	"account/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service   usecase.ProfileUsecase
	txManager *mockRepo.MockTransactionManager
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)

	return profileServiceFixtures{
		service:   NewProfileService(txManager, newDiscardLogger()),
		txManager: txManager,
	}
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	repos := newRepoMocks(t)
	userID := uuid.New()

	expected := &entity.Profile{UserID: userID, User: &entity.User{ID: userID, Email: "p@example.com"}}

	expectExecute(ctx, fx.txManager, repos)
	repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(expected, nil)

	profile, err := fx.service.GetProfile(ctx, userID)

	require.NoError(t, err)
	assert.Equal(t, expected, profile)
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	repos := newRepoMocks(t)
	userID := uuid.New()

	expectExecute(ctx, fx.txManager, repos)
	repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(nil, repository.ErrProfileNotFound)

	profile, err := fx.service.GetProfile(ctx, userID)

	assert.Nil(t, profile)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_UpdateProfile_PartialUpdate(t *testing.T) {
	fx := createTestProfileService(t)
	ctx := context.Background()
	repos := newRepoMocks(t)
	userID := uuid.New()

	oldPhone := "555-0100"
	stored := &entity.Profile{UserID: userID, Phone: &oldPhone}
	gender := entity.GenderFemale
	birth := time.Date(1990, 4, 2, 0, 0, 0, 0, time.UTC)

	expectExecute(ctx, fx.txManager, repos)
	repos.profiles.EXPECT().FindByUserID(ctx, userID).Return(stored, nil)
	repos.profiles.EXPECT().Update(ctx, stored).Return(nil)

	profile, err := fx.service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{
		BirthDate: &birth,
		Gender:    &gender,
	})

	require.NoError(t, err)
	assert.Equal(t, &gender, profile.Gender)
	assert.Equal(t, &birth, profile.BirthDate)
	assert.Equal(t, "555-0100", *profile.Phone)
}

func TestProfileService_UpdateProfile_Validation(t *testing.T) {
	fx := createTestProfileService(t)

	unknown := entity.Gender("X")
	_, err := fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{Gender: &unknown})
	assert.True(t, domainerrors.IsValidationError(err))

	phone := strings.Repeat("1", 21)
	_, err = fx.service.UpdateProfile(context.Background(), uuid.New(), &usecase.UpdateProfileInput{Phone: &phone})
	assert.True(t, domainerrors.IsValidationError(err))
}
