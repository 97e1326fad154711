package handler

import (
	"context"
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

func newProfileHandler(t *testing.T) (*ProfileHandler, *mockUsecase.MockProfileUsecase) {
	profileUC := mockUsecase.NewMockProfileUsecase(t)

	return NewProfileHandler(ProfileHandlerParams{ProfileUC: profileUC, Logger: newDiscardLogger()}), profileUC
}

func TestProfileHandler_GetProfile(t *testing.T) {
	h, profileUC := newProfileHandler(t)
	userID := uuid.New()
	addressID := uuid.New()
	birthDate := time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)
	gender := entity.GenderFemale

	profileUC.EXPECT().
		GetProfile(mock.Anything, userID).
		Return(&entity.Profile{
			UserID:           userID,
			BirthDate:        &birthDate,
			Gender:           &gender,
			DefaultAddressID: &addressID,
			DefaultAddress: &entity.DeliveryAddress{
				ID:         addressID,
				ProfileID:  userID,
				House:      "12",
				Street:     "Main St",
				Area:       "Downtown",
				City:       "Springfield",
				PostalCode: "12345",
			},
		}, nil)

	c, rec := newTestContext(http.MethodGet, "/api/v1/profile", "")
	authenticate(c, userID)

	require.NoError(t, h.GetProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeData[ProfileResponse](t, rec)
	require.NotNil(t, resp.BirthDate)
	assert.Equal(t, "1990-12-10", *resp.BirthDate)
	require.NotNil(t, resp.Gender)
	assert.Equal(t, "F", *resp.Gender)
	assert.Equal(t, "Female", resp.GenderLabel)
	require.NotNil(t, resp.DefaultAddress)
	assert.True(t, resp.DefaultAddress.IsDefault)
	assert.Equal(t, "12, Main St, Downtown, Springfield, 12345", resp.DefaultAddress.Display)
}

func TestProfileHandler_GetProfile_RequiresUser(t *testing.T) {
	h, _ := newProfileHandler(t)

	c, rec := newTestContext(http.MethodGet, "/api/v1/profile", "")

	require.NoError(t, h.GetProfile(c))
	assertErrorCode(t, rec, http.StatusUnauthorized, "INVALID_TOKEN")
}

func TestProfileHandler_GetProfile_NotFound(t *testing.T) {
	h, profileUC := newProfileHandler(t)
	userID := uuid.New()

	profileUC.EXPECT().
		GetProfile(mock.Anything, userID).
		Return(nil, errors.Wrap(domainerrors.ErrProfileNotFound, "get profile"))

	c, rec := newTestContext(http.MethodGet, "/api/v1/profile", "")
	authenticate(c, userID)

	require.NoError(t, h.GetProfile(c))
	assertErrorCode(t, rec, http.StatusNotFound, "PROFILE_NOT_FOUND")
}

func TestProfileHandler_UpdateProfile(t *testing.T) {
	h, profileUC := newProfileHandler(t)
	userID := uuid.New()
	phone := "+1 555 0100"

	profileUC.EXPECT().
		UpdateProfile(mock.Anything, userID, mock.MatchedBy(func(input *usecase.UpdateProfileInput) bool {
			return input.BirthDate != nil && input.BirthDate.Equal(time.Date(1990, 12, 10, 0, 0, 0, 0, time.UTC)) &&
				input.Gender != nil && *input.Gender == entity.GenderOther &&
				input.Phone != nil && *input.Phone == phone
		})).
		RunAndReturn(func(_ context.Context, id uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
			return &entity.Profile{UserID: id, BirthDate: input.BirthDate, Gender: input.Gender, Phone: input.Phone}, nil
		})

	c, rec := newTestContext(http.MethodPatch, "/api/v1/profile",
		`{"birth_date":"1990-12-10","gender":"O","phone":"+1 555 0100"}`)
	authenticate(c, userID)

	require.NoError(t, h.UpdateProfile(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	resp := decodeData[ProfileResponse](t, rec)
	require.NotNil(t, resp.Phone)
	assert.Equal(t, phone, *resp.Phone)
	assert.Equal(t, "Other", resp.GenderLabel)
}

func TestProfileHandler_UpdateProfile_ValidationFailed(t *testing.T) {
	h, _ := newProfileHandler(t)

	c, rec := newTestContext(http.MethodPatch, "/api/v1/profile", `{"gender":"X","birth_date":"10/12/1990"}`)
	authenticate(c, uuid.New())

	require.NoError(t, h.UpdateProfile(c))
	assertErrorCode(t, rec, http.StatusBadRequest, "VALIDATION_FAILED")

	env := decodeEnvelope(t, rec)
	assert.Equal(t, "oneof", env.Error.Details["gender"])
	assert.Equal(t, "datetime", env.Error.Details["birth_date"])
}
