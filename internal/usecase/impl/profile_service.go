// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"unicode/utf8"

	deliverycontext "account/internal/delivery/context"
	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const maxPhoneLength = 20

// profileService implements the ProfileUsecase interface.
type profileService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// GetProfile retrieves the profile with its user and default address.
func (srv *profileService) GetProfile(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	srv.log(ctx).Debug("Getting profile", slog.Any("userID", userID))

	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findProfile(ctx, repoFactory.NewProfileRepository(), userID)
		if err != nil {
			return err
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get profile")
	}

	return profile, nil
}

// UpdateProfile applies a partial update of the personal fields.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.Profile, error) {
	srv.log(ctx).Info("Updating profile", slog.Any("userID", userID))

	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	var profile *entity.Profile
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profileRepo := repoFactory.NewProfileRepository()

		found, err := findProfile(ctx, profileRepo, userID)
		if err != nil {
			return err
		}

		if input.BirthDate != nil {
			found.BirthDate = input.BirthDate
		}
		if input.Gender != nil {
			found.Gender = input.Gender
		}
		if input.Phone != nil {
			found.Phone = input.Phone
		}

		if err := profileRepo.Update(ctx, found); err != nil {
			return errors.Wrap(err, "failed to update profile")
		}
		profile = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update profile")
	}

	return profile, nil
}

func validateProfileInput(input *usecase.UpdateProfileInput) error {
	if input.Gender != nil && !input.Gender.IsValid() {
		return domainerrors.NewValidationError("gender", "must be one of M, F, O")
	}
	if input.Phone != nil && utf8.RuneCountInString(*input.Phone) > maxPhoneLength {
		return domainerrors.NewValidationError("phone", "must be at most 20 characters")
	}

	return nil
}

// findProfile maps the repository miss to the domain not-found error.
func findProfile(ctx context.Context, profileRepo repository.ProfileRepository, userID uuid.UUID) (*entity.Profile, error) {
	profile, err := profileRepo.FindByUserID(ctx, userID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find profile")
	}

	return profile, nil
}
