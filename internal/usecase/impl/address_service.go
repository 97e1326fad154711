package impl

import (
	"context"
	"log/slog"
	"sort"

	apivalidator "account/internal/delivery/api/validator"
	deliverycontext "account/internal/delivery/context"
	"account/internal/domain/entity"
	domainerrors "account/internal/domain/errors"
	"account/internal/domain/repository"
	"account/internal/infra/metrics"
	"account/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// addressService implements the AddressUsecase interface.
type addressService struct {
	txManager repository.TransactionManager
	logger    *slog.Logger
}

// NewAddressService is the constructor for addressService.
func NewAddressService(
	txManager repository.TransactionManager,
	logger *slog.Logger,
) usecase.AddressUsecase {
	return &addressService{
		txManager: txManager,
		logger:    logger,
	}
}

func (srv *addressService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SaveAddress persists the address and, when the owning profile has no default yet,
// makes it the default inside the same transaction.
func (srv *addressService) SaveAddress(ctx context.Context, address *entity.DeliveryAddress) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return srv.saveAddress(ctx, repoFactory, address)
	})
	if err != nil {
		return errors.Wrap(err, "failed to save address")
	}

	return nil
}

// saveAddress locks the profile row before writing so concurrent first saves serialize.
// The conditional update still guards the default when the lock is unavailable.
func (srv *addressService) saveAddress(ctx context.Context, repoFactory repository.RepositoryFactory, address *entity.DeliveryAddress) error {
	profileRepo := repoFactory.NewProfileRepository()
	addressRepo := repoFactory.NewAddressRepository()

	profile, err := profileRepo.FindByUserIDForUpdate(ctx, address.ProfileID)
	if errors.Is(err, repository.ErrProfileNotFound) {
		return errors.Wrap(domainerrors.ErrProfileNotFound, "cannot save address")
	}
	if err != nil {
		return errors.Wrap(err, "failed to lock profile")
	}

	if address.ID == uuid.Nil {
		if err := addressRepo.Create(ctx, address); err != nil {
			return errors.Wrap(err, "failed to create address")
		}
	} else if err := addressRepo.Update(ctx, address); err != nil {
		if errors.Is(err, repository.ErrAddressNotFound) {
			return errors.Wrap(domainerrors.ErrAddressNotFound, "cannot save address")
		}

		return errors.Wrap(err, "failed to update address")
	}

	if profile.HasDefaultAddress() {
		metrics.ObserveAddressSave(false)

		return nil
	}

	assigned, err := profileRepo.AssignDefaultAddressIfEmpty(ctx, profile.UserID, address.ID)
	if err != nil {
		return errors.Wrap(err, "failed to assign default address")
	}
	metrics.ObserveAddressSave(assigned)
	if assigned {
		srv.log(ctx).Info("Default address assigned", slog.Any("userID", profile.UserID), slog.Any("addressID", address.ID))
	}

	return nil
}

// ListAddresses returns the default address first, then the others by creation time.
func (srv *addressService) ListAddresses(ctx context.Context, userID uuid.UUID) ([]*entity.DeliveryAddress, error) {
	var addresses []*entity.DeliveryAddress
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		profile, err := findProfile(ctx, repoFactory.NewProfileRepository(), userID)
		if err != nil {
			return err
		}

		found, err := repoFactory.NewAddressRepository().FindByProfile(ctx, userID)
		if err != nil {
			return errors.Wrap(err, "failed to find addresses")
		}
		addresses = defaultFirst(found, profile.DefaultAddressID)

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list addresses")
	}

	return addresses, nil
}

func defaultFirst(addresses []*entity.DeliveryAddress, defaultID *uuid.UUID) []*entity.DeliveryAddress {
	if defaultID == nil {
		return addresses
	}

	sort.SliceStable(addresses, func(i, j int) bool {
		return addresses[i].ID == *defaultID && addresses[j].ID != *defaultID
	})

	return addresses
}

// AddAddress creates a new address for the user's profile.
func (srv *addressService) AddAddress(ctx context.Context, userID uuid.UUID, input *usecase.AddressInput) (*entity.DeliveryAddress, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	address := &entity.DeliveryAddress{ProfileID: userID}
	applyAddressInput(address, input)

	if err := srv.SaveAddress(ctx, address); err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("Address added", slog.Any("userID", userID), slog.Any("addressID", address.ID))

	return address, nil
}

// UpdateAddress rewrites an address owned by the user.
func (srv *addressService) UpdateAddress(ctx context.Context, userID, addressID uuid.UUID, input *usecase.AddressInput) (*entity.DeliveryAddress, error) {
	if err := validateAddressInput(input); err != nil {
		return nil, err
	}

	var address *entity.DeliveryAddress
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		found, err := findOwnedAddress(ctx, repoFactory.NewAddressRepository(), userID, addressID)
		if err != nil {
			return err
		}
		applyAddressInput(found, input)

		if err := srv.saveAddress(ctx, repoFactory, found); err != nil {
			return err
		}
		address = found

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to update address")
	}

	return address, nil
}

// DeleteAddress removes an address owned by the user.
// If it was the default, the schema clears the profile reference.
func (srv *addressService) DeleteAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		addressRepo := repoFactory.NewAddressRepository()

		if _, err := findOwnedAddress(ctx, addressRepo, userID, addressID); err != nil {
			return err
		}
		if err := addressRepo.Delete(ctx, addressID); err != nil {
			return errors.Wrap(err, "failed to delete address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to delete address")
	}

	srv.log(ctx).Info("Address deleted", slog.Any("userID", userID), slog.Any("addressID", addressID))

	return nil
}

// SetDefaultAddress points the profile default at one of its own addresses.
func (srv *addressService) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := findOwnedAddress(ctx, repoFactory.NewAddressRepository(), userID, addressID); err != nil {
			return err
		}

		err := repoFactory.NewProfileRepository().SetDefaultAddress(ctx, userID, addressID)
		if errors.Is(err, repository.ErrProfileNotFound) {
			return errors.Wrap(domainerrors.ErrProfileNotFound, "cannot set default address")
		}
		if err != nil {
			return errors.Wrap(err, "failed to set default address")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to set default address")
	}

	return nil
}

// findOwnedAddress loads the address and checks that it belongs to the user's profile.
func findOwnedAddress(ctx context.Context, addressRepo repository.AddressRepository, userID, addressID uuid.UUID) (*entity.DeliveryAddress, error) {
	address, err := addressRepo.FindByID(ctx, addressID)
	if errors.Is(err, repository.ErrAddressNotFound) {
		return nil, errors.Wrap(domainerrors.ErrAddressNotFound, "address not found")
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find address")
	}

	if address.ProfileID != userID {
		return nil, errors.Wrap(domainerrors.ErrAddressOwnershipViolation, "address belongs to another profile")
	}

	return address, nil
}

func applyAddressInput(address *entity.DeliveryAddress, input *usecase.AddressInput) {
	address.House = input.House
	address.Street = input.Street
	address.Block = input.Block
	address.Area = input.Area
	address.City = input.City
	address.PostalCode = input.PostalCode
}

var addressValidator = apivalidator.New()

func validateAddressInput(input *usecase.AddressInput) error {
	err := addressValidator.Validate(input)
	if err == nil {
		return nil
	}

	field, tag, ok := apivalidator.FirstFieldError(err)
	if !ok {
		return err
	}

	switch tag {
	case "required":
		return domainerrors.NewValidationError(field, "must be set")
	case "max":
		return domainerrors.NewValidationError(field, "is too long")
	default:
		return domainerrors.NewValidationError(field, "failed "+tag)
	}
}
