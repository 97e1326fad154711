package postgres

import (
	"context"
	"time"

	"account/internal/domain/entity"
	"account/internal/domain/repository"
	"account/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// addressRepository implements the domain.AddressRepository interface.
type addressRepository struct {
	db *gorm.DB
}

// NewAddressRepository is the constructor for addressRepository.
func NewAddressRepository(db *gorm.DB) repository.AddressRepository {
	return &addressRepository{db: db}
}

// Create persists a new address for a profile.
func (repo *addressRepository) Create(ctx context.Context, address *entity.DeliveryAddress) error {
	addressM := fromAddressDomain(address)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(addressM).Error; err != nil {
		return translateWriteError(err, "delivery address", "failed to create address")
	}

	// Update the entity with generated values
	address.ID = addressM.ID
	address.CreatedAt = addressM.CreatedAt
	address.UpdatedAt = addressM.UpdatedAt

	return nil
}

// Update modifies the fields of an existing address. The owning profile never changes.
func (repo *addressRepository) Update(ctx context.Context, address *entity.DeliveryAddress) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.DeliveryAddressModel{}).
		Where("id = ?", address.ID).
		Updates(map[string]any{
			"house":       address.House,
			"street":      address.Street,
			"block":       address.Block,
			"area":        address.Area,
			"city":        address.City,
			"postal_code": address.PostalCode,
			"updated_at":  now,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "delivery address", "failed to update address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	address.UpdatedAt = now

	return nil
}

// FindByID retrieves an address by its unique ID.
func (repo *addressRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.DeliveryAddress, error) {
	var addressM model.DeliveryAddressModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&addressM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrAddressNotFound
		}

		return nil, errors.Wrap(err, "failed to find address by ID")
	}

	return toAddressDomain(&addressM), nil
}

// FindByProfile retrieves all addresses of a profile, oldest first.
func (repo *addressRepository) FindByProfile(ctx context.Context, profileID uuid.UUID) ([]*entity.DeliveryAddress, error) {
	var addressModels []*model.DeliveryAddressModel
	err := repo.db.WithContext(ctx).
		Where("profile_id = ?", profileID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&addressModels).Error
	if err != nil {
		return nil, errors.Wrap(err, "failed to find addresses by profile")
	}

	addresses := make([]*entity.DeliveryAddress, 0, len(addressModels))
	for _, addressM := range addressModels {
		addresses = append(addresses, toAddressDomain(addressM))
	}

	return addresses, nil
}

// Delete removes an address by its ID. Any profile using it as default is set to no default.
func (repo *addressRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.DeliveryAddressModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete address")
	}

	// If no rows were affected, it means the address was not found.
	if result.RowsAffected == 0 {
		return repository.ErrAddressNotFound
	}

	return nil
}
