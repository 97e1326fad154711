package postgres

import (
	"context"
	"strings"
	"time"

	"account/internal/domain/entity"
	"account/internal/domain/repository"
	"account/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/plugin/dbresolver"
)

// profileRepository implements the domain.ProfileRepository interface using GORM.
type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository is the constructor for profileRepository.
func NewProfileRepository(db *gorm.DB) repository.ProfileRepository {
	return &profileRepository{db: db}
}

// Create persists a new profile for an existing user.
func (repo *profileRepository) Create(ctx context.Context, profile *entity.Profile) error {
	profileM := fromProfileDomain(profile)

	if err := repo.db.WithContext(ctx).Omit(clause.Associations).Create(profileM).Error; err != nil {
		return translateWriteError(err, "profile", "failed to create profile")
	}

	profile.CreatedAt = profileM.CreatedAt
	profile.UpdatedAt = profileM.UpdatedAt

	return nil
}

// FindByUserID retrieves a profile with its user and default address preloaded.
func (repo *profileRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Preload("User").
		Preload("DefaultAddress").
		Where("user_id = ?", userID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to find profile by user id")
	}

	return toProfileDomain(&profileM), nil
}

// FindByUserIDForUpdate locks the profile row for the rest of the transaction.
// Locking reads always go to the primary, never to a replica.
func (repo *profileRepository) FindByUserIDForUpdate(ctx context.Context, userID uuid.UUID) (*entity.Profile, error) {
	var profileM model.ProfileModel
	err := repo.db.WithContext(ctx).
		Clauses(dbresolver.Write, clause.Locking{Strength: clause.LockingStrengthUpdate}).
		Where("user_id = ?", userID).
		First(&profileM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProfileNotFound
		}

		return nil, errors.Wrap(err, "failed to lock profile")
	}

	return toProfileDomain(&profileM), nil
}

// Update writes the personal fields of the profile. The default address is managed separately.
func (repo *profileRepository) Update(ctx context.Context, profile *entity.Profile) error {
	now := time.Now()
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]any{
			"birth_date": profile.BirthDate,
			"gender":     genderColumn(profile.Gender),
			"phone":      profile.Phone,
			"updated_at": now,
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "profile", "failed to update profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	profile.UpdatedAt = now

	return nil
}

// AssignDefaultAddressIfEmpty is a compare-and-set on the default address column.
// Of several concurrent callers at most one observes true.
func (repo *profileRepository) AssignDefaultAddressIfEmpty(ctx context.Context, userID, addressID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ? AND default_address_id IS NULL", userID).
		Updates(map[string]any{
			"default_address_id": addressID,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return false, translateWriteError(result.Error, "profile", "failed to assign default address")
	}

	return result.RowsAffected > 0, nil
}

// SetDefaultAddress replaces the default address of a profile.
func (repo *profileRepository) SetDefaultAddress(ctx context.Context, userID, addressID uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Where("user_id = ?", userID).
		Updates(map[string]any{
			"default_address_id": addressID,
			"updated_at":         time.Now(),
		})
	if result.Error != nil {
		return translateWriteError(result.Error, "profile", "failed to set default address")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// Delete removes the profile; the schema cascades to its addresses.
func (repo *profileRepository) Delete(ctx context.Context, userID uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&model.ProfileModel{})
	if result.Error != nil {
		return errors.Wrap(result.Error, "failed to delete profile")
	}
	if result.RowsAffected == 0 {
		return repository.ErrProfileNotFound
	}

	return nil
}

// List returns one page of profiles ordered by creation time.
func (repo *profileRepository) List(ctx context.Context, filter repository.ProfileListFilter) ([]*entity.Profile, int64, error) {
	query := repo.db.WithContext(ctx).
		Model(&model.ProfileModel{}).
		Joins("JOIN users ON users.id = profiles.user_id")

	if search := strings.TrimSpace(filter.Search); search != "" {
		pattern := likePattern(search)
		query = query.Where(
			"LOWER(users.email)"+likeEscaped+
				" OR LOWER(users.first_name)"+likeEscaped+
				" OR LOWER(users.last_name)"+likeEscaped+
				" OR LOWER(profiles.phone)"+likeEscaped,
			pattern, pattern, pattern, pattern,
		)
	}
	if filter.Gender != nil {
		query = query.Where("profiles.gender = ?", string(*filter.Gender))
	}
	if filter.CreatedAfter != nil {
		query = query.Where("profiles.created_at >= ?", *filter.CreatedAfter)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("profiles.created_at < ?", *filter.CreatedBefore)
	}

	var total int64
	if err := query.Session(&gorm.Session{}).Count(&total).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to count profiles")
	}

	var profileModels []*model.ProfileModel
	if err := query.
		Preload("User").
		Preload("DefaultAddress").
		Order("profiles.created_at ASC").
		Order("profiles.user_id ASC").
		Offset(filter.Page.Offset()).
		Limit(filter.Page.Size).
		Find(&profileModels).Error; err != nil {
		return nil, 0, errors.Wrap(err, "failed to list profiles")
	}

	profiles := make([]*entity.Profile, 0, len(profileModels))
	for _, profileM := range profileModels {
		profiles = append(profiles, toProfileDomain(profileM))
	}

	return profiles, total, nil
}
