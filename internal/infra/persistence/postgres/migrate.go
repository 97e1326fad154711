package postgres

import (
	"account/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// Migrate creates or updates the account schema.
// profiles and delivery_addresses reference each other, so the default address
// foreign key is added once both tables exist.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(model.All()...); err != nil {
		return errors.Wrap(err, "auto migrate account schema")
	}

	migrator := db.Migrator()
	if !migrator.HasConstraint(&model.ProfileModel{}, model.DefaultAddressConstraint) {
		if err := migrator.CreateConstraint(&model.ProfileModel{}, model.DefaultAddressConstraint); err != nil {
			return errors.Wrap(err, "create default address constraint")
		}
	}

	// Some dialects rebuild the table to add a constraint and drop its indexes on the way.
	if !migrator.HasIndex(&model.ProfileModel{}, model.DefaultAddressIndex) {
		if err := migrator.CreateIndex(&model.ProfileModel{}, model.DefaultAddressIndex); err != nil {
			return errors.Wrap(err, "create default address index")
		}
	}

	return nil
}
