package postgres

import (
	"strings"

	domainerrors "account/internal/domain/errors"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// translateWriteError classifies a failed write. Constraint failures keep the driver error
// on their Unwrap chain; anything else becomes a DatabaseExecuteError.
func translateWriteError(err error, entityName, details string) error {
	switch {
	case isUniqueConstraintViolation(err):
		return errors.WithStack(domainerrors.NewConstraintViolationError(domainerrors.ConstraintUnique, entityName, err))
	case isForeignKeyConstraintViolation(err):
		return errors.WithStack(domainerrors.NewConstraintViolationError(domainerrors.ConstraintForeignKey, entityName, err))
	case isCheckConstraintViolation(err):
		return errors.WithStack(domainerrors.NewConstraintViolationError(domainerrors.ConstraintCheck, entityName, err))
	case isNotNullConstraintViolation(err):
		return errors.WithStack(domainerrors.NewConstraintViolationError(domainerrors.ConstraintNotNull, entityName, err))
	default:
		return domainerrors.NewDatabaseExecuteError(err, details)
	}
}

// Helper functions for PostgreSQL error checking
func isUniqueConstraintViolation(err error) bool {
	// Check for GORM's duplicate key error
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

func isForeignKeyConstraintViolation(err error) bool {
	// Check for GORM's foreign key violation error
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}

func isNotNullConstraintViolation(err error) bool {
	// Check error message for PostgreSQL-specific not null constraint violation patterns
	errMsg := strings.ToLower(err.Error())

	return strings.Contains(errMsg, "null value") ||
		strings.Contains(errMsg, "not null") ||
		strings.Contains(errMsg, "23502") // PostgreSQL not_null_violation error code
}

func isCheckConstraintViolation(err error) bool {
	// Check for GORM's check constraint violation error
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	// The SQLite dialector does not translate check failures.
	return strings.Contains(strings.ToLower(err.Error()), "check constraint")
}
