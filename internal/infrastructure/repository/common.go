package repository

import (
	"errors"

	"gorm.io/gorm"

	apperrors "art/internal/shared/errors"
)

// notFoundAsNil turns gorm.ErrRecordNotFound into (false, nil) so Get methods
// can return nil entities for missing rows.
func notFoundAsNil(err error) (found bool, _ error) {
	if err == nil {
		return true, nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return false, nil
	}
	return false, err
}

// translateWriteError maps unique and foreign key violations onto AppErrors.
func translateWriteError(err error, entity, field string) error {
	switch {
	case apperrors.IsDuplicateError(err):
		return apperrors.NewConflictError(entity+" with this "+field+" already exists", field)
	case apperrors.IsForeignKeyError(err):
		return apperrors.NewProtectedDeletionError(entity + " is still referenced")
	}
	return nil
}
