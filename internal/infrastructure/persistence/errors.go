package persistence

import (
	"errors"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a requested record does not exist. Handlers
// map it to 404.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned on integrity violations such as duplicate unique
// values or dangling foreign key references. Handlers map it to 409.
var ErrConflict = errors.New("integrity conflict")

// translateError maps GORM errors onto the package sentinels so callers can
// branch with errors.Is without importing gorm.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrConflict
	default:
		return err
	}
}
