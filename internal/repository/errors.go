package repository

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	// ErrNotFound is returned by Update and Delete when no row has the
	// entity's id. Lookups report absence with a nil result instead.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidProperty is returned when a filter names a property that is
	// not a column of the entity, or a relation.
	ErrInvalidProperty = errors.New("invalid property")

	// ErrInvalidValue is returned when a filter value cannot be converted
	// to the column's type.
	ErrInvalidValue = errors.New("invalid property value")
)

// PersistenceError reports a store failure. The transaction it happened in
// has been rolled back.
type PersistenceError struct {
	Op     string
	Entity string
	Err    error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Entity, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// IsConstraintViolation reports whether err was caused by the store
// rejecting a write on a foreign key or uniqueness constraint.
func IsConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated) || errors.Is(err, gorm.ErrDuplicatedKey)
}
