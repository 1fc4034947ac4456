package repository

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestEscapeLike(t *testing.T) {
	tests := map[string]string{
		"Taco":        "Taco",
		"100%":        `100\%`,
		"under_score": `under\_score`,
		`back\slash`:  `back\\slash`,
		`%_\`:         `\%\_\\`,
	}
	for in, want := range tests {
		assert.Equal(t, want, escapeLike(in), "escapeLike(%q)", in)
	}
}

func TestIsConstraintViolation(t *testing.T) {
	fk := &PersistenceError{Op: "insert", Entity: "Schedule", Err: gorm.ErrForeignKeyViolated}
	assert.True(t, IsConstraintViolation(fk))
	assert.True(t, IsConstraintViolation(fmt.Errorf("wrapped: %w", gorm.ErrDuplicatedKey)))
	assert.False(t, IsConstraintViolation(errors.New("disk full")))
	assert.False(t, IsConstraintViolation(nil))
}

func TestPersistenceErrorUnwraps(t *testing.T) {
	cause := errors.New("connection reset")
	err := error(&PersistenceError{Op: "update", Entity: "Truck", Err: cause})

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "update Truck: connection reset", err.Error())
}
