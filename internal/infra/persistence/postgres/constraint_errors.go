package postgres

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// isUniqueConstraintViolation reports whether err is a unique index violation.
// GORM's error translation turns the PostgreSQL 23505 error into ErrDuplicatedKey.
func isUniqueConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// isForeignKeyConstraintViolation reports whether err is a foreign key
// violation, i.e. the row references a record that does not exist.
func isForeignKeyConstraintViolation(err error) bool {
	return errors.Is(err, gorm.ErrForeignKeyViolated)
}
