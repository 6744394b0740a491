// repository/store.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	mysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"hotel-booking/models"
)

// Store is the persistence collaborator of the booking core. A Store returned
// by Transaction is bound to that transaction.
type Store struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for migrations and health checks.
func (s *Store) DB() *gorm.DB {
	return s.db
}

// Transaction runs fn inside one database transaction. Errors returned by fn
// are passed through untouched; begin/commit failures become storage failures.
func (s *Store) Transaction(ctx context.Context, fn func(tx *Store) error) error {
	var fnErr error
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		fnErr = fn(&Store{db: tx})
		return fnErr
	})
	if err != nil && fnErr == nil {
		return models.NewStorageError("transaction", err)
	}
	return err
}

func (s *Store) Ping(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return models.NewStorageError("ping", err)
	}
	return models.NewStorageError("ping", sqlDB.PingContext(ctx))
}

// translate maps gorm/driver errors onto the core's error kinds.
func translate(op string, err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%s: %w", op, models.ErrNotFound)
	case isDuplicateKeyError(err):
		return fmt.Errorf("%s: %w", op, models.ErrConflict)
	case isForeignKeyError(err):
		return fmt.Errorf("%s: referenced row missing: %w", op, models.ErrNotFound)
	default:
		return models.NewStorageError(op, err)
	}
}

// isDuplicateKeyError detects unique-index violations across the supported drivers.
func isDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1062
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "duplicate entry") ||
		strings.Contains(lower, "unique constraint") ||
		strings.Contains(lower, "duplicate key value")
}

// isForeignKeyError reports a dangling reference (MySQL 1452 or equivalent).
func isForeignKeyError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrForeignKeyViolated) {
		return true
	}
	var merr *mysql.MySQLError
	if errors.As(err, &merr) {
		return merr.Number == 1452
	}
	lower := strings.ToLower(err.Error())
	return strings.Contains(lower, "foreign key")
}
