// Package storerr translates raw storage errors into the domain error kinds
// at the orchestrator boundary. Nothing gorm-shaped leaks past a usecase.
package storerr

import (
	"errors"

	gomysql "github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"freelance-engagement-backend/internal/domain/errs"
)

// NotFound maps a missing-row error to NotFoundError; other errors pass through.
func NotFound(entity, id string, err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errs.NotFound(entity, id)
	}
	return err
}

// Conflict maps duplicate-key and similar write conflicts to
// ConcurrencyConflictError; other errors pass through.
func Conflict(op string, err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return &errs.ConcurrencyConflictError{Op: op, Err: err}
	}
	return err
}

// IsDuplicate reports whether the insert lost to an existing unique key.
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}

// mysql aborts one victim of a deadlock with 1213; 1205 is a lock-wait
// timeout. Either way the whole unit can be retried.
func isRetryableTxFailure(err error) bool {
	var me *gomysql.MySQLError
	if errors.As(err, &me) {
		return me.Number == 1213 || me.Number == 1205
	}
	return false
}

// Tx wraps the error coming out of a transactional unit. Deadlock,
// lock-wait and unhandled duplicate-key aborts become
// ConcurrencyConflictError so the caller knows the unit is retryable as a
// whole; domain errors raised inside the unit pass through untouched.
func Tx(op string, err error) error {
	if err == nil {
		return nil
	}
	var cc *errs.ConcurrencyConflictError
	if errors.As(err, &cc) {
		return err
	}
	if isRetryableTxFailure(err) || errors.Is(err, gorm.ErrDuplicatedKey) {
		return &errs.ConcurrencyConflictError{Op: op, Err: err}
	}
	return err
}
