package db

import (
	"errors"

	"github.com/go-sql-driver/mysql"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

// ErrDuplicateKey is returned by ClassifyError for unique constraint violations.
var ErrDuplicateKey = errors.New("db: duplicate key")

type classifiedError struct {
	sentinel error
	cause    error
}

func (e *classifiedError) Error() string        { return e.sentinel.Error() + ": " + e.cause.Error() }
func (e *classifiedError) Is(target error) bool { return target == e.sentinel }
func (e *classifiedError) Unwrap() error        { return e.cause }

// ClassifyError maps driver specific errors onto package sentinels so callers
// can use errors.Is regardless of the configured dialect. Errors it does not
// recognise are returned unchanged.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	if isDuplicateKey(err) {
		return &classifiedError{sentinel: ErrDuplicateKey, cause: err}
	}

	return err
}

func IsDuplicateKey(err error) bool { return errors.Is(ClassifyError(err), ErrDuplicateKey) }

func isDuplicateKey(err error) bool {
	// pgx errors and the dialectors with TranslateError arrive already mapped.
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) {
		return myErr.Number == 1062
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return liteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			liteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}

	return false
}
