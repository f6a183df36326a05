package database

import (
	"errors"
	"fmt"

	"github.com/mattn/go-sqlite3"
)

var (
	// ErrConstraint wraps unique, foreign key and check violations reported by SQLite.
	ErrConstraint = errors.New("constraint violation")

	// ErrTransactionFailed wraps the first failing statement of a multi-statement write.
	// Nothing from the failed write is persisted.
	ErrTransactionFailed = errors.New("transaction failed")
)

// mapError tags SQLite constraint failures with ErrConstraint and leaves other errors as is.
func mapError(err error) error {
	if err == nil {
		return nil
	}
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
		return fmt.Errorf("%w: %w", ErrConstraint, err)
	}
	return err
}
