package database

import (
	"database/sql"
	"fmt"
	"strings"

	"finques-lisa/utils"
)

const defaultReferencePrefix = "FL"

type Repository struct {
	db              *DB
	referencePrefix string
}

type Option func(*Repository)

// WithReferencePrefix sets the prefix of generated property reference codes.
func WithReferencePrefix(prefix string) Option {
	return func(r *Repository) {
		if prefix != "" {
			r.referencePrefix = prefix
		}
	}
}

func NewRepository(db *DB, opts ...Option) *Repository {
	r := &Repository{db: db, referencePrefix: defaultReferencePrefix}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// withTx runs fn inside a single transaction. Any error rolls the whole unit back and is
// reported once, wrapped in ErrTransactionFailed.
//
// The pool holds a single connection: fn must use tx only, never r.db.
func (r *Repository) withTx(fn func(tx *sql.Tx) error) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: begin: %w", ErrTransactionFailed, err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return fmt.Errorf("%w: %w", ErrTransactionFailed, mapError(err))
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("%w: commit: %w", ErrTransactionFailed, mapError(err))
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func nullString(s string) any {
	if s == "" {
		return nil
	}
	return s
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

// splitList splits a GROUP_CONCAT(..., char(31)) column.
func splitList(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, "\x1f")
}

// likePattern builds a substring LIKE pattern; use with ESCAPE '\'.
func likePattern(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + r.Replace(s) + "%"
}

// foldPattern is likePattern over the folded term; compare it against fold(column).
func foldPattern(s string) string {
	return likePattern(utils.Fold(strings.TrimSpace(s)))
}
