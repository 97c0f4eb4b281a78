package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

// Constraint violations surfaced by PostgreSQL, detectable with errors.Is.
var (
	ErrUniqueViolation     = errors.New("unique constraint violation")
	ErrForeignKeyViolation = errors.New("foreign key violation")
)

const (
	pqUniqueViolation     = "23505"
	pqForeignKeyViolation = "23503"
)

// wrapError annotates err with op and tags known constraint violations.
func wrapError(op string, err error) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case pqUniqueViolation:
			return fmt.Errorf("%s: %w: %w", op, ErrUniqueViolation, err)
		case pqForeignKeyViolation:
			return fmt.Errorf("%s: %w: %w", op, ErrForeignKeyViolation, err)
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// existsByID reports whether table holds a row with the given id.
func existsByID(ctx context.Context, db *sqlx.DB, table string, id int64) (bool, error) {
	query := fmt.Sprintf("SELECT 1 FROM %s WHERE id = $1 LIMIT 1", table)
	var exists int
	if err := db.GetContext(ctx, &exists, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		return false, fmt.Errorf("check %s id: %w", table, err)
	}
	return true, nil
}
