package repository

import (
	"errors"
	"fmt"

	"github.com/Domenick1991/spacebooking/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgUniqueViolation = "23505"

// lookupErr turns a missing row into a typed not-found error and wraps
// anything else as a storage failure.
func lookupErr(err error, kind domain.EntityKind, id int64) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.NewNotFound(kind, id)
	}
	return fmt.Errorf("get %s %d: %w", kind, id, err)
}

func insertErr(err error, kind domain.EntityKind) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%w: %s already exists (%s)", domain.ErrConflict, kind, pgErr.ConstraintName)
	}
	return fmt.Errorf("insert %s: %w", kind, err)
}
