package pgsql

import (
	"errors"

	"github.com/bouesti/journal-repository/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

// BaseRepository provides common functionality for all repositories.
type BaseRepository struct {
	Pool *pgxpool.Pool
}

// uniqueViolation is the PostgreSQL error code for a unique index violation.
const uniqueViolation = "23505"

// translateError maps driver-level errors onto the application taxonomy.
// Unique violations become ErrDuplicate and missing rows become ErrNotFound;
// everything else passes through for the caller to wrap.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.ErrNotFound
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.ErrDuplicate
	}
	return err
}
