package lib

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/uptrace/bun/driver/pgdriver"
)

// Database errors
var (
	ErrNotFound   = errors.New("not found")
	ErrConflict   = errors.New("conflict")
	ErrForeignKey = errors.New("referenced row does not exist")
)

// MapPgError translates low-level Postgres errors into the sentinel
// errors above so callers can branch with errors.Is.
func MapPgError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, sql.ErrNoRows) {
		return ErrNotFound
	}

	var code string

	var drvErr pgdriver.Error
	var pgErr *pgconn.PgError
	switch {
	case errors.As(err, &drvErr):
		code = drvErr.Field('C')
	case errors.As(err, &pgErr):
		code = pgErr.Code
	}

	switch code { // SQLSTATE
	case "23503": // foreign_key_violation
		return ErrForeignKey
	case "23505": // unique_violation
		return ErrConflict
	case "P0002": // no_data_found
		return ErrNotFound
	}
	return err
}
