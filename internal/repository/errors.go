package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const PgErrUniqueViolation = "23505"

// IsUniqueViolationOn narrows a unique violation to a single constraint or
// index, so that unrelated keys on the same table are not mistaken for it.
func IsUniqueViolationOn(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == PgErrUniqueViolation && pgErr.ConstraintName == constraint
}
