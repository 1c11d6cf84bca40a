// Package dberr maps Postgres error codes onto messages safe to surface to
// API clients.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// Friendly returns a client-facing message for a database error, and whether
// the error was recognized as one worth translating. Unrecognized errors
// should be logged and surfaced generically.
func Friendly(err error) (string, bool) {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return "", false
	}

	switch pgErr.Code {
	case "23505":
		return "A record with these details already exists", true
	case "23503":
		return "This record is referenced by other data and cannot be changed", true
	case "23502":
		return "A required field is missing", true
	case "42501":
		return "You do not have permission to perform this action", true
	}
	return "", false
}
