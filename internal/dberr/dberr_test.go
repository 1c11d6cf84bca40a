package dberr

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestFriendlyKnownCodes(t *testing.T) {
	cases := map[string]string{
		"23505": "A record with these details already exists",
		"23503": "This record is referenced by other data and cannot be changed",
		"23502": "A required field is missing",
		"42501": "You do not have permission to perform this action",
	}
	for code, want := range cases {
		msg, ok := Friendly(&pgconn.PgError{Code: code})
		assert.True(t, ok, "code %s", code)
		assert.Equal(t, want, msg)
	}
}

func TestFriendlyWrappedError(t *testing.T) {
	wrapped := fmt.Errorf("insert itinerary: %w", &pgconn.PgError{Code: "23505"})
	msg, ok := Friendly(wrapped)
	assert.True(t, ok)
	assert.NotEmpty(t, msg)
}

func TestFriendlyUnknown(t *testing.T) {
	_, ok := Friendly(errors.New("connection refused"))
	assert.False(t, ok)

	_, ok = Friendly(&pgconn.PgError{Code: "40001"})
	assert.False(t, ok)
}
