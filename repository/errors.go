package repository

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
)

// Store-level error kinds. The service and handler layers match on these
// instead of inspecting driver error internals.
var (
	ErrUserNotFound   = errors.New("user not found")
	ErrDuplicateEmail = errors.New("email already exists")
)

const uniqueViolation = "23505"

// translateError maps driver errors onto the repository's error kinds.
// Unknown errors pass through unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return ErrUserNotFound
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return ErrDuplicateEmail
	}
	return err
}
