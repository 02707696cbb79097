package gem

import (
	"errors"
	"fmt"
)

// NotFoundError is returned by single-record gets and updates when the id
// has no live record. It carries the id so callers can translate it into a
// user-facing not-found response.
type NotFoundError struct {
	ID uint32
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("hidden gem with id %d not found", e.ID)
}

// IsNotFound reports whether err is, or wraps, a NotFoundError.
func IsNotFound(err error) bool {
	var notFound *NotFoundError
	return errors.As(err, &notFound)
}
