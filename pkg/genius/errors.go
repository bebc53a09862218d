package genius

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrNotFound is returned when the provider has no usable match for the
// requested song, or when a song page carries no lyrics. Callers should treat
// it as a valid outcome rather than a failure.
var ErrNotFound = errors.New("genius: song not found")

// Error represents a failed request to the Genius API or a song page.
type Error struct {
	StatusCode int    // HTTP status code, 0 for transport-level failures
	Message    string // Human-readable detail
}

// Error returns the error message.
func (e *Error) Error() string {
	if e.StatusCode == 0 {
		return fmt.Sprintf("genius: %s", e.Message)
	}
	return fmt.Sprintf("genius: %s (status %d)", e.Message, e.StatusCode)
}

// Temporary returns true if the request may succeed on retry.
func (e *Error) Temporary() bool {
	return e.StatusCode == 0 ||
		e.StatusCode == http.StatusTooManyRequests ||
		e.StatusCode >= 500
}

// Credential returns true if the failure indicates a bad or missing token.
func (e *Error) Credential() bool {
	return e.StatusCode == http.StatusUnauthorized || e.StatusCode == http.StatusForbidden
}
