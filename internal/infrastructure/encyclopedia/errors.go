package encyclopedia

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyTitle       = errors.New("encyclopedia: empty page title")
	ErrNotFound         = errors.New("encyclopedia: page not found")
	ErrMalformedPayload = errors.New("encyclopedia: malformed summary payload")
)

// StatusError reports a non-200 answer from the summary endpoint. A 404
// unwraps to ErrNotFound.
type StatusError struct {
	StatusCode int
	Title      string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("encyclopedia: summary for %q returned status %d", e.Title, e.StatusCode)
}

func (e *StatusError) Unwrap() error {
	if e.StatusCode == 404 {
		return ErrNotFound
	}
	return nil
}
