package collector

import (
	"errors"
	"fmt"
)

// ErrNoItems signals that a run completed and wrote its payload but
// collected zero items. Callers map it to a distinct exit code so
// automation can tell a degraded run from a crash.
var ErrNoItems = errors.New("no items collected")

// StatusError reports a non-success HTTP status for one page request.
// It aborts only the current store's pagination, never the whole run.
type StatusError struct {
	Code int
	URL  string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from %s", e.Code, e.URL)
}

// ParseError reports a response body that could not be decoded as JSON.
// Same isolation semantics as StatusError.
type ParseError struct {
	URL string
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("decode response from %s: %v", e.URL, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
