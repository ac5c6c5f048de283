package collector

import (
	"context"
	"time"
)

// PageFetcher retrieves one decoded search page for a store. Implementations
// report non-success statuses as *StatusError and undecodable bodies as
// *ParseError.
type PageFetcher interface {
	FetchPage(ctx context.Context, store Store, page int, query string) (SearchPage, error)
}

// Clock returns the current time (useful for testing).
type Clock interface {
	Now() time.Time
}
