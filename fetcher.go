package captaingang

import "context"

// Fetcher retrieves page markup from URLs.
// Implementations may use browser automation to handle JavaScript-rendered content.
type Fetcher interface {
	// Fetch retrieves the URL and returns the page markup.
	// The context controls timeout and cancellation.
	// Transport failures and non-success statuses are reported with EUNAVAILABLE.
	Fetch(ctx context.Context, url string) (html string, err error)

	// Close releases transport resources.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}
