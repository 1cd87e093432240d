package http

import (
	"context"
	"time"

	"github.com/fwojciec/captaingang"
)

// Ensure RetryFetcher implements captaingang.Fetcher at compile time.
var _ captaingang.Fetcher = (*RetryFetcher)(nil)

// BackoffDelays returns n exponential backoff delays starting at 1s: 1s, 2s, 4s...
func BackoffDelays(n int) []time.Duration {
	delays := make([]time.Duration, 0, n)
	d := time.Second
	for range n {
		delays = append(delays, d)
		d *= 2
	}
	return delays
}

// RetryFetcher retries failed fetches of the wrapped Fetcher, waiting the
// corresponding delay before each retry. Invalid-URL errors are not retried.
type RetryFetcher struct {
	next   captaingang.Fetcher
	delays []time.Duration
}

// NewRetryFetcher wraps next. With no delays it fetches exactly once.
func NewRetryFetcher(next captaingang.Fetcher, delays []time.Duration) *RetryFetcher {
	return &RetryFetcher{next: next, delays: delays}
}

// Fetch attempts the fetch up to len(delays)+1 times and returns the last error.
func (f *RetryFetcher) Fetch(ctx context.Context, url string) (string, error) {
	var lastErr error
	for attempt := 0; attempt <= len(f.delays); attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(f.delays[attempt-1]):
			}
		}

		html, err := f.next.Fetch(ctx, url)
		if err == nil {
			return html, nil
		}
		lastErr = err

		if captaingang.ErrorCode(err) == captaingang.EINVALID || ctx.Err() != nil {
			break
		}
	}
	return "", lastErr
}

// Close closes the wrapped Fetcher.
func (f *RetryFetcher) Close() error {
	return f.next.Close()
}
