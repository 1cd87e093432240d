package http

import (
	"context"
	"time"

	"github.com/fwojciec/captaingang"
)

// DefaultDelay is the minimum pause between one fetch completing and the
// next one starting. The league site tolerates about one request per second.
const DefaultDelay = 1 * time.Second

// Ensure PacedFetcher implements captaingang.Fetcher at compile time.
var _ captaingang.Fetcher = (*PacedFetcher)(nil)

// PacedFetcher serializes fetches of the wrapped Fetcher and starts each one
// no sooner than delay after the previous one completed, whether it
// succeeded or failed. Concurrent callers queue for their turn, so at most
// one request is in flight at any time.
type PacedFetcher struct {
	next  captaingang.Fetcher
	delay time.Duration

	// turn holds a token while a fetch is pacing or in flight.
	turn     chan struct{}
	lastDone time.Time
}

// NewPacedFetcher wraps next. A zero delay only serializes fetches.
func NewPacedFetcher(next captaingang.Fetcher, delay time.Duration) *PacedFetcher {
	return &PacedFetcher{
		next:  next,
		delay: delay,
		turn:  make(chan struct{}, 1),
	}
}

// Fetch waits for its turn and the pacing delay, then fetches url.
func (f *PacedFetcher) Fetch(ctx context.Context, url string) (string, error) {
	select {
	case f.turn <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-f.turn }()

	if wait := time.Until(f.lastDone.Add(f.delay)); wait > 0 {
		timer := time.NewTimer(wait)
		defer timer.Stop()
		select {
		case <-timer.C:
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	html, err := f.next.Fetch(ctx, url)
	f.lastDone = time.Now()
	return html, err
}

// Close closes the wrapped Fetcher.
func (f *PacedFetcher) Close() error {
	return f.next.Close()
}
