// Package rod provides a headless Chrome implementation of captaingang.Fetcher
// for pages that only render their rosters with JavaScript enabled.
package rod

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/fwojciec/captaingang"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// DefaultFetchTimeout is the default time allowed for a page to load.
const DefaultFetchTimeout = 10 * time.Second

// Ensure Fetcher implements captaingang.Fetcher at compile time.
var _ captaingang.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML from URLs using Chrome browser automation.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser   *rod.Browser
	launcher  *launcher.Launcher
	timeout   time.Duration
	userAgent string
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithFetchTimeout sets the time allowed for each page to load.
// Defaults to DefaultFetchTimeout (10s) if not specified.
func WithFetchTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// WithUserAgent overrides the browser's User-Agent header.
func WithUserAgent(ua string) Option {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// NewFetcher creates a new Fetcher that launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewFetcher(opts ...Option) (*Fetcher, error) {
	f := &Fetcher{timeout: DefaultFetchTimeout}
	for _, opt := range opts {
		opt(f)
	}

	l := launcher.New().
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // Clean up launched process on connection failure
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	f.browser = browser
	f.launcher = l
	return f, nil
}

// Fetch navigates to the URL and returns the rendered HTML. Navigation and
// load failures are returned as EUNAVAILABLE errors.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if f.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, f.timeout)
		defer cancel()
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", captaingang.Errorf(captaingang.EUNAVAILABLE, "opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if f.userAgent != "" {
		if err := page.SetUserAgent(&proto.NetworkSetUserAgentOverride{UserAgent: f.userAgent}); err != nil {
			return "", captaingang.Errorf(captaingang.EUNAVAILABLE, "setting user agent: %v", err)
		}
	}

	// The browser renders error pages like any other, so the status of the
	// main document is taken from the network events.
	var status int
	waitResponse := page.EachEvent(func(e *proto.NetworkResponseReceived) bool {
		if e.Type != proto.NetworkResourceTypeDocument {
			return false
		}
		status = e.Response.Status
		return true
	})

	if err := page.Navigate(url); err != nil {
		return "", captaingang.Errorf(captaingang.EUNAVAILABLE, "navigating to %s: %v", url, err)
	}
	waitResponse()
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", captaingang.Errorf(captaingang.EUNAVAILABLE, "HTTP %d for %s", status, url)
	}

	if err := page.WaitLoad(); err != nil {
		return "", captaingang.Errorf(captaingang.EUNAVAILABLE, "loading %s: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", captaingang.Errorf(captaingang.EUNAVAILABLE, "reading %s: %v", url, err)
	}
	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	err := f.browser.Close()
	f.launcher.Kill()
	return err
}
