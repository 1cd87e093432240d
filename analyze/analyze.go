// Package analyze orchestrates a captain analysis: it fetches the captain's
// profile, fetches the roster of every captained team, and aggregates the
// co-players across those rosters.
package analyze

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/captaingang"
	"golang.org/x/sync/errgroup"
)

var _ captaingang.Analyzer = (*Analyzer)(nil)

// Analyzer implements captaingang.Analyzer.
type Analyzer struct {
	Fetcher  captaingang.Fetcher
	Profiles captaingang.ProfileExtractor
	Rosters  captaingang.RosterExtractor

	// BaseURL of the league site. Defaults to captaingang.DefaultBaseURL.
	BaseURL string

	// Concurrency bounds the number of roster fetches in flight.
	// Defaults to 1, which fetches rosters one after another.
	Concurrency int

	// Logger receives roster fetch failures. Defaults to discarding them.
	Logger *slog.Logger
}

// Analyze fetches the captain's profile and the rosters of all captained
// teams. Failing to fetch the profile aborts the analysis with the fetch
// error. Failing to fetch a roster leaves that team's roster empty.
func (a *Analyzer) Analyze(ctx context.Context, captainID string) (*captaingang.AnalysisResult, error) {
	if err := captaingang.ValidatePlayerID(captainID); err != nil {
		return nil, err
	}

	baseURL := a.BaseURL
	if baseURL == "" {
		baseURL = captaingang.DefaultBaseURL
	}

	html, err := a.Fetcher.Fetch(ctx, captaingang.PlayerURL(baseURL, captainID))
	if err != nil {
		return nil, fmt.Errorf("fetching captain profile: %w", err)
	}

	profile := a.Profiles.ExtractProfile(html)

	result := &captaingang.AnalysisResult{
		CaptainID:   captainID,
		CaptainName: profile.CaptainName,
		Teams:       profile.Teams,
		Frequencies: make(captaingang.FrequencyTable),
	}
	if len(profile.Teams) == 0 {
		return result, nil
	}

	rosters, err := a.fetchRosters(ctx, profile.Teams)
	if err != nil {
		return nil, err
	}
	result.Rosters = rosters

	var entries []captaingang.RosterEntry
	for _, roster := range rosters {
		entries = append(entries, roster...)
	}
	result.TotalAppearances = len(entries)
	result.Frequencies = captaingang.Aggregate(entries)

	return result, nil
}

// fetchRosters returns one roster per team, in team order.
func (a *Analyzer) fetchRosters(ctx context.Context, teams []captaingang.TeamRef) ([][]captaingang.RosterEntry, error) {
	concurrency := a.Concurrency
	if concurrency <= 0 {
		concurrency = 1
	}

	logger := a.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rosters := make([][]captaingang.RosterEntry, len(teams))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, team := range teams {
		g.Go(func() error {
			html, err := a.Fetcher.Fetch(gctx, team.URL)
			if err != nil {
				logger.Warn("roster unavailable",
					"team", team.Name,
					"url", team.URL,
					"err", err,
				)
				return nil
			}
			rosters[i] = a.Rosters.ExtractRoster(html, team)
			return nil
		})
	}
	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return rosters, nil
}
