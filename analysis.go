package captaingang

import (
	"context"
	"fmt"
	"strings"
)

// DefaultBaseURL is the league site all pages are resolved against.
const DefaultBaseURL = "https://leagues.ustanorcal.com/"

// PlayerURL returns the address of a player's profile page.
func PlayerURL(baseURL, playerID string) string {
	return fmt.Sprintf("%s/playermatches.asp?id=%s", strings.TrimRight(baseURL, "/"), playerID)
}

// ValidatePlayerID returns EINVALID unless id is a non-empty digit string.
func ValidatePlayerID(id string) error {
	if id == "" {
		return Errorf(EINVALID, "captain id required")
	}
	for _, r := range id {
		if r < '0' || r > '9' {
			return Errorf(EINVALID, "captain id %q must be numeric", id)
		}
	}
	return nil
}

// AnalysisResult is the outcome of analyzing one captain.
type AnalysisResult struct {
	CaptainID string
	// CaptainName is empty when the profile did not reveal a name.
	CaptainName string
	// Teams are the captained teams in discovery order, including teams
	// whose roster could not be fetched.
	Teams []TeamRef
	// Rosters holds one roster per team, parallel to Teams.
	Rosters          [][]RosterEntry
	TotalAppearances int
	Frequencies      FrequencyTable
}

// NoTeams reports whether the captain has no captained teams.
func (r *AnalysisResult) NoTeams() bool {
	return len(r.Teams) == 0
}

// TeamPlayerCount returns the number of roster entries found for the i-th team.
func (r *AnalysisResult) TeamPlayerCount(i int) int {
	if i < 0 || i >= len(r.Rosters) {
		return 0
	}
	return len(r.Rosters[i])
}

// UniquePlayers returns the number of distinct player names.
func (r *AnalysisResult) UniquePlayers() int {
	return len(r.Frequencies)
}

// DisplayCaptainName returns the captain name with whitespace normalized.
func (r *AnalysisResult) DisplayCaptainName() string {
	return NormalizeName(r.CaptainName)
}

// Analyzer analyzes the teams of a captain.
type Analyzer interface {
	// Analyze returns EUNAVAILABLE when the captain's profile cannot be
	// fetched. A captain without teams is not an error.
	Analyze(ctx context.Context, captainID string) (*AnalysisResult, error)
}
