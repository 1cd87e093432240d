package mock

import "github.com/fwojciec/captaingang"

var _ captaingang.ProfileExtractor = (*ProfileExtractor)(nil)

// ProfileExtractor is a mock implementation of captaingang.ProfileExtractor.
type ProfileExtractor struct {
	ExtractProfileFn func(html string) *captaingang.Profile
}

func (e *ProfileExtractor) ExtractProfile(html string) *captaingang.Profile {
	return e.ExtractProfileFn(html)
}

var _ captaingang.RosterExtractor = (*RosterExtractor)(nil)

// RosterExtractor is a mock implementation of captaingang.RosterExtractor.
type RosterExtractor struct {
	ExtractRosterFn func(html string, team captaingang.TeamRef) []captaingang.RosterEntry
}

func (e *RosterExtractor) ExtractRoster(html string, team captaingang.TeamRef) []captaingang.RosterEntry {
	return e.ExtractRosterFn(html, team)
}
