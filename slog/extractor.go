package slog

import (
	"log/slog"

	"github.com/fwojciec/captaingang"
)

// Ensure LoggingProfileExtractor implements captaingang.ProfileExtractor.
var _ captaingang.ProfileExtractor = (*LoggingProfileExtractor)(nil)

// LoggingProfileExtractor wraps a ProfileExtractor and logs what it found.
type LoggingProfileExtractor struct {
	next   captaingang.ProfileExtractor
	logger *slog.Logger
}

// NewLoggingProfileExtractor creates a new LoggingProfileExtractor.
func NewLoggingProfileExtractor(next captaingang.ProfileExtractor, logger *slog.Logger) *LoggingProfileExtractor {
	return &LoggingProfileExtractor{next: next, logger: logger}
}

// ExtractProfile delegates to the wrapped extractor and logs each captained team.
func (e *LoggingProfileExtractor) ExtractProfile(html string) *captaingang.Profile {
	profile := e.next.ExtractProfile(html)
	for _, team := range profile.Teams {
		e.logger.Debug("captain team", "team", team.Name, "id", team.ID)
	}
	e.logger.Info("profile extraction",
		"captain", profile.CaptainName,
		"teams", len(profile.Teams),
	)
	return profile
}

// Ensure LoggingRosterExtractor implements captaingang.RosterExtractor.
var _ captaingang.RosterExtractor = (*LoggingRosterExtractor)(nil)

// LoggingRosterExtractor wraps a RosterExtractor and logs roster sizes.
type LoggingRosterExtractor struct {
	next   captaingang.RosterExtractor
	logger *slog.Logger
}

// NewLoggingRosterExtractor creates a new LoggingRosterExtractor.
func NewLoggingRosterExtractor(next captaingang.RosterExtractor, logger *slog.Logger) *LoggingRosterExtractor {
	return &LoggingRosterExtractor{next: next, logger: logger}
}

// ExtractRoster delegates to the wrapped extractor and logs the result.
func (e *LoggingRosterExtractor) ExtractRoster(html string, team captaingang.TeamRef) []captaingang.RosterEntry {
	entries := e.next.ExtractRoster(html, team)
	var unlinked int
	for _, entry := range entries {
		if !entry.Linked() {
			unlinked++
		}
	}
	e.logger.Info("roster extraction",
		"team", team.Name,
		"players", len(entries),
		"unlinked", unlinked,
	)
	return entries
}
