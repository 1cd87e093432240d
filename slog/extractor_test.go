package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/fwojciec/captaingang"
	"github.com/fwojciec/captaingang/mock"
	cgslog "github.com/fwojciec/captaingang/slog"
	"github.com/stretchr/testify/assert"
)

func TestLoggingProfileExtractor_ExtractProfile(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	want := &captaingang.Profile{
		CaptainName: "Doe, Jane",
		Teams:       []captaingang.TeamRef{{ID: "100", Name: "Team Alpha - Captain"}},
	}
	inner := &mock.ProfileExtractor{
		ExtractProfileFn: func(html string) *captaingang.Profile {
			return want
		},
	}

	got := cgslog.NewLoggingProfileExtractor(inner, logger).ExtractProfile("<html></html>")

	assert.Same(t, want, got)
	output := buf.String()
	assert.Contains(t, output, "captain team")
	assert.Contains(t, output, "id=100")
	assert.Contains(t, output, "captain=\"Doe, Jane\"")
	assert.Contains(t, output, "teams=1")
}

func TestLoggingRosterExtractor_ExtractRoster(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	inner := &mock.RosterExtractor{
		ExtractRosterFn: func(html string, team captaingang.TeamRef) []captaingang.RosterEntry {
			return []captaingang.RosterEntry{
				{PersonRef: captaingang.PersonRef{ID: "55", Name: "Jane Doe"}, TeamName: team.Name},
				{PersonRef: captaingang.PersonRef{ID: captaingang.UnknownID, Name: "Amy Poe"}, TeamName: team.Name},
			}
		},
	}

	entries := cgslog.NewLoggingRosterExtractor(inner, logger).ExtractRoster("<html></html>", captaingang.TeamRef{Name: "Alpha"})

	assert.Len(t, entries, 2)
	output := buf.String()
	assert.Contains(t, output, "roster extraction")
	assert.Contains(t, output, "team=Alpha")
	assert.Contains(t, output, "players=2")
	assert.Contains(t, output, "unlinked=1")
}
