package captaingang_test

import (
	"testing"

	"github.com/fwojciec/captaingang"
	"github.com/stretchr/testify/assert"
)

func TestRosterEntry_Key(t *testing.T) {
	t.Parallel()

	t.Run("normalizes whitespace in the name", func(t *testing.T) {
		t.Parallel()

		a := captaingang.RosterEntry{PersonRef: captaingang.PersonRef{ID: "55", Name: "Jane  Doe "}}
		b := captaingang.RosterEntry{PersonRef: captaingang.PersonRef{ID: "55", Name: "Jane Doe"}}
		assert.Equal(t, a.Key(), b.Key())
	})

	t.Run("treats a missing id as unknown", func(t *testing.T) {
		t.Parallel()

		a := captaingang.RosterEntry{PersonRef: captaingang.PersonRef{Name: "Jane Doe"}}
		b := captaingang.RosterEntry{PersonRef: captaingang.PersonRef{ID: captaingang.UnknownID, Name: "Jane Doe"}}
		assert.Equal(t, a.Key(), b.Key())
		assert.False(t, a.Linked())
		assert.True(t, captaingang.RosterEntry{PersonRef: captaingang.PersonRef{ID: "55", Name: "Jane Doe"}}.Linked())
	})
}

func TestTeamRef_IsCoCaptain(t *testing.T) {
	t.Parallel()

	assert.True(t, captaingang.TeamRef{Name: "Team Beta - Co-Captain"}.IsCoCaptain())
	assert.False(t, captaingang.TeamRef{Name: "Team Alpha - Captain"}.IsCoCaptain())
}
