package captaingang_test

import (
	"testing"

	"github.com/fwojciec/captaingang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate(t *testing.T) {
	t.Parallel()

	t.Run("counts each entry once per name", func(t *testing.T) {
		t.Parallel()

		entries := []captaingang.RosterEntry{
			{PersonRef: captaingang.PersonRef{ID: "1", Name: "Jane Doe"}, TeamName: "Alpha"},
			{PersonRef: captaingang.PersonRef{ID: "2", Name: "John Roe"}, TeamName: "Alpha"},
			{PersonRef: captaingang.PersonRef{ID: "1", Name: "Jane Doe"}, TeamName: "Beta"},
			{PersonRef: captaingang.PersonRef{ID: captaingang.UnknownID, Name: "Amy Poe"}, TeamName: "Beta"},
			{PersonRef: captaingang.PersonRef{ID: "1", Name: "Jane Doe"}, TeamName: "Gamma"},
		}

		table := captaingang.Aggregate(entries)

		assert.Equal(t, len(entries), table.Total())
		for name, count := range table {
			var want int
			for _, e := range entries {
				if e.Name == name {
					want++
				}
			}
			assert.Equal(t, want, count, name)
		}
		assert.Equal(t, 3, table["Jane Doe"])
	})

	t.Run("merges different ids sharing a display name", func(t *testing.T) {
		t.Parallel()

		table := captaingang.Aggregate([]captaingang.RosterEntry{
			{PersonRef: captaingang.PersonRef{ID: "1", Name: "Chris Lee"}},
			{PersonRef: captaingang.PersonRef{ID: "2", Name: "Chris Lee"}},
		})

		assert.Equal(t, captaingang.FrequencyTable{"Chris Lee": 2}, table)
	})

	t.Run("returns empty table for no entries", func(t *testing.T) {
		t.Parallel()

		table := captaingang.Aggregate(nil)

		require.NotNil(t, table)
		assert.Empty(t, table)
		assert.Zero(t, table.Total())
	})
}

func TestFrequencyTable_Sorted(t *testing.T) {
	t.Parallel()

	table := captaingang.FrequencyTable{"Bob": 2, "Amy": 2, "Zed": 1}

	rows := table.Sorted()

	assert.Equal(t, []captaingang.PlayerCount{
		{Name: "Amy", Count: 2},
		{Name: "Bob", Count: 2},
		{Name: "Zed", Count: 1},
	}, rows)
}
