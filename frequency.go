package captaingang

import "sort"

// FrequencyTable counts, per player display name, the number of captained
// teams the player appears on. Names are the key because ids cannot always
// be recovered, so two people sharing a display name are merged.
type FrequencyTable map[string]int

// PlayerCount is one row of a FrequencyTable.
type PlayerCount struct {
	Name  string
	Count int
}

// Aggregate counts each entry's name once. Extractors deduplicate entries
// per team, so the count of a name is the number of teams it appears on.
func Aggregate(entries []RosterEntry) FrequencyTable {
	t := make(FrequencyTable)
	t.Add(entries...)
	return t
}

// Add increments the count of each entry's name.
func (t FrequencyTable) Add(entries ...RosterEntry) {
	for _, e := range entries {
		t[e.Name]++
	}
}

// Total returns the sum of all counts.
func (t FrequencyTable) Total() int {
	var n int
	for _, c := range t {
		n += c
	}
	return n
}

// Sorted returns the rows ordered by count descending, then name ascending.
func (t FrequencyTable) Sorted() []PlayerCount {
	rows := make([]PlayerCount, 0, len(t))
	for name, count := range t {
		rows = append(rows, PlayerCount{Name: name, Count: count})
	}
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].Count != rows[j].Count {
			return rows[i].Count > rows[j].Count
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}
