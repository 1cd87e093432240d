package goquery

import (
	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/captaingang"
)

var _ captaingang.RosterExtractor = (*RosterExtractor)(nil)

// RosterExtractor extracts the players listed on a team roster page.
type RosterExtractor struct {
	selectors  Selectors
	vocabulary *captaingang.Vocabulary
}

// NewRosterExtractor creates a RosterExtractor.
func NewRosterExtractor(selectors Selectors, vocabulary *captaingang.Vocabulary) *RosterExtractor {
	return &RosterExtractor{selectors: selectors, vocabulary: vocabulary}
}

// ExtractRoster returns the players of team in two passes. Linked players
// come first, in document order. Table cells that look like names and were
// not linked follow with captaingang.UnknownID, which recovers rows the site
// renders without profile links. Entries are unique per (id, name).
func (e *RosterExtractor) ExtractRoster(html string, team captaingang.TeamRef) []captaingang.RosterEntry {
	doc := parse(html)
	if doc == nil {
		return nil
	}

	var entries []captaingang.RosterEntry
	seen := make(map[string]bool)
	linked := make(map[string]bool)

	add := func(entry captaingang.RosterEntry) {
		key := entry.Key()
		if seen[key] {
			return
		}
		seen[key] = true
		entries = append(entries, entry)
	}

	for _, l := range findLinks(doc, e.selectors, e.selectors.PlayerHref) {
		if len(l.text) <= 2 {
			continue
		}
		linked[l.text] = true
		add(captaingang.RosterEntry{
			PersonRef: captaingang.PersonRef{ID: l.id, Name: l.text},
			TeamName:  team.Name,
		})
	}

	doc.Find(e.selectors.Tables).Find(e.selectors.Cells).Each(func(_ int, sel *goquery.Selection) {
		name := text(sel)
		if linked[name] || !e.vocabulary.LooksLikePersonName(name) {
			return
		}
		add(captaingang.RosterEntry{
			PersonRef: captaingang.PersonRef{ID: captaingang.UnknownID, Name: name},
			TeamName:  team.Name,
		})
	})

	return entries
}
