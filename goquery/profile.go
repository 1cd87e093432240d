package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/captaingang"
)

var _ captaingang.ProfileExtractor = (*ProfileExtractor)(nil)

// ProfileExtractor extracts captained teams and the player's name from a
// player profile page.
type ProfileExtractor struct {
	selectors  Selectors
	vocabulary *captaingang.Vocabulary
}

// NewProfileExtractor creates a ProfileExtractor.
func NewProfileExtractor(selectors Selectors, vocabulary *captaingang.Vocabulary) *ProfileExtractor {
	return &ProfileExtractor{selectors: selectors, vocabulary: vocabulary}
}

// ExtractProfile returns the teams whose link text carries the captain
// marker, in document order, and the first plausible captain name.
// Team links are not deduplicated.
func (e *ProfileExtractor) ExtractProfile(html string) *captaingang.Profile {
	profile := &captaingang.Profile{}

	doc := parse(html)
	if doc == nil {
		return profile
	}

	profile.CaptainName = e.captainName(doc)

	for _, l := range findLinks(doc, e.selectors, e.selectors.TeamHref) {
		if !strings.Contains(l.text, e.selectors.CaptainMarker) {
			continue
		}
		profile.Teams = append(profile.Teams, captaingang.TeamRef{
			ID:   l.id,
			Name: l.text,
			URL:  resolveURL(e.selectors.BaseURL, l.href),
		})
	}

	return profile
}

// captainName scans headings first and falls back to the cells of the
// first table. Returns "" when neither yields a name.
func (e *ProfileExtractor) captainName(doc *goquery.Document) string {
	var name string

	doc.Find(e.selectors.Headings).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if t := text(sel); e.vocabulary.LooksLikeCaptainName(t, false) {
			name = t
			return false
		}
		return true
	})
	if name != "" {
		return name
	}

	doc.Find(e.selectors.Tables).First().Find(e.selectors.Cells).EachWithBreak(func(_ int, sel *goquery.Selection) bool {
		if t := text(sel); e.vocabulary.LooksLikeCaptainName(t, true) {
			name = t
			return false
		}
		return true
	})
	return name
}
