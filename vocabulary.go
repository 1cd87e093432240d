package captaingang

import (
	"regexp"
	"sort"
	"strings"
	"unicode"
)

var (
	nameShape   = regexp.MustCompile(`^[A-Za-z\s,.]+$`)
	placeholder = regexp.MustCompile(`^[\d\s\-_]+$`)
)

// WordSet is a case-insensitive set of words or multi-word phrases.
type WordSet map[string]struct{}

// NewWordSet returns a set holding the given words.
func NewWordSet(words ...string) WordSet {
	s := make(WordSet, len(words))
	s.Add(words...)
	return s
}

// Add inserts words into the set. Blank words are ignored.
func (s WordSet) Add(words ...string) {
	for _, w := range words {
		w = strings.ToLower(NormalizeName(w))
		if w == "" {
			continue
		}
		s[w] = struct{}{}
	}
}

// Has reports whether the set holds word exactly (ignoring case).
func (s WordSet) Has(word string) bool {
	_, ok := s[strings.ToLower(NormalizeName(word))]
	return ok
}

// Words returns the members of the set in sorted order.
func (s WordSet) Words() []string {
	words := make([]string, 0, len(s))
	for w := range s {
		words = append(words, w)
	}
	sort.Strings(words)
	return words
}

// MatchIn reports whether any member of the set occurs in text as a whole
// word or a whole run of words. "San" matches "San Jose" but "a" never
// matches inside "Maria".
func (s WordSet) MatchIn(text string) bool {
	if len(s) == 0 {
		return false
	}
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return false
	}
	for w := range s {
		if containsRun(tokens, tokenize(w)) {
			return true
		}
	}
	return false
}

// Vocabulary holds the site-specific words that separate person names from
// labels and noise on league pages. It is data rather than code so that new
// labels can be added without touching the extractors.
type Vocabulary struct {
	// Labels disqualify a roster cell: role labels, table headers, day
	// abbreviations and municipality names.
	Labels WordSet

	// Stopwords are common words rejected when they make up a whole fragment.
	Stopwords WordSet

	// SiteWords disqualify a captain-name candidate anywhere on a profile.
	SiteWords WordSet

	// CaptainLabels additionally disqualify captain-name candidates found
	// in the first table of a profile.
	CaptainLabels WordSet
}

// NewVocabulary returns an empty vocabulary.
func NewVocabulary() *Vocabulary {
	return &Vocabulary{
		Labels:        NewWordSet(),
		Stopwords:     NewWordSet(),
		SiteWords:     NewWordSet(),
		CaptainLabels: NewWordSet(),
	}
}

// DefaultVocabulary returns the built-in vocabulary for leagues.ustanorcal.com.
func DefaultVocabulary() *Vocabulary {
	return &Vocabulary{
		Labels: NewWordSet(
			// roles
			"Captain", "Co-Captain", "Coordinator",
			// table headers and page labels
			"Team", "League", "Division", "Win", "Loss", "Rating", "City",
			"Gender", "Matches", "Player", "Status", "Outcome", "Round",
			"Home", "Away", "Confirmed", "Scheduled", "Defaults", "Singles",
			"Doubles", "Eligibility", "Expiration", "Local", "Sectional",
			"National", "PlayOff", "Registration", "Closed", "Currently",
			"playing", "If", "problem", "exists", "Red", "Rostered",
			"Individual", "Won", "Day", "Match", "date", "time", "Standings",
			"Rules", "Newsletters", "Availability", "Print", "Blank", "Score",
			"Card",
			// days
			"Mon", "Tue", "Wed", "Thu", "Fri", "Sat", "Sun",
			// municipalities
			"Mountain", "View", "San", "Jose", "Santa", "Clara", "Sunnyvale",
			"Fremont", "Palo", "Alto", "Cupertino", "Mateo", "Antioch",
			"Francisco", "Campbell", "Los", "Gatos", "Milpitas", "Portola",
			"Valley", "Stanford", "South",
		),
		Stopwords: NewWordSet(
			"the", "and", "or", "but", "in", "on", "at", "to", "for", "of",
			"with", "by",
		),
		SiteWords:     NewWordSet("USTA", "Northern", "California", "Leagues", "Matches"),
		CaptainLabels: NewWordSet("Rating", "Expiration"),
	}
}

// Merge adds every word of other into v. Nil sets on v are allocated.
func (v *Vocabulary) Merge(other *Vocabulary) {
	if other == nil {
		return
	}
	v.Labels = mergeSet(v.Labels, other.Labels)
	v.Stopwords = mergeSet(v.Stopwords, other.Stopwords)
	v.SiteWords = mergeSet(v.SiteWords, other.SiteWords)
	v.CaptainLabels = mergeSet(v.CaptainLabels, other.CaptainLabels)
}

func mergeSet(dst, src WordSet) WordSet {
	if dst == nil {
		dst = NewWordSet()
	}
	for w := range src {
		dst[w] = struct{}{}
	}
	return dst
}

// LooksLikePersonName reports whether a text fragment from a roster table
// is plausibly a person's name rather than a label or placeholder.
func (v *Vocabulary) LooksLikePersonName(text string) bool {
	text = NormalizeName(text)
	if len(text) < 3 {
		return false
	}
	if v.Labels.MatchIn(text) {
		return false
	}
	// Headers and labels are rendered in capitals on the site.
	if isUpper(text) && len(text) > 3 {
		return false
	}
	if placeholder.MatchString(text) {
		return false
	}
	if !nameShape.MatchString(text) {
		return false
	}
	return !v.Stopwords.Has(text)
}

// LooksLikeCaptainName reports whether a fragment from a profile page is
// plausibly the profile owner's full name. Fragments from the first-table
// fallback are also checked against CaptainLabels.
func (v *Vocabulary) LooksLikeCaptainName(text string, fallback bool) bool {
	text = NormalizeName(text)
	if len(text) <= 3 {
		return false
	}
	if v.SiteWords.MatchIn(text) {
		return false
	}
	if fallback && v.CaptainLabels.MatchIn(text) {
		return false
	}
	return nameShape.MatchString(text) && len(strings.Fields(text)) >= 2
}

// NormalizeName collapses runs of whitespace and trims the ends.
func NormalizeName(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

func isUpper(s string) bool {
	hasLetter := false
	for _, r := range s {
		if unicode.IsLetter(r) {
			hasLetter = true
			if !unicode.IsUpper(r) {
				return false
			}
		}
	}
	return hasLetter
}

// tokenize splits s into lower-case runs of letters and digits.
func tokenize(s string) []string {
	return strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

func containsRun(tokens, run []string) bool {
	if len(run) == 0 || len(run) > len(tokens) {
		return false
	}
	for i := 0; i+len(run) <= len(tokens); i++ {
		match := true
		for j := range run {
			if tokens[i+j] != run[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}
