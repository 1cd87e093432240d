package captaingang

import "strings"

// UnknownID marks a person whose name appeared on a page without a link to
// their player profile.
const UnknownID = "unknown"

// PersonRef is a candidate reference to a person on a league page.
type PersonRef struct {
	// ID is the numeric player id, or UnknownID.
	ID   string
	Name string
}

// TeamRef is a team the analyzed player captains or co-captains.
type TeamRef struct {
	// ID is the numeric team id. Teams without one are never emitted.
	ID string
	// Name is the link text, which carries the Captain/Co-Captain marker.
	Name string
	// URL is the resolved address of the team's roster page.
	URL string
}

// IsCoCaptain reports whether the team link marks a co-captain role.
func (t TeamRef) IsCoCaptain() bool {
	return strings.Contains(t.Name, "Co-Captain")
}

// RosterEntry is a PersonRef listed on one team's roster.
type RosterEntry struct {
	PersonRef
	TeamName string
}

// Key returns the per-team uniqueness key of the entry.
func (e RosterEntry) Key() string {
	id := e.ID
	if id == "" {
		id = UnknownID
	}
	return id + "_" + NormalizeName(e.Name)
}

// Linked reports whether the entry was recovered from a profile link.
func (e RosterEntry) Linked() bool {
	return e.ID != "" && e.ID != UnknownID
}

// Profile holds what a captain's player page reveals.
type Profile struct {
	// Teams are the captained teams in document order.
	Teams []TeamRef
	// CaptainName is empty when no name could be found.
	CaptainName string
}

// ProfileExtractor extracts captained teams and the player's name from
// player profile markup.
type ProfileExtractor interface {
	// ExtractProfile never fails on malformed markup; missing structure
	// yields an empty profile.
	ExtractProfile(html string) *Profile
}

// RosterExtractor extracts the players listed on a team page.
type RosterExtractor interface {
	// ExtractRoster returns the roster of team. Empty or malformed
	// markup yields an empty slice.
	ExtractRoster(html string, team TeamRef) []RosterEntry
}
