// Package captaingang analyzes USTA NorCal league captains. It finds every
// team a player captains or co-captains, extracts the rosters of those
// teams, and counts how often each co-player appears across them.
//
// This package contains domain types, interfaces and pure logic following
// Ben Johnson's Standard Package Layout. Implementations live in
// subdirectories named after their primary dependency (e.g., goquery/,
// http/, rod/).
package captaingang
