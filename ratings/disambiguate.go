package ratings

import (
	"fmt"
	"slices"
)

// Disambiguate returns a copy of rows in which every player name that occurs more than
// once is rewritten to "name (TEAM)". Unique names and row order are left alone.
//
// Two rows sharing both name and team still collide afterwards; use Duplicates to find them.
func Disambiguate(rows []Player) []Player {
	counts := make(map[string]int, len(rows))
	for _, p := range rows {
		counts[p.ID]++
	}

	out := slices.Clone(rows)
	for i, p := range out {
		if counts[p.ID] > 1 {
			out[i].ID = fmt.Sprintf("%s (%s)", p.ID, p.Team)
		}
	}
	return out
}

// Duplicates returns the player ids that appear more than once, in order of first repeat.
func Duplicates(rows []Player) []string {
	seen := make(map[string]int, len(rows))
	var dups []string
	for _, p := range rows {
		seen[p.ID]++
		if seen[p.ID] == 2 {
			dups = append(dups, p.ID)
		}
	}
	return dups
}
