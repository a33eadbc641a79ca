package ratings

import "slices"

// CrossFilter returns the sorted, de-duplicated ids of players whose team is in teams.
// An empty team selection narrows nothing and yields an empty result.
func CrossFilter(t Table, teams []string) []string {
	selected := toSet(teams)
	if len(selected) == 0 {
		return []string{}
	}

	ids := make([]string, 0)
	for _, p := range t.rows {
		if _, ok := selected[p.Team]; ok {
			ids = append(ids, p.ID)
		}
	}
	slices.Sort(ids)
	return slices.Compact(ids)
}

// PlayerOptions returns the values offered by the player dropdown: every player
// when no team is selected, otherwise the players of the selected teams.
func PlayerOptions(t Table, teams []string) []string {
	if len(toSet(teams)) > 0 {
		return CrossFilter(t, teams)
	}
	ids := t.IDs()
	slices.Sort(ids)
	return slices.Compact(ids)
}

// Cascade resets the player selection to CrossFilter(t, sel.Teams) when the team
// selection differs from previousTeams. Otherwise sel is returned as is.
func Cascade(t Table, sel Selection, previousTeams []string) Selection {
	if sameSet(sel.Teams, previousTeams) {
		return sel
	}
	sel.Players = CrossFilter(t, sel.Teams)
	return sel
}

func sameSet(a, b []string) bool {
	sa, sb := toSet(a), toSet(b)
	if len(sa) != len(sb) {
		return false
	}
	for k := range sa {
		if _, ok := sb[k]; !ok {
			return false
		}
	}
	return true
}
