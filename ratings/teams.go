package ratings

import (
	"fmt"
	"maps"
	"slices"
)

// AFL team code -> club name.
var teamNames = map[string]string{
	"AD": "Adelaide Crows",
	"BL": "Brisbane Lions",
	"CA": "Carlton",
	"CW": "Collingwood",
	"ES": "Essendon",
	"FR": "Fremantle",
	"GE": "Geelong Cats",
	"GC": "Gold Coast Suns",
	"GW": "GWS Giants",
	"HW": "Hawthorn",
	"ME": "Melbourne",
	"NM": "North Melbourne",
	"PA": "Port Adelaide",
	"RI": "Richmond",
	"SK": "St Kilda",
	"SY": "Sydney Swans",
	"WB": "Western Bulldogs",
	"WC": "West Coast Eagles",
}

// TeamName returns the club name for a team code.
func TeamName(code string) (string, error) {
	if name, ok := teamNames[code]; ok {
		return name, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownTeam, code)
}

// TeamOption is one entry of the team dropdown.
type TeamOption struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// TeamOptions lists the teams present in the table, ordered by code.
// A code missing from the team table is a data error and is returned as ErrUnknownTeam.
func TeamOptions(t Table) ([]TeamOption, error) {
	seen := make(map[string]struct{})
	for _, p := range t.rows {
		seen[p.Team] = struct{}{}
	}

	options := make([]TeamOption, 0, len(seen))
	for _, code := range slices.Sorted(maps.Keys(seen)) {
		name, err := TeamName(code)
		if err != nil {
			return nil, err
		}
		options = append(options, TeamOption{Code: code, Name: name})
	}
	return options, nil
}
