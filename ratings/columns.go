package ratings

import (
	"fmt"
	"strings"
)

// Column names a field of the ratings table, spelled as in the source CSV and database.
type Column string

const (
	ColumnPlayer Column = "Player"
	ColumnTeam   Column = "TM"
	ColumnGames  Column = "GM"

	OffPAV   Column = "Off_PAV"
	DefPAV   Column = "Def_PAV"
	MidPAV   Column = "Mid_PAV"
	TotalPAV Column = "Total_PAV"

	OffMPAV   Column = "Off_mPAV"
	DefMPAV   Column = "Def_mPAV"
	MidMPAV   Column = "Mid_mPAV"
	TotalMPAV Column = "Total_mPAV"
)

// DefaultMetric is charted when no metric is selected.
const DefaultMetric = TotalPAV

// Columns lists every column in source order.
var Columns = []Column{
	ColumnPlayer, ColumnTeam, ColumnGames,
	OffPAV, DefPAV, MidPAV, TotalPAV,
	OffMPAV, DefMPAV, MidMPAV, TotalMPAV,
}

// Metrics are the columns offered in the metric dropdown.
var Metrics = []Column{OffPAV, DefPAV, MidPAV, TotalPAV}

// DisplayName is the column name with underscores replaced by spaces.
func (c Column) DisplayName() string {
	return strings.ReplaceAll(string(c), "_", " ")
}

// Numeric reports whether rows can be sorted and charted by the column.
func (c Column) Numeric() bool {
	switch c {
	case ColumnGames, OffPAV, DefPAV, MidPAV, TotalPAV, OffMPAV, DefMPAV, MidMPAV, TotalMPAV:
		return true
	}
	return false
}

// NormalizeName trims a header or query value and turns spaces into underscores,
// so "Total PAV" and "Total_PAV" name the same column.
func NormalizeName(name string) string {
	name = strings.TrimSpace(strings.TrimPrefix(name, "\ufeff"))
	return strings.Join(strings.Fields(name), "_")
}

// ParseColumn resolves a column from its canonical name, its display name or the bare
// metric prefix ("Total" resolves to Total_PAV). Matching ignores case.
func ParseColumn(name string) (Column, error) {
	n := NormalizeName(name)
	if n == "" {
		return "", fmt.Errorf("%w: empty name", ErrInvalidColumn)
	}
	for _, c := range Columns {
		if strings.EqualFold(string(c), n) {
			return c, nil
		}
	}
	for _, c := range Metrics {
		if strings.EqualFold(string(c), n+"_PAV") {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidColumn, name)
}
