package ratings

import (
	"fmt"
	"slices"
	"strconv"
)

// Player is one row of a season's ratings table.
type Player struct {
	ID    string `json:"player"`
	Team  string `json:"team"`
	Games int    `json:"games"`

	OffPAV   float64 `json:"off_pav"`
	DefPAV   float64 `json:"def_pav"`
	MidPAV   float64 `json:"mid_pav"`
	TotalPAV float64 `json:"total_pav"`

	OffMPAV   float64 `json:"off_mpav"`
	DefMPAV   float64 `json:"def_mpav"`
	MidMPAV   float64 `json:"mid_mpav"`
	TotalMPAV float64 `json:"total_mpav"`
}

// Value returns the numeric value of c for the player.
func (p Player) Value(c Column) (float64, error) {
	switch c {
	case ColumnGames:
		return float64(p.Games), nil
	case OffPAV:
		return p.OffPAV, nil
	case DefPAV:
		return p.DefPAV, nil
	case MidPAV:
		return p.MidPAV, nil
	case TotalPAV:
		return p.TotalPAV, nil
	case OffMPAV:
		return p.OffMPAV, nil
	case DefMPAV:
		return p.DefMPAV, nil
	case MidMPAV:
		return p.MidMPAV, nil
	case TotalMPAV:
		return p.TotalMPAV, nil
	}
	return 0, fmt.Errorf("%w: %q is not numeric", ErrInvalidColumn, c)
}

// FormatValue renders a metric value the way hover labels show it.
func FormatValue(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Table is an immutable, ordered set of player rows. Sorting and filtering
// return new values and never modify the receiver.
type Table struct {
	rows []Player
}

// NewTable copies rows into a table.
func NewTable(rows []Player) Table {
	return Table{rows: slices.Clone(rows)}
}

// Len returns the number of rows.
func (t Table) Len() int { return len(t.rows) }

// Row returns the i-th row.
func (t Table) Row(i int) Player { return t.rows[i] }

// Rows returns a copy of the rows in table order.
func (t Table) Rows() []Player { return slices.Clone(t.rows) }

// IDs returns the player ids in table order.
func (t Table) IDs() []string {
	ids := make([]string, len(t.rows))
	for i, p := range t.rows {
		ids[i] = p.ID
	}
	return ids
}
