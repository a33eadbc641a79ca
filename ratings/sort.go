package ratings

import (
	"cmp"
	"fmt"
	"slices"
)

// SortBy returns a copy of the table ordered ascending by column c.
// Rows with equal values keep their original relative order.
func (t Table) SortBy(c Column) (Table, error) {
	if !c.Numeric() {
		return Table{}, fmt.Errorf("sort by %q: %w", c, ErrInvalidColumn)
	}

	type keyed struct {
		key float64
		row Player
	}
	items := make([]keyed, len(t.rows))
	for i, p := range t.rows {
		v, err := p.Value(c)
		if err != nil {
			return Table{}, err
		}
		items[i] = keyed{key: v, row: p}
	}

	slices.SortStableFunc(items, func(a, b keyed) int {
		return cmp.Compare(a.key, b.key)
	})

	rows := make([]Player, len(items))
	for i, it := range items {
		rows[i] = it.row
	}
	return Table{rows: rows}, nil
}
