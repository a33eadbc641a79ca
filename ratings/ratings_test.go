package ratings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenarioTable is the three row example: A and C play for Richmond, B for Carlton.
func scenarioTable() Table {
	return NewTable([]Player{
		{ID: "A", Team: "RI", Games: 20, TotalPAV: 10.0},
		{ID: "B", Team: "CA", Games: 18, TotalPAV: 5.0},
		{ID: "C", Team: "RI", Games: 22, TotalPAV: 7.0},
	})
}

func TestParseColumn(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  Column
	}{
		{"canonical", "Total_PAV", TotalPAV},
		{"display name", "Total PAV", TotalPAV},
		{"metric prefix", "Total", TotalPAV},
		{"lower case", "def_pav", DefPAV},
		{"per game", "Mid mPAV", MidMPAV},
		{"padded", "  Off_PAV ", OffPAV},
		{"games", "GM", ColumnGames},
		{"byte order mark", "\ufeffPlayer", ColumnPlayer},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseColumn(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := ParseColumn("Goals")
	assert.ErrorIs(t, err, ErrInvalidColumn)
	_, err = ParseColumn("")
	assert.ErrorIs(t, err, ErrInvalidColumn)
}

func TestColumnDisplayName(t *testing.T) {
	assert.Equal(t, "Total PAV", TotalPAV.DisplayName())
	assert.Equal(t, "Off mPAV", OffMPAV.DisplayName())
	assert.Equal(t, "GM", ColumnGames.DisplayName())
}

func TestTeamName(t *testing.T) {
	assert.Len(t, teamNames, 18)

	name, err := TeamName("RI")
	require.NoError(t, err)
	assert.Equal(t, "Richmond", name)

	_, err = TeamName("XX")
	assert.ErrorIs(t, err, ErrUnknownTeam)
}

func TestTeamOptions(t *testing.T) {
	opts, err := TeamOptions(scenarioTable())
	require.NoError(t, err)
	assert.Equal(t, []TeamOption{
		{Code: "CA", Name: "Carlton"},
		{Code: "RI", Name: "Richmond"},
	}, opts)

	bad := NewTable([]Player{{ID: "X", Team: "ZZ"}})
	_, err = TeamOptions(bad)
	assert.ErrorIs(t, err, ErrUnknownTeam)
}

func TestDisambiguate(t *testing.T) {
	rows := []Player{
		{ID: "Smith", Team: "RI"},
		{ID: "Jones", Team: "GE"},
		{ID: "Smith", Team: "CA"},
	}

	got := Disambiguate(rows)

	assert.Equal(t, []string{"Smith (RI)", "Jones", "Smith (CA)"}, NewTable(got).IDs())
	assert.Empty(t, Duplicates(got))
	// input is left untouched
	assert.Equal(t, "Smith", rows[0].ID)
}

func TestDisambiguateSameTeamStillCollides(t *testing.T) {
	rows := []Player{
		{ID: "Brown", Team: "SY"},
		{ID: "Brown", Team: "SY"},
		{ID: "Ward", Team: "GW"},
	}

	got := Disambiguate(rows)

	assert.Equal(t, "Brown (SY)", got[0].ID)
	assert.Equal(t, "Brown (SY)", got[1].ID)
	assert.Equal(t, []string{"Brown (SY)"}, Duplicates(got))
}

func TestSortBy(t *testing.T) {
	table := scenarioTable()

	sorted, err := table.SortBy(TotalPAV)
	require.NoError(t, err)
	assert.Equal(t, []string{"B", "C", "A"}, sorted.IDs())
	// the source table keeps its order
	assert.Equal(t, []string{"A", "B", "C"}, table.IDs())

	again, err := sorted.SortBy(TotalPAV)
	require.NoError(t, err)
	assert.Equal(t, sorted.IDs(), again.IDs())
}

func TestSortByIsStable(t *testing.T) {
	table := NewTable([]Player{
		{ID: "first", DefPAV: 1},
		{ID: "low", DefPAV: -3.5},
		{ID: "second", DefPAV: 1},
		{ID: "third", DefPAV: 1},
	})

	sorted, err := table.SortBy(DefPAV)
	require.NoError(t, err)
	assert.Equal(t, []string{"low", "first", "second", "third"}, sorted.IDs())
}

func TestSortByInvalidColumn(t *testing.T) {
	for _, c := range []Column{ColumnPlayer, ColumnTeam, Column("Goals")} {
		_, err := scenarioTable().SortBy(c)
		assert.ErrorIs(t, err, ErrInvalidColumn, "column %q", c)
	}
}

func TestApplyNoFilters(t *testing.T) {
	table, _ := scenarioTable().SortBy(TotalPAV)

	states, labels, err := Apply(table, Selection{}, 2023)
	require.NoError(t, err)
	require.Len(t, states, table.Len())

	for i, s := range states {
		assert.Equal(t, WeightDefault, s.Weight)
		assert.Contains(t, s.Label, table.Row(i).ID)
	}
	assert.Equal(t, "B\n5\nCA", states[0].Label)
	assert.Equal(t, ChartLabels{
		Title: "AFL Player Ratings 2023: Total PAV",
		XAxis: "Player",
		YAxis: "Total PAV",
	}, labels)
}

func TestApplyTeamFilter(t *testing.T) {
	table, _ := scenarioTable().SortBy(TotalPAV)

	states, _, err := Apply(table, Selection{Metric: TotalPAV, Teams: []string{"RI"}}, 2023)
	require.NoError(t, err)

	want := map[string]Weight{"A": WeightHighlighted, "B": WeightDimmed, "C": WeightHighlighted}
	for i, s := range states {
		p := table.Row(i)
		assert.Equal(t, want[p.ID], s.Weight, p.ID)
		if p.Team == "RI" {
			assert.NotEmpty(t, s.Label)
		} else {
			assert.Empty(t, s.Label)
		}
	}
}

func TestApplyPlayerFilterWinsOverTeam(t *testing.T) {
	table, _ := scenarioTable().SortBy(TotalPAV)

	sel := Selection{Teams: []string{"RI"}, Players: []string{"B"}}
	assert.Equal(t, ModePlayer, sel.Mode())

	states, _, err := Apply(table, sel, 2023)
	require.NoError(t, err)
	assert.Equal(t, []Weight{WeightHighlighted, WeightDimmed, WeightDimmed}, weights(states))
	assert.Equal(t, "B\n5\nCA", states[0].Label)
}

func TestApplyUnknownSelection(t *testing.T) {
	table := scenarioTable()

	for _, sel := range []Selection{
		{Teams: []string{"WC"}},
		{Players: []string{"Nobody"}},
	} {
		states, _, err := Apply(table, sel, 2023)
		require.NoError(t, err)
		for _, s := range states {
			assert.Equal(t, WeightDimmed, s.Weight)
			assert.Empty(t, s.Label)
		}
	}
}

func TestApplyEmptyTable(t *testing.T) {
	states, labels, err := Apply(NewTable(nil), Selection{Metric: DefPAV}, 2024)
	require.NoError(t, err)
	assert.Empty(t, states)
	assert.Equal(t, "AFL Player Ratings 2024: Def PAV", labels.Title)
}

func TestApplyRejectsTextMetric(t *testing.T) {
	_, _, err := Apply(scenarioTable(), Selection{Metric: ColumnTeam}, 2023)
	assert.ErrorIs(t, err, ErrInvalidColumn)
}

func TestSelectionIgnoresBlankValues(t *testing.T) {
	assert.Equal(t, ModeAll, Selection{Teams: []string{""}, Players: []string{""}}.Mode())
	assert.Equal(t, ModeTeam, Selection{Teams: []string{"RI"}, Players: []string{""}}.Mode())
}

func TestCrossFilter(t *testing.T) {
	table := NewTable([]Player{
		{ID: "Zorko", Team: "BL"},
		{ID: "Cripps", Team: "CA"},
		{ID: "Curnow", Team: "CA"},
		{ID: "Acres", Team: "CA"},
		{ID: "Martin", Team: "RI"},
	})

	assert.Equal(t, []string{"Acres", "Cripps", "Curnow"}, CrossFilter(table, []string{"CA"}))
	assert.Equal(t, []string{"Acres", "Cripps", "Curnow", "Martin"}, CrossFilter(table, []string{"RI", "CA"}))
	assert.Empty(t, CrossFilter(table, nil))
	assert.NotNil(t, CrossFilter(table, nil))
	assert.Empty(t, CrossFilter(table, []string{"WC"}))
}

func TestCrossFilterScenario(t *testing.T) {
	assert.Equal(t, []string{"A", "C"}, CrossFilter(scenarioTable(), []string{"RI"}))
}

func TestPlayerOptions(t *testing.T) {
	table := scenarioTable()
	assert.Equal(t, []string{"A", "B", "C"}, PlayerOptions(table, nil))
	assert.Equal(t, []string{"B"}, PlayerOptions(table, []string{"CA"}))
}

func TestCascade(t *testing.T) {
	table := scenarioTable()

	tests := []struct {
		name     string
		sel      Selection
		previous []string
		want     []string
	}{
		{
			name:     "team added resets players",
			sel:      Selection{Teams: []string{"RI"}, Players: []string{"B"}},
			previous: nil,
			want:     []string{"A", "C"},
		},
		{
			name:     "teams unchanged keeps players",
			sel:      Selection{Teams: []string{"RI"}, Players: []string{"A"}},
			previous: []string{"RI"},
			want:     []string{"A"},
		},
		{
			name:     "teams cleared clears players",
			sel:      Selection{Players: []string{"A"}},
			previous: []string{"RI"},
			want:     []string{},
		},
		{
			name:     "order does not matter",
			sel:      Selection{Teams: []string{"RI", "CA"}, Players: []string{"B"}},
			previous: []string{"CA", "RI"},
			want:     []string{"B"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Cascade(table, tt.sel, tt.previous)
			assert.Equal(t, tt.want, got.Players)
			assert.Equal(t, tt.sel.Teams, got.Teams)
		})
	}
}

func weights(states []DisplayState) []Weight {
	out := make([]Weight, len(states))
	for i, s := range states {
		out[i] = s.Weight
	}
	return out
}
