package ratings

import (
	"fmt"
	"strings"
)

// Weight is the opacity a bar is drawn with.
type Weight float64

// Bar weights for unfiltered, highlighted and dimmed rows.
const (
	WeightDefault     Weight = 1
	WeightHighlighted Weight = 0.6
	WeightDimmed      Weight = 0.1
)

// DisplayState is how one row is drawn: its bar weight and hover label.
// Dimmed rows carry an empty label so they produce no hover text.
type DisplayState struct {
	Weight Weight `json:"weight"`
	Label  string `json:"label,omitempty"`
}

// ChartLabels are the title and axis captions for a metric.
type ChartLabels struct {
	Title string `json:"title"`
	XAxis string `json:"x_axis"`
	YAxis string `json:"y_axis"`
}

// Mode says which membership test decides highlighting.
type Mode string

// ModeAll draws every bar at full weight. ModeTeam and ModePlayer highlight by team code or player id.
const (
	ModeAll    Mode = "all"
	ModeTeam   Mode = "team"
	ModePlayer Mode = "player"
)

// Selection is the set of filters active for one render.
// Empty Teams and empty Players both mean "all".
type Selection struct {
	Metric  Column   `json:"metric"`
	Teams   []string `json:"teams"`
	Players []string `json:"players"`
}

// MetricOrDefault returns the selected metric, or DefaultMetric when none is set.
func (s Selection) MetricOrDefault() Column {
	if s.Metric == "" {
		return DefaultMetric
	}
	return s.Metric
}

// Mode reports the highlight policy for the selection. Player selection wins
// over team selection when both are present.
func (s Selection) Mode() Mode {
	switch {
	case len(nonEmpty(s.Players)) > 0:
		return ModePlayer
	case len(nonEmpty(s.Teams)) > 0:
		return ModeTeam
	default:
		return ModeAll
	}
}

// Labels returns the chart title and axis captions for metric.
func Labels(metric Column, season int) ChartLabels {
	name := metric.DisplayName()
	return ChartLabels{
		Title: fmt.Sprintf("AFL Player Ratings %d: %s", season, name),
		XAxis: "Player",
		YAxis: name,
	}
}

// HoverLabel is the full label of a highlighted or unfiltered row.
func HoverLabel(p Player, value float64) string {
	return strings.Join([]string{p.ID, FormatValue(value), p.Team}, "\n")
}

// Apply derives one DisplayState per row of t for the selection, in table order,
// together with the chart labels. The table is not modified.
func Apply(t Table, sel Selection, season int) ([]DisplayState, ChartLabels, error) {
	metric := sel.MetricOrDefault()
	if !metric.Numeric() {
		return nil, ChartLabels{}, fmt.Errorf("chart metric %q: %w", metric, ErrInvalidColumn)
	}
	labels := Labels(metric, season)

	mode := sel.Mode()
	var members map[string]struct{}
	switch mode {
	case ModePlayer:
		members = toSet(sel.Players)
	case ModeTeam:
		members = toSet(sel.Teams)
	}

	states := make([]DisplayState, len(t.rows))
	for i, p := range t.rows {
		v, err := p.Value(metric)
		if err != nil {
			return nil, ChartLabels{}, err
		}

		var key string
		switch mode {
		case ModeAll:
			states[i] = DisplayState{Weight: WeightDefault, Label: HoverLabel(p, v)}
			continue
		case ModePlayer:
			key = p.ID
		case ModeTeam:
			key = p.Team
		}

		if _, ok := members[key]; ok {
			states[i] = DisplayState{Weight: WeightHighlighted, Label: HoverLabel(p, v)}
		} else {
			states[i] = DisplayState{Weight: WeightDimmed}
		}
	}
	return states, labels, nil
}

func toSet(values []string) map[string]struct{} {
	set := make(map[string]struct{}, len(values))
	for _, v := range nonEmpty(values) {
		set[v] = struct{}{}
	}
	return set
}

func nonEmpty(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}
