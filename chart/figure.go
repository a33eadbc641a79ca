// Package chart turns a sorted ratings table and its display states into a bar
// chart, either as inline SVG with per-bar hover text or as a PNG export.
package chart

import (
	"errors"
	"fmt"

	"pav-dashboard/ratings"
)

// ErrEmptyFigure is returned by renderers that cannot draw a chart without bars.
var ErrEmptyFigure = errors.New("figure has no bars")

// Bar is one player's bar, in display order.
type Bar struct {
	Player string         `json:"player"`
	Team   string         `json:"team"`
	Value  float64        `json:"value"`
	Weight ratings.Weight `json:"weight"`
	Label  string         `json:"label,omitempty"`
}

// Figure is everything a renderer needs.
type Figure struct {
	Metric ratings.Column      `json:"metric"`
	Mode   ratings.Mode        `json:"mode"`
	Labels ratings.ChartLabels `json:"labels"`
	Bars   []Bar               `json:"bars"`
}

// Highlighted counts the bars that carry a hover label.
func (f Figure) Highlighted() int {
	n := 0
	for _, b := range f.Bars {
		if b.Label != "" {
			n++
		}
	}
	return n
}

// Build pairs every row of the sorted table with its display state.
func Build(sorted ratings.Table, metric ratings.Column, states []ratings.DisplayState, labels ratings.ChartLabels) (Figure, error) {
	if len(states) != sorted.Len() {
		return Figure{}, fmt.Errorf("build figure: %d states for %d rows", len(states), sorted.Len())
	}

	bars := make([]Bar, len(states))
	for i, s := range states {
		p := sorted.Row(i)
		v, err := p.Value(metric)
		if err != nil {
			return Figure{}, err
		}
		bars[i] = Bar{
			Player: p.ID,
			Team:   p.Team,
			Value:  v,
			Weight: s.Weight,
			Label:  s.Label,
		}
	}
	return Figure{Metric: metric, Labels: labels, Bars: bars}, nil
}

// Compute runs one full recomputation for a selection: sort by the selected
// metric, derive display states and build the figure.
func Compute(t ratings.Table, sel ratings.Selection, season int) (Figure, error) {
	metric := sel.MetricOrDefault()

	sorted, err := t.SortBy(metric)
	if err != nil {
		return Figure{}, err
	}

	states, labels, err := ratings.Apply(sorted, sel, season)
	if err != nil {
		return Figure{}, err
	}

	f, err := Build(sorted, metric, states, labels)
	if err != nil {
		return Figure{}, err
	}
	f.Mode = sel.Mode()
	return f, nil
}

// valueRange returns the y axis bounds: zero is always inside, with a small pad.
func valueRange(bars []Bar) (lo, hi float64) {
	for _, b := range bars {
		lo = min(lo, b.Value)
		hi = max(hi, b.Value)
	}
	pad := (hi - lo) * 0.05
	if pad == 0 {
		pad = 1
	}
	return lo - pad, hi + pad
}
