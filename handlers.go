package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"strings"
	"time"

	"github.com/a-h/templ"
	"github.com/rs/zerolog/hlog"

	"pav-dashboard/chart"
	"pav-dashboard/ratings"
	"pav-dashboard/templates"
)

// readSelection builds the filter selection from the query string, together with
// the team selection the page was last rendered with (prev_team).
// Team codes may be repeated or comma separated and are upper-cased.
func readSelection(q url.Values) (ratings.Selection, []string, error) {
	var sel ratings.Selection

	if name := q.Get("metric"); name != "" {
		metric, err := ratings.ParseColumn(name)
		if err != nil {
			return sel, nil, err
		}
		if !slices.Contains(ratings.Metrics, metric) {
			return sel, nil, fmt.Errorf("metric %q is not a chart metric: %w", metric, ratings.ErrInvalidColumn)
		}
		sel.Metric = metric
	}

	sel.Teams = teamCodes(q["team"])
	for _, p := range q["player"] {
		if p = strings.TrimSpace(p); p != "" {
			sel.Players = append(sel.Players, p)
		}
	}
	return sel, teamCodes(q["prev_team"]), nil
}

func teamCodes(values []string) []string {
	var codes []string
	for _, v := range values {
		for _, code := range strings.Split(v, ",") {
			if code = strings.ToUpper(strings.TrimSpace(code)); code != "" {
				codes = append(codes, code)
			}
		}
	}
	return codes
}

func (d *dashboard) pageHandler(w http.ResponseWriter, r *http.Request) {
	sel, previous, err := readSelection(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	sel = ratings.Cascade(d.table, sel, previous)

	f, err := d.render(sel)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("❌ chart failed")
		http.Error(w, "Could not build chart", http.StatusInternalServerError)
		return
	}

	component := templates.Dashboard(d.pageData(sel, f))
	templ.Handler(component).ServeHTTP(w, r)
}

func (d *dashboard) pageData(sel ratings.Selection, f chart.Figure) templates.DashboardPageData {
	data := templates.DashboardPageData{
		Season:        d.season,
		PreviousTeams: sel.Teams,
		Figure:        f,
		ExportURL:     "/chart.png?" + selectionQuery(sel).Encode(),
	}

	for _, m := range ratings.Metrics {
		data.Metrics = append(data.Metrics, templates.MetricOption{
			Value:    string(m),
			Label:    m.DisplayName(),
			Selected: m == f.Metric,
		})
	}
	for _, t := range d.teams {
		data.Teams = append(data.Teams, templates.TeamOption{
			Code:     t.Code,
			Name:     t.Name,
			Selected: slices.Contains(sel.Teams, t.Code),
		})
	}
	for _, id := range ratings.PlayerOptions(d.table, sel.Teams) {
		data.Players = append(data.Players, templates.PlayerOption{
			ID:       id,
			Selected: slices.Contains(sel.Players, id),
		})
	}
	return data
}

func selectionQuery(sel ratings.Selection) url.Values {
	q := url.Values{}
	q.Set("metric", string(sel.MetricOrDefault()))
	for _, t := range sel.Teams {
		q.Add("team", t)
	}
	for _, p := range sel.Players {
		q.Add("player", p)
	}
	return q
}

func (d *dashboard) pngHandler(w http.ResponseWriter, r *http.Request) {
	sel, _, err := readSelection(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	f, err := d.render(sel)
	if err != nil {
		http.Error(w, "Could not build chart", http.StatusInternalServerError)
		return
	}

	var buf bytes.Buffer
	if err := chart.WritePNG(&buf, f); err != nil {
		if errors.Is(err, chart.ErrEmptyFigure) {
			http.Error(w, "No players loaded", http.StatusNotFound)
			return
		}
		hlog.FromRequest(r).Error().Err(err).Msg("❌ PNG export failed")
		http.Error(w, "Could not render chart", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="pav_%d_%s.png"`, d.season, f.Metric))
	w.Write(buf.Bytes())
}

func (d *dashboard) healthHandler(w http.ResponseWriter, r *http.Request) {
	status := http.StatusOK
	resp := map[string]any{
		"status": "ok",
		"season": d.season,
		"rows":   d.table.Len(),
	}

	if d.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		resp["database"] = "ok"
		if err := d.db.Ping(ctx); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("database ping failed")
			status = http.StatusServiceUnavailable
			resp["status"] = "degraded"
			resp["database"] = "unreachable"
		}
	}
	respondJSON(w, status, resp)
}
