package templates

import (
	"context"
	"fmt"
	"html"
	"io"
	"strings"

	"github.com/a-h/templ"
	"github.com/dustin/go-humanize"

	"pav-dashboard/chart"
)

const pageStyle = `
body { font-family: sans-serif; margin: 24px; color: #2a3f5f; }
form { display: flex; gap: 16px; flex-wrap: wrap; align-items: flex-start; }
label { display: flex; flex-direction: column; font-size: 13px; gap: 4px; }
select[multiple] { min-width: 200px; height: 140px; }
.chart { overflow-x: auto; margin-top: 16px; }
footer { font-size: 12px; color: #6b7a90; margin-top: 8px; }
`

// Dashboard renders the full page: controls, chart and footer.
func Dashboard(data DashboardPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := html.EscapeString(data.Figure.Labels.Title)
		if _, err := io.WriteString(w, `<!DOCTYPE html><html lang="en"><head><meta charset="utf-8"><title>`+title+`</title><style>`+pageStyle+`</style></head><body>`); err != nil {
			return err
		}
		if _, err := io.WriteString(w, fmt.Sprintf(`<h1>AFL Player Ratings %d</h1>`, data.Season)); err != nil {
			return err
		}
		if err := Controls(data).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `<div class="chart" id="chart">`); err != nil {
			return err
		}
		if err := Chart(data.Figure).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</div>`); err != nil {
			return err
		}
		_, err := io.WriteString(w, buildFooterHTML(data)+`</body></html>`)
		return err
	})
}

// Controls renders the filter form. Every change re-submits it.
func Controls(data DashboardPageData) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, buildControlsHTML(data))
		return err
	})
}

// Chart renders the figure as inline SVG.
func Chart(f chart.Figure) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return chart.WriteSVG(w, f, chart.DefaultOptions)
	})
}

func buildControlsHTML(data DashboardPageData) string {
	var b strings.Builder
	b.WriteString(`<form method="get" action="/" id="filters">`)

	b.WriteString(`<label>Metric<select name="metric" onchange="this.form.submit()">`)
	for _, m := range data.Metrics {
		b.WriteString(option(m.Value, m.Label, m.Selected))
	}
	b.WriteString(`</select></label>`)

	b.WriteString(`<label>Team<select name="team" multiple onchange="this.form.submit()">`)
	for _, t := range data.Teams {
		b.WriteString(option(t.Code, t.Name, t.Selected))
	}
	b.WriteString(`</select></label>`)

	b.WriteString(`<label>Player<select name="player" multiple onchange="this.form.submit()">`)
	for _, p := range data.Players {
		b.WriteString(option(p.ID, p.ID, p.Selected))
	}
	b.WriteString(`</select></label>`)

	for _, code := range data.PreviousTeams {
		fmt.Fprintf(&b, `<input type="hidden" name="prev_team" value="%s">`, html.EscapeString(code))
	}
	b.WriteString(`<noscript><button type="submit">Apply</button></noscript>`)
	b.WriteString(`</form>`)
	return b.String()
}

func option(value, label string, selected bool) string {
	attr := ""
	if selected {
		attr = " selected"
	}
	return fmt.Sprintf(`<option value="%s"%s>%s</option>`, html.EscapeString(value), attr, html.EscapeString(label))
}

func buildFooterHTML(data DashboardPageData) string {
	var b strings.Builder
	b.WriteString(`<footer>`)
	fmt.Fprintf(&b, "%s players", humanize.Comma(int64(len(data.Figure.Bars))))
	if n := data.Figure.Highlighted(); n != len(data.Figure.Bars) {
		fmt.Fprintf(&b, ", %s highlighted", humanize.Comma(int64(n)))
	}
	if data.ExportURL != "" {
		fmt.Fprintf(&b, ` | <a href="%s">Download PNG</a>`, html.EscapeString(data.ExportURL))
	}
	b.WriteString(`</footer>`)
	return b.String()
}
