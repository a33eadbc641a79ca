package templates

import "pav-dashboard/chart"

// MetricOption is one entry of the metric dropdown.
type MetricOption struct {
	Value    string `json:"value"`
	Label    string `json:"label"`
	Selected bool   `json:"selected"`
}

// TeamOption is one entry of the team dropdown.
type TeamOption struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Selected bool   `json:"selected"`
}

// PlayerOption is one entry of the player dropdown.
type PlayerOption struct {
	ID       string `json:"id"`
	Selected bool   `json:"selected"`
}

// DashboardPageData is everything the dashboard page shows for one request.
// PreviousTeams is echoed back as hidden inputs so the next submit can tell
// whether the team selection changed.
type DashboardPageData struct {
	Season        int
	Metrics       []MetricOption
	Teams         []TeamOption
	Players       []PlayerOption
	PreviousTeams []string
	Figure        chart.Figure
	ExportURL     string
}
