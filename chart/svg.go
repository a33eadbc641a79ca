package chart

import (
	"fmt"
	"html"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
	"github.com/dustin/go-humanize"
)

// BarColor is the fill of every bar; opacity comes from the bar weight.
const BarColor = "#636efa"

// Options control the SVG layout. Zero values fall back to DefaultOptions.
type Options struct {
	BarWidth   int
	BarGap     int
	PlotHeight int
	Ticks      int
}

// DefaultOptions fit a full season of a few hundred players.
var DefaultOptions = Options{
	BarWidth:   6,
	BarGap:     1,
	PlotHeight: 420,
	Ticks:      6,
}

const (
	marginTop    = 56
	marginBottom = 48
	marginLeft   = 72
	marginRight  = 24
	minPlotWidth = 480
)

func (o Options) withDefaults() Options {
	if o.BarWidth <= 0 {
		o.BarWidth = DefaultOptions.BarWidth
	}
	if o.BarGap < 0 {
		o.BarGap = DefaultOptions.BarGap
	}
	if o.PlotHeight <= 0 {
		o.PlotHeight = DefaultOptions.PlotHeight
	}
	if o.Ticks < 2 {
		o.Ticks = DefaultOptions.Ticks
	}
	return o
}

// WriteSVG draws f as an SVG document. Bars with a label are wrapped in a group
// holding a <title>, which browsers show on hover; dimmed bars have none.
// Player names are not drawn on the x axis.
func WriteSVG(w io.Writer, f Figure, opts Options) error {
	opts = opts.withDefaults()

	step := opts.BarWidth + opts.BarGap
	plotWidth := max(len(f.Bars)*step, minPlotWidth)
	width := marginLeft + plotWidth + marginRight
	height := marginTop + opts.PlotHeight + marginBottom

	lo, hi := valueRange(f.Bars)
	scale := float64(opts.PlotHeight) / (hi - lo)
	y := func(v float64) int {
		return marginTop + int(math.Round((hi-v)*scale))
	}

	ew := &errWriter{w: w}
	canvas := svg.New(ew)
	canvas.Start(width, height, fmt.Sprintf(`viewBox="0 0 %d %d"`, width, height), `class="pav-chart"`)
	canvas.Rect(0, 0, width, height, "fill:white")
	canvas.Gstyle("font-family:sans-serif;font-size:12px;fill:#2a3f5f")

	canvas.Text(width/2, marginTop/2, f.Labels.Title, "text-anchor:middle;font-size:18px")
	canvas.Text(marginLeft+plotWidth/2, height-marginBottom/3, f.Labels.XAxis, "text-anchor:middle")
	canvas.TranslateRotate(18, marginTop+opts.PlotHeight/2, -90)
	canvas.Text(0, 0, f.Labels.YAxis, "text-anchor:middle")
	canvas.Gend()

	for i := range opts.Ticks {
		v := lo + (hi-lo)*float64(i)/float64(opts.Ticks-1)
		ty := y(v)
		canvas.Line(marginLeft, ty, marginLeft+plotWidth, ty, "stroke:#e5ecf6;stroke-width:1")
		canvas.Text(marginLeft-6, ty+4, humanize.FtoaWithDigits(v, 1), "text-anchor:end")
	}

	zero := y(0)
	for i, b := range f.Bars {
		x := marginLeft + i*step
		top, bottom := y(b.Value), zero
		if top > bottom {
			top, bottom = bottom, top
		}
		style := fmt.Sprintf("fill:%s;fill-opacity:%g", BarColor, float64(b.Weight))

		if b.Label == "" {
			canvas.Rect(x, top, opts.BarWidth, max(bottom-top, 1), style)
			continue
		}
		canvas.Group(fmt.Sprintf(`data-player="%s"`, html.EscapeString(b.Player)))
		canvas.Title(b.Label)
		canvas.Rect(x, top, opts.BarWidth, max(bottom-top, 1), style)
		canvas.Gend()
	}
	canvas.Line(marginLeft, zero, marginLeft+plotWidth, zero, "stroke:#2a3f5f;stroke-width:1")

	canvas.Gend()
	canvas.End()
	return ew.err
}

// errWriter keeps the first write error, since svgo drops them.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) Write(p []byte) (int, error) {
	if e.err != nil {
		return 0, e.err
	}
	n, err := e.w.Write(p)
	e.err = err
	return n, err
}
