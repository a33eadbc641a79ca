package chart

import (
	"fmt"
	"io"

	gochart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	pngHeight     = 520
	pngBarWidth   = 4
	pngBarSpacing = 1
	pngMinWidth   = 800
	pngPadding    = 160
)

func barFill(w float64) drawing.Color {
	return drawing.Color{R: 0x63, G: 0x6e, B: 0xfa, A: uint8(w * 255)}
}

// WritePNG renders f as a PNG bar chart. Hover labels have no place in a
// static image, so only the bar weights carry over.
func WritePNG(w io.Writer, f Figure) error {
	if len(f.Bars) == 0 {
		return ErrEmptyFigure
	}

	bars := make([]gochart.Value, len(f.Bars))
	for i, b := range f.Bars {
		bars[i] = gochart.Value{
			Value: b.Value,
			Style: gochart.Style{
				FillColor:   barFill(float64(b.Weight)),
				StrokeColor: barFill(float64(b.Weight)),
				StrokeWidth: 0,
			},
		}
	}

	lo, hi := valueRange(f.Bars)
	bc := gochart.BarChart{
		Title:  f.Labels.Title,
		Width:  max(pngPadding+len(bars)*(pngBarWidth+pngBarSpacing), pngMinWidth),
		Height: pngHeight,
		Background: gochart.Style{
			Padding: gochart.Box{Top: 48, Left: 16, Right: 16, Bottom: 16},
		},
		BarWidth:     pngBarWidth,
		BarSpacing:   pngBarSpacing,
		UseBaseValue: true,
		BaseValue:    0,
		YAxis: gochart.YAxis{
			Name:  f.Labels.YAxis,
			Range: &gochart.ContinuousRange{Min: lo, Max: hi},
		},
		Bars: bars,
	}

	if err := bc.Render(gochart.PNG, w); err != nil {
		return fmt.Errorf("render png: %w", err)
	}
	return nil
}
