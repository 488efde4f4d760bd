// Package render draws the archive charts as PNG images.
package render

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/huangsam/examviz/schema"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Figure sizes in inches.
const (
	wideFigureWidth   = 12.0
	narrowFigureWidth = 10.0
	figureHeight      = 6.0
)

// Alpha values for overlays.
const (
	warBandAlpha   = 51  // 0.2
	grayBandAlpha  = 26  // 0.1
	faintLineAlpha = 178 // 0.7
	gridAlpha      = 77  // 0.3
)

// Style is the colour and resolution policy shared by every renderer.
// It is passed explicitly so each renderer can be tested on its own.
type Style struct {
	DPI        int
	Background drawing.Color
	Primary    drawing.Color
	Secondary  drawing.Color
	Light      drawing.Color
	Border     drawing.Color
	Highlight  drawing.Color
}

// NewStyle converts a hex palette into chart colours at the given DPI.
func NewStyle(p schema.Palette, dpi int) Style {
	return Style{
		DPI:        dpi,
		Background: hexColor(p.Background),
		Primary:    hexColor(p.Primary),
		Secondary:  hexColor(p.Secondary),
		Light:      hexColor(p.Light),
		Border:     hexColor(p.Border),
		Highlight:  hexColor(p.Highlight),
	}
}

// DefaultStyle is the warm palette at 150 DPI.
func DefaultStyle() Style {
	return NewStyle(schema.DefaultPalette(), 150)
}

// pixels converts a length in inches to pixels at the style DPI.
func (s Style) pixels(inches float64) int {
	return int(inches * float64(s.DPI))
}

// titleStyle is the bold primary title.
func (s Style) titleStyle() chart.Style {
	return chart.Style{FontSize: 14, FontColor: s.Primary}
}

// background fills the figure and pads it so labels are not clipped.
func (s Style) background() chart.Style {
	return chart.Style{
		FillColor: s.Background,
		Padding:   chart.Box{Top: 40, Left: 20, Right: 30, Bottom: 20},
	}
}

// canvas fills the plotting area.
func (s Style) canvas() chart.Style {
	return chart.Style{FillColor: s.Background, StrokeColor: s.Border}
}

// axisStyle colours tick labels secondary and axis lines with the border colour.
func (s Style) axisStyle() chart.Style {
	return chart.Style{FontColor: s.Secondary, StrokeColor: s.Border}
}

// axisNameStyle colours axis titles.
func (s Style) axisNameStyle() chart.Style {
	return chart.Style{FontSize: 12, FontColor: s.Primary}
}

// gridStyle is the faint grid drawn behind the data.
func (s Style) gridStyle() chart.Style {
	return chart.Style{StrokeColor: s.Border.WithAlpha(gridAlpha), StrokeWidth: 1}
}

// legendStyle fills the legend box with the light colour.
func (s Style) legendStyle() chart.Style {
	return chart.Style{FillColor: s.Light, StrokeColor: s.Border, FontColor: s.Primary}
}

// yearAxis builds an x axis over [from, to] labelled with whole years.
func (s Style) yearAxis(from, to float64) chart.XAxis {
	if from == to {
		from, to = from-1, to+1
	}
	return chart.XAxis{
		Name:           schema.YearColumn,
		NameStyle:      s.axisNameStyle(),
		Style:          s.axisStyle(),
		ValueFormatter: chart.IntValueFormatter,
		Range:          &chart.ContinuousRange{Min: from, Max: to},
		GridMajorStyle: s.gridStyle(),
	}
}

// countAxis builds a y axis from zero to slightly above top.
func (s Style) countAxis(name string, top float64) chart.YAxis {
	return chart.YAxis{
		Name:           name,
		NameStyle:      s.axisNameStyle(),
		Style:          s.axisStyle(),
		ValueFormatter: chart.IntValueFormatter,
		Range:          &chart.ContinuousRange{Min: 0, Max: headroom(top)},
		GridMajorStyle: s.gridStyle(),
	}
}

// band returns a filled span over [from, to] that reaches top.
// Filling a flat line down to the canvas edge shades the whole span; the
// stroke shares the fill so the legend shows a swatch.
func band(name string, from, to, top float64, fill drawing.Color) chart.ContinuousSeries {
	return chart.ContinuousSeries{
		Name:    name,
		XValues: []float64{from, to},
		YValues: []float64{headroom(top), headroom(top)},
		Style: chart.Style{
			StrokeColor: fill,
			FillColor:   fill,
		},
	}
}

// headroom leaves a margin above the tallest value; empty charts still get a unit axis.
func headroom(top float64) float64 {
	if top <= 0 {
		return 1
	}
	return top * 1.05
}

// hexColor parses "#RRGGBB" into a drawing colour.
func hexColor(hex string) drawing.Color {
	return drawing.ColorFromHex(strings.TrimPrefix(hex, "#"))
}

// WriteChart creates path and renders a chart into it.
func WriteChart(path string, render func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create chart %s: %w", path, err)
	}
	if err := render(f); err != nil {
		_ = f.Close()
		_ = os.Remove(path)
		return err
	}
	return f.Close()
}
