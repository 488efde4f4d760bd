package render

import (
	"fmt"
	"io"

	"github.com/huangsam/examviz/core/agg"
	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/schema"
	"github.com/wcharczuk/go-chart/v2"
)

// TimelineTitle is the heading of the timeline chart.
const TimelineTitle = "Scottish Education Documents Over Time (1888-1962)"

// RenderTimeline draws document counts per year. The war band and the
// no-record markers are fixed annotations drawn whatever the data holds.
func RenderTimeline(w io.Writer, timeline []schema.TimelineRow, style Style) error {
	if len(timeline) == 0 {
		return contract.ErrNoData
	}

	xs := make([]float64, len(timeline))
	ys := make([]float64, len(timeline))
	from, to := float64(timeline[0].Year), float64(timeline[0].Year)
	for i, row := range timeline {
		xs[i] = float64(row.Year)
		ys[i] = float64(row.DocumentCount)
		from = min(from, xs[i])
		to = max(to, xs[i])
	}
	from = min(from, schema.WarStartYear)
	to = max(to, schema.WarEndYear)
	top := float64(agg.MaxCount(timeline))

	markerX := make([]float64, len(schema.NoRecordYears))
	markerY := make([]float64, len(schema.NoRecordYears))
	for i, y := range schema.NoRecordYears {
		markerX[i] = float64(y)
	}

	ch := chart.Chart{
		Title:      TimelineTitle,
		TitleStyle: style.titleStyle(),
		Width:      style.pixels(wideFigureWidth),
		Height:     style.pixels(figureHeight),
		DPI:        float64(style.DPI),
		Background: style.background(),
		Canvas:     style.canvas(),
		XAxis:      style.yearAxis(from, to),
		YAxis:      style.countAxis("Number of Documents", top),
		Series: []chart.Series{
			band(fmt.Sprintf("War Years (%d-%d)", schema.WarStartYear, schema.WarEndYear),
				schema.WarStartYear, schema.WarEndYear, top, style.Primary.WithAlpha(warBandAlpha)),
			chart.ContinuousSeries{
				Name:    schema.DocumentCountColumn,
				XValues: xs,
				YValues: ys,
				Style:   chart.Style{StrokeColor: style.Secondary, StrokeWidth: 2},
			},
			chart.ContinuousSeries{
				Name:    "No Records",
				XValues: markerX,
				YValues: markerY,
				Style: chart.Style{
					StrokeColor: chart.ColorTransparent,
					DotWidth:    6,
					DotColor:    chart.ColorRed,
				},
			},
		},
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch, style.legendStyle())}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render timeline chart: %w", err)
	}
	return nil
}
