package render

import (
	"fmt"
	"io"

	"github.com/huangsam/examviz/core/agg"
	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/schema"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// LanguageTrendsTitle is the heading of the language trend chart.
const LanguageTrendsTitle = "Language Subjects Over Time"

var grayBand = drawing.Color{R: 128, G: 128, B: 128, A: grayBandAlpha}

// RenderLanguageTrends draws one line per trend language found in rows,
// with the 1918 Education Act marked and both world wars shaded.
// Languages with no rows are skipped; contract.ErrNoData is returned when none remain.
func RenderLanguageTrends(w io.Writer, rows []schema.SubjectYearRecord, style Style) error {
	type line struct {
		subject string
		xs, ys  []float64
	}

	var lines []line
	top := 0.0
	from, to := float64(schema.WWIStartYear), float64(schema.WarEndYear)
	for _, subject := range schema.TrendLanguages {
		series := agg.SubjectSeries(rows, subject)
		if len(series) == 0 {
			continue
		}
		l := line{subject: subject}
		for _, r := range series {
			x, y := float64(r.Year), float64(r.DocumentCount)
			l.xs = append(l.xs, x)
			l.ys = append(l.ys, y)
			top = max(top, y)
			from = min(from, x)
			to = max(to, x)
		}
		lines = append(lines, l)
	}
	if len(lines) == 0 {
		return contract.ErrNoData
	}

	series := []chart.Series{
		band("WWI", schema.WWIStartYear, schema.WWIEndYear, top, grayBand),
		band("WWII", schema.WarStartYear, schema.WarEndYear, top, grayBand),
		chart.ContinuousSeries{
			Name:    fmt.Sprintf("Education Act %d", schema.EducationActYear),
			XValues: []float64{schema.EducationActYear, schema.EducationActYear},
			YValues: []float64{0, headroom(top)},
			Style: chart.Style{
				StrokeColor:     style.Primary.WithAlpha(faintLineAlpha),
				StrokeWidth:     2,
				StrokeDashArray: []float64{2, 4},
			},
		},
	}
	for i, l := range lines {
		series = append(series, chart.ContinuousSeries{
			Name:    l.subject,
			XValues: l.xs,
			YValues: l.ys,
			Style:   trendStyle(l.subject, i, style),
		})
	}

	ch := chart.Chart{
		Title:      LanguageTrendsTitle,
		TitleStyle: style.titleStyle(),
		Width:      style.pixels(wideFigureWidth),
		Height:     style.pixels(figureHeight),
		DPI:        float64(style.DPI),
		Background: style.background(),
		Canvas:     style.canvas(),
		XAxis:      style.yearAxis(from, to),
		YAxis:      style.countAxis("Number of Documents", top),
		Series:     series,
	}
	ch.Elements = []chart.Renderable{chart.Legend(&ch, style.legendStyle())}

	if err := ch.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render language trends chart: %w", err)
	}
	return nil
}

// trendStyle gives ENGLISH a thick primary line, GAELIC a dashed highlight
// line and every other language a thin faded default colour.
func trendStyle(subject string, index int, style Style) chart.Style {
	switch subject {
	case schema.EnglishSubject:
		return chart.Style{StrokeColor: style.Primary, StrokeWidth: 3}
	case schema.GaelicToken:
		return chart.Style{StrokeColor: style.Highlight, StrokeWidth: 2.5, StrokeDashArray: []float64{6, 4}}
	default:
		return chart.Style{StrokeColor: chart.GetDefaultColor(index).WithAlpha(faintLineAlpha), StrokeWidth: 1.5}
	}
}
