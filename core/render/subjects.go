package render

import (
	"fmt"
	"io"

	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/schema"
	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// LanguageSubjectsTitle is the heading of the language bar chart.
const LanguageSubjectsTitle = "Language Subjects in Scottish Exams (1888-1962)"

// RenderLanguageSubjects draws one bar per language subject total, in the
// order given. ENGLISH uses the primary colour and Gaelic subjects the
// highlight colour. It returns contract.ErrNoData when totals is empty.
func RenderLanguageSubjects(w io.Writer, totals []schema.SubjectTotal, style Style) error {
	if len(totals) == 0 {
		return contract.ErrNoData
	}

	top := 0.0
	bars := make([]chart.Value, 0, len(totals))
	for _, total := range totals {
		top = max(top, float64(total.DocumentCount))
		bars = append(bars, chart.Value{
			Label: total.Subject,
			Value: float64(total.DocumentCount),
			Style: chart.Style{
				FillColor:   barColor(total.Subject, style),
				StrokeColor: style.Primary,
				StrokeWidth: 1.5,
			},
		})
	}

	width := style.pixels(narrowFigureWidth)
	bw := barWidth(width, len(bars))
	bc := chart.BarChart{
		Title:      LanguageSubjectsTitle,
		TitleStyle: style.titleStyle(),
		Width:      width,
		Height:     style.pixels(figureHeight),
		DPI:        float64(style.DPI),
		Background: style.background(),
		Canvas:     style.canvas(),
		BarWidth:   bw,
		BarSpacing: bw,
		XAxis: chart.Style{
			FontColor:           style.Secondary,
			StrokeColor:         style.Border,
			TextRotationDegrees: 45,
		},
		YAxis: chart.YAxis{
			Name:           "Total Document Count",
			NameStyle:      style.axisNameStyle(),
			Style:          style.axisStyle(),
			ValueFormatter: chart.IntValueFormatter,
			Range:          &chart.ContinuousRange{Min: 0, Max: headroom(top)},
		},
		Bars: bars,
	}

	if err := bc.Render(chart.PNG, w); err != nil {
		return fmt.Errorf("render language subjects chart: %w", err)
	}
	return nil
}

// barColor picks the fill of one bar.
func barColor(subject string, style Style) drawing.Color {
	switch {
	case subject == schema.EnglishSubject:
		return style.Primary
	case schema.IsGaelicSubject(subject):
		return style.Highlight
	default:
		return style.Secondary
	}
}

// barWidth splits the plot width so every bar and its spacing fit.
func barWidth(width, n int) int {
	return max(width/(2*(n+1)), 4)
}
