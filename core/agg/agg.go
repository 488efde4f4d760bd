// Package agg has group, filter and sum logic over the archive tables.
package agg

import (
	"slices"
	"strings"

	"github.com/huangsam/examviz/core/algo"
	"github.com/huangsam/examviz/schema"
)

// Sum is a filtered total that remembers how many rows matched the filter.
// It keeps "no matching rows" apart from "matching rows that sum to zero".
type Sum struct {
	Total int
	Rows  int
}

// Matched reports whether at least one row passed the filter.
func (s Sum) Matched() bool {
	return s.Rows > 0
}

// SumSubject sums the document counts of rows whose subject equals subject exactly.
func SumSubject(rows []schema.SubjectYearRecord, subject string) Sum {
	return sumRecords(rows, func(r schema.SubjectYearRecord) bool {
		return r.Subject == subject
	})
}

// SumSubjectsContaining sums the document counts of rows whose subject contains token.
// The match is case-sensitive.
func SumSubjectsContaining(rows []schema.SubjectYearRecord, token string) Sum {
	return sumRecords(rows, func(r schema.SubjectYearRecord) bool {
		return strings.Contains(r.Subject, token)
	})
}

// SumYearRange sums the timeline counts for years in [from, to] inclusive.
func SumYearRange(timeline []schema.TimelineRow, from, to int) Sum {
	var s Sum
	for _, row := range timeline {
		if row.Year >= from && row.Year <= to {
			s.Total += row.DocumentCount
			s.Rows++
		}
	}
	return s
}

// TotalDocuments sums every document count in the timeline.
func TotalDocuments(timeline []schema.TimelineRow) int {
	total := 0
	for _, row := range timeline {
		total += row.DocumentCount
	}
	return total
}

// YearSpan returns the last year minus the first year of the timeline.
// An empty timeline spans zero years.
func YearSpan(timeline []schema.TimelineRow) int {
	first, last, ok := yearBounds(timeline)
	if !ok {
		return 0
	}
	return last - first
}

// SubjectTotals groups rows by subject and sums their document counts.
// When subjects is non-nil only those subjects are kept. The result is ranked
// by count descending.
func SubjectTotals(rows []schema.SubjectYearRecord, subjects []string) []schema.SubjectTotal {
	sums := make(map[string]int)
	var order []string
	for _, r := range rows {
		if subjects != nil && !slices.Contains(subjects, r.Subject) {
			continue
		}
		if _, seen := sums[r.Subject]; !seen {
			order = append(order, r.Subject)
		}
		sums[r.Subject] += r.DocumentCount
	}

	totals := make([]schema.SubjectTotal, 0, len(order))
	for _, subject := range order {
		totals = append(totals, schema.SubjectTotal{Subject: subject, DocumentCount: sums[subject]})
	}
	return algo.RankSubjects(totals, 0)
}

// SubjectSeries returns the rows of one subject ordered by year.
func SubjectSeries(rows []schema.SubjectYearRecord, subject string) []schema.SubjectYearRecord {
	var series []schema.SubjectYearRecord
	for _, r := range rows {
		if r.Subject == subject {
			series = append(series, r)
		}
	}
	return algo.SortTimeline(series)
}

// MaxCount returns the largest document count in the timeline, or zero.
func MaxCount(timeline []schema.TimelineRow) int {
	maxCount := 0
	for _, row := range timeline {
		maxCount = max(maxCount, row.DocumentCount)
	}
	return maxCount
}

// GenerateStatistics computes the five scalar aggregates and whether each
// filtered sum matched any rows.
func GenerateStatistics(tables schema.Tables) (schema.Statistics, schema.StatisticsMatches) {
	war := SumYearRange(tables.Timeline, schema.WarStartYear, schema.WarEndYear)
	english := SumSubject(tables.SubjectYears, schema.EnglishSubject)
	gaelic := SumSubjectsContaining(tables.SubjectYears, schema.GaelicToken)

	stats := schema.Statistics{
		TotalYears:       YearSpan(tables.Timeline),
		TotalDocuments:   TotalDocuments(tables.Timeline),
		WarYearDrop:      war.Total,
		EnglishDominance: english.Total,
		GaelicPresence:   gaelic.Total,
	}
	matches := schema.StatisticsMatches{
		WarYears: war.Matched(),
		English:  english.Matched(),
		Gaelic:   gaelic.Matched(),
	}
	return stats, matches
}

// NoRecordYears returns the years between the first and last timeline year
// that are either missing or carry a zero count.
func NoRecordYears(timeline []schema.TimelineRow) []int {
	first, last, ok := yearBounds(timeline)
	if !ok {
		return nil
	}
	counts := make(map[int]int, len(timeline))
	present := make(map[int]bool, len(timeline))
	for _, row := range timeline {
		counts[row.Year] += row.DocumentCount
		present[row.Year] = true
	}

	var years []int
	for y := first; y <= last; y++ {
		if !present[y] || counts[y] == 0 {
			years = append(years, y)
		}
	}
	return years
}

// sumRecords sums the rows accepted by keep.
func sumRecords(rows []schema.SubjectYearRecord, keep func(schema.SubjectYearRecord) bool) Sum {
	var s Sum
	for _, r := range rows {
		if keep(r) {
			s.Total += r.DocumentCount
			s.Rows++
		}
	}
	return s
}

// yearBounds returns the smallest and largest year in the timeline.
func yearBounds(timeline []schema.TimelineRow) (first, last int, ok bool) {
	if len(timeline) == 0 {
		return 0, 0, false
	}
	first, last = timeline[0].Year, timeline[0].Year
	for _, row := range timeline[1:] {
		first = min(first, row.Year)
		last = max(last, row.Year)
	}
	return first, last, true
}
