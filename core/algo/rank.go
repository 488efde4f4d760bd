// Package algo has ordering logic shared by the charts and the outputs.
package algo

import (
	"sort"

	"github.com/huangsam/examviz/schema"
)

// RankSubjects sorts subject totals by document count in descending order
// and returns the top 'limit' entries. Ties are broken by subject name so the
// order is stable across runs. A limit of zero or less returns every entry.
func RankSubjects(totals []schema.SubjectTotal, limit int) []schema.SubjectTotal {
	sort.SliceStable(totals, func(i, j int) bool {
		if totals[i].DocumentCount != totals[j].DocumentCount {
			return totals[i].DocumentCount > totals[j].DocumentCount
		}
		return totals[i].Subject < totals[j].Subject
	})
	if limit > 0 && len(totals) > limit {
		return totals[:limit]
	}
	return totals
}

// SortTimeline sorts subject/year records by year in ascending order.
func SortTimeline(records []schema.SubjectYearRecord) []schema.SubjectYearRecord {
	sort.SliceStable(records, func(i, j int) bool {
		return records[i].Year < records[j].Year
	})
	return records
}
