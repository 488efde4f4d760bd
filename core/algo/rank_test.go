package algo

import (
	"testing"

	"github.com/huangsam/examviz/schema"
	"github.com/stretchr/testify/assert"
)

func TestRankSubjects(t *testing.T) {
	totals := []schema.SubjectTotal{
		{Subject: "LATIN", DocumentCount: 40},
		{Subject: "ENGLISH", DocumentCount: 90},
		{Subject: "GREEK", DocumentCount: 40},
		{Subject: "GAELIC", DocumentCount: 5},
	}

	ranked := RankSubjects(totals, 0)
	assert.Equal(t, []string{"ENGLISH", "GREEK", "LATIN", "GAELIC"}, subjects(ranked))

	top := RankSubjects(totals, 2)
	assert.Len(t, top, 2)
	assert.Equal(t, "ENGLISH", top[0].Subject)

	all := RankSubjects(totals, 10)
	assert.Len(t, all, 4)
}

func TestSortTimeline(t *testing.T) {
	records := []schema.SubjectYearRecord{
		{Subject: "FRENCH", Year: 1920, DocumentCount: 3},
		{Subject: "FRENCH", Year: 1890, DocumentCount: 1},
		{Subject: "FRENCH", Year: 1905, DocumentCount: 2},
	}
	sorted := SortTimeline(records)
	assert.Equal(t, 1890, sorted[0].Year)
	assert.Equal(t, 1905, sorted[1].Year)
	assert.Equal(t, 1920, sorted[2].Year)
}

func subjects(totals []schema.SubjectTotal) []string {
	out := make([]string, len(totals))
	for i, t := range totals {
		out[i] = t.Subject
	}
	return out
}
