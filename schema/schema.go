// Package schema has configs, models and constants for all parts of examviz.
package schema

// TimelineRow is one row of the per-year document timeline.
// Years are expected to be increasing but this is not enforced, and gaps
// (1944-1945 in the archive) are allowed.
type TimelineRow struct {
	Year          int `json:"year"`           // Calendar year
	DocumentCount int `json:"document_count"` // Archived documents attributed to the year
}

// SubjectYearRecord is one row of the merged subject/year count table.
type SubjectYearRecord struct {
	Subject       string `json:"subject"`        // Subject name as written in the archive (e.g. ENGLISH)
	Year          int    `json:"year"`           // Calendar year
	DocumentCount int    `json:"document_count"` // Archived documents for the subject in that year
}

// SubjectName maps a subject code to its display name.
type SubjectName struct {
	Code string `json:"code"`
	Name string `json:"name"`
}

// Tables holds every dataset read by the loader. Nothing mutates it after load.
type Tables struct {
	Timeline     []TimelineRow
	SubjectNames []SubjectName
	SubjectYears []SubjectYearRecord
}

// SubjectTotal is the document count of one subject summed across all years.
type SubjectTotal struct {
	Subject       string `json:"subject"`
	DocumentCount int    `json:"document_count"`
}

// Quote is an illustrative sentence pulled from the free-text corpus.
type Quote struct {
	Text  string `json:"text"`
	Topic string `json:"topic"`
}

// Statistics is the scalar summary written to statistics.json.
type Statistics struct {
	TotalYears       int `json:"total_years"`       // Last year minus first year in the timeline
	TotalDocuments   int `json:"total_documents"`   // Sum of the timeline document counts
	WarYearDrop      int `json:"war_year_drop"`     // Sum of the timeline counts for 1939-1945 inclusive
	EnglishDominance int `json:"english_dominance"` // Sum of all ENGLISH subject rows
	GaelicPresence   int `json:"gaelic_presence"`   // Sum of all subjects whose name contains GAELIC
}

// StatisticsMatches records which filtered sums behind a Statistics value
// matched at least one row. A false entry means the zero is an absence, not a count.
type StatisticsMatches struct {
	WarYears bool `json:"war_years"`
	English  bool `json:"english"`
	Gaelic   bool `json:"gaelic"`
}

// ChartFiles lists the chart images produced by a pipeline run.
// An empty path means the chart was skipped.
type ChartFiles struct {
	Timeline         string `json:"timeline"`
	LanguageSubjects string `json:"language_subjects"`
	LanguageTrends   string `json:"language_trends"`
}

// RunResult summarizes everything a pipeline run produced.
type RunResult struct {
	Statistics     Statistics        `json:"statistics"`
	Matches        StatisticsMatches `json:"matches"`
	SubjectTotals  []SubjectTotal    `json:"subject_totals"`
	Quotes         []Quote           `json:"quotes"`
	Charts         ChartFiles        `json:"charts"`
	StatisticsFile string            `json:"statistics_file"`
	QuotesFile     string            `json:"quotes_file"`
}
