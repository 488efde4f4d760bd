package schema

// Custom string types for type safety.
type (
	// OutputMode represents the format of the subject totals output.
	OutputMode string

	// SourceBackend represents where the tabular datasets are read from.
	SourceBackend string
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
)

// All source backends supported.
const (
	CSVSource        SourceBackend = "csv" // default
	SQLiteSource     SourceBackend = "sqlite"
	MySQLSource      SourceBackend = "mysql"
	PostgreSQLSource SourceBackend = "postgresql"
)

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
}

// ValidSourceBackends lists all valid source backends.
var ValidSourceBackends = map[SourceBackend]struct{}{
	CSVSource:        {},
	SQLiteSource:     {},
	MySQLSource:      {},
	PostgreSQLSource: {},
}

// Input file names inside the data directory.
const (
	TimelineFile     = "doc_timeline.csv"
	SubjectNamesFile = "subject_names.csv"
	SubjectYearsFile = "merged_textinfo_by_subject_and_year.csv"
	CorpusFile       = "educationcomms.txt"
)

// RequiredDataFiles lists every file expected in the data directory, in display order.
var RequiredDataFiles = []string{
	TimelineFile,
	CorpusFile,
	SubjectYearsFile,
	SubjectNamesFile,
}

// Output file names written to the output directory.
const (
	TimelineChartFile         = "timeline_chart.png"
	LanguageSubjectsChartFile = "language_subjects_chart.png"
	LanguageTrendsChartFile   = "language_trends_chart.png"
	StatisticsFile            = "statistics.json"
	QuotesFile                = "quotes.json"
)

// CSV column headers.
const (
	YearColumn          = "Year"
	DocumentCountColumn = "Document Count"
	SubjectColumn       = "Subject"
)

// Historical markers used by the charts and statistics.
const (
	WarStartYear       = 1939
	WarEndYear         = 1945
	WWIStartYear       = 1914
	WWIEndYear         = 1918
	EducationActYear   = 1918
	ArchiveFirstYear   = 1888
	ArchiveLastYear    = 1962
	EnglishSubject     = "ENGLISH"
	GaelicToken        = "GAELIC"
	EnglishQuoteTopic  = "English Requirement"
	FallbackQuoteText  = "Candidates for the Leaving Certificate must demonstrate proficiency in English."
	QuoteKeywordFirst  = "English"
	QuoteKeywordSecond = "certificate"
)

// NoRecordYears are annotated on the timeline as years without archived records.
var NoRecordYears = []int{1944, 1945}

// LanguageSubjects are the subjects shown on the language bar chart.
var LanguageSubjects = []string{
	"ENGLISH", "FRENCH", "LATIN", "GERMAN", "GREEK",
	"GAELIC", "GAELIC (LEARNERS)", "GAELIC (NATIVE SPEAKERS)", "SPANISH",
}

// TrendLanguages are the subjects drawn as lines on the trends chart.
var TrendLanguages = []string{"ENGLISH", "FRENCH", "LATIN", "GERMAN", "GAELIC"}
