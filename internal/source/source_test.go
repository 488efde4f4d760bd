package source

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/huangsam/examviz/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var sampleTables = schema.Tables{
	Timeline: []schema.TimelineRow{
		{Year: 1940, DocumentCount: 12},
		{Year: 1938, DocumentCount: 30},
		{Year: 1944, DocumentCount: 0},
	},
	SubjectNames: []schema.SubjectName{
		{Code: "GA", Name: "GAELIC"},
		{Code: "EN", Name: "ENGLISH"},
	},
	SubjectYears: []schema.SubjectYearRecord{
		{Subject: "LATIN", Year: 1938, DocumentCount: 4},
		{Subject: "ENGLISH", Year: 1940, DocumentCount: 9},
		{Subject: "ENGLISH", Year: 1938, DocumentCount: 7},
	},
}

// newMigratedSQLite returns a connection string for a fresh migrated SQLite database.
func newMigratedSQLite(t *testing.T) string {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "archive.db")
	var out bytes.Buffer
	require.NoError(t, MigrateSource(schema.SQLiteSource, dbPath, -1, &out))
	return dbPath
}

func TestMigrateSource_CSVBackend(t *testing.T) {
	err := MigrateSource(schema.CSVSource, "", -1, &bytes.Buffer{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "migrations are not supported for the csv source")
}

func TestMigrateSource_SQLite(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "migrate.db")
	var out bytes.Buffer

	require.NoError(t, MigrateSource(schema.SQLiteSource, dbPath, -1, &out))
	assert.Contains(t, out.String(), "Successfully migrated from version 0 to version 3")

	// Running again is a no-op
	out.Reset()
	require.NoError(t, MigrateSource(schema.SQLiteSource, dbPath, -1, &out))
	assert.Contains(t, out.String(), "No migration needed")

	// Step down to a specific version
	out.Reset()
	require.NoError(t, MigrateSource(schema.SQLiteSource, dbPath, 1, &out))
	assert.Contains(t, out.String(), "to version 1")

	// Roll back everything
	out.Reset()
	require.NoError(t, MigrateSource(schema.SQLiteSource, dbPath, 0, &out))
	assert.Contains(t, out.String(), "rolled back")

	// Migrate back up
	require.NoError(t, MigrateSource(schema.SQLiteSource, dbPath, 3, &out))
}

func TestNewSQLSource_Unsupported(t *testing.T) {
	_, err := NewSQLSource(schema.CSVSource, "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported source backend")
}

func TestSQLSource_ImportAndLoad(t *testing.T) {
	ctx := context.Background()
	src, err := NewSQLSource(schema.SQLiteSource, newMigratedSQLite(t))
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	require.NoError(t, src.ImportTables(ctx, sampleTables))

	timeline, err := src.LoadTimeline(ctx)
	require.NoError(t, err)
	assert.Equal(t, []schema.TimelineRow{
		{Year: 1938, DocumentCount: 30},
		{Year: 1940, DocumentCount: 12},
		{Year: 1944, DocumentCount: 0},
	}, timeline)

	names, err := src.LoadSubjectNames(ctx)
	require.NoError(t, err)
	assert.Equal(t, []schema.SubjectName{
		{Code: "EN", Name: "ENGLISH"},
		{Code: "GA", Name: "GAELIC"},
	}, names)

	years, err := src.LoadSubjectYears(ctx)
	require.NoError(t, err)
	assert.Equal(t, []schema.SubjectYearRecord{
		{Subject: "ENGLISH", Year: 1938, DocumentCount: 7},
		{Subject: "ENGLISH", Year: 1940, DocumentCount: 9},
		{Subject: "LATIN", Year: 1938, DocumentCount: 4},
	}, years)
}

func TestSQLSource_ImportReplaces(t *testing.T) {
	ctx := context.Background()
	src, err := NewSQLSource(schema.SQLiteSource, newMigratedSQLite(t))
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	require.NoError(t, src.ImportTables(ctx, sampleTables))
	require.NoError(t, src.ImportTables(ctx, schema.Tables{
		Timeline: []schema.TimelineRow{{Year: 1888, DocumentCount: 1}},
	}))

	status, err := src.GetStatus(ctx)
	require.NoError(t, err)
	assert.Equal(t, "sqlite", status.Backend)
	assert.True(t, status.Connected)
	assert.Equal(t, map[string]int64{
		TimelineTable:     1,
		SubjectNamesTable: 0,
		SubjectYearsTable: 0,
	}, status.TableSizes)
}

func TestSQLSource_LoadWithoutMigration(t *testing.T) {
	src, err := NewSQLSource(schema.SQLiteSource, filepath.Join(t.TempDir(), "empty.db"))
	require.NoError(t, err)
	defer func() { _ = src.Close() }()

	_, err = src.LoadTimeline(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to query doc_timeline")
}

func TestSQLSource_Describe(t *testing.T) {
	dbPath := newMigratedSQLite(t)
	src, err := NewSQLSource(schema.SQLiteSource, dbPath)
	require.NoError(t, err)
	defer func() { _ = src.Close() }()
	assert.Equal(t, "sqlite ("+dbPath+")", src.Describe())
}

func TestInsertQuery(t *testing.T) {
	tests := []struct {
		backend  schema.SourceBackend
		expected string
	}{
		{schema.SQLiteSource, `INSERT INTO "doc_timeline" (year, document_count) VALUES (?, ?)`},
		{schema.MySQLSource, "INSERT INTO `doc_timeline` (year, document_count) VALUES (?, ?)"},
		{schema.PostgreSQLSource, `INSERT INTO "doc_timeline" (year, document_count) VALUES ($1, $2)`},
	}
	for _, tt := range tests {
		t.Run(string(tt.backend), func(t *testing.T) {
			s := &SQLSource{backend: tt.backend}
			assert.Equal(t, tt.expected, s.insertQuery(TimelineTable, "year", "document_count"))
		})
	}
}

func TestPrintSourceStatus(t *testing.T) {
	var buf bytes.Buffer
	PrintSourceStatus(&buf, schema.SourceStatus{
		Backend:    "sqlite",
		Connected:  true,
		TableSizes: map[string]int64{TimelineTable: 75},
	})
	out := buf.String()
	assert.Contains(t, out, "Source Backend: sqlite")
	assert.Contains(t, out, "  doc_timeline: 75 rows")
	assert.Contains(t, out, "  subject_names: 0 rows")

	buf.Reset()
	PrintSourceStatus(&buf, schema.SourceStatus{Backend: "mysql"})
	assert.NotContains(t, buf.String(), "Table Sizes")
}
