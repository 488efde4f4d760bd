package core

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/schema"
)

// utf8BOM is stripped from the first header cell; spreadsheet exports often carry it.
const utf8BOM = "\ufeff"

// CSVSource reads the archive tables from CSV files in a data directory.
type CSVSource struct {
	dir string
}

var _ contract.TableSource = (*CSVSource)(nil)

// NewCSVSource returns a source rooted at dataDir.
func NewCSVSource(dataDir string) *CSVSource {
	return &CSVSource{dir: dataDir}
}

// Describe returns the data directory.
func (s *CSVSource) Describe() string {
	return s.dir
}

// Close is a no-op; files are closed after every read.
func (s *CSVSource) Close() error {
	return nil
}

// LoadTimeline reads doc_timeline.csv.
func (s *CSVSource) LoadTimeline(ctx context.Context) ([]schema.TimelineRow, error) {
	header, records, err := s.readFile(ctx, schema.TimelineFile)
	if err != nil {
		return nil, err
	}
	cols, err := locateColumns(schema.TimelineFile, header, schema.YearColumn, schema.DocumentCountColumn)
	if err != nil {
		return nil, err
	}

	rows := make([]schema.TimelineRow, 0, len(records))
	for i, rec := range records {
		year, err := parseYear(rec[cols[0]])
		if err != nil {
			return nil, rowError(schema.TimelineFile, i, err)
		}
		count, err := parseCount(rec[cols[1]])
		if err != nil {
			return nil, rowError(schema.TimelineFile, i, err)
		}
		rows = append(rows, schema.TimelineRow{Year: year, DocumentCount: count})
	}
	return rows, nil
}

// LoadSubjectNames reads subject_names.csv. The first column is the code and
// the second the display name; a file with a single column uses it for both.
func (s *CSVSource) LoadSubjectNames(ctx context.Context) ([]schema.SubjectName, error) {
	header, records, err := s.readFile(ctx, schema.SubjectNamesFile)
	if err != nil {
		return nil, err
	}
	if len(header) == 0 {
		return nil, fmt.Errorf("%s: empty header", schema.SubjectNamesFile)
	}

	names := make([]schema.SubjectName, 0, len(records))
	for _, rec := range records {
		name := schema.SubjectName{Code: strings.TrimSpace(rec[0])}
		name.Name = name.Code
		if len(rec) > 1 {
			name.Name = strings.TrimSpace(rec[1])
		}
		names = append(names, name)
	}
	return names, nil
}

// LoadSubjectYears reads merged_textinfo_by_subject_and_year.csv.
func (s *CSVSource) LoadSubjectYears(ctx context.Context) ([]schema.SubjectYearRecord, error) {
	header, records, err := s.readFile(ctx, schema.SubjectYearsFile)
	if err != nil {
		return nil, err
	}
	cols, err := locateColumns(schema.SubjectYearsFile, header,
		schema.SubjectColumn, schema.YearColumn, schema.DocumentCountColumn)
	if err != nil {
		return nil, err
	}

	rows := make([]schema.SubjectYearRecord, 0, len(records))
	for i, rec := range records {
		year, err := parseYear(rec[cols[1]])
		if err != nil {
			return nil, rowError(schema.SubjectYearsFile, i, err)
		}
		count, err := parseCount(rec[cols[2]])
		if err != nil {
			return nil, rowError(schema.SubjectYearsFile, i, err)
		}
		rows = append(rows, schema.SubjectYearRecord{
			Subject:       rec[cols[0]],
			Year:          year,
			DocumentCount: count,
		})
	}
	return rows, nil
}

// readFile opens name inside the data directory and returns its header and records.
// A missing or unreadable file is reported as a *contract.MissingFileError.
func (s *CSVSource) readFile(ctx context.Context, name string) ([]string, [][]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, nil, err
	}
	path := filepath.Join(s.dir, name)
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, &contract.MissingFileError{Path: path, Err: err}
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil, fmt.Errorf("%s: missing header row", name)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("%s: failed to read CSV header: %w", name, err)
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	var records [][]string
	for {
		rec, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, nil, fmt.Errorf("%s: failed to read CSV row: %w", name, err)
		}
		// Pad short rows so column lookups stay in range; absent cells read as empty.
		for len(rec) < len(header) {
			rec = append(rec, "")
		}
		records = append(records, rec)
	}
	return header, records, nil
}

// CheckDataDir verifies that dir exists and is a directory.
func CheckDataDir(dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("%w: %s", contract.ErrDataDirNotFound, dir)
	}
	return nil
}

// LoadTables reads all three tables from src. It fails on the first error.
func LoadTables(ctx context.Context, src contract.TableSource) (schema.Tables, error) {
	timeline, err := src.LoadTimeline(ctx)
	if err != nil {
		return schema.Tables{}, err
	}
	names, err := src.LoadSubjectNames(ctx)
	if err != nil {
		return schema.Tables{}, err
	}
	subjectYears, err := src.LoadSubjectYears(ctx)
	if err != nil {
		return schema.Tables{}, err
	}
	return schema.Tables{
		Timeline:     timeline,
		SubjectNames: names,
		SubjectYears: subjectYears,
	}, nil
}

// locateColumns returns the index of each wanted column in header.
func locateColumns(file string, header []string, wanted ...string) ([]int, error) {
	index := make(map[string]int, len(header))
	for i, h := range header {
		index[strings.TrimSpace(h)] = i
	}
	cols := make([]int, len(wanted))
	for i, name := range wanted {
		pos, ok := index[name]
		if !ok {
			return nil, fmt.Errorf("%s: missing column %q", file, name)
		}
		cols[i] = pos
	}
	return cols, nil
}

// parseYear parses a year cell. Years must be present.
func parseYear(raw string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, errors.New("empty year")
	}
	return parseWhole(v)
}

// parseCount parses a document count cell. Empty cells count as zero, which
// matches how the totals treat missing values.
func parseCount(raw string) (int, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return 0, nil
	}
	return parseWhole(v)
}

// parseWhole accepts integers and integral floats such as "12.0".
func parseWhole(v string) (int, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid number %q", v)
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("non-integral number %q", v)
	}
	return int(f), nil
}

// rowError reports a bad data row using its 1-based line number in the file.
func rowError(file string, index int, err error) error {
	return fmt.Errorf("%s line %d: %w", file, index+2, err)
}
