package outwriter

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/examviz/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteJSON(t *testing.T) {
	tests := []struct {
		name     string
		data     any
		expected string
	}{
		{
			name: "statistics",
			data: schema.Statistics{TotalYears: 74, TotalDocuments: 10},
			expected: `{
  "total_years": 74,
  "total_documents": 10,
  "war_year_drop": 0,
  "english_dominance": 0,
  "gaelic_presence": 0
}
`,
		},
		{
			name: "quotes",
			data: []schema.Quote{{Text: "A.", Topic: "T"}},
			expected: `[
  {
    "text": "A.",
    "topic": "T"
  }
]
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, writeJSON(&buf, tt.data))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteJSONError(t *testing.T) {
	// Test with a value that can't be marshaled to JSON
	var buf bytes.Buffer
	err := writeJSON(&buf, make(chan int))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to encode JSON")
}

func TestWriteJSONFile(t *testing.T) {
	dir := t.TempDir()
	path, err := writeJSONFile(dir, "out.json", map[string]int{"a": 1})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "out.json"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	var decoded map[string]int
	require.NoError(t, json.Unmarshal(content, &decoded))
	assert.Equal(t, 1, decoded["a"])

	_, err = writeJSONFile(filepath.Join(dir, "missing"), "out.json", 1)
	assert.Error(t, err)
}

func TestWriteCSVWithHeader(t *testing.T) {
	tests := []struct {
		name     string
		header   []string
		rows     [][]string
		expected string
	}{
		{
			name:   "subject rows",
			header: []string{"subject", "document_count"},
			rows: [][]string{
				{"ENGLISH", "30"},
				{"LATIN", "25"},
			},
			expected: "subject,document_count\nENGLISH,30\nLATIN,25\n",
		},
		{
			name:     "empty rows",
			header:   []string{"col1", "col2"},
			rows:     [][]string{},
			expected: "col1,col2\n",
		},
		{
			name:     "values with commas",
			header:   []string{"subject"},
			rows:     [][]string{{"GAELIC, NATIVE"}},
			expected: "subject\n\"GAELIC, NATIVE\"\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			err := writeCSVWithHeader(&buf, tt.header, func(w *csv.Writer) error {
				for _, row := range tt.rows {
					if err := w.Write(row); err != nil {
						return err
					}
				}
				return nil
			})
			require.NoError(t, err)
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestWriteCSVWithHeaderError(t *testing.T) {
	var buf bytes.Buffer
	err := writeCSVWithHeader(&buf, []string{"col"}, func(*csv.Writer) error {
		return assert.AnError
	})
	assert.Equal(t, assert.AnError, err)
}

func TestWriteWithFile(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.txt")

	err := writeWithFile(tmpFile, func(w io.Writer) error {
		_, err := w.Write([]byte("test content"))
		return err
	}, "Test message")
	require.NoError(t, err)

	content, err := os.ReadFile(tmpFile)
	require.NoError(t, err)
	assert.Equal(t, "test content", string(content))
}

func TestWriteWithFileError(t *testing.T) {
	tmpFile := filepath.Join(t.TempDir(), "test.txt")
	err := writeWithFile(tmpFile, func(io.Writer) error {
		return assert.AnError
	}, "Test message")
	assert.Equal(t, assert.AnError, err)

	err = writeWithFile("/nonexistent/path/file.txt", func(io.Writer) error {
		return nil
	}, "Test message")
	assert.Error(t, err)
}
