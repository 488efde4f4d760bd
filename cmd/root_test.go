package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleMissingInputs(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		wantErr bool
	}{
		{name: "no error", err: nil},
		{name: "data dir missing", err: fmt.Errorf("%w: /tmp/data", contract.ErrDataDirNotFound)},
		{name: "file missing", err: fmt.Errorf("load: %w", &contract.MissingFileError{Path: "data/doc_timeline.csv", Err: os.ErrNotExist})},
		{name: "malformed data", err: assert.AnError, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := handleMissingInputs(tt.err, "/tmp/data")
			if tt.wantErr {
				assert.ErrorIs(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestRunPipeline_MissingDataDir(t *testing.T) {
	outDir := t.TempDir()
	c := &contract.Config{
		DataDir:   filepath.Join(t.TempDir(), "data"),
		OutputDir: outDir,
		Source:    schema.CSVSource,
		DPI:       contract.DefaultDPI,
		Palette:   schema.DefaultPalette(),
	}

	require.NoError(t, runPipeline(context.Background(), c))
	entries, err := os.ReadDir(outDir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRunPipeline_MalformedData(t *testing.T) {
	dataDir := t.TempDir()
	files := map[string]string{
		schema.TimelineFile:     "Year,Document Count\n1900,many\n",
		schema.SubjectNamesFile: "Code,Name\n",
		schema.SubjectYearsFile: "Subject,Year,Document Count\n",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dataDir, name), []byte(content), 0o644))
	}
	c := &contract.Config{DataDir: dataDir, OutputDir: t.TempDir(), Source: schema.CSVSource}

	err := runPipeline(context.Background(), c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "doc_timeline.csv line 2")
}
