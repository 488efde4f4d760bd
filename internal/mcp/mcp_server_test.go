package mcp_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/huangsam/examviz/internal/contract"
	mcp_internal "github.com/huangsam/examviz/internal/mcp"
	"github.com/huangsam/examviz/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeArchive creates a small data directory and returns its path.
func writeArchive(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		schema.TimelineFile:     "Year,Document Count\n1938,5\n1940,7\n1944,0\n1945,0\n1950,9\n",
		schema.SubjectNamesFile: "Code,Name\nENG,ENGLISH\n",
		schema.SubjectYearsFile: "Subject,Year,Document Count\nENGLISH,1938,4\nGAELIC,1940,2\nHISTORY,1950,1\n",
		schema.CorpusFile:       "Nothing relevant here.",
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func callTool(t *testing.T, baseCfg *contract.Config, name string, args map[string]any) *mcp.CallToolResult {
	t.Helper()
	s := mcp_internal.NewMCPServer(baseCfg)
	tool := s.GetTool(name)
	require.NotNil(t, tool, "Tool %s should exist", name)

	res, err := tool.Handler(context.Background(), mcp.CallToolRequest{
		Params: mcp.CallToolParams{Name: name, Arguments: args},
	})
	require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
	require.NotNil(t, res)
	return res
}

func resultText(t *testing.T, res *mcp.CallToolResult) string {
	t.Helper()
	require.NotEmpty(t, res.Content)
	return res.Content[0].(mcp.TextContent).Text
}

func TestMCPServerHandlers_Statistics(t *testing.T) {
	baseCfg := &contract.Config{DataDir: writeArchive(t), Source: schema.CSVSource}

	res := callTool(t, baseCfg, "get_statistics", nil)
	assert.False(t, res.IsError)

	var payload struct {
		Statistics schema.Statistics        `json:"statistics"`
		Matches    schema.StatisticsMatches `json:"matches"`
	}
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &payload))
	assert.Equal(t, 12, payload.Statistics.TotalYears)
	assert.Equal(t, 7, payload.Statistics.WarYearDrop)
	assert.Equal(t, 4, payload.Statistics.EnglishDominance)
	assert.True(t, payload.Matches.Gaelic)
}

func TestMCPServerHandlers_SubjectTotals(t *testing.T) {
	baseCfg := &contract.Config{DataDir: t.TempDir(), Source: schema.CSVSource}

	res := callTool(t, baseCfg, "get_subject_totals", map[string]any{
		"data_dir":  writeArchive(t),
		"languages": true,
		"limit":     1.0,
	})
	assert.False(t, res.IsError)

	var totals []schema.SubjectTotal
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &totals))
	assert.Equal(t, []schema.SubjectTotal{{Subject: "ENGLISH", DocumentCount: 4}}, totals)
}

func TestMCPServerHandlers_Quotes(t *testing.T) {
	res := callTool(t, &contract.Config{DataDir: writeArchive(t)}, "get_quotes", nil)
	assert.False(t, res.IsError)

	var quotes []schema.Quote
	require.NoError(t, json.Unmarshal([]byte(resultText(t, res)), &quotes))
	require.Len(t, quotes, 1)
	assert.Equal(t, schema.FallbackQuoteText, quotes[0].Text)
}

func TestMCPServerHandlers_RunPipeline(t *testing.T) {
	outDir := t.TempDir()
	baseCfg := &contract.Config{
		DataDir: writeArchive(t),
		Source:  schema.CSVSource,
		DPI:     contract.MinDPI,
		Palette: schema.DefaultPalette(),
	}

	res := callTool(t, baseCfg, "run_pipeline", map[string]any{"output_dir": outDir})
	assert.False(t, res.IsError, resultText(t, res))
	assert.FileExists(t, filepath.Join(outDir, schema.StatisticsFile))
	assert.FileExists(t, filepath.Join(outDir, schema.TimelineChartFile))
}

func TestMCPServerHandlers_Errors(t *testing.T) {
	missing := &contract.Config{DataDir: filepath.Join(t.TempDir(), "data"), Source: schema.CSVSource}

	t.Run("get_statistics missing data dir", func(t *testing.T) {
		res := callTool(t, missing, "get_statistics", nil)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, resultText(t, res), "data directory not found")
	})

	t.Run("get_subject_totals limit too large", func(t *testing.T) {
		res := callTool(t, missing, "get_subject_totals", map[string]any{"limit": 5000.0})
		assert.True(t, res.IsError)
		assert.Contains(t, resultText(t, res), "limit must be between 0 and 1000")
	})
}
