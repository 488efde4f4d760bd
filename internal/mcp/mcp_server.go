// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/examviz/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the examviz MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config) *server.MCPServer {
	s := server.NewMCPServer(
		"Exam Archive Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{baseCfg: baseCfg}

	// --- 1. Tool: get_statistics ---
	s.AddTool(mcp.NewTool("get_statistics",
		mcp.WithDescription("Summarize the exam document archive: years spanned, total documents, war-year documents, English and Gaelic counts."),
		mcp.WithString("data_dir", mcp.Description("Directory holding the archive CSV files (defaults to the configured data directory).")),
	), h.handleGetStatistics)

	// --- 2. Tool: get_subject_totals ---
	s.AddTool(mcp.NewTool("get_subject_totals",
		mcp.WithDescription("Total archived documents per subject, largest first."),
		mcp.WithString("data_dir", mcp.Description("Directory holding the archive CSV files.")),
		mcp.WithBoolean("languages", mcp.Description("Restrict the totals to the language subjects.")),
		mcp.WithNumber("limit", mcp.Description("Limit the number of subjects returned.")),
	), h.handleGetSubjectTotals)

	// --- 3. Tool: get_quotes ---
	s.AddTool(mcp.NewTool("get_quotes",
		mcp.WithDescription("Illustrative sentences from the archive corpus about the English requirement for certificates."),
		mcp.WithString("data_dir", mcp.Description("Directory holding educationcomms.txt.")),
	), h.handleGetQuotes)

	// --- 4. Tool: run_pipeline ---
	s.AddTool(mcp.NewTool("run_pipeline",
		mcp.WithDescription("Render the three charts and write statistics.json and quotes.json."),
		mcp.WithString("data_dir", mcp.Description("Directory holding the archive input files.")),
		mcp.WithString("output_dir", mcp.Description("Directory receiving the charts and JSON files.")),
	), h.handleRunPipeline)

	return s
}

// StartMCPServer starts the examviz MCP server on stdio.
func StartMCPServer(_ context.Context, baseCfg *contract.Config) error {
	s := NewMCPServer(baseCfg)
	return server.ServeStdio(s)
}
