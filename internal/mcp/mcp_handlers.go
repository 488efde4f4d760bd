package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	"github.com/huangsam/examviz/core"
	"github.com/huangsam/examviz/internal/contract"
	"github.com/huangsam/examviz/schema"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
}

// statisticsResponse is the payload of get_statistics.
type statisticsResponse struct {
	Statistics schema.Statistics        `json:"statistics"`
	Matches    schema.StatisticsMatches `json:"matches"`
}

// configFor clones the base config and applies the directory overrides of a request.
func (h *toolHandler) configFor(request mcp.CallToolRequest) (*contract.Config, error) {
	cfg := h.baseCfg.Clone()
	if d := request.GetString("data_dir", ""); d != "" {
		abs, err := filepath.Abs(d)
		if err != nil {
			return nil, fmt.Errorf("invalid data_dir: %w", err)
		}
		cfg.DataDir = abs
	}
	if d := request.GetString("output_dir", ""); d != "" {
		abs, err := filepath.Abs(d)
		if err != nil {
			return nil, fmt.Errorf("invalid output_dir: %w", err)
		}
		cfg.OutputDir = abs
	}
	return cfg, nil
}

func (h *toolHandler) handleGetStatistics(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	stats, matches, err := core.GetStatistics(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("statistics failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(statisticsResponse{Statistics: stats, Matches: matches}, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetSubjectTotals(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}
	cfg.Languages = request.GetBool("languages", cfg.Languages)
	if l := request.GetInt("limit", 0); l > 0 {
		if l > contract.MaxResultLimit {
			return mcp.NewToolResultError(fmt.Sprintf("limit must be between 0 and %d", contract.MaxResultLimit)), nil
		}
		cfg.Limit = l
	}

	totals, _, err := core.GetSubjectTotals(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("subject totals failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(totals, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleGetQuotes(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	// A read failure still yields the fallback quote
	quotes, _ := core.GetQuotes(cfg)
	jsonData, _ := json.MarshalIndent(quotes, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRunPipeline(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg, err := h.configFor(request)
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	result, err := core.ExecutePipeline(core.WithSuppressHeader(ctx), cfg)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("pipeline failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(result, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
