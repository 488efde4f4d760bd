package cmd

import (
	"github.com/huangsam/examviz/internal/mcp"
	"github.com/spf13/cobra"
)

// mcpCmd represents the mcp command.
var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start the examviz MCP server",
	Long:  `Launch an MCP server that allows AI agents to query the exam archive via standard tools.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		// Tool handlers suppress progress output to avoid polluting stdio,
		// which is used for the protocol.
		return sharedSetup(rootCtx, cmd, args)
	},
	RunE: func(_ *cobra.Command, _ []string) error {
		return mcp.StartMCPServer(rootCtx, cfg)
	},
}
