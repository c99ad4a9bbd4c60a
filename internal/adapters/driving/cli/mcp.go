package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/shellit/internal/adapters/driving/mcp"
	"github.com/custodia-labs/shellit/internal/logger"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "MCP server commands",
	Long:  `Commands for the Model Context Protocol (MCP) server integration.`,
}

var mcpServeCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the MCP server",
	Long: `Start the Model Context Protocol server for AI assistant integration.

The server exposes an "evaluate" tool, a "history" tool, and the
shellit://history and shellit://settings resources.

By default, the server communicates over stdio using JSON-RPC. Use --port
to start an HTTP server instead, for example to test with MCP Inspector.

Examples:
  # Stdio mode (default)
  shellit mcp serve

  # HTTP mode
  shellit mcp serve --port 8080

Assistant configuration:
  {
    "mcpServers": {
      "shellit": {
        "command": "/path/to/shellit",
        "args": ["mcp", "serve"]
      }
    }
  }`,
	RunE: runMCPServe,
}

func init() {
	mcpServeCmd.Flags().IntP("port", "p", 0, "HTTP port (0 = use stdio)")
	mcpServeCmd.Flags().Float64("rate", mcp.DefaultRatePerSecond, "Evaluations per second (0 = unlimited)")
	mcpCmd.AddCommand(mcpServeCmd)
	rootCmd.AddCommand(mcpCmd)
}

func runMCPServe(cmd *cobra.Command, _ []string) error {
	port, err := cmd.Flags().GetInt("port")
	if err != nil {
		return fmt.Errorf("getting port flag: %w", err)
	}
	perSecond, err := cmd.Flags().GetFloat64("rate")
	if err != nil {
		return fmt.Errorf("getting rate flag: %w", err)
	}

	ports := &mcp.Ports{
		Calculator: calculator,
		History:    historyService,
	}

	server, err := mcp.NewServer(ports, mcp.WithRateLimit(perSecond, mcp.DefaultBurst))
	if err != nil {
		return err
	}

	// The evaluator swaps settings atomically, so reloads apply from the
	// watcher goroutine directly.
	stop, err := startConfigWatcher(cmd.Context(), func(reloadErr error) {
		if err := applyReloadedSettings(reloadErr); err != nil {
			logger.Warn("%v", err)
		}
	})
	if err != nil {
		return err
	}
	defer stop()

	if port > 0 {
		addr := fmt.Sprintf(":%d", port)
		fmt.Fprintf(cmd.ErrOrStderr(), "MCP server listening on http://localhost%s\n", addr)
		return server.RunHTTP(cmd.Context(), addr)
	}

	return server.Run(cmd.Context())
}
