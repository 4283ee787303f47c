// ABOUTME: CLI command for starting the MCP server.
// ABOUTME: Runs a stdio-based MCP server for Claude integration.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/harperreed/fevertrack/internal/mcp"
	"github.com/spf13/cobra"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Start MCP server",
	Long: `Start the Model Context Protocol (MCP) server for AI assistant integration.

MCP allows AI assistants like Claude to interact with the fever log
through a standardized protocol. The server communicates via stdin/stdout.

CLAUDE DESKTOP CONFIGURATION:

  Add this to your Claude Desktop config (claude_desktop_config.json):

  {
    "mcpServers": {
      "fevertrack": {
        "command": "fevertrack",
        "args": ["mcp"]
      }
    }
  }

AVAILABLE TOOLS:

  add_measurement     Record a temperature in Celsius
  add_medication      Record a medication dose
  list_measurements   List temperatures chronologically
  list_medications    List doses chronologically
  update_measurement  Edit a temperature measurement
  update_medication   Edit a medication dose
  delete_record       Soft-delete a record (reversible)
  undo_delete         Restore a deleted record
  latest_temperature  Most recent temperature with critical flag
  export_csv          Export a record kind as CSV text

AVAILABLE RESOURCES:

  fever://recent      Recent measurements and doses
  fever://today       Everything logged today
  fever://summary     Latest temperature plus last medication`,
	RunE: func(cmd *cobra.Command, args []string) error {
		server, err := mcp.NewServer(store)
		if err != nil {
			return err
		}

		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		// Handle shutdown signals
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		go func() {
			<-sigChan
			cancel()
		}()

		return server.Serve(ctx)
	},
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}
