// ABOUTME: Root Cobra command for the fevertrack CLI.
// ABOUTME: Handles config loading and store lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/fevertrack/internal/config"
	"github.com/harperreed/fevertrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg    *config.Config
	store  *storage.Store
	dbPath string
)

var rootCmd = &cobra.Command{
	Use:   "fevertrack",
	Short: "Personal fever and medication tracker",
	Long: `Fevertrack is a CLI tool for tracking a sick child's fever episodes.

WHAT IT TRACKS:

  Temperatures   body temperature measurements in Celsius
  Medications    doses given, with free-form dose strings ("5 mL", "250 mg")

QUICK START:

  $ fevertrack add temp 38.4                      # Log a temperature now
  $ fevertrack add temp 39.1 --at "2026-02-10 03:00"
  $ fevertrack add med Nurofen "5 mL"             # Log a dose
  $ fevertrack list temps                         # Recent temperatures
  $ fevertrack list meds                          # Recent doses
  $ fevertrack delete temp 3                      # Soft-delete (reversible)
  $ fevertrack undo temp 3                        # Restore it

DASHBOARD:

  $ fevertrack serve                              # Local web dashboard

  The dashboard shows a temperature chart with medication markers and a
  critical-fever guideline, plus forms for quick entry.

MCP INTEGRATION:

  Run 'fevertrack mcp' to start the Model Context Protocol server for use
  with Claude Desktop or other MCP-compatible AI assistants. Add to your
  Claude config:

  {
    "mcpServers": {
      "fevertrack": { "command": "fevertrack", "args": ["mcp"] }
    }
  }

DATA STORAGE:

  Records are stored in a local SQLite database (default:
  ~/.local/share/fevertrack/fevertrack.db). Nothing ever leaves the
  machine. Deletes are soft and reversible until you export.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Commands that never touch the database
		switch cmd.Name() {
		case "version", "help", "install-skill", "completion":
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		if dbPath != "" {
			store, err = storage.Open(config.ExpandPath(dbPath))
		} else {
			store, err = cfg.OpenStore()
		}
		if err != nil {
			return fmt.Errorf("failed to open database: %w", err)
		}
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if store != nil {
			return store.Close()
		}
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the SQLite database file")
}
