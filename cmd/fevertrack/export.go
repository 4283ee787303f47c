// ABOUTME: CLI commands for exporting and importing fever data.
// ABOUTME: Supports CSV, JSON, and YAML export formats.
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/harperreed/fevertrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	exportOutput string
	exportKind   string
)

var exportCmd = &cobra.Command{
	Use:   "export <format>",
	Short: "Export fever data",
	Long: `Export fever data in various formats.

FORMATS:

  csv    One record kind as CSV (requires --kind; for spreadsheets)
  json   Full JSON export (suitable for backup/restore)
  yaml   YAML export (human-readable)

CSV exports contain only non-deleted records, in chronological order.
JSON and YAML exports contain everything, including soft-deleted
records, so a backup/restore round trip is lossless.

OPTIONS:

  --output, -o   Write to file instead of stdout
  --kind, -k     Record kind for CSV: temp or med (default temp)

EXAMPLES:

  fevertrack export csv --kind temp             # Temperatures as CSV
  fevertrack export csv -k med -o doses.csv     # Doses to a file
  fevertrack export json -o backup.json         # Full backup
  fevertrack export yaml                        # Everything as YAML`,
	Args:      cobra.ExactArgs(1),
	ValidArgs: []string{"csv", "json", "yaml"},
	RunE: func(cmd *cobra.Command, args []string) error {
		format := args[0]

		var data []byte
		var err error

		switch format {
		case "csv":
			kind, ok := models.ParseKind(exportKind)
			if !ok {
				return fmt.Errorf("unknown record kind: %s (use temp or med)", exportKind)
			}
			out, err := store.ExportCSV(kind)
			if err != nil {
				return fmt.Errorf("export failed: %w", err)
			}
			data = []byte(out)
		case "json":
			data, err = store.ExportJSON()
		case "yaml":
			data, err = store.ExportYAML()
		default:
			return fmt.Errorf("unknown format: %s (use csv, json, or yaml)", format)
		}

		if err != nil {
			return fmt.Errorf("export failed: %w", err)
		}

		if exportOutput != "" {
			if err := os.WriteFile(exportOutput, data, 0600); err != nil {
				return fmt.Errorf("failed to write file: %w", err)
			}
			color.Green("✓ Exported to %s", exportOutput)
		} else {
			fmt.Print(string(data))
		}

		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Import fever data from JSON",
	Long: `Import fever data from a JSON backup file.

Records keep their original IDs and deleted flags. Importing a record
whose ID already exists is an error.

EXAMPLES:

  fevertrack import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("failed to read file: %w", err)
		}

		if err := store.ImportJSON(data); err != nil {
			return fmt.Errorf("import failed: %w", err)
		}

		color.Green("✓ Imported %s", args[0])
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
	exportCmd.Flags().StringVarP(&exportKind, "kind", "k", "temp", "record kind for CSV export")
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
}
