// ABOUTME: CLI commands for recording temperatures and medication doses.
// ABOUTME: Defaults the timestamp to now, overridable with --at.
package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/harperreed/fevertrack/internal/models"
	"github.com/spf13/cobra"
)

var (
	addAt    string
	addNotes string
)

var addCmd = &cobra.Command{
	Use:     "add",
	Aliases: []string{"a"},
	Short:   "Record a temperature or medication dose",
}

var addTempCmd = &cobra.Command{
	Use:     "temp <celsius>",
	Aliases: []string{"t", "temperature"},
	Short:   "Record a temperature measurement",
	Long: `Record a body temperature measurement in Celsius.

Values outside 30.0-45.0 are rejected as thermometer misreads.

Examples:
  fevertrack add temp 38.4
  fevertrack add temp 39.1 --at "2026-02-10 03:00"
  fevertrack add temp 37.2 --notes "after paracetamol"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		value, err := strconv.ParseFloat(args[0], 64)
		if err != nil {
			return fmt.Errorf("invalid temperature: %s", args[0])
		}

		id, err := store.AddMeasurement(entryTimestamp(), value, addNotes)
		if err != nil {
			return fmt.Errorf("failed to record temperature: %w", err)
		}

		color.Green("✓ Recorded %.1f°C", value)
		if value >= cfg.GetCriticalTemp() {
			color.Red("  ⚠ above the critical threshold (%.1f°C)", cfg.GetCriticalTemp())
		}
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("id %d", id))
		return nil
	},
}

var addMedCmd = &cobra.Command{
	Use:     "med <name> <dose>",
	Aliases: []string{"m", "medication"},
	Short:   "Record a medication dose",
	Long: `Record a medication dose. The dose is free text, stored as given.

Logging a dose also registers the medication name for autocomplete
in the dashboard.

Examples:
  fevertrack add med Nurofen "5 mL"
  fevertrack add med Paracetamol "250 mg" --at "2026-02-10 03:05"`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := store.AddMedication(entryTimestamp(), args[0], args[1], addNotes)
		if err != nil {
			return fmt.Errorf("failed to record medication: %w", err)
		}

		color.Green("✓ Recorded %s (%s)", args[0], args[1])
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("id %d", id))
		return nil
	},
}

// entryTimestamp returns --at as given, or the current minute.
func entryTimestamp() string {
	if addAt != "" {
		return addAt
	}
	return time.Now().Format(models.TimeLayout)
}

func init() {
	addCmd.PersistentFlags().StringVar(&addAt, "at", "", "timestamp (YYYY-MM-DD HH:MM)")
	addCmd.PersistentFlags().StringVar(&addNotes, "notes", "", "note for the record")
	addCmd.AddCommand(addTempCmd)
	addCmd.AddCommand(addMedCmd)
	rootCmd.AddCommand(addCmd)
}
