// ABOUTME: CLI commands for editing existing records.
// ABOUTME: Only flags that were set on the command line are changed.
package main

import (
	"fmt"
	"strconv"

	"github.com/fatih/color"
	"github.com/harperreed/fevertrack/internal/storage"
	"github.com/spf13/cobra"
)

var (
	editAt    string
	editValue float64
	editName  string
	editDose  string
	editNotes string
)

var editCmd = &cobra.Command{
	Use:   "edit",
	Short: "Edit a recorded temperature or medication",
}

var editTempCmd = &cobra.Command{
	Use:   "temp <id>",
	Short: "Edit a temperature measurement",
	Long: `Edit a temperature measurement. Only the flags you pass are changed.

Examples:
  fevertrack edit temp 3 --value 38.9
  fevertrack edit temp 3 --at "2026-02-10 03:15" --notes "re-measured"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var update storage.MeasurementUpdate
		if cmd.Flags().Changed("at") {
			update.Timestamp = &editAt
		}
		if cmd.Flags().Changed("value") {
			update.ValueCelsius = &editValue
		}
		if cmd.Flags().Changed("notes") {
			update.Note = &editNotes
		}

		if err := store.UpdateMeasurement(id, update); err != nil {
			return fmt.Errorf("failed to update temperature: %w", err)
		}

		m, err := store.GetMeasurement(id)
		if err != nil {
			return fmt.Errorf("failed to read back record: %w", err)
		}
		color.Green("✓ Updated temperature %d", id)
		fmt.Printf("  %s %.1f°C\n",
			color.New(color.Faint).Sprint(m.Timestamp.Format("2006-01-02 15:04")),
			m.ValueCelsius)
		return nil
	},
}

var editMedCmd = &cobra.Command{
	Use:   "med <id>",
	Short: "Edit a medication dose",
	Long: `Edit a medication dose. Only the flags you pass are changed.

Examples:
  fevertrack edit med 5 --dose "7.5 mL"
  fevertrack edit med 5 --name Paracetamol --at "2026-02-10 03:05"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var update storage.MedicationUpdate
		if cmd.Flags().Changed("at") {
			update.Timestamp = &editAt
		}
		if cmd.Flags().Changed("name") {
			update.Name = &editName
		}
		if cmd.Flags().Changed("dose") {
			update.Dose = &editDose
		}
		if cmd.Flags().Changed("notes") {
			update.Note = &editNotes
		}

		if err := store.UpdateMedication(id, update); err != nil {
			return fmt.Errorf("failed to update medication: %w", err)
		}

		m, err := store.GetMedication(id)
		if err != nil {
			return fmt.Errorf("failed to read back record: %w", err)
		}
		color.Green("✓ Updated medication %d", id)
		fmt.Printf("  %s %s\n",
			color.New(color.Faint).Sprint(m.Timestamp.Format("2006-01-02 15:04")),
			m.Label())
		return nil
	},
}

func parseID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid record id: %s", s)
	}
	return id, nil
}

func init() {
	editCmd.PersistentFlags().StringVar(&editAt, "at", "", "new timestamp (YYYY-MM-DD HH:MM)")
	editCmd.PersistentFlags().StringVar(&editNotes, "notes", "", "new note (empty clears it)")
	editTempCmd.Flags().Float64Var(&editValue, "value", 0, "new temperature in Celsius")
	editMedCmd.Flags().StringVar(&editName, "name", "", "new medication name")
	editMedCmd.Flags().StringVar(&editDose, "dose", "", "new dose text")
	editCmd.AddCommand(editTempCmd)
	editCmd.AddCommand(editMedCmd)
	rootCmd.AddCommand(editCmd)
}
