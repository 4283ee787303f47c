// ABOUTME: CLI commands for soft-deleting and restoring records.
// ABOUTME: Deletes are reversible with 'undo' until the record is purged elsewhere.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/harperreed/fevertrack/internal/models"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete <kind> <id>",
	Aliases: []string{"del", "rm"},
	Short:   "Soft-delete a record",
	Long: `Soft-delete a temperature or medication record by its ID.

The record is hidden from listings, exports, and the chart, but kept in
the database. Use 'fevertrack undo' to restore it.

KIND is 'temp' or 'med' (also: measurements, medications).

EXAMPLES:

  fevertrack delete temp 3
  fevertrack rm med 5
  fevertrack undo temp 3`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id, err := parseRecordRef(args[0], args[1])
		if err != nil {
			return err
		}

		label, err := recordLabel(kind, id)
		if err != nil {
			return err
		}

		if err := store.SoftDelete(kind, id); err != nil {
			return fmt.Errorf("failed to delete record: %w", err)
		}

		color.Yellow("✗ Deleted %s", label)
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("restore with: fevertrack undo %s %d", args[0], id))
		return nil
	},
}

var undoCmd = &cobra.Command{
	Use:   "undo <kind> <id>",
	Short: "Restore a soft-deleted record",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		kind, id, err := parseRecordRef(args[0], args[1])
		if err != nil {
			return err
		}

		if err := store.UndoDelete(kind, id); err != nil {
			return fmt.Errorf("failed to restore record: %w", err)
		}

		label, err := recordLabel(kind, id)
		if err != nil {
			return err
		}
		color.Green("✓ Restored %s", label)
		return nil
	},
}

func parseRecordRef(kindArg, idArg string) (models.Kind, int64, error) {
	kind, ok := models.ParseKind(kindArg)
	if !ok {
		return "", 0, fmt.Errorf("unknown record kind: %s (use temp or med)", kindArg)
	}
	id, err := parseID(idArg)
	if err != nil {
		return "", 0, err
	}
	return kind, id, nil
}

// recordLabel describes a record for confirmation output.
func recordLabel(kind models.Kind, id int64) (string, error) {
	switch kind {
	case models.KindMeasurement:
		m, err := store.GetMeasurement(id)
		if err != nil {
			return "", fmt.Errorf("record not found: %d", id)
		}
		return fmt.Sprintf("%.1f°C at %s", m.ValueCelsius, m.Timestamp.Format("2006-01-02 15:04")), nil
	default:
		m, err := store.GetMedication(id)
		if err != nil {
			return "", fmt.Errorf("record not found: %d", id)
		}
		return fmt.Sprintf("%s at %s", m.Label(), m.Timestamp.Format("2006-01-02 15:04")), nil
	}
}

func init() {
	rootCmd.AddCommand(deleteCmd)
	rootCmd.AddCommand(undoCmd)
}
