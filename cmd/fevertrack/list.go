// ABOUTME: CLI commands for listing temperatures and medication doses.
// ABOUTME: Supports showing soft-deleted records with --deleted.
package main

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listDeleted bool

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls", "l"},
	Short:   "List recorded temperatures or medications",
}

var listTempsCmd = &cobra.Command{
	Use:     "temps",
	Aliases: []string{"t", "temp", "temperatures"},
	Short:   "List temperature measurements",
	Long: `List temperature measurements in chronological order.

OUTPUT FORMAT:

  Each line shows: ID  TIMESTAMP  VALUE  (NOTE)

  Soft-deleted records are hidden unless --deleted is given; when shown
  they are marked with [deleted].

EXAMPLES:

  fevertrack list temps
  fevertrack list temps --deleted`,
	RunE: func(cmd *cobra.Command, args []string) error {
		measurements, err := store.ListMeasurements(listDeleted)
		if err != nil {
			return fmt.Errorf("failed to list temperatures: %w", err)
		}

		if len(measurements) == 0 {
			fmt.Println("No temperatures recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		critical := cfg.GetCriticalTemp()
		for _, m := range measurements {
			value := fmt.Sprintf("%.1f°C", m.ValueCelsius)
			if m.ValueCelsius >= critical {
				value = color.RedString("%s", value)
			}
			note := ""
			if m.Note != nil && *m.Note != "" {
				note = faint.Sprintf(" (%s)", truncate(*m.Note, 40))
			}
			deleted := ""
			if m.Deleted {
				deleted = color.YellowString(" [deleted]")
			}
			fmt.Printf("%s %s %s%s%s\n",
				faint.Sprintf("%4d", m.ID),
				faint.Sprint(m.Timestamp.Format("2006-01-02 15:04")),
				value, note, deleted)
		}
		return nil
	},
}

var listMedsCmd = &cobra.Command{
	Use:     "meds",
	Aliases: []string{"m", "med", "medications"},
	Short:   "List medication doses",
	RunE: func(cmd *cobra.Command, args []string) error {
		medications, err := store.ListMedications(listDeleted)
		if err != nil {
			return fmt.Errorf("failed to list medications: %w", err)
		}

		if len(medications) == 0 {
			fmt.Println("No medications recorded.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, m := range medications {
			note := ""
			if m.Note != nil && *m.Note != "" {
				note = faint.Sprintf(" (%s)", truncate(*m.Note, 40))
			}
			deleted := ""
			if m.Deleted {
				deleted = color.YellowString(" [deleted]")
			}
			fmt.Printf("%s %s %s%s%s\n",
				faint.Sprintf("%4d", m.ID),
				faint.Sprint(m.Timestamp.Format("2006-01-02 15:04")),
				padRight(m.Label(), 24),
				note, deleted)
		}
		return nil
	},
}

func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

func padRight(s string, length int) string {
	if len(s) >= length {
		return s
	}
	return s + strings.Repeat(" ", length-len(s))
}

func init() {
	listCmd.PersistentFlags().BoolVar(&listDeleted, "deleted", false, "include soft-deleted records")
	listCmd.AddCommand(listTempsCmd)
	listCmd.AddCommand(listMedsCmd)
	rootCmd.AddCommand(listCmd)
}
