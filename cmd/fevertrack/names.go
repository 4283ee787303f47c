// ABOUTME: CLI commands for managing the medication name catalog.
// ABOUTME: The catalog feeds autocomplete in the dashboard.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var namesCmd = &cobra.Command{
	Use:     "names",
	Aliases: []string{"name"},
	Short:   "Manage the medication name catalog",
	Long: `Manage the catalog of known medication names.

Names are registered automatically when you log a dose, but can also be
managed directly. Removing a name does not touch existing dose records.

EXAMPLES:

  fevertrack names list
  fevertrack names add Paracetamol
  fevertrack names rename 2 Ibuprofen
  fevertrack names delete 2`,
}

var namesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List known medication names",
	RunE: func(cmd *cobra.Command, args []string) error {
		names, err := store.ListMedicationNames()
		if err != nil {
			return fmt.Errorf("failed to list names: %w", err)
		}

		if len(names) == 0 {
			fmt.Println("No medication names registered.")
			return nil
		}

		faint := color.New(color.Faint)
		for _, n := range names {
			fmt.Printf("%s %s\n", faint.Sprintf("%4d", n.ID), n.Name)
		}
		return nil
	},
}

var namesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a medication name",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := store.AddMedicationName(args[0])
		if err != nil {
			return fmt.Errorf("failed to add name: %w", err)
		}
		color.Green("✓ Added %s", args[0])
		fmt.Printf("  %s\n", color.New(color.Faint).Sprintf("id %d", id))
		return nil
	},
}

var namesRenameCmd = &cobra.Command{
	Use:   "rename <id> <new-name>",
	Short: "Rename a medication name",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		if err := store.RenameMedicationName(id, args[1]); err != nil {
			return fmt.Errorf("failed to rename: %w", err)
		}
		color.Green("✓ Renamed %d to %s", id, args[1])
		return nil
	},
}

var namesDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a name from the catalog",
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}
		name, err := store.GetMedicationName(id)
		if err != nil {
			return fmt.Errorf("name not found: %d", id)
		}
		if err := store.DeleteMedicationName(id); err != nil {
			return fmt.Errorf("failed to delete name: %w", err)
		}
		color.Yellow("✗ Removed %s", name.Name)
		return nil
	},
}

func init() {
	namesCmd.AddCommand(namesListCmd)
	namesCmd.AddCommand(namesAddCmd)
	namesCmd.AddCommand(namesRenameCmd)
	namesCmd.AddCommand(namesDeleteCmd)
	rootCmd.AddCommand(namesCmd)
}
