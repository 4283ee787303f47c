// ABOUTME: Install Claude Code skill for fevertrack
// ABOUTME: Embeds and installs the skill definition to ~/.claude/skills/

package main

import (
	"bufio"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
)

//go:embed skill/SKILL.md
var skillFS embed.FS

var skillSkipConfirm bool

var installSkillCmd = &cobra.Command{
	Use:   "install-skill",
	Short: "Install Claude Code skill",
	Long: `Install the fevertrack skill for Claude Code.

The skill file is copied to ~/.claude/skills/fevertrack/ so Claude Code
knows how to log temperatures and doses through this CLI.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return installSkill()
	},
}

func init() {
	installSkillCmd.Flags().BoolVarP(&skillSkipConfirm, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(installSkillCmd)
}

func installSkill() error {
	home, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	skillDir := filepath.Join(home, ".claude", "skills", "fevertrack")
	skillPath := filepath.Join(skillDir, "SKILL.md")

	fmt.Println("Installing the fevertrack skill for Claude Code.")
	fmt.Println()
	fmt.Println("With the skill installed Claude Code can log temperatures and")
	fmt.Println("medication doses, review the fever timeline, undo accidental")
	fmt.Println("deletions, and export data for the pediatrician.")
	fmt.Println()
	fmt.Printf("Destination: %s\n", skillPath)
	fmt.Println()

	if _, err := os.Stat(skillPath); err == nil {
		fmt.Println("An earlier skill file exists at that path and will be replaced.")
		fmt.Println()
	}

	if !skillSkipConfirm {
		fmt.Print("Continue? [y/N] ")
		reader := bufio.NewReader(os.Stdin)
		response, err := reader.ReadString('\n')
		if err != nil {
			return fmt.Errorf("failed to read response: %w", err)
		}
		response = strings.TrimSpace(strings.ToLower(response))
		if response != "y" && response != "yes" {
			fmt.Println("Installation canceled.")
			return nil
		}
		fmt.Println()
	}

	content, err := skillFS.ReadFile("skill/SKILL.md")
	if err != nil {
		return fmt.Errorf("failed to read embedded skill: %w", err)
	}

	if err := os.MkdirAll(skillDir, 0750); err != nil {
		return fmt.Errorf("failed to create skill directory: %w", err)
	}

	if err := os.WriteFile(skillPath, content, 0600); err != nil {
		return fmt.Errorf("failed to write skill file: %w", err)
	}

	fmt.Println("✓ Skill installed.")
	fmt.Println()
	fmt.Println("Try asking Claude: \"Log a temperature of 38.4\" or \"When was the last dose?\"")
	return nil
}
