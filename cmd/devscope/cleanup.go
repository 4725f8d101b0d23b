package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var cleanupApply bool

var cleanupCmd = &cobra.Command{
	Use:   "cleanup <project-id>",
	Short: "Collapse duplicate aliases and developers",
	Long: `cleanup merges aliases sharing an email (case-insensitively), merges
developers sharing a primary email and repairs aliases whose developer no
longer exists. Runs in dry-run mode unless --apply is given.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID := args[0]
		dryRun := !cleanupApply

		report, err := application.dedup.Cleanup(projectID, dryRun)
		if err != nil {
			return err
		}

		mode := "applied"
		if dryRun {
			mode = "dry-run"
		}
		fmt.Printf("Cleanup (%s):\n", mode)
		fmt.Printf("  alias groups merged:     %d (%d aliases deleted)\n", report.AliasGroupsMerged, report.AliasesDeleted)
		fmt.Printf("  developer groups merged: %d (%d developers deleted)\n", report.DeveloperGroupsMerged, report.DevelopersDeleted)
		fmt.Printf("  dangling aliases fixed:  %d\n", report.DanglingFixed)
		return nil
	},
}

func init() {
	cleanupCmd.Flags().BoolVar(&cleanupApply, "apply", false, "write the changes instead of reporting them")
	rootCmd.AddCommand(cleanupCmd)
}
