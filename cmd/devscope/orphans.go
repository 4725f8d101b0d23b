package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var (
	orphansList     bool
	orphansReassign bool
	orphansCreate   bool
	orphansDetach   string
	orphansDryRun   bool
)

var orphansCmd = &cobra.Command{
	Use:   "orphans <project-id>",
	Short: "Inspect and reconcile aliases without a developer",
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID := args[0]

		if orphansDetach != "" {
			if err := application.orphans.Detach(projectID, orphansDetach); err != nil {
				return err
			}
			fmt.Printf("Detached alias %s\n", orphansDetach)
			return nil
		}

		if orphansReassign {
			report, err := application.orphans.Reconcile(projectID, orphansDryRun)
			if err != nil {
				return err
			}
			fmt.Printf("Orphans: %d, reassigned: %d, remaining: %d\n",
				report.Orphans, report.Reassigned, report.RemainingOrphans)
			return nil
		}

		if orphansCreate {
			created, err := application.orphans.CreateDevelopersForOrphans(projectID, orphansDryRun)
			if err != nil {
				return err
			}
			fmt.Printf("Created %d developers for orphan aliases\n", created)
			return nil
		}

		// Default action is listing
		orphans, err := application.aliases.GetOrphans(projectID)
		if err != nil {
			return err
		}
		fmt.Printf("%d orphan aliases\n", len(orphans))
		for _, orphan := range orphans {
			fmt.Printf("  %s <%s>  commits=%d\n", orphan.Name, orphan.Email, orphan.CommitCount)
		}
		return nil
	},
	Args: cobra.ExactArgs(1),
}

func init() {
	orphansCmd.Flags().BoolVar(&orphansList, "list", false, "list orphan aliases (default)")
	orphansCmd.Flags().BoolVar(&orphansReassign, "reassign", false, "reattach orphans to matching developers")
	orphansCmd.Flags().BoolVar(&orphansCreate, "create-developers", false, "promote remaining orphans to developers")
	orphansCmd.Flags().StringVar(&orphansDetach, "detach", "", "detach the alias with this email from its developer")
	orphansCmd.Flags().BoolVar(&orphansDryRun, "dry-run", false, "report what would change without writing")
	rootCmd.AddCommand(orphansCmd)
}
