package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var groupCmd = &cobra.Command{
	Use:   "group <project-id>",
	Short: "Automatically group commit identities into developers",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID := args[0]

		summary, err := application.grouping.AutoGroup(projectID)
		if err != nil {
			return err
		}

		fmt.Printf("Grouped %d developers (%d newly created)\n", summary.TotalDevelopers, summary.GroupsCreated)
		for _, group := range summary.Groups {
			fmt.Printf("  %s <%s>  aliases=%d confidence=%d\n",
				group.PrimaryName, group.PrimaryEmail, group.AliasesCount, group.ConfidenceScore)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(groupCmd)
}
