package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var developersCmd = &cobra.Command{
	Use:   "developers <project-id>",
	Short: "List resolved developers with their aliases",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID := args[0]

		grouped, err := application.grouping.GetGroupedDevelopers(projectID)
		if err != nil {
			return err
		}

		fmt.Printf("%d developers\n", len(grouped))
		for _, group := range grouped {
			fmt.Printf("%s <%s>  confidence=%d commits=%d\n",
				group.Developer.PrimaryName, group.Developer.PrimaryEmail,
				group.Developer.ConfidenceScore, group.TotalCommits)
			for _, alias := range group.Aliases {
				fmt.Printf("    %s <%s>  commits=%d\n", alias.Name, alias.Email, alias.CommitCount)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(developersCmd)
}
