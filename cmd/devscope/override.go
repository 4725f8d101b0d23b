package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alimgiray/devscope/internal/services"
)

var (
	overrideName  string
	overrideEmail string
	overrideKeys  []string
)

var overrideCmd = &cobra.Command{
	Use:   "override <project-id>",
	Short: "Manually group identities under one developer",
	Long: `override creates a developer from an explicit list of identity keys
("<name>|<email>"). Identities already claimed by another developer cause
the whole request to be rejected.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID := args[0]

		result, err := application.grouping.ManualGroup(projectID, services.ManualGroupRequest{
			PrimaryName:  overrideName,
			PrimaryEmail: overrideEmail,
			IdentityKeys: overrideKeys,
		})
		if err != nil {
			return err
		}

		if !result.Success {
			return fmt.Errorf("grouping rejected: %s", result.Error)
		}

		fmt.Printf("Created developer %s <%s> with %d aliases\n",
			result.PrimaryName, result.PrimaryEmail, result.AliasesCount)
		return nil
	},
}

func init() {
	overrideCmd.Flags().StringVar(&overrideName, "name", "", "primary name for the developer")
	overrideCmd.Flags().StringVar(&overrideEmail, "email", "", "primary email for the developer")
	overrideCmd.Flags().StringArrayVar(&overrideKeys, "identity", nil, "identity key \"<name>|<email>\" (repeatable)")
	overrideCmd.MarkFlagRequired("name")
	overrideCmd.MarkFlagRequired("email")
	overrideCmd.MarkFlagRequired("identity")
	rootCmd.AddCommand(overrideCmd)
}
