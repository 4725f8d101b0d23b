package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export <project-id>",
	Short: "Export developers and aliases to an Excel workbook",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID := args[0]

		if err := application.export.ExportDevelopers(projectID, exportOutput); err != nil {
			return err
		}

		fmt.Printf("Wrote %s\n", exportOutput)
		return nil
	},
}

func init() {
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "developers.xlsx", "output file path")
	rootCmd.AddCommand(exportCmd)
}
