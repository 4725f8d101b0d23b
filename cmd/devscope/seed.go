package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/alimgiray/devscope/internal/models"
	"github.com/alimgiray/devscope/pkg/logger"
)

var seedFile string

var seedCmd = &cobra.Command{
	Use:   "seed <project-id>",
	Short: "Load commits from a CSV file",
	Long: `seed ingests commit metadata from a CSV file with the columns
repository,sha,message,author_name,author_email,authored_date (RFC 3339).
Commits already present for the project are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		projectID := args[0]

		f, err := os.Open(seedFile)
		if err != nil {
			return err
		}
		defer f.Close()

		reader := csv.NewReader(f)
		reader.FieldsPerRecord = 6

		records, err := reader.ReadAll()
		if err != nil {
			return fmt.Errorf("failed to parse %s: %w", seedFile, err)
		}

		inserted, skipped := 0, 0
		for i, record := range records {
			authoredDate, err := time.Parse(time.RFC3339, record[5])
			if err != nil {
				return fmt.Errorf("row %d: bad authored_date %q: %w", i+1, record[5], err)
			}

			commit := models.NewCommit(projectID, record[0], record[1], record[2], record[3], record[4], authoredDate)
			if err := application.commits.Create(commit); err != nil {
				if strings.Contains(err.Error(), "UNIQUE constraint failed") {
					skipped++
					continue
				}
				return err
			}
			inserted++
		}

		total, err := application.commits.CountByProjectID(projectID)
		if err != nil {
			return err
		}

		logger.Infof("Seeded %d commits (%d already present)", inserted, skipped)
		fmt.Printf("Inserted %d commits, skipped %d duplicates, %d total\n", inserted, skipped, total)
		return nil
	},
}

func init() {
	seedCmd.Flags().StringVarP(&seedFile, "file", "f", "commits.csv", "CSV file to load")
	rootCmd.AddCommand(seedCmd)
}
