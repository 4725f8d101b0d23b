package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/alimgiray/devscope/pkg/logger"
)

// ExportService writes the resolved developers and their aliases to an
// Excel workbook for offline review.
type ExportService struct {
	grouping *GroupingService
}

func NewExportService(grouping *GroupingService) *ExportService {
	return &ExportService{grouping: grouping}
}

// ExportDevelopers writes one "Developers" sheet and one "Aliases" sheet
func (s *ExportService) ExportDevelopers(projectID, path string) error {
	grouped, err := s.grouping.GetGroupedDevelopers(projectID)
	if err != nil {
		return err
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Developers"); err != nil {
		return err
	}
	if _, err := f.NewSheet("Aliases"); err != nil {
		return err
	}

	developerHeaders := []string{"Primary Name", "Primary Email", "Confidence", "Auto Grouped", "Aliases", "Total Commits"}
	for i, header := range developerHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue("Developers", cell, header); err != nil {
			return err
		}
	}

	aliasHeaders := []string{"Name", "Email", "Developer", "Commits", "First Seen", "Last Seen"}
	for i, header := range aliasHeaders {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue("Aliases", cell, header); err != nil {
			return err
		}
	}

	aliasRow := 2
	for row, group := range grouped {
		values := []interface{}{
			group.Developer.PrimaryName,
			group.Developer.PrimaryEmail,
			group.Developer.ConfidenceScore,
			group.Developer.IsAutoGrouped,
			len(group.Aliases),
			group.TotalCommits,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue("Developers", cell, value); err != nil {
				return err
			}
		}

		for _, alias := range group.Aliases {
			aliasValues := []interface{}{
				alias.Name,
				alias.Email,
				group.Developer.PrimaryEmail,
				alias.CommitCount,
				alias.FirstSeen.Format("2006-01-02"),
				alias.LastSeen.Format("2006-01-02"),
			}
			for col, value := range aliasValues {
				cell, err := excelize.CoordinatesToCellName(col+1, aliasRow)
				if err != nil {
					return err
				}
				if err := f.SetCellValue("Aliases", cell, value); err != nil {
					return err
				}
			}
			aliasRow++
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}

	logger.Infof("Exported %d developers to %s", len(grouped), path)
	return nil
}
