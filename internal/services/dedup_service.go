package services

import (
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alimgiray/devscope/internal/models"
	"github.com/alimgiray/devscope/pkg/logger"
)

// DedupService is the maintenance pass that collapses duplicate aliases and
// developers left behind by earlier runs or races, and repairs aliases whose
// developer no longer exists. All analysis runs in dry-run mode too; only
// the writes are skipped.
type DedupService struct {
	developers DeveloperStore
	aliases    AliasStore
}

func NewDedupService(developers DeveloperStore, aliases AliasStore) *DedupService {
	return &DedupService{
		developers: developers,
		aliases:    aliases,
	}
}

// Cleanup collapses duplicate aliases, then duplicate developers, then fixes
// dangling developer references.
func (s *DedupService) Cleanup(projectID string, dryRun bool) (*models.CleanupReport, error) {
	report := &models.CleanupReport{}

	if err := s.collapseAliases(projectID, dryRun, report); err != nil {
		return nil, err
	}
	if err := s.collapseDevelopers(projectID, dryRun, report); err != nil {
		return nil, err
	}
	if err := s.fixDanglingAliases(projectID, dryRun, report); err != nil {
		return nil, err
	}

	logger.WithFields(logrus.Fields{
		"project_id":         projectID,
		"alias_groups":       report.AliasGroupsMerged,
		"aliases_deleted":    report.AliasesDeleted,
		"developer_groups":   report.DeveloperGroupsMerged,
		"developers_deleted": report.DevelopersDeleted,
		"dangling_fixed":     report.DanglingFixed,
		"dry_run":            dryRun,
	}).Info("Cleanup finished")

	return report, nil
}

// collapseAliases merges aliases that share an email case-insensitively. The
// alias with the most commits wins; names are unioned with " | ".
func (s *DedupService) collapseAliases(projectID string, dryRun bool, report *models.CleanupReport) error {
	aliases, err := s.aliases.GetByProjectID(projectID)
	if err != nil {
		return err
	}

	groups := make(map[string][]*models.DeveloperAlias)
	for _, alias := range aliases {
		key := strings.ToLower(alias.Email)
		groups[key] = append(groups[key], alias)
	}

	for email, group := range groups {
		if len(group) < 2 {
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			return group[i].CommitCount > group[j].CommitCount
		})
		primary := group[0]

		logger.WithFields(logrus.Fields{
			"email":   email,
			"aliases": len(group),
			"dry_run": dryRun,
		}).Info("Merging duplicate aliases")

		if !dryRun {
			primary.Name = unionNames(aliasNames(group))
			for _, loser := range group[1:] {
				primary.CommitCount += loser.CommitCount
				if loser.FirstSeen.Before(primary.FirstSeen) {
					primary.FirstSeen = loser.FirstSeen
				}
				if loser.LastSeen.After(primary.LastSeen) {
					primary.LastSeen = loser.LastSeen
				}
				if primary.IsOrphan() && !loser.IsOrphan() {
					primary.DeveloperID = loser.DeveloperID
				}
			}
			if err := s.aliases.Update(primary); err != nil {
				return err
			}
			for _, loser := range group[1:] {
				if err := s.aliases.Delete(loser.ID); err != nil {
					return err
				}
			}
		}

		report.AliasGroupsMerged++
		report.AliasesDeleted += len(group) - 1
	}

	return nil
}

// collapseDevelopers merges developers that share a primary email
// case-insensitively. The developer with the highest confidence wins; the
// losers' aliases are re-pointed before deletion.
func (s *DedupService) collapseDevelopers(projectID string, dryRun bool, report *models.CleanupReport) error {
	developers, err := s.developers.GetByProjectID(projectID)
	if err != nil {
		return err
	}

	groups := make(map[string][]*models.Developer)
	for _, developer := range developers {
		key := strings.ToLower(developer.PrimaryEmail)
		groups[key] = append(groups[key], developer)
	}

	for email, group := range groups {
		if len(group) < 2 {
			continue
		}

		sort.SliceStable(group, func(i, j int) bool {
			return group[i].ConfidenceScore > group[j].ConfidenceScore
		})
		primary := group[0]

		logger.WithFields(logrus.Fields{
			"email":      email,
			"developers": len(group),
			"dry_run":    dryRun,
		}).Info("Merging duplicate developers")

		if !dryRun {
			primary.PrimaryName = unionNames(developerNames(group))
			if err := s.developers.Update(primary); err != nil {
				return err
			}
			for _, loser := range group[1:] {
				if err := s.aliases.ReassignDeveloper(loser.ID, primary.ID); err != nil {
					return err
				}
				if err := s.developers.Delete(loser.ID); err != nil {
					return err
				}
			}
		}

		report.DeveloperGroupsMerged++
		report.DevelopersDeleted += len(group) - 1
	}

	return nil
}

// fixDanglingAliases orphans any alias whose developer reference points to a
// developer that no longer exists.
func (s *DedupService) fixDanglingAliases(projectID string, dryRun bool, report *models.CleanupReport) error {
	aliases, err := s.aliases.GetByProjectID(projectID)
	if err != nil {
		return err
	}

	for _, alias := range aliases {
		if alias.IsOrphan() {
			continue
		}

		developer, err := s.developers.GetByID(alias.DeveloperID)
		if err != nil {
			return err
		}
		if developer != nil {
			continue
		}

		logger.WithFields(logrus.Fields{
			"alias":   alias.Email,
			"dry_run": dryRun,
		}).Warn("Alias points to a missing developer, orphaning it")

		if !dryRun {
			alias.DeveloperID = ""
			if err := s.aliases.Update(alias); err != nil {
				return err
			}
		}
		report.DanglingFixed++
	}

	return nil
}

// unionNames joins distinct names with a stable separator, keeping a single
// name as-is.
func unionNames(names []string) string {
	distinct := make([]string, 0, len(names))
	seen := make(map[string]bool, len(names))
	for _, name := range names {
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		distinct = append(distinct, name)
	}
	sort.Strings(distinct)
	return strings.Join(distinct, " | ")
}

func aliasNames(aliases []*models.DeveloperAlias) []string {
	names := make([]string, 0, len(aliases))
	for _, alias := range aliases {
		names = append(names, alias.Name)
	}
	return names
}

func developerNames(developers []*models.Developer) []string {
	names := make([]string, 0, len(developers))
	for _, developer := range developers {
		names = append(names, developer.PrimaryName)
	}
	return names
}
