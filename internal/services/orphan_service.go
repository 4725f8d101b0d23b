package services

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alimgiray/devscope/internal/models"
	"github.com/alimgiray/devscope/pkg/logger"
)

// OrphanService re-attaches aliases that lost (or never had) a developer
// link. Reconciliation matches on email domain first, then ranks candidates
// by name token overlap; aliases that stay orphaned can be promoted to their
// own developers in a second pass.
type OrphanService struct {
	developers DeveloperStore
	aliases    AliasStore
}

func NewOrphanService(developers DeveloperStore, aliases AliasStore) *OrphanService {
	return &OrphanService{
		developers: developers,
		aliases:    aliases,
	}
}

// Reconcile tries to re-attach each orphan alias to an existing developer.
// With dryRun set, candidates are computed and logged but nothing is written.
func (s *OrphanService) Reconcile(projectID string, dryRun bool) (*models.ReconcileReport, error) {
	orphans, err := s.aliases.GetOrphans(projectID)
	if err != nil {
		return nil, err
	}

	developers, err := s.developers.GetByProjectID(projectID)
	if err != nil {
		return nil, err
	}

	report := &models.ReconcileReport{Orphans: len(orphans)}

	for _, orphan := range orphans {
		best := s.bestCandidate(orphan, developers)
		if best == nil {
			continue
		}

		logger.WithFields(logrus.Fields{
			"alias":     orphan.Email,
			"developer": best.PrimaryEmail,
			"dry_run":   dryRun,
		}).Info("Reassigning orphan alias")

		if !dryRun {
			orphan.DeveloperID = best.ID
			if err := s.aliases.Update(orphan); err != nil {
				return nil, err
			}
		}
		report.Reassigned++
	}

	report.RemainingOrphans = report.Orphans - report.Reassigned
	return report, nil
}

// bestCandidate finds the developer whose primary-email domain matches the
// orphan's and whose primary name shares the most tokens with the orphan's
// name. A candidate needs an overlap above 0.1, i.e. at least one shared
// token.
func (s *OrphanService) bestCandidate(orphan *models.DeveloperAlias, developers []*models.Developer) *models.Developer {
	_, orphanDomain, ok := splitEmail(orphan.Email)
	if !ok {
		return nil
	}
	orphanDomain = strings.ToLower(orphanDomain)

	var best *models.Developer
	bestScore := 0.0

	for _, developer := range developers {
		_, domain, ok := splitEmail(developer.PrimaryEmail)
		if !ok {
			continue
		}
		domain = strings.ToLower(domain)

		if domain != orphanDomain && !strings.Contains(domain, orphanDomain) && !strings.Contains(orphanDomain, domain) {
			continue
		}

		score := nameTokenOverlap(orphan.Name, developer.PrimaryName)
		if score > bestScore && score > 0.1 {
			bestScore = score
			best = developer
		}
	}

	return best
}

// nameTokenOverlap scores two names by shared lowercase word count,
// normalized by the longer name's word count.
func nameTokenOverlap(a, b string) float64 {
	wordsA := strings.Fields(strings.ToLower(a))
	wordsB := strings.Fields(strings.ToLower(b))
	if len(wordsA) == 0 || len(wordsB) == 0 {
		return 0
	}

	setA := make(map[string]bool, len(wordsA))
	for _, word := range wordsA {
		setA[word] = true
	}

	common := 0
	seen := make(map[string]bool, len(wordsB))
	for _, word := range wordsB {
		if setA[word] && !seen[word] {
			common++
			seen[word] = true
		}
	}

	return float64(common) / float64(max(len(wordsA), len(wordsB)))
}

// CreateDevelopersForOrphans promotes every alias still orphaned after
// reconciliation to its own developer.
func (s *OrphanService) CreateDevelopersForOrphans(projectID string, dryRun bool) (int, error) {
	orphans, err := s.aliases.GetOrphans(projectID)
	if err != nil {
		return 0, err
	}

	created := 0
	for _, orphan := range orphans {
		logger.WithFields(logrus.Fields{
			"alias":   orphan.Email,
			"dry_run": dryRun,
		}).Info("Creating developer for orphan alias")

		if !dryRun {
			developer := models.NewDeveloper(projectID, orphan.Name, orphan.Email, 100, false)
			if err := s.developers.Create(developer); err != nil {
				return created, err
			}

			orphan.DeveloperID = developer.ID
			if err := s.aliases.Update(orphan); err != nil {
				return created, err
			}
		}
		created++
	}

	return created, nil
}

// Detach clears an alias's developer link, turning it into an orphan
func (s *OrphanService) Detach(projectID, email string) error {
	alias, err := s.aliases.GetByEmail(projectID, email)
	if err != nil {
		return err
	}
	if alias == nil {
		return fmt.Errorf("no alias found for email %s", email)
	}

	alias.DeveloperID = ""
	return s.aliases.Update(alias)
}
