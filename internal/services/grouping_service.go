package services

import (
	"fmt"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/alimgiray/devscope/internal/models"
	"github.com/alimgiray/devscope/pkg/logger"
)

// GroupingService runs the identity resolution pipeline: extract identities
// from commits, cluster them, score the clusters and persist the result as
// Developer + Alias records. It also handles manual override grouping.
type GroupingService struct {
	commits    CommitStore
	developers DeveloperStore
	aliases    AliasStore
	extractor  *IdentityService
	clusterer  *ClusteringService
}

func NewGroupingService(commits CommitStore, developers DeveloperStore, aliases AliasStore, extractor *IdentityService, clusterer *ClusteringService) *GroupingService {
	return &GroupingService{
		commits:    commits,
		developers: developers,
		aliases:    aliases,
		extractor:  extractor,
		clusterer:  clusterer,
	}
}

// AutoGroup extracts identities from the project's commits, clusters them
// and persists one developer per cluster. Safe to re-run: developers and
// aliases are matched by email, never duplicated. Counters stay additive
// relative to the input, so feeding the same commits twice doubles counts by
// design.
func (s *GroupingService) AutoGroup(projectID string) (*models.GroupingSummary, error) {
	commits, err := s.commits.GetByProjectID(projectID)
	if err != nil {
		return nil, err
	}

	identities := SortedIdentities(s.extractor.ExtractIdentities(commits))

	logger.WithFields(logrus.Fields{
		"project_id": projectID,
		"commits":    len(commits),
		"identities": len(identities),
	}).Info("Starting auto grouping")

	clusters := s.clusterer.BuildClusters(identities)

	summary := &models.GroupingSummary{
		TotalDevelopers: len(clusters),
		Groups:          make([]models.GroupSummary, 0, len(clusters)),
	}

	for _, cluster := range clusters {
		group, created, err := s.persistGroup(projectID, cluster)
		if err != nil {
			return nil, err
		}
		if created {
			summary.GroupsCreated++
		}
		summary.Groups = append(summary.Groups, *group)
	}

	logger.WithFields(logrus.Fields{
		"project_id":       projectID,
		"total_developers": summary.TotalDevelopers,
		"groups_created":   summary.GroupsCreated,
	}).Info("Auto grouping finished")

	return summary, nil
}

// persistGroup maps one finished cluster onto a Developer and its aliases
func (s *GroupingService) persistGroup(projectID string, group []*models.Identity) (*models.GroupSummary, bool, error) {
	primary := primaryIdentity(group)
	score := s.clusterer.ConfidenceScore(group)

	developer, created, err := s.developers.GetOrCreateByEmail(projectID, primary.Name, primary.Email)
	if err != nil {
		return nil, false, err
	}

	if developer.PrimaryName != primary.Name || developer.ConfidenceScore != score {
		developer.PrimaryName = primary.Name
		developer.ConfidenceScore = score
		if err := s.developers.Update(developer); err != nil {
			return nil, false, err
		}
	}

	emails := make(map[string]bool)
	for _, member := range group {
		if err := s.upsertAlias(projectID, developer.ID, member); err != nil {
			return nil, false, err
		}
		emails[strings.ToLower(member.Email)] = true
	}

	return &models.GroupSummary{
		DeveloperID:     developer.ID,
		PrimaryName:     developer.PrimaryName,
		PrimaryEmail:    developer.PrimaryEmail,
		AliasesCount:    len(emails),
		ConfidenceScore: score,
	}, created, nil
}

// upsertAlias creates the alias for an identity or merges the identity's
// counters into the existing alias with the same email. Two aliases must
// never coexist with the same email within a project.
func (s *GroupingService) upsertAlias(projectID, developerID string, identity *models.Identity) error {
	alias, err := s.aliases.GetByEmail(projectID, identity.Email)
	if err != nil {
		return err
	}

	if alias == nil {
		alias = models.NewDeveloperAlias(projectID, identity.Name, identity.Email)
		alias.DeveloperID = developerID
		alias.CommitCount = identity.CommitCount
		alias.FirstSeen = identity.FirstSeen
		alias.LastSeen = identity.LastSeen
		return s.aliases.Create(alias)
	}

	alias.CommitCount += identity.CommitCount
	if identity.FirstSeen.Before(alias.FirstSeen) {
		alias.FirstSeen = identity.FirstSeen
	}
	if identity.LastSeen.After(alias.LastSeen) {
		alias.LastSeen = identity.LastSeen
	}
	alias.DeveloperID = developerID
	if alias.Name != identity.Name {
		alias.Name = identity.Name
	}

	return s.aliases.Update(alias)
}

// primaryIdentity picks the cluster representative: most commits, ties broken
// by the later last-seen date.
func primaryIdentity(group []*models.Identity) *models.Identity {
	primary := group[0]
	for _, identity := range group[1:] {
		if identity.CommitCount > primary.CommitCount ||
			(identity.CommitCount == primary.CommitCount && identity.LastSeen.After(primary.LastSeen)) {
			primary = identity
		}
	}
	return primary
}

// ManualGroupRequest is an operator request to force a grouping
type ManualGroupRequest struct {
	PrimaryName  string   `json:"primary_name"`
	PrimaryEmail string   `json:"primary_email"`
	IdentityKeys []string `json:"identity_keys"` // "<name>|<email>"
}

// ManualGroup creates a developer from an explicit list of identity keys.
// Unknown keys are skipped; an empty resolved set or an identity already
// claimed by another developer fails the whole request without mutating
// anything. Storage failures are returned as errors.
func (s *GroupingService) ManualGroup(projectID string, req ManualGroupRequest) (*models.GroupingResult, error) {
	commits, err := s.commits.GetByProjectID(projectID)
	if err != nil {
		return nil, err
	}

	identities := s.extractor.ExtractIdentities(commits)

	resolved := make([]*models.Identity, 0, len(req.IdentityKeys))
	for _, key := range req.IdentityKeys {
		identity := resolveIdentityKey(identities, key)
		if identity == nil {
			logger.Warnf("Skipping unknown identity key: %s", key)
			continue
		}
		resolved = append(resolved, identity)
	}

	if len(resolved) == 0 {
		return &models.GroupingResult{
			Success: false,
			Error:   "no valid identities found to group",
		}, nil
	}

	// Reject the whole request before touching storage if any identity is
	// already claimed; manual grouping never silently re-parents.
	for _, identity := range resolved {
		alias, err := s.aliases.GetByEmail(projectID, identity.Email)
		if err != nil {
			return nil, err
		}
		if alias != nil && !alias.IsOrphan() {
			return &models.GroupingResult{
				Success: false,
				Error:   fmt.Sprintf("identity %s (%s) is already grouped under another developer", identity.Name, identity.Email),
			}, nil
		}
	}

	developer := models.NewDeveloper(projectID, req.PrimaryName, req.PrimaryEmail, 100, false)
	if err := s.developers.Create(developer); err != nil {
		return nil, err
	}

	emails := make(map[string]bool)
	for _, identity := range resolved {
		if err := s.upsertAlias(projectID, developer.ID, identity); err != nil {
			return nil, err
		}
		emails[strings.ToLower(identity.Email)] = true
	}

	logger.WithFields(logrus.Fields{
		"project_id":   projectID,
		"developer_id": developer.ID,
		"aliases":      len(emails),
	}).Info("Manual group created")

	return &models.GroupingResult{
		Success:         true,
		GroupID:         developer.ID,
		PrimaryName:     developer.PrimaryName,
		PrimaryEmail:    developer.PrimaryEmail,
		AliasesCount:    len(emails),
		ConfidenceScore: developer.ConfidenceScore,
	}, nil
}

// resolveIdentityKey finds an identity by its "name|email" key, first by
// exact match, then case-insensitively.
func resolveIdentityKey(identities map[string]*models.Identity, key string) *models.Identity {
	if identity, ok := identities[key]; ok {
		return identity
	}

	parts := strings.SplitN(key, "|", 2)
	if len(parts) != 2 {
		return nil
	}
	name := strings.TrimSpace(parts[0])
	email := strings.TrimSpace(parts[1])

	for _, identity := range identities {
		if strings.EqualFold(strings.TrimSpace(identity.Name), name) &&
			strings.EqualFold(strings.TrimSpace(identity.Email), email) {
			return identity
		}
	}
	return nil
}

// GetGroupedDevelopers lists all developers for a project with their aliases
// and total commit counts, ordered by primary name.
func (s *GroupingService) GetGroupedDevelopers(projectID string) ([]*models.GroupedDeveloper, error) {
	developers, err := s.developers.GetByProjectID(projectID)
	if err != nil {
		return nil, err
	}

	grouped := make([]*models.GroupedDeveloper, 0, len(developers))
	for _, developer := range developers {
		aliases, err := s.aliases.GetByDeveloperID(developer.ID)
		if err != nil {
			return nil, err
		}

		total := 0
		for _, alias := range aliases {
			total += alias.CommitCount
		}

		grouped = append(grouped, &models.GroupedDeveloper{
			Developer:    developer,
			Aliases:      aliases,
			TotalCommits: total,
		})
	}

	return grouped, nil
}
