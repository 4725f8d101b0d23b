package services

import (
	"math"
	"strings"

	"github.com/alimgiray/devscope/internal/models"
)

// ClusteringService partitions identities into groups that plausibly belong
// to the same person, and scores how certain each group is.
type ClusteringService struct {
	matcher    *IdentityMatcherService
	similarity SimilarityFunc
}

func NewClusteringService(matcher *IdentityMatcherService, similarity SimilarityFunc) *ClusteringService {
	return &ClusteringService{
		matcher:    matcher,
		similarity: similarity,
	}
}

// BuildClusters computes the transitive closure of the pairwise matcher over
// the identity set: start from singleton groups and keep merging any two
// groups connected by at least one matching member pair until a full scan
// finds nothing left to merge. Quadratic scans with restart-on-merge are fine
// here because the number of distinct identities per project is small.
func (s *ClusteringService) BuildClusters(identities []*models.Identity) [][]*models.Identity {
	groups := make([][]*models.Identity, 0, len(identities))
	for _, identity := range identities {
		groups = append(groups, []*models.Identity{identity})
	}

	for {
		merged := false

	scan:
		for i := 0; i < len(groups); i++ {
			for j := i + 1; j < len(groups); j++ {
				if s.groupsMatch(groups[i], groups[j]) {
					groups[i] = append(groups[i], groups[j]...)
					groups = append(groups[:j], groups[j+1:]...)
					merged = true
					break scan
				}
			}
		}

		if !merged {
			return groups
		}
	}
}

// groupsMatch reports whether any member pair across the two groups matches
func (s *ClusteringService) groupsMatch(a, b []*models.Identity) bool {
	for _, identityA := range a {
		for _, identityB := range b {
			if s.matcher.Matches(identityA, identityB) {
				return true
			}
		}
	}
	return false
}

// ConfidenceScore estimates how certain the grouping is for a finished
// group, on a 0-100 scale. A singleton is certain by definition. Larger
// groups start at 70, gain 20 when every member shares one email domain, and
// gain up to 10 from the average pairwise name similarity. The weights are a
// product decision; downstream UI thresholds on these bands.
func (s *ClusteringService) ConfidenceScore(group []*models.Identity) int {
	if len(group) <= 1 {
		return 100
	}

	score := 70

	if sharedDomain(group) {
		score += 20
	}

	var total float64
	var pairs int
	for i := 0; i < len(group); i++ {
		for j := i + 1; j < len(group); j++ {
			total += s.similarity(group[i].Name, group[j].Name)
			pairs++
		}
	}
	if pairs > 0 {
		score += int(math.Round(total / float64(pairs) * 10))
	}

	if score > 100 {
		return 100
	}
	if score < 0 {
		return 0
	}
	return score
}

// sharedDomain reports whether every identity in the group has the same
// non-empty email domain
func sharedDomain(group []*models.Identity) bool {
	_, first, ok := splitEmail(group[0].Email)
	if !ok {
		return false
	}
	first = strings.ToLower(first)

	for _, identity := range group[1:] {
		_, domain, ok := splitEmail(identity.Email)
		if !ok || strings.ToLower(domain) != first {
			return false
		}
	}
	return true
}
