package services

import (
	"sort"

	"github.com/alimgiray/devscope/internal/models"
)

// IdentityService reduces commits to unique (name, email) identities with
// aggregated counters. Pure aggregation: no network or persistence effects,
// and the result does not depend on commit order.
type IdentityService struct{}

func NewIdentityService() *IdentityService {
	return &IdentityService{}
}

// ExtractIdentities builds the identity map from a commit stream, keyed by
// "name|email".
func (s *IdentityService) ExtractIdentities(commits []*models.Commit) map[string]*models.Identity {
	identities := make(map[string]*models.Identity)

	for _, commit := range commits {
		key := commit.AuthorName + "|" + commit.AuthorEmail

		identity, ok := identities[key]
		if !ok {
			identity = &models.Identity{
				Name:      commit.AuthorName,
				Email:     commit.AuthorEmail,
				FirstSeen: commit.AuthoredDate,
				LastSeen:  commit.AuthoredDate,
			}
			identities[key] = identity
		}

		identity.CommitCount++
		if commit.AuthoredDate.Before(identity.FirstSeen) {
			identity.FirstSeen = commit.AuthoredDate
		}
		if commit.AuthoredDate.After(identity.LastSeen) {
			identity.LastSeen = commit.AuthoredDate
		}
	}

	return identities
}

// SortedIdentities returns the identities as a slice in stable key order, so
// downstream jobs behave deterministically for a given commit set.
func SortedIdentities(identities map[string]*models.Identity) []*models.Identity {
	keys := make([]string, 0, len(identities))
	for key := range identities {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	sorted := make([]*models.Identity, 0, len(keys))
	for _, key := range keys {
		sorted = append(sorted, identities[key])
	}
	return sorted
}
