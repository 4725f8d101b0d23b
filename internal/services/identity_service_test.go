package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alimgiray/devscope/internal/models"
)

func testCommit(name, email string, authored time.Time) *models.Commit {
	return models.NewCommit("project-1", "repo", "sha-"+name+email+authored.String(), "msg", name, email, authored)
}

func TestExtractIdentities(t *testing.T) {
	service := NewIdentityService()

	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC)
	day3 := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	commits := []*models.Commit{
		testCommit("Alice", "alice@example.com", day2),
		testCommit("Alice", "alice@example.com", day1),
		testCommit("Alice", "alice@example.com", day3),
		testCommit("alice", "alice@example.com", day1),
		testCommit("Bob", "bob@example.com", day2),
	}

	identities := service.ExtractIdentities(commits)

	// Name and email together form the identity, so "Alice" and "alice"
	// stay distinct at this stage.
	assert.Len(t, identities, 3)

	alice := identities["Alice|alice@example.com"]
	assert.NotNil(t, alice)
	assert.Equal(t, 3, alice.CommitCount)
	assert.Equal(t, day1, alice.FirstSeen)
	assert.Equal(t, day3, alice.LastSeen)

	bob := identities["Bob|bob@example.com"]
	assert.NotNil(t, bob)
	assert.Equal(t, 1, bob.CommitCount)
}

func TestExtractIdentitiesEmpty(t *testing.T) {
	service := NewIdentityService()

	identities := service.ExtractIdentities(nil)

	assert.Empty(t, identities)
}

func TestExtractIdentitiesOrderIndependent(t *testing.T) {
	service := NewIdentityService()

	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day2 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	commits := []*models.Commit{
		testCommit("Alice", "alice@example.com", day1),
		testCommit("Alice", "alice@example.com", day2),
	}
	reversed := []*models.Commit{commits[1], commits[0]}

	forward := service.ExtractIdentities(commits)
	backward := service.ExtractIdentities(reversed)

	assert.Equal(t, forward["Alice|alice@example.com"], backward["Alice|alice@example.com"])
}

func TestSortedIdentities(t *testing.T) {
	service := NewIdentityService()

	commits := []*models.Commit{
		testCommit("Zed", "zed@example.com", time.Now()),
		testCommit("Alice", "alice@example.com", time.Now()),
		testCommit("Bob", "bob@example.com", time.Now()),
	}

	sorted := SortedIdentities(service.ExtractIdentities(commits))

	assert.Len(t, sorted, 3)
	assert.Equal(t, "Alice", sorted[0].Name)
	assert.Equal(t, "Bob", sorted[1].Name)
	assert.Equal(t, "Zed", sorted[2].Name)
}
