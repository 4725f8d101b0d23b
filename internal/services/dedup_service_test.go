package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/alimgiray/devscope/internal/models"
)

type dedupFixture struct {
	developers *memoryDeveloperStore
	aliases    *memoryAliasStore
	service    *DedupService
}

func newDedupFixture() *dedupFixture {
	developers := newMemoryDeveloperStore()
	aliases := newMemoryAliasStore()
	return &dedupFixture{
		developers: developers,
		aliases:    aliases,
		service:    NewDedupService(developers, aliases),
	}
}

func (f *dedupFixture) addAlias(name, email, developerID string, commits int, firstSeen, lastSeen time.Time) *models.DeveloperAlias {
	alias := models.NewDeveloperAlias("project-1", name, email)
	alias.DeveloperID = developerID
	alias.CommitCount = commits
	alias.FirstSeen = firstSeen
	alias.LastSeen = lastSeen
	f.aliases.Create(alias)
	return alias
}

func TestCleanupCollapsesCaseVariantAliases(t *testing.T) {
	f := newDedupFixture()
	developer := models.NewDeveloper("project-1", "John Smith", "j@x.com", 100, false)
	f.developers.Create(developer)

	day1 := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	day5 := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)
	day9 := time.Date(2024, 9, 1, 0, 0, 0, 0, time.UTC)

	f.addAlias("John Smith", "J@x.com", developer.ID, 5, day5, day9)
	f.addAlias("J Smith", "j@x.com", "", 1, day1, day5)

	report, err := f.service.Cleanup("project-1", false)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.AliasGroupsMerged)
	assert.Equal(t, 1, report.AliasesDeleted)

	aliases, _ := f.aliases.GetByProjectID("project-1")
	assert.Len(t, aliases, 1)

	merged := aliases[0]
	// The alias with the most commits survives
	assert.Equal(t, "J@x.com", merged.Email)
	assert.Equal(t, "J Smith | John Smith", merged.Name)
	assert.Equal(t, 6, merged.CommitCount)
	assert.Equal(t, day1, merged.FirstSeen)
	assert.Equal(t, day9, merged.LastSeen)
	assert.Equal(t, developer.ID, merged.DeveloperID)
}

func TestCleanupAliasMergeAdoptsDeveloperLink(t *testing.T) {
	f := newDedupFixture()
	developer := models.NewDeveloper("project-1", "John Smith", "j@x.com", 100, false)
	f.developers.Create(developer)

	now := time.Now()
	f.addAlias("John Smith", "J@x.com", "", 5, now, now)
	f.addAlias("J Smith", "j@x.com", developer.ID, 1, now, now)

	_, err := f.service.Cleanup("project-1", false)

	assert.NoError(t, err)

	aliases, _ := f.aliases.GetByProjectID("project-1")
	assert.Len(t, aliases, 1)
	// The surviving alias was an orphan; it inherits the loser's link
	assert.Equal(t, developer.ID, aliases[0].DeveloperID)
}

func TestCleanupCollapsesDuplicateDevelopers(t *testing.T) {
	f := newDedupFixture()

	winner := models.NewDeveloper("project-1", "John Smith", "john@x.com", 90, true)
	loser := models.NewDeveloper("project-1", "J. Smith", "John@X.com", 70, true)
	f.developers.Create(winner)
	f.developers.Create(loser)

	now := time.Now()
	f.addAlias("J. Smith", "jsmith@x.com", loser.ID, 2, now, now)

	report, err := f.service.Cleanup("project-1", false)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.DeveloperGroupsMerged)
	assert.Equal(t, 1, report.DevelopersDeleted)

	developers, _ := f.developers.GetByProjectID("project-1")
	assert.Len(t, developers, 1)
	assert.Equal(t, winner.ID, developers[0].ID)
	assert.Equal(t, "J. Smith | John Smith", developers[0].PrimaryName)

	// The loser's aliases now point at the winner
	alias, _ := f.aliases.GetByEmail("project-1", "jsmith@x.com")
	assert.Equal(t, winner.ID, alias.DeveloperID)
}

func TestCleanupFixesDanglingAliases(t *testing.T) {
	f := newDedupFixture()

	now := time.Now()
	f.addAlias("Ghost", "ghost@x.com", "developer-that-does-not-exist", 1, now, now)

	report, err := f.service.Cleanup("project-1", false)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.DanglingFixed)

	alias, _ := f.aliases.GetByEmail("project-1", "ghost@x.com")
	assert.True(t, alias.IsOrphan())
}

func TestCleanupDryRun(t *testing.T) {
	f := newDedupFixture()

	now := time.Now()
	f.addAlias("John Smith", "J@x.com", "", 5, now, now)
	f.addAlias("J Smith", "j@x.com", "", 1, now, now)
	f.addAlias("Ghost", "ghost@x.com", "developer-that-does-not-exist", 1, now, now)

	report, err := f.service.Cleanup("project-1", true)

	assert.NoError(t, err)
	assert.Equal(t, 1, report.AliasGroupsMerged)
	assert.Equal(t, 1, report.AliasesDeleted)
	assert.Equal(t, 1, report.DanglingFixed)

	// Nothing was written
	aliases, _ := f.aliases.GetByProjectID("project-1")
	assert.Len(t, aliases, 3)

	ghost, _ := f.aliases.GetByEmail("project-1", "ghost@x.com")
	assert.False(t, ghost.IsOrphan())
}

func TestCleanupNoDuplicates(t *testing.T) {
	f := newDedupFixture()
	developer := models.NewDeveloper("project-1", "John Smith", "j@x.com", 100, false)
	f.developers.Create(developer)

	now := time.Now()
	f.addAlias("John Smith", "j@x.com", developer.ID, 5, now, now)

	report, err := f.service.Cleanup("project-1", false)

	assert.NoError(t, err)
	assert.Equal(t, 0, report.AliasGroupsMerged)
	assert.Equal(t, 0, report.DeveloperGroupsMerged)
	assert.Equal(t, 0, report.DanglingFixed)
}

func TestUnionNames(t *testing.T) {
	testCases := []struct {
		name     string
		names    []string
		expected string
	}{
		{name: "Single name", names: []string{"John Smith"}, expected: "John Smith"},
		{name: "Two names sorted", names: []string{"John Smith", "J Smith"}, expected: "J Smith | John Smith"},
		{name: "Duplicates collapsed", names: []string{"John", "John", "J"}, expected: "J | John"},
		{name: "Empty names dropped", names: []string{"", "John"}, expected: "John"},
		{name: "All empty", names: []string{"", ""}, expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, unionNames(tc.names))
		})
	}
}
