package services

import (
	"sort"
	"strings"

	"github.com/alimgiray/devscope/internal/models"
)

// In-memory store fakes matching the SQLite repositories' behavior: lookups
// are case-insensitive on email and return nil when nothing is found.

type memoryCommitStore struct {
	commits []*models.Commit
}

func newMemoryCommitStore() *memoryCommitStore {
	return &memoryCommitStore{}
}

func (s *memoryCommitStore) Create(commit *models.Commit) error {
	s.commits = append(s.commits, commit)
	return nil
}

func (s *memoryCommitStore) GetByProjectID(projectID string) ([]*models.Commit, error) {
	var out []*models.Commit
	for _, commit := range s.commits {
		if commit.ProjectID == projectID {
			out = append(out, commit)
		}
	}
	return out, nil
}

type memoryDeveloperStore struct {
	developers map[string]*models.Developer
}

func newMemoryDeveloperStore() *memoryDeveloperStore {
	return &memoryDeveloperStore{developers: make(map[string]*models.Developer)}
}

func (s *memoryDeveloperStore) Create(developer *models.Developer) error {
	s.developers[developer.ID] = developer
	return nil
}

func (s *memoryDeveloperStore) GetByID(id string) (*models.Developer, error) {
	return s.developers[id], nil
}

func (s *memoryDeveloperStore) GetByEmail(projectID, email string) (*models.Developer, error) {
	for _, developer := range s.developers {
		if developer.ProjectID == projectID && strings.EqualFold(developer.PrimaryEmail, email) {
			return developer, nil
		}
	}
	return nil, nil
}

func (s *memoryDeveloperStore) GetOrCreateByEmail(projectID, name, email string) (*models.Developer, bool, error) {
	if existing, _ := s.GetByEmail(projectID, email); existing != nil {
		return existing, false, nil
	}
	developer := models.NewDeveloper(projectID, name, email, 0, true)
	s.developers[developer.ID] = developer
	return developer, true, nil
}

func (s *memoryDeveloperStore) Update(developer *models.Developer) error {
	s.developers[developer.ID] = developer
	return nil
}

func (s *memoryDeveloperStore) Delete(id string) error {
	delete(s.developers, id)
	return nil
}

func (s *memoryDeveloperStore) GetByProjectID(projectID string) ([]*models.Developer, error) {
	var out []*models.Developer
	for _, developer := range s.developers {
		if developer.ProjectID == projectID {
			out = append(out, developer)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PrimaryEmail < out[j].PrimaryEmail })
	return out, nil
}

type memoryAliasStore struct {
	aliases map[string]*models.DeveloperAlias
}

func newMemoryAliasStore() *memoryAliasStore {
	return &memoryAliasStore{aliases: make(map[string]*models.DeveloperAlias)}
}

func (s *memoryAliasStore) Create(alias *models.DeveloperAlias) error {
	s.aliases[alias.ID] = alias
	return nil
}

func (s *memoryAliasStore) GetByEmail(projectID, email string) (*models.DeveloperAlias, error) {
	for _, alias := range s.aliases {
		if alias.ProjectID == projectID && strings.EqualFold(alias.Email, email) {
			return alias, nil
		}
	}
	return nil, nil
}

func (s *memoryAliasStore) Update(alias *models.DeveloperAlias) error {
	s.aliases[alias.ID] = alias
	return nil
}

func (s *memoryAliasStore) Delete(id string) error {
	delete(s.aliases, id)
	return nil
}

func (s *memoryAliasStore) GetByProjectID(projectID string) ([]*models.DeveloperAlias, error) {
	var out []*models.DeveloperAlias
	for _, alias := range s.aliases {
		if alias.ProjectID == projectID {
			out = append(out, alias)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (s *memoryAliasStore) GetByDeveloperID(developerID string) ([]*models.DeveloperAlias, error) {
	var out []*models.DeveloperAlias
	for _, alias := range s.aliases {
		if alias.DeveloperID == developerID {
			out = append(out, alias)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (s *memoryAliasStore) GetOrphans(projectID string) ([]*models.DeveloperAlias, error) {
	var out []*models.DeveloperAlias
	for _, alias := range s.aliases {
		if alias.ProjectID == projectID && alias.IsOrphan() {
			out = append(out, alias)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Email < out[j].Email })
	return out, nil
}

func (s *memoryAliasStore) ReassignDeveloper(fromDeveloperID, toDeveloperID string) error {
	for _, alias := range s.aliases {
		if alias.DeveloperID == fromDeveloperID {
			alias.DeveloperID = toDeveloperID
		}
	}
	return nil
}
