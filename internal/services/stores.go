package services

import (
	"github.com/alimgiray/devscope/internal/models"
)

// Store interfaces abstract the persistence layer so the grouping jobs can be
// unit-tested against in-memory fakes. The SQLite repositories implement
// them. Lookups return nil (not an error) when nothing is found.

type CommitStore interface {
	Create(commit *models.Commit) error
	GetByProjectID(projectID string) ([]*models.Commit, error)
}

type DeveloperStore interface {
	Create(developer *models.Developer) error
	GetByID(id string) (*models.Developer, error)
	GetByEmail(projectID, email string) (*models.Developer, error)
	GetOrCreateByEmail(projectID, name, email string) (*models.Developer, bool, error)
	Update(developer *models.Developer) error
	Delete(id string) error
	GetByProjectID(projectID string) ([]*models.Developer, error)
}

type AliasStore interface {
	Create(alias *models.DeveloperAlias) error
	GetByEmail(projectID, email string) (*models.DeveloperAlias, error)
	Update(alias *models.DeveloperAlias) error
	Delete(id string) error
	GetByProjectID(projectID string) ([]*models.DeveloperAlias, error)
	GetByDeveloperID(developerID string) ([]*models.DeveloperAlias, error)
	GetOrphans(projectID string) ([]*models.DeveloperAlias, error)
	ReassignDeveloper(fromDeveloperID, toDeveloperID string) error
}
