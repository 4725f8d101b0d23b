package models

import (
	"time"

	"github.com/google/uuid"
)

// DeveloperAlias is one raw identity bound to a Developer. An alias with an
// empty DeveloperID is an orphan, which is a valid state, not an error.
// Email is unique among aliases within a project.
type DeveloperAlias struct {
	ID          string    `json:"id"`
	ProjectID   string    `json:"project_id"`
	DeveloperID string    `json:"developer_id"` // empty = orphan
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	CommitCount int       `json:"commit_count"`
	FirstSeen   time.Time `json:"first_seen"`
	LastSeen    time.Time `json:"last_seen"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// NewDeveloperAlias creates a new alias with a generated UUID
func NewDeveloperAlias(projectID, name, email string) *DeveloperAlias {
	return &DeveloperAlias{
		ID:        uuid.New().String(),
		ProjectID: projectID,
		Name:      name,
		Email:     email,
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

// IsOrphan reports whether the alias has no developer link
func (a *DeveloperAlias) IsOrphan() bool {
	return a.DeveloperID == ""
}
