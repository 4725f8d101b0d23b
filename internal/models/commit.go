package models

import (
	"time"

	"github.com/google/uuid"
)

// Commit represents a Git commit ingested for a project
type Commit struct {
	ID             string    `json:"id"`
	ProjectID      string    `json:"project_id"`
	RepositoryName string    `json:"repository_name"`
	CommitSHA      string    `json:"commit_sha"`
	Message        string    `json:"message"`
	AuthorName     string    `json:"author_name"`
	AuthorEmail    string    `json:"author_email"`
	AuthoredDate   time.Time `json:"authored_date"`
	CreatedAt      time.Time `json:"created_at"`
}

// NewCommit creates a new Commit with a generated UUID
func NewCommit(projectID, repositoryName, commitSHA, message, authorName, authorEmail string, authoredDate time.Time) *Commit {
	return &Commit{
		ID:             uuid.New().String(),
		ProjectID:      projectID,
		RepositoryName: repositoryName,
		CommitSHA:      commitSHA,
		Message:        message,
		AuthorName:     authorName,
		AuthorEmail:    authorEmail,
		AuthoredDate:   authoredDate,
	}
}
