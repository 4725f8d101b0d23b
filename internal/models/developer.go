package models

import (
	"time"

	"github.com/google/uuid"
)

// Developer is the canonical, de-duplicated representation of one human
// contributor. Primary email is unique within a project.
type Developer struct {
	ID              string `json:"id"`
	ProjectID       string `json:"project_id"`
	PrimaryName     string `json:"primary_name"`
	PrimaryEmail    string `json:"primary_email"`
	ConfidenceScore int    `json:"confidence_score"`
	IsAutoGrouped   bool   `json:"is_auto_grouped"`

	// GitHub team metadata, filled by a downstream sync, never written here.
	GithubTeams []string `json:"github_teams"`
	GithubOrgs  []string `json:"github_orgs"`
	PrimaryTeam string   `json:"primary_team"`
	TeamRole    string   `json:"team_role"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewDeveloper creates a new Developer with a generated UUID
func NewDeveloper(projectID, primaryName, primaryEmail string, confidenceScore int, isAutoGrouped bool) *Developer {
	return &Developer{
		ID:              uuid.New().String(),
		ProjectID:       projectID,
		PrimaryName:     primaryName,
		PrimaryEmail:    primaryEmail,
		ConfidenceScore: confidenceScore,
		IsAutoGrouped:   isAutoGrouped,
		CreatedAt:       time.Now(),
		UpdatedAt:       time.Now(),
	}
}
