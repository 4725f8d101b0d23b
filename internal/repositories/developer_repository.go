package repositories

import (
	"database/sql"
	"encoding/json"
	"strings"
	"time"

	"github.com/alimgiray/devscope/internal/models"
)

type DeveloperRepository struct {
	db *sql.DB
}

func NewDeveloperRepository(db *sql.DB) *DeveloperRepository {
	return &DeveloperRepository{db: db}
}

const developerColumns = `
	id, project_id, primary_name, primary_email, confidence_score, is_auto_grouped,
	github_teams, github_orgs, primary_team, team_role, created_at, updated_at
`

// Create creates a new developer
func (r *DeveloperRepository) Create(developer *models.Developer) error {
	query := `
		INSERT INTO developers (
			id, project_id, primary_name, primary_email, confidence_score, is_auto_grouped,
			github_teams, github_orgs, primary_team, team_role
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	teams, err := json.Marshal(stringsOrEmpty(developer.GithubTeams))
	if err != nil {
		return err
	}
	orgs, err := json.Marshal(stringsOrEmpty(developer.GithubOrgs))
	if err != nil {
		return err
	}

	_, err = r.db.Exec(query,
		developer.ID, developer.ProjectID, developer.PrimaryName, developer.PrimaryEmail,
		developer.ConfidenceScore, developer.IsAutoGrouped,
		string(teams), string(orgs), developer.PrimaryTeam, developer.TeamRole,
	)

	return err
}

// GetByID retrieves a developer by ID, returning nil when not found
func (r *DeveloperRepository) GetByID(id string) (*models.Developer, error) {
	query := `SELECT` + developerColumns + `FROM developers WHERE id = ?`
	return r.scanOne(r.db.QueryRow(query, id))
}

// GetByEmail retrieves a developer by primary email within a project,
// case-insensitively, returning nil when not found
func (r *DeveloperRepository) GetByEmail(projectID, email string) (*models.Developer, error) {
	query := `SELECT` + developerColumns + `FROM developers WHERE project_id = ? AND primary_email = ? COLLATE NOCASE`
	return r.scanOne(r.db.QueryRow(query, projectID, email))
}

// GetOrCreateByEmail gets a developer by primary email or creates a new
// auto-grouped one. The boolean reports whether a row was created.
func (r *DeveloperRepository) GetOrCreateByEmail(projectID, name, email string) (*models.Developer, bool, error) {
	developer, err := r.GetByEmail(projectID, email)
	if err != nil {
		return nil, false, err
	}
	if developer != nil {
		return developer, false, nil
	}

	developer = models.NewDeveloper(projectID, name, email, 100, true)
	if err := r.Create(developer); err != nil {
		// Another job may have created the same developer between the read
		// and the insert; the UNIQUE constraint catches that, so re-read.
		if strings.Contains(err.Error(), "UNIQUE constraint failed") {
			existing, getErr := r.GetByEmail(projectID, email)
			if getErr == nil && existing != nil {
				return existing, false, nil
			}
		}
		return nil, false, err
	}

	return developer, true, nil
}

// Update updates an existing developer
func (r *DeveloperRepository) Update(developer *models.Developer) error {
	query := `
		UPDATE developers SET
			primary_name = ?, primary_email = ?, confidence_score = ?, is_auto_grouped = ?,
			github_teams = ?, github_orgs = ?, primary_team = ?, team_role = ?,
			updated_at = ?
		WHERE id = ?
	`

	teams, err := json.Marshal(stringsOrEmpty(developer.GithubTeams))
	if err != nil {
		return err
	}
	orgs, err := json.Marshal(stringsOrEmpty(developer.GithubOrgs))
	if err != nil {
		return err
	}

	_, err = r.db.Exec(query,
		developer.PrimaryName, developer.PrimaryEmail, developer.ConfidenceScore,
		developer.IsAutoGrouped, string(teams), string(orgs),
		developer.PrimaryTeam, developer.TeamRole, time.Now(), developer.ID,
	)

	return err
}

// Delete deletes a developer by ID
func (r *DeveloperRepository) Delete(id string) error {
	query := `DELETE FROM developers WHERE id = ?`
	_, err := r.db.Exec(query, id)
	return err
}

// GetByProjectID retrieves all developers for a project ordered by name
func (r *DeveloperRepository) GetByProjectID(projectID string) ([]*models.Developer, error) {
	query := `SELECT` + developerColumns + `FROM developers WHERE project_id = ? ORDER BY primary_name COLLATE NOCASE`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var developers []*models.Developer
	for rows.Next() {
		developer, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		developers = append(developers, developer)
	}

	return developers, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func (r *DeveloperRepository) scanOne(row *sql.Row) (*models.Developer, error) {
	developer, err := r.scanRow(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return developer, nil
}

func (r *DeveloperRepository) scanRow(row rowScanner) (*models.Developer, error) {
	developer := &models.Developer{}
	var teams, orgs string

	err := row.Scan(
		&developer.ID, &developer.ProjectID, &developer.PrimaryName, &developer.PrimaryEmail,
		&developer.ConfidenceScore, &developer.IsAutoGrouped,
		&teams, &orgs, &developer.PrimaryTeam, &developer.TeamRole,
		&developer.CreatedAt, &developer.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(teams), &developer.GithubTeams); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(orgs), &developer.GithubOrgs); err != nil {
		return nil, err
	}

	return developer, nil
}

func stringsOrEmpty(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
