package repositories

import (
	"database/sql"
	"time"

	"github.com/alimgiray/devscope/internal/models"
)

type AliasRepository struct {
	db *sql.DB
}

func NewAliasRepository(db *sql.DB) *AliasRepository {
	return &AliasRepository{db: db}
}

const aliasColumns = `
	id, project_id, developer_id, name, email, commit_count,
	first_seen, last_seen, created_at, updated_at
`

// Create creates a new alias. An empty DeveloperID is stored as NULL (orphan).
func (r *AliasRepository) Create(alias *models.DeveloperAlias) error {
	query := `
		INSERT INTO developer_aliases (
			id, project_id, developer_id, name, email, commit_count, first_seen, last_seen
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		alias.ID, alias.ProjectID, nullableID(alias.DeveloperID), alias.Name,
		alias.Email, alias.CommitCount, alias.FirstSeen, alias.LastSeen,
	)

	return err
}

// GetByEmail retrieves an alias by email within a project, case-insensitively,
// returning nil when not found
func (r *AliasRepository) GetByEmail(projectID, email string) (*models.DeveloperAlias, error) {
	query := `SELECT` + aliasColumns + `FROM developer_aliases WHERE project_id = ? AND email = ? COLLATE NOCASE`

	alias, err := r.scanRow(r.db.QueryRow(query, projectID, email))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return alias, nil
}

// Update updates an existing alias
func (r *AliasRepository) Update(alias *models.DeveloperAlias) error {
	query := `
		UPDATE developer_aliases SET
			developer_id = ?, name = ?, email = ?, commit_count = ?,
			first_seen = ?, last_seen = ?, updated_at = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query,
		nullableID(alias.DeveloperID), alias.Name, alias.Email, alias.CommitCount,
		alias.FirstSeen, alias.LastSeen, time.Now(), alias.ID,
	)

	return err
}

// Delete deletes an alias by ID
func (r *AliasRepository) Delete(id string) error {
	query := `DELETE FROM developer_aliases WHERE id = ?`
	_, err := r.db.Exec(query, id)
	return err
}

// GetByProjectID retrieves all aliases for a project
func (r *AliasRepository) GetByProjectID(projectID string) ([]*models.DeveloperAlias, error) {
	query := `SELECT` + aliasColumns + `FROM developer_aliases WHERE project_id = ? ORDER BY name COLLATE NOCASE`
	return r.queryAliases(query, projectID)
}

// GetByDeveloperID retrieves all aliases bound to a developer
func (r *AliasRepository) GetByDeveloperID(developerID string) ([]*models.DeveloperAlias, error) {
	query := `SELECT` + aliasColumns + `FROM developer_aliases WHERE developer_id = ? ORDER BY name COLLATE NOCASE`
	return r.queryAliases(query, developerID)
}

// GetOrphans retrieves all aliases in a project with no developer link
func (r *AliasRepository) GetOrphans(projectID string) ([]*models.DeveloperAlias, error) {
	query := `SELECT` + aliasColumns + `FROM developer_aliases WHERE project_id = ? AND developer_id IS NULL ORDER BY name COLLATE NOCASE`
	return r.queryAliases(query, projectID)
}

// ReassignDeveloper re-points every alias of one developer to another
func (r *AliasRepository) ReassignDeveloper(fromDeveloperID, toDeveloperID string) error {
	query := `UPDATE developer_aliases SET developer_id = ?, updated_at = ? WHERE developer_id = ?`
	_, err := r.db.Exec(query, toDeveloperID, time.Now(), fromDeveloperID)
	return err
}

func (r *AliasRepository) queryAliases(query string, args ...interface{}) ([]*models.DeveloperAlias, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var aliases []*models.DeveloperAlias
	for rows.Next() {
		alias, err := r.scanRow(rows)
		if err != nil {
			return nil, err
		}
		aliases = append(aliases, alias)
	}

	return aliases, rows.Err()
}

func (r *AliasRepository) scanRow(row rowScanner) (*models.DeveloperAlias, error) {
	alias := &models.DeveloperAlias{}
	var developerID sql.NullString

	err := row.Scan(
		&alias.ID, &alias.ProjectID, &developerID, &alias.Name, &alias.Email,
		&alias.CommitCount, &alias.FirstSeen, &alias.LastSeen,
		&alias.CreatedAt, &alias.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if developerID.Valid {
		alias.DeveloperID = developerID.String
	}

	return alias, nil
}

func nullableID(id string) interface{} {
	if id == "" {
		return nil
	}
	return id
}
