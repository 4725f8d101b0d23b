package repositories

import (
	"database/sql"

	"github.com/alimgiray/devscope/internal/models"
)

type CommitRepository struct {
	db *sql.DB
}

func NewCommitRepository(db *sql.DB) *CommitRepository {
	return &CommitRepository{db: db}
}

// Create creates a new commit
func (r *CommitRepository) Create(commit *models.Commit) error {
	query := `
		INSERT INTO commits (
			id, project_id, repository_name, commit_sha, message,
			author_name, author_email, authored_date
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err := r.db.Exec(query,
		commit.ID, commit.ProjectID, commit.RepositoryName, commit.CommitSHA,
		commit.Message, commit.AuthorName, commit.AuthorEmail, commit.AuthoredDate,
	)

	return err
}

// GetByProjectID retrieves all commits for a project
func (r *CommitRepository) GetByProjectID(projectID string) ([]*models.Commit, error) {
	query := `
		SELECT id, project_id, repository_name, commit_sha, message,
			   author_name, author_email, authored_date, created_at
		FROM commits WHERE project_id = ?
		ORDER BY authored_date
	`

	rows, err := r.db.Query(query, projectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var commits []*models.Commit
	for rows.Next() {
		commit := &models.Commit{}
		err := rows.Scan(
			&commit.ID, &commit.ProjectID, &commit.RepositoryName, &commit.CommitSHA,
			&commit.Message, &commit.AuthorName, &commit.AuthorEmail,
			&commit.AuthoredDate, &commit.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		commits = append(commits, commit)
	}

	return commits, rows.Err()
}

// CountByProjectID returns the number of commits stored for a project
func (r *CommitRepository) CountByProjectID(projectID string) (int, error) {
	query := `SELECT COUNT(*) FROM commits WHERE project_id = ?`
	var count int
	err := r.db.QueryRow(query, projectID).Scan(&count)
	return count, err
}
