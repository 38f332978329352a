package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jensotto/projektor/internal/domain"
)

// SQLiteProjectRepo implements ProjectRepo using a SQLite database.
type SQLiteProjectRepo struct {
	db *sql.DB
}

// NewSQLiteProjectRepo creates a new SQLiteProjectRepo.
func NewSQLiteProjectRepo(db *sql.DB) *SQLiteProjectRepo {
	return &SQLiteProjectRepo{db: db}
}

const projectColumns = `id, owner_id, parent_project_id, title, description, start_date, end_date, created_at, updated_at`

func (r *SQLiteProjectRepo) Create(ctx context.Context, p *domain.Project) error {
	query := `INSERT INTO projects (` + projectColumns + `)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		p.ID,
		p.OwnerID,
		nullableStringToValue(p.ParentID),
		p.Title,
		p.Description,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		p.CreatedAt.Format(time.RFC3339),
		p.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting project: %w", err)
	}
	return nil
}

func (r *SQLiteProjectRepo) GetByID(ctx context.Context, id string) (*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	return r.scanProject(row)
}

func (r *SQLiteProjectRepo) ListRootsByOwner(ctx context.Context, ownerID string) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
		WHERE owner_id = ? AND parent_project_id IS NULL ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("listing projects by owner: %w", err)
	}
	defer rows.Close()
	return r.scanProjects(rows)
}

func (r *SQLiteProjectRepo) ListAssignedRoots(ctx context.Context, userID string) ([]*domain.Project, error) {
	query := `SELECT p.id, p.owner_id, p.parent_project_id, p.title, p.description,
			p.start_date, p.end_date, p.created_at, p.updated_at
		FROM projects p
		JOIN project_users pu ON pu.project_id = p.id
		WHERE pu.user_id = ? AND p.owner_id != ? AND p.parent_project_id IS NULL
		ORDER BY p.created_at`
	rows, err := r.db.QueryContext(ctx, query, userID, userID)
	if err != nil {
		return nil, fmt.Errorf("listing assigned projects: %w", err)
	}
	defer rows.Close()
	return r.scanProjects(rows)
}

func (r *SQLiteProjectRepo) ListDirectSubProjects(ctx context.Context, parentID string) ([]*domain.Project, error) {
	query := `SELECT ` + projectColumns + ` FROM projects
		WHERE parent_project_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing sub-projects: %w", err)
	}
	defer rows.Close()
	return r.scanProjects(rows)
}

func (r *SQLiteProjectRepo) Update(ctx context.Context, p *domain.Project) error {
	query := `UPDATE projects SET title = ?, description = ?, start_date = ?, end_date = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		p.Title,
		p.Description,
		p.StartDate.Format(dateLayout),
		p.EndDate.Format(dateLayout),
		p.UpdatedAt.Format(time.RFC3339),
		p.ID,
	)
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating project: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("updating project %s: %w", p.ID, ErrNotFound)
	}
	return nil
}

// Delete removes the project row. Sub-projects, tasks and time entries
// go with it via ON DELETE CASCADE foreign keys.
func (r *SQLiteProjectRepo) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM projects WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting project: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting project: %w", err)
	}
	return affected, nil
}

func (r *SQLiteProjectRepo) scanProject(row *sql.Row) (*domain.Project, error) {
	var p domain.Project
	var parentID sql.NullString
	var startStr, endStr, createdStr, updatedStr string

	err := row.Scan(
		&p.ID, &p.OwnerID, &parentID, &p.Title, &p.Description,
		&startStr, &endStr, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning project: %w", err)
	}

	p.ParentID = parseNullableString(parentID)
	if err := parseProjectDates(&p, startStr, endStr, createdStr, updatedStr); err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *SQLiteProjectRepo) scanProjects(rows *sql.Rows) ([]*domain.Project, error) {
	var projects []*domain.Project
	for rows.Next() {
		var p domain.Project
		var parentID sql.NullString
		var startStr, endStr, createdStr, updatedStr string
		err := rows.Scan(
			&p.ID, &p.OwnerID, &parentID, &p.Title, &p.Description,
			&startStr, &endStr, &createdStr, &updatedStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning project: %w", err)
		}
		p.ParentID = parseNullableString(parentID)
		if err := parseProjectDates(&p, startStr, endStr, createdStr, updatedStr); err != nil {
			return nil, err
		}
		projects = append(projects, &p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating projects: %w", err)
	}
	return projects, nil
}

func parseProjectDates(p *domain.Project, startStr, endStr, createdStr, updatedStr string) error {
	var err error
	if p.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return fmt.Errorf("parsing start_date: %w", err)
	}
	if p.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
		return fmt.Errorf("parsing end_date: %w", err)
	}
	if p.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	if p.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
