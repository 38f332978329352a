package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jensotto/projektor/internal/domain"
)

// SQLiteMembershipRepo implements MembershipRepo over the
// project_users table.
type SQLiteMembershipRepo struct {
	db *sql.DB
}

// NewSQLiteMembershipRepo creates a new SQLiteMembershipRepo.
func NewSQLiteMembershipRepo(db *sql.DB) *SQLiteMembershipRepo {
	return &SQLiteMembershipRepo{db: db}
}

func (r *SQLiteMembershipRepo) IsUserAssigned(ctx context.Context, projectID, userID string) (bool, error) {
	var count int
	query := `SELECT COUNT(*) FROM project_users WHERE project_id = ? AND user_id = ?`
	if err := r.db.QueryRowContext(ctx, query, projectID, userID).Scan(&count); err != nil {
		return false, fmt.Errorf("checking project assignment: %w", err)
	}
	return count > 0, nil
}

func (r *SQLiteMembershipRepo) GetRole(ctx context.Context, projectID, userID string) (domain.Role, bool, error) {
	var roleStr string
	query := `SELECT role FROM project_users WHERE project_id = ? AND user_id = ?`
	err := r.db.QueryRowContext(ctx, query, projectID, userID).Scan(&roleStr)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, fmt.Errorf("reading project role: %w", err)
	}
	return domain.Role(roleStr), true, nil
}

func (r *SQLiteMembershipRepo) ListMembers(ctx context.Context, projectID string) ([]domain.Member, error) {
	query := `SELECT u.id, u.email, u.name, u.created_at, pu.role
		FROM project_users pu
		JOIN users u ON u.id = pu.user_id
		WHERE pu.project_id = ?
		ORDER BY u.email`
	rows, err := r.db.QueryContext(ctx, query, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing project members: %w", err)
	}
	defer rows.Close()

	var members []domain.Member
	for rows.Next() {
		var m domain.Member
		var roleStr, createdStr string
		if err := rows.Scan(&m.User.ID, &m.User.Email, &m.User.Name, &createdStr, &roleStr); err != nil {
			return nil, fmt.Errorf("scanning project member: %w", err)
		}
		m.Role = domain.Role(roleStr)
		if m.User.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		members = append(members, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating project members: %w", err)
	}
	return members, nil
}

func (r *SQLiteMembershipRepo) Add(ctx context.Context, projectID, userID string, role domain.Role) error {
	query := `INSERT INTO project_users (project_id, user_id, role) VALUES (?, ?, ?)`
	if _, err := r.db.ExecContext(ctx, query, projectID, userID, string(role)); err != nil {
		return fmt.Errorf("adding user %s to project %s: %w", userID, projectID, err)
	}
	return nil
}

func (r *SQLiteMembershipRepo) UpdateRole(ctx context.Context, projectID, userID string, role domain.Role) error {
	query := `UPDATE project_users SET role = ? WHERE project_id = ? AND user_id = ?`
	res, err := r.db.ExecContext(ctx, query, string(role), projectID, userID)
	if err != nil {
		return fmt.Errorf("updating role for user %s on project %s: %w", userID, projectID, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating role: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("updating role for user %s on project %s: %w", userID, projectID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteMembershipRepo) Remove(ctx context.Context, projectID, userID string) error {
	query := `DELETE FROM project_users WHERE project_id = ? AND user_id = ?`
	if _, err := r.db.ExecContext(ctx, query, projectID, userID); err != nil {
		return fmt.Errorf("removing user %s from project %s: %w", userID, projectID, err)
	}
	return nil
}
