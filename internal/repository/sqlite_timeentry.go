package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jensotto/projektor/internal/domain"
)

// SQLiteTimeEntryRepo implements TimeEntryRepo using a SQLite database.
// Entries are append-only; there is no update path.
type SQLiteTimeEntryRepo struct {
	db *sql.DB
}

// NewSQLiteTimeEntryRepo creates a new SQLiteTimeEntryRepo.
func NewSQLiteTimeEntryRepo(db *sql.DB) *SQLiteTimeEntryRepo {
	return &SQLiteTimeEntryRepo{db: db}
}

func (r *SQLiteTimeEntryRepo) Create(ctx context.Context, e *domain.TimeEntry) error {
	query := `INSERT INTO time_entries (id, task_id, user_id, hours, description, created_at)
		VALUES (?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		e.ID,
		e.TaskID,
		e.UserID,
		e.Hours,
		e.Description,
		e.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting time entry: %w", err)
	}
	return nil
}

func (r *SQLiteTimeEntryRepo) ListByTask(ctx context.Context, taskID string) ([]*domain.TimeEntry, error) {
	query := `SELECT id, task_id, user_id, hours, description, created_at
		FROM time_entries WHERE task_id = ? ORDER BY created_at`
	rows, err := r.db.QueryContext(ctx, query, taskID)
	if err != nil {
		return nil, fmt.Errorf("listing time entries: %w", err)
	}
	defer rows.Close()

	var entries []*domain.TimeEntry
	for rows.Next() {
		var e domain.TimeEntry
		var createdStr string
		if err := rows.Scan(&e.ID, &e.TaskID, &e.UserID, &e.Hours, &e.Description, &createdStr); err != nil {
			return nil, fmt.Errorf("scanning time entry: %w", err)
		}
		if e.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
			return nil, fmt.Errorf("parsing created_at: %w", err)
		}
		entries = append(entries, &e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating time entries: %w", err)
	}
	return entries, nil
}
