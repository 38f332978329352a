package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/jensotto/projektor/internal/domain"
)

// SQLiteTaskRepo implements TaskRepo using a SQLite database.
type SQLiteTaskRepo struct {
	db *sql.DB
}

// NewSQLiteTaskRepo creates a new SQLiteTaskRepo.
func NewSQLiteTaskRepo(db *sql.DB) *SQLiteTaskRepo {
	return &SQLiteTaskRepo{db: db}
}

// actual_hours is aggregated from time entries at read time; tasks
// never store a logged-hours column of their own.
const taskSelect = `SELECT t.id, t.parent_task_id, t.project_id, t.title, t.description,
		t.start_date, t.end_date, t.estimated_hours,
		COALESCE((SELECT SUM(e.hours) FROM time_entries e WHERE e.task_id = t.id), 0) AS actual_hours,
		t.status, t.created_at, t.updated_at
	FROM tasks t`

func (r *SQLiteTaskRepo) Create(ctx context.Context, t *domain.Task) error {
	query := `INSERT INTO tasks (id, parent_task_id, project_id, title, description,
			start_date, end_date, estimated_hours, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		t.ID,
		nullableStringToValue(t.ParentID),
		t.ProjectID,
		t.Title,
		t.Description,
		t.StartDate.Format(dateLayout),
		t.EndDate.Format(dateLayout),
		t.EstimatedHours,
		string(t.Status),
		t.CreatedAt.Format(time.RFC3339),
		t.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting task: %w", err)
	}
	return nil
}

func (r *SQLiteTaskRepo) GetByID(ctx context.Context, id string) (*domain.Task, error) {
	row := r.db.QueryRowContext(ctx, taskSelect+` WHERE t.id = ?`, id)
	return r.scanTask(row)
}

func (r *SQLiteTaskRepo) ListDirectSubTasks(ctx context.Context, parentID string) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, taskSelect+` WHERE t.parent_task_id = ? ORDER BY t.created_at`, parentID)
	if err != nil {
		return nil, fmt.Errorf("listing sub-tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

// ListDirectProjectTasks returns a project's top-level tasks only.
func (r *SQLiteTaskRepo) ListDirectProjectTasks(ctx context.Context, projectID string) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx,
		taskSelect+` WHERE t.project_id = ? AND t.parent_task_id IS NULL ORDER BY t.created_at`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing project tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

// ListAllProjectTasks returns every task owned by the project,
// regardless of nesting.
func (r *SQLiteTaskRepo) ListAllProjectTasks(ctx context.Context, projectID string) ([]*domain.Task, error) {
	rows, err := r.db.QueryContext(ctx, taskSelect+` WHERE t.project_id = ? ORDER BY t.created_at`, projectID)
	if err != nil {
		return nil, fmt.Errorf("listing all project tasks: %w", err)
	}
	defer rows.Close()
	return r.scanTasks(rows)
}

func (r *SQLiteTaskRepo) Update(ctx context.Context, t *domain.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, start_date = ?, end_date = ?,
			estimated_hours = ?, status = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		t.Title,
		t.Description,
		t.StartDate.Format(dateLayout),
		t.EndDate.Format(dateLayout),
		t.EstimatedHours,
		string(t.Status),
		t.UpdatedAt.Format(time.RFC3339),
		t.ID,
	)
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("updating task: %w", err)
	}
	if affected == 0 {
		return fmt.Errorf("updating task %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

func (r *SQLiteTaskRepo) UpdateParent(ctx context.Context, taskID string, newParentID *string) error {
	query := `UPDATE tasks SET parent_task_id = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, nullableStringToValue(newParentID), nowUTC(), taskID)
	if err != nil {
		return fmt.Errorf("updating parent of task %s: %w", taskID, err)
	}
	return nil
}

func (r *SQLiteTaskRepo) UpdateProject(ctx context.Context, taskID, newProjectID string) error {
	query := `UPDATE tasks SET project_id = ?, updated_at = ? WHERE id = ?`
	_, err := r.db.ExecContext(ctx, query, newProjectID, nowUTC(), taskID)
	if err != nil {
		return fmt.Errorf("updating project of task %s: %w", taskID, err)
	}
	return nil
}

// Delete removes the task row. Sub-tasks and time entries go with it
// via ON DELETE CASCADE foreign keys.
func (r *SQLiteTaskRepo) Delete(ctx context.Context, id string) (int64, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return 0, fmt.Errorf("deleting task: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("deleting task: %w", err)
	}
	return affected, nil
}

func (r *SQLiteTaskRepo) scanTask(row *sql.Row) (*domain.Task, error) {
	var t domain.Task
	var parentID sql.NullString
	var statusStr, startStr, endStr, createdStr, updatedStr string

	err := row.Scan(
		&t.ID, &parentID, &t.ProjectID, &t.Title, &t.Description,
		&startStr, &endStr, &t.EstimatedHours, &t.ActualHours,
		&statusStr, &createdStr, &updatedStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("scanning task: %w", err)
	}
	t.ParentID = parseNullableString(parentID)
	t.Status = domain.TaskStatus(statusStr)
	if err := parseTaskDates(&t, startStr, endStr, createdStr, updatedStr); err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *SQLiteTaskRepo) scanTasks(rows *sql.Rows) ([]*domain.Task, error) {
	var tasks []*domain.Task
	for rows.Next() {
		var t domain.Task
		var parentID sql.NullString
		var statusStr, startStr, endStr, createdStr, updatedStr string
		err := rows.Scan(
			&t.ID, &parentID, &t.ProjectID, &t.Title, &t.Description,
			&startStr, &endStr, &t.EstimatedHours, &t.ActualHours,
			&statusStr, &createdStr, &updatedStr,
		)
		if err != nil {
			return nil, fmt.Errorf("scanning task: %w", err)
		}
		t.ParentID = parseNullableString(parentID)
		t.Status = domain.TaskStatus(statusStr)
		if err := parseTaskDates(&t, startStr, endStr, createdStr, updatedStr); err != nil {
			return nil, err
		}
		tasks = append(tasks, &t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tasks: %w", err)
	}
	return tasks, nil
}

func parseTaskDates(t *domain.Task, startStr, endStr, createdStr, updatedStr string) error {
	var err error
	if t.StartDate, err = time.Parse(dateLayout, startStr); err != nil {
		return fmt.Errorf("parsing start_date: %w", err)
	}
	if t.EndDate, err = time.Parse(dateLayout, endStr); err != nil {
		return fmt.Errorf("parsing end_date: %w", err)
	}
	if t.CreatedAt, err = time.Parse(time.RFC3339, createdStr); err != nil {
		return fmt.Errorf("parsing created_at: %w", err)
	}
	if t.UpdatedAt, err = time.Parse(time.RFC3339, updatedStr); err != nil {
		return fmt.Errorf("parsing updated_at: %w", err)
	}
	return nil
}
