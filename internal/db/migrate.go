package db

import (
	"database/sql"
	"fmt"
)

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id         TEXT PRIMARY KEY,
		email      TEXT NOT NULL UNIQUE COLLATE NOCASE,
		name       TEXT NOT NULL,
		created_at TEXT NOT NULL
	)`,

	`CREATE TABLE IF NOT EXISTS projects (
		id                TEXT PRIMARY KEY,
		owner_id          TEXT NOT NULL REFERENCES users(id),
		parent_project_id TEXT REFERENCES projects(id) ON DELETE CASCADE,
		title             TEXT NOT NULL,
		description       TEXT NOT NULL DEFAULT '',
		start_date        TEXT NOT NULL,
		end_date          TEXT NOT NULL,
		created_at        TEXT NOT NULL,
		updated_at        TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_parent ON projects(parent_project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_owner ON projects(owner_id)`,

	`CREATE TABLE IF NOT EXISTS tasks (
		id              TEXT PRIMARY KEY,
		parent_task_id  TEXT REFERENCES tasks(id) ON DELETE CASCADE,
		project_id      TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		title           TEXT NOT NULL,
		description     TEXT NOT NULL DEFAULT '',
		start_date      TEXT NOT NULL,
		end_date        TEXT NOT NULL,
		estimated_hours REAL NOT NULL DEFAULT 0,
		status          TEXT NOT NULL DEFAULT 'TODO'
		                CHECK(status IN ('TODO','IN_PROGRESS','DONE')),
		created_at      TEXT NOT NULL,
		updated_at      TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_parent ON tasks(parent_task_id)`,
	`CREATE INDEX IF NOT EXISTS idx_tasks_project ON tasks(project_id)`,

	`CREATE TABLE IF NOT EXISTS time_entries (
		id          TEXT PRIMARY KEY,
		task_id     TEXT NOT NULL REFERENCES tasks(id) ON DELETE CASCADE,
		user_id     TEXT NOT NULL REFERENCES users(id),
		hours       REAL NOT NULL CHECK(hours > 0),
		description TEXT NOT NULL,
		created_at  TEXT NOT NULL
	)`,
	`CREATE INDEX IF NOT EXISTS idx_time_entries_task ON time_entries(task_id)`,

	`CREATE TABLE IF NOT EXISTS project_users (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		user_id    TEXT NOT NULL REFERENCES users(id) ON DELETE CASCADE,
		role       TEXT NOT NULL CHECK(role IN ('OWNER','FULL_ACCESS','READ_ONLY')),
		PRIMARY KEY (project_id, user_id)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_project_users_user ON project_users(user_id)`,
}

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}
