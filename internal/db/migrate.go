package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations. Every statement is safe to re-run.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// ALTER TABLE ADD COLUMN has no IF NOT EXISTS form.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

// study_time and timestamp are nullable: rows written by other tools may
// lack either, and readers treat them as 0 and "missing" respectively.
var migrations = []string{
	`CREATE TABLE IF NOT EXISTS study_sessions (
		id         TEXT PRIMARY KEY,
		user       TEXT NOT NULL,
		subject    TEXT NOT NULL DEFAULT '',
		study_time INTEGER CHECK(study_time IS NULL OR study_time >= 0),
		timestamp  TEXT
	)`,

	`CREATE INDEX IF NOT EXISTS idx_study_sessions_user ON study_sessions(user)`,
	`CREATE INDEX IF NOT EXISTS idx_study_sessions_user_ts ON study_sessions(user, timestamp)`,

	// Record where a session came from: a manual log or the pomodoro timer.
	`ALTER TABLE study_sessions ADD COLUMN source TEXT NOT NULL DEFAULT 'log'`,
}
