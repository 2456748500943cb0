package db

import (
	"database/sql"
	"fmt"
	"strings"
)

// Migrate runs all schema migrations.
func Migrate(db *sql.DB) error {
	for i, stmt := range migrations {
		if _, err := db.Exec(stmt); err != nil {
			// Tolerate "duplicate column name" errors from ALTER TABLE
			// since the migration system re-runs all statements.
			if strings.Contains(err.Error(), "duplicate column name") {
				continue
			}
			return fmt.Errorf("migration %d: %w", i, err)
		}
	}
	return nil
}

var migrations = []string{
	`CREATE TABLE IF NOT EXISTS projects (
		id             TEXT PRIMARY KEY,
		name           TEXT NOT NULL UNIQUE,
		path           TEXT NOT NULL,
		language       TEXT NOT NULL DEFAULT 'Unknown',
		file_count     INTEGER NOT NULL DEFAULT 0,
		total_sloc     INTEGER NOT NULL DEFAULT 0,
		size_bytes     INTEGER NOT NULL DEFAULT 0,
		scan_ms        INTEGER NOT NULL DEFAULT 0,
		scanned_at     TEXT NOT NULL,
		branch         TEXT,
		dirty          INTEGER,
		ahead          INTEGER,
		behind         INTEGER,
		has_upstream   INTEGER,
		last_commit_at TEXT
	)`,

	`CREATE TABLE IF NOT EXISTS language_stats (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		language   TEXT NOT NULL,
		file_count INTEGER NOT NULL DEFAULT 0,
		sloc       INTEGER NOT NULL DEFAULT 0,
		PRIMARY KEY (project_id, language)
	)`,

	`CREATE TABLE IF NOT EXISTS manifests (
		project_id TEXT NOT NULL REFERENCES projects(id) ON DELETE CASCADE,
		manager    TEXT NOT NULL
		           CHECK(manager IN ('go','npm','pypi','cargo')),
		path       TEXT NOT NULL,
		name       TEXT NOT NULL,
		version    TEXT NOT NULL DEFAULT '',
		PRIMARY KEY (project_id, manager, path)
	)`,

	`CREATE INDEX IF NOT EXISTS idx_language_stats_project ON language_stats(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_manifests_project ON manifests(project_id)`,
	`CREATE INDEX IF NOT EXISTS idx_projects_language ON projects(language)`,
}
