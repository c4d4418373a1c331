package store

import "fmt"

// currentSchemaVersion is the latest schema version.
const currentSchemaVersion = 1

// Migrate runs forward migrations to bring the database schema up to date.
func (db *DB) Migrate() error {
	if _, err := db.conn.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER NOT NULL
		)
	`); err != nil {
		return fmt.Errorf("creating schema_version table: %w", err)
	}

	version := 0
	row := db.conn.QueryRow("SELECT version FROM schema_version LIMIT 1")
	if err := row.Scan(&version); err != nil {
		// No rows means version 0 (fresh database).
		version = 0
	}

	if version < 1 {
		if err := db.migrateV1(); err != nil {
			return fmt.Errorf("migration v1: %w", err)
		}
	}

	return nil
}

// migrateV1 creates all initial tables and indexes.
func (db *DB) migrateV1() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS sessions (
			id             INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at_ms  INTEGER NOT NULL,
			duration_min   INTEGER NOT NULL CHECK (duration_min > 0),
			tag_title      TEXT NOT NULL DEFAULT '',
			tag_color      TEXT NOT NULL DEFAULT '',
			focus_score    REAL NOT NULL DEFAULT 0,
			noise_level    REAL NOT NULL DEFAULT 0,
			light_level    REAL NOT NULL DEFAULT 0,
			phone_pickups  INTEGER NOT NULL DEFAULT 0,
			notes          TEXT NOT NULL DEFAULT ''
		)`,

		`CREATE TABLE IF NOT EXISTS calendar_events (
			id        INTEGER PRIMARY KEY AUTOINCREMENT,
			day       TEXT NOT NULL,
			start_ms  INTEGER NOT NULL,
			end_ms    INTEGER NOT NULL,
			title     TEXT NOT NULL
		)`,

		// Indexes.
		`CREATE INDEX IF NOT EXISTS idx_sessions_started ON sessions(started_at_ms)`,
		`CREATE INDEX IF NOT EXISTS idx_sessions_tag ON sessions(tag_title)`,
		`CREATE INDEX IF NOT EXISTS idx_events_day ON calendar_events(day)`,
	}

	tx, err := db.conn.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	for _, stmt := range statements {
		if _, err := tx.Exec(stmt); err != nil {
			return fmt.Errorf("executing %q: %w", stmt[:40], err)
		}
	}

	if _, err := tx.Exec("DELETE FROM schema_version"); err != nil {
		return err
	}
	if _, err := tx.Exec("INSERT INTO schema_version (version) VALUES (?)", currentSchemaVersion); err != nil {
		return err
	}

	return tx.Commit()
}
