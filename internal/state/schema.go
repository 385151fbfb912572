package state

import (
	"database/sql"
)

const currentSchemaVersion = 1

func initSchema(db *sql.DB) error {
	_, err := db.Exec(`
		CREATE TABLE IF NOT EXISTS schema_version (
			version INTEGER PRIMARY KEY
		);

		CREATE TABLE IF NOT EXISTS session_state (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			run_dir TEXT NOT NULL,
			stats_visible INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS fault_events (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			occurred_at INTEGER NOT NULL,
			severity TEXT NOT NULL,
			category TEXT NOT NULL,
			message TEXT NOT NULL,
			origin TEXT
		);

		CREATE INDEX IF NOT EXISTS idx_fault_events_time ON fault_events(occurred_at);
		CREATE INDEX IF NOT EXISTS idx_fault_events_severity ON fault_events(severity);
	`)
	if err != nil {
		return err
	}

	_, err = db.Exec(`
		INSERT OR IGNORE INTO schema_version (version) VALUES (?)
	`, currentSchemaVersion)
	return err
}
