package state

import (
	"database/sql"
	"errors"
)

// SessionState is what survives a restart: the watched run directory
// and whether the statistics panel was open.
type SessionState struct {
	RunDir       string
	StatsVisible bool
}

func getSession(db *sql.DB) (*SessionState, error) {
	row := db.QueryRow(`
		SELECT run_dir, stats_visible
		FROM session_state WHERE id = 1
	`)

	var state SessionState
	var statsVisible int

	err := row.Scan(&state.RunDir, &statsVisible)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil //nolint:nilnil // no saved state is valid on first run
	}
	if err != nil {
		return nil, err
	}

	state.StatsVisible = statsVisible != 0

	return &state, nil
}

func saveSession(db *sql.DB, state SessionState) error {
	statsVisible := 0
	if state.StatsVisible {
		statsVisible = 1
	}

	_, err := db.Exec(`
		INSERT INTO session_state (id, run_dir, stats_visible)
		VALUES (1, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			run_dir = excluded.run_dir,
			stats_visible = excluded.stats_visible
	`, state.RunDir, statsVisible)

	return err
}
