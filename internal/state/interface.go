// internal/state/interface.go
package state

import "database/sql"

// Interface is what the app needs from the state manager; tests swap in
// a mock.
type Interface interface {
	DB() *sql.DB
	SaveSession(state SessionState)
	GetSession() (*SessionState, error)
	Close() error
}

var _ Interface = (*Manager)(nil)
