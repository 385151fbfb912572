// internal/state/mock.go
package state

import "database/sql"

// Mock is a test double for Manager.
type Mock struct {
	session *SessionState
	saved   []SessionState
	closed  bool
}

// NewMock returns an in-memory Mock with no session loaded.
func NewMock() *Mock {
	return &Mock{}
}

func (m *Mock) DB() *sql.DB { return nil }

func (m *Mock) SaveSession(state SessionState) {
	m.saved = append(m.saved, state)
	m.session = &state
}

func (m *Mock) GetSession() (*SessionState, error) {
	return m.session, nil
}

func (m *Mock) Close() error {
	m.closed = true
	return nil
}

// Test helpers

func (m *Mock) SetSession(state *SessionState) { m.session = state }

func (m *Mock) Saved() []SessionState { return m.saved }

func (m *Mock) IsClosed() bool { return m.closed }

// Verify Mock implements Interface at compile time.
var _ Interface = (*Mock)(nil)
