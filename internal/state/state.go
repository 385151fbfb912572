package state

import (
	"database/sql"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/adrg/xdg"

	dbutil "github.com/mgrellier/lumen/internal/db"
)

const (
	appName      = "lumen"
	dbFileName   = "lumen.db"
	saveDebounce = 500 * time.Millisecond
)

// Manager owns the state database and debounces session writes so that
// rapid UI changes collapse into one disk touch.
type Manager struct {
	db      *sql.DB
	mu      sync.Mutex
	timer   *time.Timer
	pending *SessionState
}

// Open creates or opens the database under the XDG data dir and applies
// the schema.
func Open() (*Manager, error) {
	dbPath, err := xdg.DataFile(filepath.Join(appName, dbFileName))
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, err
	}

	db, err := dbutil.Open(dbPath)
	if err != nil {
		return nil, err
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Manager{db: db}, nil
}

// Close flushes any pending session write and closes the database.
func (m *Manager) Close() error {
	m.mu.Lock()
	if m.timer != nil {
		m.timer.Stop()
	}
	m.mu.Unlock()

	m.flushPending()
	return m.db.Close()
}

func (m *Manager) GetSession() (*SessionState, error) {
	return getSession(m.db)
}

// DB exposes the handle for the fault journal, which shares this
// database.
func (m *Manager) DB() *sql.DB {
	return m.db
}

// SaveSession schedules a debounced write of the session state. Only the
// most recent snapshot reaches disk.
func (m *Manager) SaveSession(state SessionState) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.pending = &state

	if m.timer != nil {
		m.timer.Stop()
	}
	m.timer = time.AfterFunc(saveDebounce, m.flushPending)
}

func (m *Manager) flushPending() {
	m.mu.Lock()
	pending := m.pending
	m.pending = nil
	m.mu.Unlock()

	if pending != nil {
		_ = saveSession(m.db, *pending)
	}
}
