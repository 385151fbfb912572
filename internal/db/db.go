// Package db opens the application database and carries the small helpers
// shared by the packages that persist through it.
package db

import (
	"database/sql"

	_ "modernc.org/sqlite" // database driver
)

// Open opens the SQLite database at path with the pragmas the application
// depends on: WAL so the journal writer and the UI can use the database at
// the same time, and a busy timeout instead of an immediate SQLITE_BUSY.
func Open(path string) (*sql.DB, error) {
	return sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
}
