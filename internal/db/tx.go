package db

import "database/sql"

// WithTx runs fn inside a transaction, committing when fn returns nil and
// rolling back otherwise. The journal uses it to land a batch of events
// atomically.
func WithTx(db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback() //nolint:errcheck // no-op after Commit

	if err := fn(tx); err != nil {
		return err
	}
	return tx.Commit()
}
