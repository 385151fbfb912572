// Package journal persists fault events to the state database and the
// structured log. The sink never blocks the publish path: events are
// handed off through a bounded queue and dropped when it overflows.
package journal

import (
	"database/sql"
	"sync/atomic"

	"go.uber.org/zap"

	dbutil "github.com/mgrellier/lumen/internal/db"
	"github.com/mgrellier/lumen/internal/fault"
)

const (
	queueSize = 256
	batchSize = 32
)

type Journal struct {
	db      *sql.DB
	logger  *zap.Logger
	events  chan fault.Event
	stop    chan struct{}
	done    chan struct{}
	dropped atomic.Int64
}

// New starts a journal writer on the given database. The schema is owned
// by the state package; the logger receives one entry per event.
func New(sqldb *sql.DB, logger *zap.Logger) *Journal {
	j := &Journal{
		db:     sqldb,
		logger: logger,
		events: make(chan fault.Event, queueSize),
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go j.run()
	return j
}

// OnEvent enqueues an event for persistence. Never blocks: events
// arriving while the queue is full or after Close are dropped.
func (j *Journal) OnEvent(e fault.Event) {
	select {
	case <-j.stop:
		j.dropped.Add(1)
		return
	default:
	}

	select {
	case j.events <- e:
	default:
		j.dropped.Add(1)
	}
}

// Close drains outstanding events and stops the writer.
func (j *Journal) Close() {
	close(j.stop)
	<-j.done
}

// Dropped reports how many events were discarded.
func (j *Journal) Dropped() int64 {
	return j.dropped.Load()
}

// Totals holds lifetime event counts by severity bucket.
type Totals struct {
	Errors   int
	Warnings int
	Infos    int
}

// Totals counts every event ever journaled, including previous sessions.
func (j *Journal) Totals() (Totals, error) {
	rows, err := j.db.Query(`SELECT severity, COUNT(*) FROM fault_events GROUP BY severity`)
	if err != nil {
		return Totals{}, err
	}
	defer rows.Close()

	var t Totals
	for rows.Next() {
		var severity string
		var count int
		if err := rows.Scan(&severity, &count); err != nil {
			return Totals{}, err
		}
		switch severity {
		case "error", "critical":
			t.Errors += count
		case "warn":
			t.Warnings += count
		default:
			t.Infos += count
		}
	}
	return t, rows.Err()
}

func (j *Journal) run() {
	defer close(j.done)

	batch := make([]fault.Event, 0, batchSize)
	for {
		select {
		case <-j.stop:
			// Final drain before shutdown.
			for {
				select {
				case e := <-j.events:
					j.flush(append(batch[:0], e))
				default:
					return
				}
			}
		case e := <-j.events:
			batch = append(batch[:0], e)
		collect:
			for len(batch) < batchSize {
				select {
				case more := <-j.events:
					batch = append(batch, more)
				default:
					break collect
				}
			}
			j.flush(batch)
		}
	}
}

func (j *Journal) flush(batch []fault.Event) {
	err := dbutil.WithTx(j.db, func(tx *sql.Tx) error {
		stmt, err := tx.Prepare(`
			INSERT INTO fault_events (occurred_at, severity, category, message, origin)
			VALUES (?, ?, ?, ?, ?)
		`)
		if err != nil {
			return err
		}
		defer stmt.Close()

		for _, e := range batch {
			_, err := stmt.Exec(e.Time.UnixMilli(), e.Severity.String(), e.Category, e.Message, e.Origin.Short())
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		// Reporting through the pipeline here would loop; log and move on.
		j.logger.Error("journal write failed", zap.Error(err), zap.Int("events", len(batch)))
		return
	}

	for _, e := range batch {
		j.log(e)
	}
}

func (j *Journal) log(e fault.Event) {
	fields := []zap.Field{
		zap.String("severity", e.Severity.String()),
		zap.String("category", e.Category),
		zap.String("origin", e.Origin.Short()),
	}
	switch {
	case e.Severity >= fault.SeverityError:
		j.logger.Error(e.Message, fields...)
	case e.Severity == fault.SeverityWarn:
		j.logger.Warn(e.Message, fields...)
	case e.Severity == fault.SeverityInfo:
		j.logger.Info(e.Message, fields...)
	default:
		j.logger.Debug(e.Message, fields...)
	}
}
