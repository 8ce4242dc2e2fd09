package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"crawshaw.io/sqlite"
	"crawshaw.io/sqlite/sqlitex"

	"github.com/oshokin/ulp-wake/internal/domain/wake"
)

// Event kinds appended to the journal.
const (
	KindToken = "token"
	KindWake  = "wake"
	KindReset = "reset"
)

// defaultPoolSize is the number of pooled SQLite connections.
const defaultPoolSize = 4

// Event is one journal row.
type Event struct {
	// At is when the event was recorded.
	At time.Time
	// Kind is KindToken, KindWake or KindReset.
	Kind string
	// TypeName is the alarm type attributed to the event, empty for resets.
	TypeName string
	// TokenID is the token identity attributed to the event, empty for resets.
	TokenID string
	// Actor is who reported the event.
	Actor wake.Actor
}

// Recorder defines append/read operations for the wake-event journal.
type Recorder interface {
	Append(ctx context.Context, e *Event) error
	Recent(ctx context.Context, limit int) ([]*Event, error)
	Close() error
}

// SQLiteJournal is a Recorder backed by a pooled SQLite database.
type SQLiteJournal struct {
	pool *sqlitex.Pool
}

// errPoolExhausted is returned when no connection is available before the
// context is done.
var errPoolExhausted = errors.New("journal: no connection available")

// Open opens (creating if needed) the journal database at path and applies
// pending migrations.
func Open(path string) (*SQLiteJournal, error) {
	pool, err := sqlitex.Open(path, 0, defaultPoolSize)
	if err != nil {
		return nil, fmt.Errorf("open journal: %w", err)
	}

	conn := pool.Get(context.Background())
	defer pool.Put(conn)

	fsys, err := scripts()
	if err != nil {
		_ = pool.Close()

		return nil, err
	}

	if err = Migrate(conn, fsys); err != nil {
		_ = pool.Close()

		return nil, fmt.Errorf("migrate journal: %w", err)
	}

	return &SQLiteJournal{pool: pool}, nil
}

// Close releases the underlying connection pool.
func (j *SQLiteJournal) Close() error {
	if j == nil || j.pool == nil {
		return nil
	}

	return j.pool.Close()
}

// Append writes one event row.
func (j *SQLiteJournal) Append(ctx context.Context, e *Event) error {
	conn := j.pool.Get(ctx)
	if conn == nil {
		return errPoolExhausted
	}
	defer j.pool.Put(conn)

	err := sqlitex.Exec(conn,
		"insert into wake_events (at, kind, type_name, token_id, hostname, username) values (?, ?, ?, ?, ?, ?);",
		nil,
		e.At.UnixNano(), e.Kind, e.TypeName, e.TokenID, e.Actor.Hostname, e.Actor.Username)
	if err != nil {
		return fmt.Errorf("append event: %w", err)
	}

	return nil
}

// Recent returns up to limit events, newest first.
func (j *SQLiteJournal) Recent(ctx context.Context, limit int) ([]*Event, error) {
	conn := j.pool.Get(ctx)
	if conn == nil {
		return nil, errPoolExhausted
	}
	defer j.pool.Put(conn)

	events := make([]*Event, 0, limit)

	collect := func(stmt *sqlite.Stmt) error {
		events = append(events, &Event{
			At:       time.Unix(0, stmt.ColumnInt64(0)),
			Kind:     stmt.ColumnText(1),
			TypeName: stmt.ColumnText(2),
			TokenID:  stmt.ColumnText(3),
			Actor: wake.Actor{
				Hostname: stmt.ColumnText(4),
				Username: stmt.ColumnText(5),
			},
		})

		return nil
	}

	err := sqlitex.Exec(conn,
		"select at, kind, type_name, token_id, hostname, username from wake_events order by at desc, id desc limit ?;",
		collect, limit)
	if err != nil {
		return nil, fmt.Errorf("read events: %w", err)
	}

	return events, nil
}
