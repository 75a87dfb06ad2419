package store

import (
	"database/sql"
	"fmt"
	"net/url"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// DefaultBusyTimeout bounds how long a read blocks when the owning
// process holds a write lock on the store.
const DefaultBusyTimeout = 1500 * time.Millisecond

// Store is a scoped read-only session over one backing store file.
type Store struct {
	db *sql.DB
}

// Open opens the store file read-only with the default busy-wait bound.
func Open(path string) (*Store, error) {
	return OpenTimeout(path, DefaultBusyTimeout)
}

// OpenTimeout opens the store file read-only, waiting up to busyTimeout
// for transient lock contention before giving up. The returned session
// must be closed by the caller on every path.
func OpenTimeout(path string, busyTimeout time.Duration) (*Store, error) {
	dsn := fmt.Sprintf("file:%s?mode=ro&_busy_timeout=%d&_mutex=no",
		url.PathEscape(path), busyTimeout.Milliseconds())

	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	// One connection is enough for three sequential read passes, and
	// keeps all of them on the same snapshot-consistent handle.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("connect to store: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the session.
func (s *Store) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
