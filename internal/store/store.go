// Package store provides read-only access to the Things database.
//
// The database runs through the embedded ncruces/go-sqlite3 driver, so no
// external sqlite3 binary is required. Connections are opened with mode=ro;
// the producing application (Things.app) owns every write. One connection
// is opened per invocation and released on exit, including error paths.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/ncruces/go-sqlite3/driver"
	_ "github.com/ncruces/go-sqlite3/embed"
)

// Store wraps a read-only connection to the Things database.
type Store struct {
	conn *sql.DB
	path string
}

// Open opens the database at path read-only.
//
// A missing or unreadable file reports ErrMissingStore; a driver-level
// failure reports ErrEngine. The caller MUST call Close when done.
//
// Example:
//
//	st, err := store.Open(cfg.DBPath)
//	if err != nil {
//	    return err
//	}
//	defer st.Close()
func Open(path string) (*Store, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, &StoreError{Path: path, Err: err}
	}
	if info.IsDir() {
		return nil, &StoreError{Path: path, Err: fmt.Errorf("is a directory")}
	}
	if f, err := os.Open(path); err != nil {
		return nil, &StoreError{Path: path, Err: err}
	} else {
		_ = f.Close()
	}

	// mode=ro guarantees no write ever reaches the file, even on a bug in
	// the query layer. The busy timeout covers Things.app holding a write
	// lock while we read.
	connStr := fmt.Sprintf("file:%s?mode=ro&_pragma=busy_timeout(5000)", path)
	conn, err := sql.Open("sqlite3", connStr)
	if err != nil {
		return nil, &EngineError{Err: err}
	}

	if err := conn.Ping(); err != nil {
		_ = conn.Close()
		return nil, &EngineError{Err: err}
	}

	// Single-threaded tool: one connection is enough and keeps the
	// read snapshot consistent across a stat run.
	conn.SetMaxOpenConns(1)

	return &Store{conn: conn, path: path}, nil
}

// Path returns the database file path this store was opened with.
func (s *Store) Path() string {
	return s.path
}

// RawDB returns the underlying sql.DB connection.
func (s *Store) RawDB() *sql.DB {
	return s.conn
}

// Query executes a parameterized query against the store.
func (s *Store) Query(ctx context.Context, query string, args ...any) (*sql.Rows, error) {
	rows, err := s.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	return rows, nil
}

// QueryRow executes a parameterized query expected to return at most one row.
func (s *Store) QueryRow(ctx context.Context, query string, args ...any) *sql.Row {
	return s.conn.QueryRowContext(ctx, query, args...)
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.conn == nil {
		return nil
	}
	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("failed to close database: %w", err)
	}
	s.conn = nil
	return nil
}
