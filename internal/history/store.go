// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists completed searches in a local SQLite database
// so past lookups can be listed without re-querying the API.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/bookscout/pkg/types"
)

const dbFile = "history.db"

// Store manages the search history SQLite database.
type Store struct {
	db         *sql.DB
	maxEntries int
}

// Entry is one recorded search.
type Entry struct {
	ID           int64
	Title        string // the search term as entered
	RequestURL   string
	ResultTitle  string
	ResultAuthor string
	NumFound     int
	SearchedAt   time.Time
}

// Open opens or creates the history database at cfg.Path/history.db,
// creating the schema if it does not exist.
func Open(cfg types.HistoryConfig) (*Store, error) {
	dir := cfg.Path
	if dir == "" {
		dir = ".bookscout"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating history directory: %w", err)
	}

	dbPath := filepath.Join(dir, dbFile)
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	maxEntries := cfg.MaxEntries
	if maxEntries <= 0 {
		maxEntries = 20
	}

	s := &Store{db: db, maxEntries: maxEntries}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			request_url TEXT,
			result_title TEXT,
			result_author TEXT,
			num_found INTEGER,
			searched_at TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_searches_searched_at ON searches(searched_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Record inserts one search into the history. A zero SearchedAt is filled
// with the current time.
func (s *Store) Record(ctx context.Context, e Entry) error {
	when := e.SearchedAt
	if when.IsZero() {
		when = time.Now()
	}
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO searches (title, request_url, result_title, result_author, num_found, searched_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.Title, e.RequestURL, e.ResultTitle, e.ResultAuthor, e.NumFound,
		when.UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("recording search: %w", err)
	}
	return nil
}

// Recent returns the most recent n entries, newest first. When n is zero
// or negative the configured maximum applies.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	if n <= 0 {
		n = s.maxEntries
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, title, request_url, result_title, result_author, num_found, searched_at
		 FROM searches ORDER BY searched_at DESC, id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var searchedAt string
		if err := rows.Scan(&e.ID, &e.Title, &e.RequestURL, &e.ResultTitle,
			&e.ResultAuthor, &e.NumFound, &searchedAt); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		if t, parseErr := time.Parse(time.RFC3339Nano, searchedAt); parseErr == nil {
			e.SearchedAt = t
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Clear removes all history entries and reports how many were deleted.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM searches`)
	if err != nil {
		return 0, fmt.Errorf("clearing history: %w", err)
	}
	return res.RowsAffected()
}
