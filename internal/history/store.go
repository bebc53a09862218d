// Package history keeps a small log of past searches so the page can offer
// them again. Only search metadata is stored, never lyrics text.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists search history in SQLite.
type Store struct {
	db *sql.DB
}

// Entry is one recorded search.
type Entry struct {
	ID          int64     `json:"id"`
	Artist      string    `json:"artist"`
	Title       string    `json:"title"`
	Found       bool      `json:"found"`
	TotalWords  int       `json:"totalWords"`
	UniqueWords int       `json:"uniqueWords"`
	SearchedAt  time.Time `json:"searchedAt"`
}

// Open creates or opens a history database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Single connection keeps in-memory databases consistent and is plenty
	// for a history log.
	db.SetMaxOpenConns(1)

	pragmas := []string{
		"PRAGMA busy_timeout = 10000",
		"PRAGMA synchronous = NORMAL",
		"PRAGMA journal_mode = WAL",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to set pragma: %w", err)
		}
	}

	schema := `
		CREATE TABLE IF NOT EXISTS searches (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			artist TEXT NOT NULL,
			title TEXT NOT NULL,
			found BOOLEAN NOT NULL,
			total_words INTEGER NOT NULL DEFAULT 0,
			unique_words INTEGER NOT NULL DEFAULT 0,
			searched_at INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
		);

		CREATE INDEX IF NOT EXISTS idx_searched_at ON searches(searched_at);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close closes the database connection
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Record appends a search to the history.
func (s *Store) Record(ctx context.Context, entry Entry) (int64, error) {
	query := `
		INSERT INTO searches (artist, title, found, total_words, unique_words, searched_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`

	searchedAt := entry.SearchedAt
	if searchedAt.IsZero() {
		searchedAt = time.Now()
	}

	result, err := s.db.ExecContext(ctx, query,
		entry.Artist,
		entry.Title,
		entry.Found,
		entry.TotalWords,
		entry.UniqueWords,
		searchedAt.Unix(),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to insert search: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to get insert id: %w", err)
	}
	return id, nil
}

// Recent returns the n most recent searches, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Entry, error) {
	query := `
		SELECT id, artist, title, found, total_words, unique_words, searched_at
		FROM searches
		ORDER BY searched_at DESC, id DESC
		LIMIT ?
	`

	rows, err := s.db.QueryContext(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("failed to query history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var searchedAt int64
		if err := rows.Scan(&e.ID, &e.Artist, &e.Title, &e.Found, &e.TotalWords, &e.UniqueWords, &searchedAt); err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		e.SearchedAt = time.Unix(searchedAt, 0)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
