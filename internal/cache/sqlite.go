package cache

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/gbazo/bibproc/internal/biblio"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists cache entries in a SQLite database. Entries are keyed
// by a digest of the (title, author) pair so titles containing any delimiter
// cannot collide.
type SQLiteStore struct {
	db *sql.DB
}

// OpenSQLiteStore opens or creates a SQLite cache at the given path.
func OpenSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening cache database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	schema := `
		CREATE TABLE IF NOT EXISTS lookups (
			key TEXT PRIMARY KEY,
			title TEXT NOT NULL,
			author TEXT,
			found INTEGER NOT NULL,
			metadata TEXT
		);
	`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating cache schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// Load reads all persisted entries. Rows with unparseable metadata are
// treated as negative entries rather than failing the load.
func (s *SQLiteStore) Load() (map[Key]Entry, error) {
	rows, err := s.db.Query(`SELECT title, author, found, metadata FROM lookups`)
	if err != nil {
		return nil, fmt.Errorf("reading cache: %w", err)
	}
	defer rows.Close()

	entries := make(map[Key]Entry)
	for rows.Next() {
		var (
			key      Key
			found    bool
			metadata sql.NullString
		)
		if err := rows.Scan(&key.Title, &key.Author, &found, &metadata); err != nil {
			return nil, fmt.Errorf("scanning cache row: %w", err)
		}

		entry := Entry{Found: found}
		if found && metadata.Valid {
			var meta biblio.Metadata
			if err := json.Unmarshal([]byte(metadata.String), &meta); err == nil {
				entry.Meta = &meta
			} else {
				entry.Found = false
			}
		}
		entries[key] = entry
	}

	return entries, rows.Err()
}

// Save replaces all persisted entries in one transaction.
func (s *SQLiteStore) Save(entries map[Key]Entry) error {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("starting cache transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM lookups`); err != nil {
		return fmt.Errorf("clearing cache table: %w", err)
	}

	stmt, err := tx.Prepare(`
		INSERT INTO lookups (key, title, author, found, metadata)
		VALUES (?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("preparing cache insert: %w", err)
	}
	defer stmt.Close()

	for k, e := range entries {
		var metadata sql.NullString
		if e.Meta != nil {
			data, err := json.Marshal(e.Meta)
			if err != nil {
				return fmt.Errorf("encoding metadata for %q: %w", k.Title, err)
			}
			metadata = sql.NullString{String: string(data), Valid: true}
		}
		if _, err := stmt.Exec(k.Hash(), k.Title, k.Author, e.Found, metadata); err != nil {
			return fmt.Errorf("inserting cache entry for %q: %w", k.Title, err)
		}
	}

	return tx.Commit()
}
