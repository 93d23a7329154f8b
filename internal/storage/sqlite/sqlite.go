// Package sqlite provides a SQLite-backed implementation of the
// storage.Storage interface using Go's standard database/sql package.
//
// The whole address book lives in one database file with two tables:
//
//	contacts — one row per Record, position keeps the book's order
//	phones   — one row per phone, position keeps the Record's order
//
// Save rewrites both tables inside a single transaction, so a failed save
// leaves the previous state untouched.
//
// The blank import below registers the "sqlite3" driver with database/sql.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/aanand-mishra/assistant-bot/internal/config"
	"github.com/aanand-mishra/assistant-bot/internal/contacts"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is the concrete implementation of storage.Storage.
type SQLite struct {
	Db *sql.DB
}

// New opens the SQLite database at cfg.StoragePath and creates the tables
// if they do not exist yet. Missing parent directories are created, so a
// fresh checkout starts with an empty book.
func New(cfg *config.Config) (*SQLite, error) {
	if err := os.MkdirAll(filepath.Dir(cfg.StoragePath), 0o755); err != nil {
		return nil, fmt.Errorf("sqlite.New: create directory: %w", err)
	}

	db, err := sql.Open("sqlite3", cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("sqlite.New: open db: %w", err)
	}

	// Idempotent — safe to run on every startup.
	_, err = db.Exec(`
		CREATE TABLE IF NOT EXISTS contacts (
			name     TEXT    PRIMARY KEY,
			position INTEGER NOT NULL,
			birthday TEXT    NOT NULL DEFAULT ''
		);
		CREATE TABLE IF NOT EXISTS phones (
			contact  TEXT    NOT NULL REFERENCES contacts(name) ON DELETE CASCADE,
			position INTEGER NOT NULL,
			value    TEXT    NOT NULL,
			PRIMARY KEY (contact, position)
		);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("sqlite.New: create tables: %w", err)
	}

	return &SQLite{Db: db}, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Save replaces every stored row with the contents of book.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) Save(book *contacts.AddressBook) error {
	tx, err := s.Db.Begin()
	if err != nil {
		return fmt.Errorf("Save: begin: %w", err)
	}
	// Rollback after Commit is a no-op returning sql.ErrTxDone.
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM phones"); err != nil {
		return fmt.Errorf("Save: clear phones: %w", err)
	}
	if _, err := tx.Exec("DELETE FROM contacts"); err != nil {
		return fmt.Errorf("Save: clear contacts: %w", err)
	}

	contactStmt, err := tx.Prepare(
		"INSERT INTO contacts (name, position, birthday) VALUES (?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("Save: prepare contact: %w", err)
	}
	defer contactStmt.Close()

	phoneStmt, err := tx.Prepare(
		"INSERT INTO phones (contact, position, value) VALUES (?, ?, ?)",
	)
	if err != nil {
		return fmt.Errorf("Save: prepare phone: %w", err)
	}
	defer phoneStmt.Close()

	for i, r := range book.Records() {
		name := r.Name().Value()

		var birthday string
		if b, ok := r.Birthday(); ok {
			birthday = b.Value()
		}

		if _, err := contactStmt.Exec(name, i, birthday); err != nil {
			return fmt.Errorf("Save: insert contact %q: %w", name, err)
		}

		for j, p := range r.Phones() {
			if _, err := phoneStmt.Exec(name, j, p.Value()); err != nil {
				return fmt.Errorf("Save: insert phone for %q: %w", name, err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("Save: commit: %w", err)
	}
	return nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Load rebuilds the address book from the stored rows. An empty database
// yields an empty book.
// ─────────────────────────────────────────────────────────────────────────────
func (s *SQLite) Load() (*contacts.AddressBook, error) {
	phones, err := s.loadPhones()
	if err != nil {
		return nil, err
	}

	rows, err := s.Db.Query("SELECT name, birthday FROM contacts ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("Load: query contacts: %w", err)
	}
	defer rows.Close()

	book := contacts.NewAddressBook()
	for rows.Next() {
		var name, birthday string
		if err := rows.Scan(&name, &birthday); err != nil {
			return nil, fmt.Errorf("Load: scan contact: %w", err)
		}

		r, err := contacts.RestoreRecord(name, phones[name], birthday)
		if err != nil {
			return nil, fmt.Errorf("Load: restore %q: %w", name, err)
		}
		book.Add(r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Load: rows iteration: %w", err)
	}

	return book, nil
}

func (s *SQLite) loadPhones() (map[string][]string, error) {
	rows, err := s.Db.Query("SELECT contact, value FROM phones ORDER BY contact, position")
	if err != nil {
		return nil, fmt.Errorf("Load: query phones: %w", err)
	}
	defer rows.Close()

	phones := make(map[string][]string)
	for rows.Next() {
		var contact, value string
		if err := rows.Scan(&contact, &value); err != nil {
			return nil, fmt.Errorf("Load: scan phone: %w", err)
		}
		phones[contact] = append(phones[contact], value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("Load: phones iteration: %w", err)
	}
	return phones, nil
}

// Close releases the database handle.
func (s *SQLite) Close() error {
	return s.Db.Close()
}
