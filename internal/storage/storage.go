// Package storage defines the Storage interface — the contract any
// persistence backend must satisfy to hold the address book between runs.
//
// The dispatcher only sees this interface, so the format on disk is an
// implementation detail of each backend:
//
//   - sqlite:   rows in a SQLite database file
//   - yamlfile: a single YAML document
//
// Tests pass an in-memory fake instead.
package storage

import "github.com/aanand-mishra/assistant-bot/internal/contacts"

// Storage saves and restores a whole AddressBook.
type Storage interface {
	// Save replaces the persisted state with book. Every record, phone
	// and birthday must survive a later Load exactly, in book order.
	Save(book *contacts.AddressBook) error

	// Load returns the persisted book, or a new empty book when nothing
	// has been saved yet.
	Load() (*contacts.AddressBook, error)

	// Close releases the backend's handle, if it holds one.
	Close() error
}
