// Package yamlfile persists the address book as a single YAML document.
package yamlfile

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/aanand-mishra/assistant-bot/internal/config"
	"github.com/aanand-mishra/assistant-bot/internal/contacts"
)

// document is the on-disk shape. Contacts is a list so book order survives.
type document struct {
	Contacts []contact `yaml:"contacts"`
}

type contact struct {
	Name     string   `yaml:"name"`
	Phones   []string `yaml:"phones"`
	Birthday string   `yaml:"birthday,omitempty"`
}

// Store reads and writes one YAML file. It holds no open handle between
// calls.
type Store struct {
	path string
}

// New returns a Store for cfg.StoragePath.
func New(cfg *config.Config) *Store {
	return &Store{path: cfg.StoragePath}
}

// Save writes book to a temporary file next to the target and renames it
// into place.
func (s *Store) Save(book *contacts.AddressBook) error {
	var doc document
	for _, r := range book.Records() {
		c := contact{Name: r.Name().Value(), Phones: []string{}}
		for _, p := range r.Phones() {
			c.Phones = append(c.Phones, p.Value())
		}
		if b, ok := r.Birthday(); ok {
			c.Birthday = b.Value()
		}
		doc.Contacts = append(doc.Contacts, c)
	}

	data, err := yaml.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("yamlfile: marshaling: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("yamlfile: creating directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("yamlfile: creating temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("yamlfile: writing %s: %w", tmp.Name(), err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("yamlfile: closing %s: %w", tmp.Name(), err)
	}
	if err := os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("yamlfile: renaming to %s: %w", s.path, err)
	}
	return nil
}

// Load reads the book back. A missing file yields an empty book.
func (s *Store) Load() (*contacts.AddressBook, error) {
	book := contacts.NewAddressBook()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return book, nil
		}
		return nil, fmt.Errorf("yamlfile: reading %s: %w", s.path, err)
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yamlfile: parsing %s: %w", s.path, err)
	}

	for _, c := range doc.Contacts {
		r, err := contacts.RestoreRecord(c.Name, c.Phones, c.Birthday)
		if err != nil {
			return nil, fmt.Errorf("yamlfile: restoring %q: %w", c.Name, err)
		}
		book.Add(r)
	}
	return book, nil
}

// Close is a no-op; files are opened and closed per call.
func (s *Store) Close() error { return nil }
