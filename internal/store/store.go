// Package store loads and persists the consumables catalog.
//
// A catalog lives in a single file: a JSON array by default, or a
// SQLite database when the path ends in .db/.sqlite/.sqlite3. The
// whole catalog is held in memory; Append mutates only the in-memory
// slice, and nothing is written back until an explicit Save.
package store

import (
	"path/filepath"
	"strings"

	"github.com/hfranco/xcl/internal/catalog"
)

// backend reads and writes the full record set of one catalog file.
type backend interface {
	load() ([]catalog.Record, error)
	save(records []catalog.Record) error
	create() error
}

// Store is an in-memory catalog bound to its backing file.
type Store struct {
	path    string
	backend backend
	records []catalog.Record
}

// Open loads the catalog at path into memory, preserving file order.
// A missing file yields an empty store; a file that exists but cannot
// be parsed fails with a *FormatError.
func Open(path string) (*Store, error) {
	b := backendFor(path)
	records, err := b.load()
	if err != nil {
		return nil, err
	}
	return &Store{path: path, backend: b, records: records}, nil
}

// Create writes a new empty catalog at path, choosing the backend by
// extension. It fails if the file already exists.
func Create(path string) error {
	return backendFor(path).create()
}

// Append adds a record to the in-memory catalog. No uniqueness or
// validation checks are applied; duplicate part numbers are legal.
// The file is untouched until Save.
func (s *Store) Append(rec catalog.Record) {
	s.records = append(s.records, rec)
}

// AppendAll appends records in order, with the same semantics as
// repeated Append calls.
func (s *Store) AppendAll(records []catalog.Record) {
	s.records = append(s.records, records...)
}

// All returns a copy of the catalog in insertion order (load order,
// then append order). Mutating the returned slice does not affect the
// store.
func (s *Store) All() []catalog.Record {
	out := make([]catalog.Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records currently in memory.
func (s *Store) Len() int {
	return len(s.records)
}

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Save persists the in-memory catalog back to the backing file,
// replacing its previous contents.
func (s *Store) Save() error {
	return s.backend.save(s.records)
}

func backendFor(path string) backend {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".db", ".sqlite", ".sqlite3":
		return &sqliteBackend{path: path}
	default:
		return &jsonBackend{path: path}
	}
}
