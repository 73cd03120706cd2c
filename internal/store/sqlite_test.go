package store

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSQLite_CreateAndOpenEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	if err := Create(path); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		t.Fatal("Create() did not create database file")
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestSQLite_SaveAndReloadPreservesOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	s.AppendAll(testRecords())
	if err := s.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after Save error = %v", err)
	}

	got, want := reopened.All(), testRecords()
	if len(got) != len(want) {
		t.Fatalf("reloaded %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestSQLite_SaveReplacesContents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	s.AppendAll(testRecords())
	if err := s.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	// Saving a single record must replace, not append to, the table.
	second, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	trimmed := &Store{path: path, backend: second.backend, records: second.All()[:1]}
	if err := trimmed.Save(); err != nil {
		t.Fatalf("Save() error = %v", err)
	}

	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if reopened.Len() != 1 {
		t.Errorf("Len() after shrinking save = %d, want 1", reopened.Len())
	}
}

func TestSQLite_GarbageFileIsFormatError(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.db")
	if err := os.WriteFile(path, []byte("this is not a database"), 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}

	_, err := Open(path)
	if err == nil {
		t.Fatal("Open() on garbage file expected error, got nil")
	}
	if !IsFormatError(err) {
		t.Errorf("IsFormatError(%v) = false, want true", err)
	}
}
