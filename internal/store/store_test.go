package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hfranco/xcl/internal/catalog"
)

func testRecords() []catalog.Record {
	return []catalog.Record{
		{
			PartNumber:     "006R01521",
			Color:          "Black",
			PrinterModel:   "DCP 550/560/570",
			ConsumableType: "toner",
			Yield:          "30000",
			RegionZone:     "WW",
			MeteredSold:    "Sold",
			IOTCodename:    "Hera2cXC",
			ChipType:       "I2C",
		},
		{
			PartNumber:     "013R00662",
			Color:          "",
			PrinterModel:   "WorkCentre 7525",
			ConsumableType: "drum",
			Yield:          "125000",
			RegionZone:     "NA",
			MeteredSold:    "Metered",
			IOTCodename:    "AltonaHLX",
			ChipType:       "",
		},
	}
}

func writeCatalog(t *testing.T, path string, records []catalog.Record) {
	t.Helper()
	data, err := EncodeRecords(records)
	if err != nil {
		t.Fatalf("EncodeRecords() error = %v", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatalf("writing fixture: %v", err)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nope.json")

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("Len() = %d, want 0", s.Len())
	}
}

func TestOpen_LoadsRecordsInOrder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writeCatalog(t, path, testRecords())

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	got := s.All()
	want := testRecords()
	if len(got) != len(want) {
		t.Fatalf("All() returned %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestOpen_MalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"not json", "part,color\n006R01521,Black\n"},
		{"top-level object", `{"part_number":"006R01521"}`},
		{"truncated array", `[{"part_number":"006R01521"`},
		{"empty file", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "bad.json")
			if err := os.WriteFile(path, []byte(tt.content), 0644); err != nil {
				t.Fatalf("writing fixture: %v", err)
			}

			_, err := Open(path)
			if err == nil {
				t.Fatal("Open() expected error, got nil")
			}
			if !IsFormatError(err) {
				t.Errorf("IsFormatError(%v) = false, want true", err)
			}
		})
	}
}

func TestAppend_DoesNotPersist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")
	writeCatalog(t, path, testRecords()[:1])

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}

	s.Append(testRecords()[1])
	if s.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", s.Len())
	}

	// The file must be untouched until Save.
	reopened, err := Open(path)
	if err != nil {
		t.Fatalf("Open() error = %v", err)
	}
	if reopened.Len() != 1 {
		t.Errorf("after Append without Save, file has %d records, want 1", reopened.Len())
	}
}

func TestAppend_AllowsDuplicates(t *testing.T) {
	s := &Store{backend: &jsonBackend{}}
	rec := testRecords()[0]

	s.Append(rec)
	s.Append(rec)

	if s.Len() != 2 {
		t.Errorf("Len() = %d, want 2 (duplicates are legal)", s.Len())
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	s := &Store{backend: &jsonBackend{}}
	s.AppendAll(testRecords())

	snapshot := s.All()
	snapshot[0].PartNumber = "mutated"

	if s.All()[0].PartNumber != "006R01521" {
		t.Error("mutating All() result leaked into the store")
	}
}

func TestSave_RoundTrips(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.json")

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
		t.Fatalf("round-trip returned %d records, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("record %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "new.json")

	if err := Create(path); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() after Create error = %v", err)
	}
	if s.Len() != 0 {
		t.Errorf("new catalog has %d records, want 0", s.Len())
	}

	if err := Create(path); err == nil {
		t.Error("Create() on existing file expected error, got nil")
	}
}

func TestBackendFor(t *testing.T) {
	tests := []struct {
		path       string
		wantSQLite bool
	}{
		{"catalog.json", false},
		{"catalog.db", true},
		{"catalog.sqlite", true},
		{"catalog.SQLITE3", true},
		{"catalog", false},
		{"catalog.txt", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, isSQLite := backendFor(tt.path).(*sqliteBackend)
			if isSQLite != tt.wantSQLite {
				t.Errorf("backendFor(%q) sqlite = %v, want %v", tt.path, isSQLite, tt.wantSQLite)
			}
		})
	}
}
