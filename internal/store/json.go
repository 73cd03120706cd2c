package store

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/hfranco/xcl/internal/catalog"
)

// DecodeRecords parses a catalog document: a top-level JSON array of
// objects keyed by the nine record fields. Keys absent from an object
// default to empty strings; unknown keys are ignored. Anything that
// is not an array of objects is an error.
func DecodeRecords(data []byte) ([]catalog.Record, error) {
	var records []catalog.Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// EncodeRecords serializes records to the canonical interchange
// shape: a two-space-indented JSON array with every record carrying
// all nine keys, terminated by a newline. Encoding then decoding
// yields the same records in the same order.
func EncodeRecords(records []catalog.Record) ([]byte, error) {
	if records == nil {
		records = []catalog.Record{}
	}
	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding records: %w", err)
	}
	return append(data, '\n'), nil
}

// jsonBackend stores the catalog as a JSON array file.
type jsonBackend struct {
	path string
}

func (b *jsonBackend) load() ([]catalog.Record, error) {
	data, err := os.ReadFile(b.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading catalog: %w", err)
	}

	records, err := DecodeRecords(data)
	if err != nil {
		return nil, &FormatError{Path: b.path, Err: err}
	}
	return records, nil
}

func (b *jsonBackend) save(records []catalog.Record) error {
	data, err := EncodeRecords(records)
	if err != nil {
		return err
	}
	if err := os.WriteFile(b.path, data, 0644); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}

func (b *jsonBackend) create() error {
	f, err := os.OpenFile(b.path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("creating catalog: %w", err)
	}
	defer f.Close()

	if _, err := f.Write([]byte("[]\n")); err != nil {
		return fmt.Errorf("writing catalog: %w", err)
	}
	return nil
}
