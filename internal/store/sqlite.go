package store

import (
	"database/sql"
	"fmt"
	"os"

	_ "modernc.org/sqlite"

	"github.com/hfranco/xcl/internal/catalog"
)

// sqliteBackend stores the catalog in a single-table SQLite file.
// SQLite is only a container here: the store still loads every row
// into memory, and queries scan the in-memory records. The integer
// primary key preserves insertion order across save/load cycles.
type sqliteBackend struct {
	path string
}

const createTableSQL = `CREATE TABLE IF NOT EXISTS consumables (
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  part_number TEXT NOT NULL DEFAULT '',
  color TEXT NOT NULL DEFAULT '',
  printer_model TEXT NOT NULL DEFAULT '',
  consumable_type TEXT NOT NULL DEFAULT '',
  yield TEXT NOT NULL DEFAULT '',
  region_zone TEXT NOT NULL DEFAULT '',
  metered_sold TEXT NOT NULL DEFAULT '',
  iot_codename TEXT NOT NULL DEFAULT '',
  chip_type TEXT NOT NULL DEFAULT ''
)`

const selectAllSQL = `SELECT part_number, color, printer_model, consumable_type,
  yield, region_zone, metered_sold, iot_codename, chip_type
  FROM consumables ORDER BY id`

const insertSQL = `INSERT INTO consumables (part_number, color, printer_model,
  consumable_type, yield, region_zone, metered_sold, iot_codename, chip_type)
  VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

func (b *sqliteBackend) open() (*sql.DB, error) {
	db, err := sql.Open("sqlite", b.path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	// SQLite doesn't support concurrent writes
	db.SetMaxOpenConns(1)

	return db, nil
}

func (b *sqliteBackend) load() ([]catalog.Record, error) {
	if _, err := os.Stat(b.path); os.IsNotExist(err) {
		return nil, nil
	}

	db, err := b.open()
	if err != nil {
		return nil, err
	}
	defer db.Close()

	if _, err := db.Exec(createTableSQL); err != nil {
		// The file exists but is not a usable catalog database.
		return nil, &FormatError{Path: b.path, Err: err}
	}

	rows, err := db.Query(selectAllSQL)
	if err != nil {
		return nil, &FormatError{Path: b.path, Err: err}
	}
	defer rows.Close()

	var records []catalog.Record
	for rows.Next() {
		var r catalog.Record
		if err := rows.Scan(
			&r.PartNumber, &r.Color, &r.PrinterModel, &r.ConsumableType,
			&r.Yield, &r.RegionZone, &r.MeteredSold, &r.IOTCodename, &r.ChipType,
		); err != nil {
			return nil, &FormatError{Path: b.path, Err: err}
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, &FormatError{Path: b.path, Err: err}
	}

	return records, nil
}

func (b *sqliteBackend) save(records []catalog.Record) error {
	db, err := b.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec("DELETE FROM consumables"); err != nil {
		return fmt.Errorf("clearing table: %w", err)
	}

	stmt, err := tx.Prepare(insertSQL)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for i, r := range records {
		if _, err := stmt.Exec(
			r.PartNumber, r.Color, r.PrinterModel, r.ConsumableType,
			r.Yield, r.RegionZone, r.MeteredSold, r.IOTCodename, r.ChipType,
		); err != nil {
			return fmt.Errorf("inserting record %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing: %w", err)
	}
	return nil
}

func (b *sqliteBackend) create() error {
	if _, err := os.Stat(b.path); err == nil {
		return fmt.Errorf("creating catalog: %s already exists", b.path)
	}

	db, err := b.open()
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.Exec(createTableSQL); err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
