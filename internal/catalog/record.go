// Package catalog defines the core domain type for printer consumables.
package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Record represents a single printer consumable: a toner cartridge,
// drum unit, or similar supply item.
//
// Every field is a string, including yield. Catalog sources are
// hand-maintained exports and routinely carry values like "N/A" or
// "30,000"; interpreting them is the query layer's job, not the
// storage type's.
type Record struct {
	PartNumber     string `json:"part_number"`     // Orderable part code (e.g. 006R01521)
	Color          string `json:"color"`           // Black, Cyan, Magenta, Yellow, ...
	PrinterModel   string `json:"printer_model"`   // Printer family or series text
	ConsumableType string `json:"consumable_type"` // toner, drum, ...
	Yield          string `json:"yield"`           // Page yield digits as text
	RegionZone     string `json:"region_zone"`     // Sales region code (WW, NA, XE, ...)
	MeteredSold    string `json:"metered_sold"`    // Metered vs sold channel marker
	IOTCodename    string `json:"iot_codename"`    // Internal engine codename
	ChipType       string `json:"chip_type"`       // Chip variant marker
}

// FieldNames lists the record fields in canonical table order. Bulk
// import lines and exported JSON objects follow this order.
var FieldNames = []string{
	"part_number",
	"color",
	"printer_model",
	"consumable_type",
	"yield",
	"region_zone",
	"metered_sold",
	"iot_codename",
	"chip_type",
}

// FromFields builds a Record from values in FieldNames order.
func FromFields(fields []string) (Record, error) {
	if len(fields) != len(FieldNames) {
		return Record{}, fmt.Errorf("expected %d fields, got %d", len(FieldNames), len(fields))
	}
	return Record{
		PartNumber:     fields[0],
		Color:          fields[1],
		PrinterModel:   fields[2],
		ConsumableType: fields[3],
		Yield:          fields[4],
		RegionZone:     fields[5],
		MeteredSold:    fields[6],
		IOTCodename:    fields[7],
		ChipType:       fields[8],
	}, nil
}

// Fields returns the record's values in FieldNames order.
func (r Record) Fields() []string {
	return []string{
		r.PartNumber,
		r.Color,
		r.PrinterModel,
		r.ConsumableType,
		r.Yield,
		r.RegionZone,
		r.MeteredSold,
		r.IOTCodename,
		r.ChipType,
	}
}

// Label returns the human description of what the consumable is,
// e.g. "Black toner". Either half may be missing.
func (r Record) Label() string {
	color := strings.TrimSpace(r.Color)
	typ := strings.TrimSpace(r.ConsumableType)
	switch {
	case color == "" && typ == "":
		return ""
	case color == "":
		return typ
	case typ == "":
		return color
	}
	return color + " " + typ
}

// ParseYield converts a yield string to a page count. Catalog exports
// write yields with thousands separators ("30,000"), so ASCII commas
// are stripped before parsing. Values like "N/A" or "" return an
// error; callers that scan catalogs treat that as "not numeric" and
// skip the record rather than failing.
func ParseYield(s string) (int, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if s == "" {
		return 0, fmt.Errorf("empty yield")
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("yield %q is not a number", s)
	}
	return n, nil
}
