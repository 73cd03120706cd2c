// Package importer parses bulk catalog files into consumable records.
//
// The input is line-oriented: one record per line, fields in the
// canonical order of catalog.FieldNames, separated by tabs or commas.
// Parsing is recoverable per line: a malformed line is reported with
// its line number and skipped, and every well-formed line around it
// still imports.
package importer

import (
	"fmt"
	"strings"

	"github.com/hfranco/xcl/internal/catalog"
)

// Format selects the field separator.
type Format string

const (
	// FormatAuto sniffs each line: tab when the line contains one,
	// comma otherwise.
	FormatAuto Format = "auto"
	FormatTSV  Format = "tsv"
	FormatCSV  Format = "csv"
)

// ParseFormat validates a format name from a flag or config value.
func ParseFormat(s string) (Format, error) {
	switch Format(strings.ToLower(strings.TrimSpace(s))) {
	case FormatAuto, "":
		return FormatAuto, nil
	case FormatTSV:
		return FormatTSV, nil
	case FormatCSV:
		return FormatCSV, nil
	default:
		return "", fmt.Errorf("unknown import format %q (valid: auto, tsv, csv)", s)
	}
}

// LineError reports a single input line that could not be parsed.
type LineError struct {
	Line   int // 1-based line number
	Reason string
}

func (e *LineError) Error() string {
	return fmt.Sprintf("line %d: %s", e.Line, e.Reason)
}

// ParseDelimited parses delimited catalog lines. It returns every
// record that parsed, in input order, plus one LineError per line
// that did not; a bad line never aborts the rest of the file.
//
// Fields are split on the separator and whitespace-trimmed. Comma
// lines therefore cannot carry embedded commas; tab is the lossless
// form. Each line must have exactly nine fields. Empty and
// all-whitespace lines are skipped silently.
func ParseDelimited(data []byte, format Format) ([]catalog.Record, []*LineError) {
	var records []catalog.Record
	var errs []*LineError

	lines := strings.Split(string(data), "\n")
	for i, line := range lines {
		line = strings.TrimSuffix(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitLine(line, format)
		if len(fields) != len(catalog.FieldNames) {
			errs = append(errs, &LineError{
				Line:   i + 1,
				Reason: fmt.Sprintf("expected %d fields, got %d", len(catalog.FieldNames), len(fields)),
			})
			continue
		}

		for j, f := range fields {
			fields[j] = strings.TrimSpace(f)
		}

		rec, err := catalog.FromFields(fields)
		if err != nil {
			errs = append(errs, &LineError{Line: i + 1, Reason: err.Error()})
			continue
		}
		records = append(records, rec)
	}

	return records, errs
}

func splitLine(line string, format Format) []string {
	switch format {
	case FormatTSV:
		return strings.Split(line, "\t")
	case FormatCSV:
		return strings.Split(line, ",")
	default:
		if strings.Contains(line, "\t") {
			return strings.Split(line, "\t")
		}
		return strings.Split(line, ",")
	}
}
