// Package render turns query results and catalog summaries into
// deterministic plain text. The same input always renders to the same
// bytes; nothing here writes terminal escapes (the TUI layers its own
// styling on top).
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hfranco/xcl/internal/catalog"
	"github.com/hfranco/xcl/internal/query"
)

// NoResults is the rendering of an empty result set.
const NoResults = "No results found\n"

// FormatResult renders a grouped query result: a leading count line,
// then one block per printer model with one aligned line per record
// showing part number, color/type label, yield, region zone and IOT
// codename. Column widths are computed across the whole result so
// every group lines up.
func FormatResult(res query.Result) string {
	if res.Total == 0 {
		return NoResults
	}

	var sb strings.Builder
	if res.Total == 1 {
		sb.WriteString("Found 1 result\n")
	} else {
		fmt.Fprintf(&sb, "Found %d results\n", res.Total)
	}

	widths := resultWidths(res)
	for _, g := range res.Groups {
		sb.WriteString("\n")
		sb.WriteString(modelHeader(g.Model))
		sb.WriteString("\n")
		for _, r := range g.Records {
			sb.WriteString(recordLine(r, widths))
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func modelHeader(model string) string {
	if model == "" {
		return "(unknown model)"
	}
	return model
}

func recordLine(r catalog.Record, widths [4]int) string {
	cells := []string{
		padRight(r.PartNumber, widths[0]),
		padRight(r.Label(), widths[1]),
		padLeft(FormatYield(r.Yield), widths[2]),
		padRight(r.RegionZone, widths[3]),
		r.IOTCodename,
	}
	return "  " + strings.TrimRight(strings.Join(cells, "  "), " ")
}

func resultWidths(res query.Result) [4]int {
	var w [4]int
	for _, g := range res.Groups {
		for _, r := range g.Records {
			w[0] = max(w[0], len(r.PartNumber))
			w[1] = max(w[1], len(r.Label()))
			w[2] = max(w[2], len(FormatYield(r.Yield)))
			w[3] = max(w[3], len(r.RegionZone))
		}
	}
	return w
}

// FormatYield abbreviates a numeric yield for display: 30000 → 30K,
// 1500000 → 1.5M. Non-numeric yields pass through unchanged, except
// that an empty yield renders as "-".
func FormatYield(s string) string {
	n, err := catalog.ParseYield(s)
	if err != nil {
		if strings.TrimSpace(s) == "" {
			return "-"
		}
		return s
	}

	switch {
	case n >= 1_000_000:
		return trimPointZero(fmt.Sprintf("%.1fM", float64(n)/1_000_000))
	case n >= 1_000:
		return trimPointZero(fmt.Sprintf("%.1fK", float64(n)/1_000))
	default:
		return strconv.Itoa(n)
	}
}

func trimPointZero(s string) string {
	return strings.Replace(s, ".0", "", 1)
}

// FormatRecord renders a single record as an aligned field/value
// block, empty values shown as "-".
func FormatRecord(r catalog.Record) string {
	rows := []struct {
		name  string
		value string
	}{
		{"Part number", r.PartNumber},
		{"Color", r.Color},
		{"Printer model", r.PrinterModel},
		{"Consumable type", r.ConsumableType},
		{"Yield", r.Yield},
		{"Region zone", r.RegionZone},
		{"Metered/sold", r.MeteredSold},
		{"IOT codename", r.IOTCodename},
		{"Chip type", r.ChipType},
	}

	nameWidth := 0
	for _, row := range rows {
		nameWidth = max(nameWidth, len(row.name))
	}

	var sb strings.Builder
	for _, row := range rows {
		value := row.value
		if value == "" {
			value = "-"
		}
		sb.WriteString(padRight(row.name, nameWidth))
		sb.WriteString("  ")
		sb.WriteString(value)
		sb.WriteString("\n")
	}
	return sb.String()
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
