package render

import (
	"strings"
	"testing"

	"github.com/hfranco/xcl/internal/catalog"
	"github.com/hfranco/xcl/internal/query"
)

func heraFamily() []catalog.Record {
	colors := []string{"Black", "Cyan", "Magenta", "Yellow"}
	records := make([]catalog.Record, len(colors))
	for i, c := range colors {
		records[i] = catalog.Record{
			PartNumber:     "006R0152" + string(rune('1'+i)),
			Color:          c,
			PrinterModel:   "DCP 550/560/570",
			ConsumableType: "toner",
			Yield:          "30000",
			RegionZone:     "WW",
			IOTCodename:    "Hera2cXC",
		}
	}
	return records
}

func TestFormatResult_GroupedOutput(t *testing.T) {
	res, err := query.Search(heraFamily(), "iot", "Hera2cXC")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	want := `Found 4 results

DCP 550/560/570
  006R01521  Black toner    30K  WW  Hera2cXC
  006R01522  Cyan toner     30K  WW  Hera2cXC
  006R01523  Magenta toner  30K  WW  Hera2cXC
  006R01524  Yellow toner   30K  WW  Hera2cXC
`

	if got := FormatResult(res); got != want {
		t.Errorf("FormatResult() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatResult_SingularCount(t *testing.T) {
	res, err := query.Search(heraFamily(), "color", "Magenta")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	out := FormatResult(res)
	if !strings.HasPrefix(out, "Found 1 result\n") {
		t.Errorf("FormatResult() = %q, want leading %q", out, "Found 1 result")
	}
}

func TestFormatResult_GroupOrderFollowsFirstMatch(t *testing.T) {
	records := []catalog.Record{
		{PartNumber: "1", PrinterModel: "Versant 280", Color: "Black"},
		{PartNumber: "2", PrinterModel: "AltaLink C8100", Color: "Black"},
		{PartNumber: "3", PrinterModel: "Versant 280", Color: "Black"},
	}
	res, err := query.Search(records, "color", "Black")
	if err != nil {
		t.Fatalf("Search() error = %v", err)
	}

	out := FormatResult(res)
	versant := strings.Index(out, "Versant 280\n")
	altalink := strings.Index(out, "AltaLink C8100\n")
	if versant == -1 || altalink == -1 {
		t.Fatalf("missing group headers in output:\n%s", out)
	}
	if versant > altalink {
		t.Errorf("Versant group should render before AltaLink:\n%s", out)
	}
}

func TestFormatResult_NoResults(t *testing.T) {
	res := query.Result{}
	if got := FormatResult(res); got != "No results found\n" {
		t.Errorf("FormatResult(empty) = %q, want %q", got, "No results found\n")
	}
	if strings.Contains(FormatResult(res), "Found") {
		t.Error("empty result must not include a count line")
	}
}

func TestFormatYield(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"30000", "30K"},
		{"30,000", "30K"},
		{"7500", "7.5K"},
		{"125000", "125K"},
		{"1000000", "1M"},
		{"1500000", "1.5M"},
		{"999", "999"},
		{"N/A", "N/A"},
		{"", "-"},
		{"  ", "-"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := FormatYield(tt.input); got != tt.want {
				t.Errorf("FormatYield(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestFormatRecord(t *testing.T) {
	rec := catalog.Record{
		PartNumber:   "006R01521",
		PrinterModel: "DCP 550/560/570",
		IOTCodename:  "Hera2cXC",
	}

	out := FormatRecord(rec)

	for _, want := range []string{"Part number", "006R01521", "IOT codename", "Hera2cXC"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatRecord() missing %q:\n%s", want, out)
		}
	}

	// Empty fields render as "-" so the block always has nine rows.
	if got := strings.Count(out, "\n"); got != 9 {
		t.Errorf("FormatRecord() has %d lines, want 9", got)
	}
	if !strings.Contains(out, "Color            -") {
		t.Errorf("empty color should render as -, got:\n%s", out)
	}
}

func TestFormatOverview(t *testing.T) {
	records := []catalog.Record{
		{PrinterModel: "Phaser 5500", ConsumableType: "drum"},
		{PrinterModel: "DCP 550", ConsumableType: "toner"},
		{PrinterModel: "Phaser 5500", ConsumableType: ""},
		{PrinterModel: "DCP 550", ConsumableType: "toner"},
	}

	want := `2 printer models, 4 records

DCP 550      2 records (2 toner)
Phaser 5500  2 records (1 drum, 1 other)
`

	if got := FormatOverview(records); got != want {
		t.Errorf("FormatOverview() =\n%q\nwant\n%q", got, want)
	}
}

func TestFormatOverview_Empty(t *testing.T) {
	if got := FormatOverview(nil); got != LibraryEmpty {
		t.Errorf("FormatOverview(nil) = %q, want %q", got, LibraryEmpty)
	}
}
