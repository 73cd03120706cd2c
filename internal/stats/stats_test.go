package stats

import (
	"testing"

	"github.com/hfranco/xcl/internal/catalog"
)

func TestSummarize(t *testing.T) {
	records := []catalog.Record{
		{PartNumber: "1", Color: "Black", PrinterModel: "DCP 550", ConsumableType: "toner", Yield: "30000", RegionZone: "WW", ChipType: "I2C"},
		{PartNumber: "2", Color: "Cyan", PrinterModel: "DCP 550", ConsumableType: "toner", Yield: "30,000", RegionZone: "WW", ChipType: "I2C"},
		{PartNumber: "3", Color: "Black", PrinterModel: "Phaser 5500", ConsumableType: "drum", Yield: "60000", RegionZone: "NA"},
		{PartNumber: "4", Color: "Black", PrinterModel: "Phaser 5500", ConsumableType: "toner", Yield: "N/A", RegionZone: "NA"},
	}

	st := Summarize(records)

	if st.Total != 4 {
		t.Errorf("Total = %d, want 4", st.Total)
	}
	if st.Models != 2 {
		t.Errorf("Models = %d, want 2", st.Models)
	}
	if st.Regions != 2 {
		t.Errorf("Regions = %d, want 2", st.Regions)
	}
	if st.ChipTypes != 1 {
		t.Errorf("ChipTypes = %d, want 1", st.ChipTypes)
	}

	if st.NumericYields != 3 {
		t.Errorf("NumericYields = %d, want 3", st.NumericYields)
	}
	if st.NonNumericYields != 1 {
		t.Errorf("NonNumericYields = %d, want 1", st.NonNumericYields)
	}
	if st.YieldMin != 30000 {
		t.Errorf("YieldMin = %d, want 30000", st.YieldMin)
	}
	if st.YieldMax != 60000 {
		t.Errorf("YieldMax = %d, want 60000", st.YieldMax)
	}
	if want := 40000.0; st.YieldMean != want {
		t.Errorf("YieldMean = %f, want %f", st.YieldMean, want)
	}
}

func TestSummarize_CountOrdering(t *testing.T) {
	records := []catalog.Record{
		{Color: "Cyan"},
		{Color: "Black"},
		{Color: "Black"},
		{Color: "Yellow"},
	}

	st := Summarize(records)

	if len(st.ByColor) != 3 {
		t.Fatalf("ByColor has %d entries, want 3", len(st.ByColor))
	}
	// Count descending, then name ascending.
	if st.ByColor[0].Name != "Black" || st.ByColor[0].Count != 2 {
		t.Errorf("ByColor[0] = %+v, want Black/2", st.ByColor[0])
	}
	if st.ByColor[1].Name != "Cyan" || st.ByColor[2].Name != "Yellow" {
		t.Errorf("tied colors not sorted by name: %+v", st.ByColor[1:])
	}
}

func TestSummarize_Empty(t *testing.T) {
	st := Summarize(nil)

	if st.Total != 0 || st.Models != 0 || st.NumericYields != 0 {
		t.Errorf("Summarize(nil) = %+v, want zero values", st)
	}
	if st.YieldMean != 0 {
		t.Errorf("YieldMean = %f, want 0 (no division by zero)", st.YieldMean)
	}
}
