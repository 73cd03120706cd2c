// Package stats computes summary statistics over a consumables catalog.
package stats

import (
	"sort"

	"github.com/hfranco/xcl/internal/catalog"
)

// NameCount pairs a field value with the number of records carrying it.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats summarizes a catalog.
type Stats struct {
	Total     int `json:"total"`
	Models    int `json:"printer_models"`
	Regions   int `json:"region_zones"`
	ChipTypes int `json:"chip_types"`

	ByColor []NameCount `json:"by_color"`
	ByType  []NameCount `json:"by_type"`

	// Yield figures cover only records whose yield parses as a
	// number; NonNumericYields counts the rest.
	YieldMin         int     `json:"yield_min"`
	YieldMax         int     `json:"yield_max"`
	YieldMean        float64 `json:"yield_mean"`
	NumericYields    int     `json:"numeric_yields"`
	NonNumericYields int     `json:"non_numeric_yields"`
}

// Summarize computes catalog statistics in a single pass. Distinct
// counts (models, regions, chip types) ignore empty values.
func Summarize(records []catalog.Record) Stats {
	st := Stats{Total: len(records)}

	models := make(map[string]struct{})
	regions := make(map[string]struct{})
	chips := make(map[string]struct{})
	colors := make(map[string]int)
	types := make(map[string]int)

	yieldSum := 0
	for _, r := range records {
		if r.PrinterModel != "" {
			models[r.PrinterModel] = struct{}{}
		}
		if r.RegionZone != "" {
			regions[r.RegionZone] = struct{}{}
		}
		if r.ChipType != "" {
			chips[r.ChipType] = struct{}{}
		}
		colors[r.Color]++
		types[r.ConsumableType]++

		n, err := catalog.ParseYield(r.Yield)
		if err != nil {
			st.NonNumericYields++
			continue
		}
		if st.NumericYields == 0 || n < st.YieldMin {
			st.YieldMin = n
		}
		if st.NumericYields == 0 || n > st.YieldMax {
			st.YieldMax = n
		}
		st.NumericYields++
		yieldSum += n
	}

	st.Models = len(models)
	st.Regions = len(regions)
	st.ChipTypes = len(chips)
	if st.NumericYields > 0 {
		st.YieldMean = float64(yieldSum) / float64(st.NumericYields)
	}
	st.ByColor = sortedCounts(colors)
	st.ByType = sortedCounts(types)

	return st
}

// sortedCounts orders by count descending, then name ascending, so
// renderings are deterministic.
func sortedCounts(m map[string]int) []NameCount {
	out := make([]NameCount, 0, len(m))
	for name, count := range m {
		out = append(out, NameCount{Name: name, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Name < out[j].Name
	})
	return out
}
