package render

import (
	"fmt"
	"sort"
	"strings"

	"github.com/hfranco/xcl/internal/catalog"
)

// LibraryEmpty is the rendering of an empty catalog.
const LibraryEmpty = "Library is empty\n"

// FormatOverview renders the whole-catalog listing: one line per
// printer model, alphabetical (case-insensitive), with record counts
// broken down by consumable type. This is a browsing view, so unlike
// query results it orders models for scanning, not by appearance.
func FormatOverview(records []catalog.Record) string {
	if len(records) == 0 {
		return LibraryEmpty
	}

	counts := make(map[string]map[string]int) // model -> type -> count
	for _, r := range records {
		model := modelHeader(r.PrinterModel)
		if counts[model] == nil {
			counts[model] = make(map[string]int)
		}
		typ := strings.ToLower(strings.TrimSpace(r.ConsumableType))
		if typ == "" {
			typ = "other"
		}
		counts[model][typ]++
	}

	models := make([]string, 0, len(counts))
	for m := range counts {
		models = append(models, m)
	}
	sort.Slice(models, func(i, j int) bool {
		a, b := strings.ToLower(models[i]), strings.ToLower(models[j])
		if a != b {
			return a < b
		}
		return models[i] < models[j]
	})

	modelWidth := 0
	for _, m := range models {
		modelWidth = max(modelWidth, len(m))
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "%d printer models, %d records\n\n", len(models), len(records))
	for _, m := range models {
		total := 0
		for _, n := range counts[m] {
			total += n
		}
		fmt.Fprintf(&sb, "%s  %s (%s)\n",
			padRight(m, modelWidth),
			countNoun(total, "record"),
			typeBreakdown(counts[m]))
	}
	return sb.String()
}

func countNoun(n int, noun string) string {
	if n == 1 {
		return fmt.Sprintf("1 %s", noun)
	}
	return fmt.Sprintf("%d %ss", n, noun)
}

// typeBreakdown renders per-type counts ordered by count descending,
// ties by name, e.g. "4 toner, 2 drum".
func typeBreakdown(types map[string]int) string {
	names := make([]string, 0, len(types))
	for t := range types {
		names = append(names, t)
	}
	sort.Slice(names, func(i, j int) bool {
		if types[names[i]] != types[names[j]] {
			return types[names[i]] > types[names[j]]
		}
		return names[i] < names[j]
	})

	parts := make([]string, len(names))
	for i, t := range names {
		parts[i] = fmt.Sprintf("%d %s", types[t], t)
	}
	return strings.Join(parts, ", ")
}
