package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/hfranco/xcl/internal/stats"
)

// FormatStats renders catalog statistics as aligned key/value text.
func FormatStats(st stats.Stats) string {
	if st.Total == 0 {
		return LibraryEmpty
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "Records         %d\n", st.Total)
	fmt.Fprintf(&sb, "Printer models  %d\n", st.Models)
	fmt.Fprintf(&sb, "Region zones    %d\n", st.Regions)
	fmt.Fprintf(&sb, "Chip types      %d\n", st.ChipTypes)

	if st.NumericYields > 0 {
		fmt.Fprintf(&sb, "Yield range     %d-%d, mean %s", st.YieldMin, st.YieldMax, formatMean(st.YieldMean))
		if st.NonNumericYields > 0 {
			fmt.Fprintf(&sb, " (%d non-numeric)", st.NonNumericYields)
		}
		sb.WriteString("\n")
	} else if st.NonNumericYields > 0 {
		fmt.Fprintf(&sb, "Yield range     no numeric yields (%d non-numeric)\n", st.NonNumericYields)
	}

	writeCounts(&sb, "By color", st.ByColor)
	writeCounts(&sb, "By type", st.ByType)

	return sb.String()
}

func writeCounts(sb *strings.Builder, title string, counts []stats.NameCount) {
	if len(counts) == 0 {
		return
	}

	nameWidth := 0
	for _, c := range counts {
		nameWidth = max(nameWidth, len(displayName(c.Name)))
	}

	sb.WriteString("\n")
	sb.WriteString(title)
	sb.WriteString("\n")
	for _, c := range counts {
		fmt.Fprintf(sb, "  %s  %d\n", padRight(displayName(c.Name), nameWidth), c.Count)
	}
}

func displayName(s string) string {
	if s == "" {
		return "(none)"
	}
	return s
}

// formatMean prints a mean yield with at most one decimal place,
// dropping a trailing ".0".
func formatMean(mean float64) string {
	s := strconv.FormatFloat(mean, 'f', 1, 64)
	return strings.TrimSuffix(s, ".0")
}
