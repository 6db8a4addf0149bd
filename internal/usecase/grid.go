package usecase

import (
	"math"
	"strconv"
	"strings"
)

// headerIndex maps trimmed header names to their column positions. The
// first occurrence of a duplicated header wins.
func headerIndex(header []string) map[string]int {
	idx := make(map[string]int, len(header))
	for col, name := range header {
		name = strings.TrimSpace(name)
		if name == "" {
			continue
		}
		if _, exists := idx[name]; !exists {
			idx[name] = col
		}
	}
	return idx
}

// cellAt returns the trimmed cell text, tolerating ragged rows.
func cellAt(row []string, col int) string {
	if col < 0 || col >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[col])
}

// numberOrDefault is the typed parse-with-default for numeric columns.
// Non-numeric text, NaN and Inf all resolve to def; parse failures never
// propagate as errors. ok reports whether the raw text parsed cleanly, so
// callers can count silent coercions.
func numberOrDefault(raw string, def float64) (val float64, ok bool) {
	clean := strings.TrimSpace(raw)
	if clean == "" {
		return def, true
	}
	clean = strings.ReplaceAll(clean, ",", "")
	v, err := strconv.ParseFloat(clean, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return def, false
	}
	return v, true
}

// formatNumber serializes a float so that re-parsing it yields the same
// value (round-trip safety for writeback).
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
