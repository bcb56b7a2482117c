package analytics

import "math"

// round2 rounds a monetary value to 2 decimal places. Applied to output
// fields only; accumulation keeps full precision.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// truncate applies a post-sort result limit. A limit of 0 means
// unrestricted.
func truncate[T any](rows []T, limit int) []T {
	if limit > 0 && len(rows) > limit {
		return rows[:limit]
	}
	return rows
}

const dateLayout = "2006-01-02"
