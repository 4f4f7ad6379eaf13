// Package stats computes descriptive statistics over sparse numeric series.
package stats

import (
	"math"
	"slices"
)

// Summary holds descriptive statistics for one metric
type Summary struct {
	Mean   float64 `json:"mean"`
	Median float64 `json:"median"`
	Min    float64 `json:"min"`
	Max    float64 `json:"max"`
}

// Summarize computes mean, median, min and max over the valid elements of
// values. Nil and NaN elements are skipped. It returns nil when no valid
// element is left. The input slice is not modified.
func Summarize(values []*float64) *Summary {
	clean := Clean(values)
	if len(clean) == 0 {
		return nil
	}

	slices.Sort(clean)

	var sum float64
	for _, v := range clean {
		sum += v
	}

	return &Summary{
		Mean:   sum / float64(len(clean)),
		Median: median(clean),
		Min:    clean[0],
		Max:    clean[len(clean)-1],
	}
}

// Clean returns the non-nil, non-NaN elements of values in their original order
func Clean(values []*float64) []float64 {
	clean := make([]float64, 0, len(values))
	for _, v := range values {
		if v == nil || math.IsNaN(*v) {
			continue
		}
		clean = append(clean, *v)
	}
	return clean
}

// median expects a sorted, non-empty slice
func median(sorted []float64) float64 {
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
