// Package stats computes the descriptive statistics behind the charts.
package stats

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// FiveNumber is the five-number summary of a sample plus its 1.5*IQR
// outliers.
type FiveNumber struct {
	Min, Q1, Median, Q3, Max float64
	Outliers                 []float64
}

// Summary computes the five-number summary of values. Quantiles are
// linearly interpolated, so the median of [200, 225] is 212.5. The input
// slice is not modified.
func Summary(values []float64) (FiveNumber, error) {
	if len(values) == 0 {
		return FiveNumber{}, fmt.Errorf("stats: summary of an empty sample")
	}

	xs := append([]float64(nil), values...)
	sort.Float64s(xs)

	s := FiveNumber{
		Min:    xs[0],
		Q1:     stat.Quantile(0.25, stat.LinInterp, xs, nil),
		Median: stat.Quantile(0.5, stat.LinInterp, xs, nil),
		Q3:     stat.Quantile(0.75, stat.LinInterp, xs, nil),
		Max:    xs[len(xs)-1],
	}

	iqr := s.Q3 - s.Q1
	low, high := s.Q1-1.5*iqr, s.Q3+1.5*iqr
	for _, v := range xs {
		if v < low || v > high {
			s.Outliers = append(s.Outliers, v)
		}
	}
	return s, nil
}

// FrequencyOfFrequencies folds an artist→count mapping into
// songs-per-artist→number-of-artists, the distribution the frequency chart
// plots.
func FrequencyOfFrequencies(counts map[string]int) map[int]int {
	dist := make(map[int]int)
	for _, n := range counts {
		dist[n]++
	}
	return dist
}

// SortedKeys returns the artists ordered by ascending count, ties broken by
// name so chart output is deterministic.
func SortedKeys(counts map[string]int) []string {
	keys := make([]string, 0, len(counts))
	for k := range counts {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if counts[keys[i]] != counts[keys[j]] {
			return counts[keys[i]] < counts[keys[j]]
		}
		return keys[i] < keys[j]
	})
	return keys
}
