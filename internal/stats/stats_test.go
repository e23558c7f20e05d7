package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummaryTwoValues(t *testing.T) {
	s, err := Summary([]float64{225, 200})
	require.NoError(t, err)

	assert.Equal(t, 200.0, s.Min)
	assert.Equal(t, 212.5, s.Median)
	assert.Equal(t, 225.0, s.Max)
	assert.Empty(t, s.Outliers)
}

func TestSummaryQuartilesAndOutliers(t *testing.T) {
	s, err := Summary([]float64{180, 200, 210, 220, 240, 900})
	require.NoError(t, err)

	assert.Equal(t, 180.0, s.Min)
	assert.Equal(t, 900.0, s.Max)
	assert.Less(t, s.Q1, s.Median)
	assert.Less(t, s.Median, s.Q3)
	assert.Equal(t, []float64{900}, s.Outliers)
}

func TestSummaryDoesNotMutateInput(t *testing.T) {
	in := []float64{3, 1, 2}
	_, err := Summary(in)
	require.NoError(t, err)
	assert.Equal(t, []float64{3, 1, 2}, in)
}

func TestSummaryEmpty(t *testing.T) {
	_, err := Summary(nil)
	assert.Error(t, err)
}

func TestFrequencyOfFrequencies(t *testing.T) {
	dist := FrequencyOfFrequencies(map[string]int{"X": 2, "Y": 1, "Z": 1})
	assert.Equal(t, map[int]int{1: 2, 2: 1}, dist)
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]int{"X": 2, "Y": 1, "Z": 1})
	assert.Equal(t, []string{"Y", "Z", "X"}, keys)
}
