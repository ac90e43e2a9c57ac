package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	got := Normalize([]float64{10, 12, 100})

	assert.InDelta(t, 0.0, got[0], 1e-9)
	assert.InDelta(t, 2.0/90.0, got[1], 1e-9)
	assert.InDelta(t, 1.0, got[2], 1e-9)
}

func TestNormalize_ZeroRange(t *testing.T) {
	assert.Equal(t, []float64{0, 0, 0}, Normalize([]float64{7, 7, 7}))
	assert.Equal(t, []float64{0}, Normalize([]float64{5}))
}

func TestNormalize_Empty(t *testing.T) {
	assert.Empty(t, Normalize(nil))
}

func TestMeanMinMax(t *testing.T) {
	values := []float64{4, 1, 7}

	assert.InDelta(t, 4.0, Mean(values), 1e-9)
	assert.Equal(t, 1.0, Min(values))
	assert.Equal(t, 7.0, Max(values))
	assert.Equal(t, 0.0, Mean(nil))
}

func TestRound2(t *testing.T) {
	assert.Equal(t, 3.33, Round2(10.0/3.0))
	assert.Equal(t, 2.5, Round2(2.5))
}

func TestDistinct(t *testing.T) {
	assert.Equal(t, 2, Distinct([]float64{1, 1, 2}))
	assert.Equal(t, 0, Distinct(nil))
}
