package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKMeans1D_NoSamples(t *testing.T) {
	_, err := KMeans1D(nil, KMeansConfig{K: 3, Seed: 42})
	assert.ErrorIs(t, err, ErrNoSamples)
}

func TestKMeans1D_InvalidK(t *testing.T) {
	_, err := KMeans1D([]float64{1}, KMeansConfig{K: 0})
	assert.Error(t, err)
}

func TestKMeans1D_ThreeSeparatedGroups(t *testing.T) {
	values := []float64{0.0, 0.02, 0.05, 0.48, 0.5, 0.52, 0.95, 1.0}

	res, err := KMeans1D(values, KMeansConfig{K: 3, Seed: 42})
	require.NoError(t, err)
	require.Equal(t, 3, res.K())

	assert.Equal(t, res.Labels[0], res.Labels[1])
	assert.Equal(t, res.Labels[1], res.Labels[2])
	assert.Equal(t, res.Labels[3], res.Labels[4])
	assert.Equal(t, res.Labels[4], res.Labels[5])
	assert.Equal(t, res.Labels[6], res.Labels[7])

	assert.NotEqual(t, res.Labels[0], res.Labels[3])
	assert.NotEqual(t, res.Labels[3], res.Labels[6])
	assert.NotEqual(t, res.Labels[0], res.Labels[6])
}

func TestKMeans1D_CapsAtDistinctValues(t *testing.T) {
	res, err := KMeans1D([]float64{0, 0, 1}, KMeansConfig{K: 3, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, 2, res.K())
	assert.Equal(t, res.Labels[0], res.Labels[1])
	assert.NotEqual(t, res.Labels[0], res.Labels[2])
}

func TestKMeans1D_SingleValue(t *testing.T) {
	res, err := KMeans1D([]float64{0}, KMeansConfig{K: 3, Seed: 42})
	require.NoError(t, err)

	assert.Equal(t, 1, res.K())
	assert.Equal(t, []int{0}, res.Labels)
}

func TestKMeans1D_EveryClusterNonEmpty(t *testing.T) {
	values := []float64{0, 0.1, 0.11, 0.12, 0.13, 0.9, 0.91, 1}

	res, err := KMeans1D(values, KMeansConfig{K: 3, Seed: 42})
	require.NoError(t, err)

	sizes := make(map[int]int)
	for _, l := range res.Labels {
		sizes[l]++
	}
	assert.Len(t, sizes, 3)
}

func TestKMeans1D_Deterministic(t *testing.T) {
	values := []float64{0.3, 0.1, 0.7, 0.2, 0.9, 0.0, 0.5, 1.0, 0.45}

	first, err := KMeans1D(values, KMeansConfig{K: 3, Seed: 42})
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := KMeans1D(values, KMeansConfig{K: 3, Seed: 42})
		require.NoError(t, err)
		assert.Equal(t, first.Labels, again.Labels)
		assert.Equal(t, first.Centroids, again.Centroids)
	}
}

func TestKMeans1D_CentroidsAreClusterMeans(t *testing.T) {
	values := []float64{0, 0.1, 0.5, 0.6, 1}

	res, err := KMeans1D(values, KMeansConfig{K: 3, Seed: 7})
	require.NoError(t, err)

	sums := make([]float64, res.K())
	sizes := make([]int, res.K())
	for i, v := range values {
		sums[res.Labels[i]] += v
		sizes[res.Labels[i]]++
	}
	for j := range res.Centroids {
		require.Positive(t, sizes[j])
		assert.InDelta(t, sums[j]/float64(sizes[j]), res.Centroids[j], 1e-9)
	}
}
