package stats

import (
	"errors"
	"fmt"
	"math"
	"math/rand/v2"
)

// ErrNoSamples is returned when clustering is asked to run on empty input
var ErrNoSamples = errors.New("kmeans: no samples")

// DefaultMaxIterations bounds the Lloyd iterations of KMeans1D
const DefaultMaxIterations = 300

// KMeansConfig configures a KMeans1D run
type KMeansConfig struct {
	K             int    // Requested cluster count
	Seed          uint64 // Seed of the k-means++ initialisation
	MaxIterations int
}

// KMeansResult holds the outcome of a KMeans1D run
type KMeansResult struct {
	Labels     []int     // Cluster index of each input value
	Centroids  []float64 // Final centroid of each cluster
	Iterations int
}

// K returns the number of clusters actually produced
func (r *KMeansResult) K() int {
	return len(r.Centroids)
}

// KMeans1D partitions one-dimensional values into at most cfg.K clusters
// using k-means++ seeding followed by Lloyd iterations.
//
// The cluster count is capped at the number of distinct values, so the
// result may hold fewer than cfg.K clusters. Identical input and seed always
// produce identical labels.
func KMeans1D(values []float64, cfg KMeansConfig) (*KMeansResult, error) {
	if len(values) == 0 {
		return nil, ErrNoSamples
	}
	if cfg.K < 1 {
		return nil, fmt.Errorf("kmeans: invalid cluster count %d", cfg.K)
	}
	if cfg.MaxIterations <= 0 {
		cfg.MaxIterations = DefaultMaxIterations
	}

	k := cfg.K
	if d := Distinct(values); d < k {
		k = d
	}

	rng := rand.New(rand.NewPCG(cfg.Seed, cfg.Seed))
	centroids := seedCentroids(values, k, rng)

	labels := make([]int, len(values))
	prev := make([]int, len(values))
	for i := range prev {
		prev[i] = -1
	}

	iterations := 0
	for iterations < cfg.MaxIterations {
		iterations++
		assignNearest(values, centroids, labels)
		fillEmptyClusters(values, centroids, labels)
		updateCentroids(values, centroids, labels)

		if sameLabels(prev, labels) {
			break
		}
		copy(prev, labels)
	}

	return &KMeansResult{
		Labels:     labels,
		Centroids:  centroids,
		Iterations: iterations,
	}, nil
}

// seedCentroids picks k initial centroids with k-means++ weighting.
// k must not exceed the number of distinct values.
func seedCentroids(values []float64, k int, rng *rand.Rand) []float64 {
	centroids := make([]float64, 0, k)
	centroids = append(centroids, values[rng.IntN(len(values))])

	weights := make([]float64, len(values))
	for len(centroids) < k {
		var total float64
		for i, v := range values {
			d := math.Abs(v - centroids[nearest(v, centroids)])
			weights[i] = d * d
			total += weights[i]
		}

		target := rng.Float64() * total
		next := -1
		var cumulative float64
		for i, w := range weights {
			if w == 0 {
				continue
			}
			cumulative += w
			next = i
			if cumulative >= target {
				break
			}
		}
		centroids = append(centroids, values[next])
	}

	return centroids
}

// nearest returns the index of the closest centroid, lowest index on ties
func nearest(v float64, centroids []float64) int {
	best := 0
	bestDist := math.Abs(v - centroids[0])
	for j := 1; j < len(centroids); j++ {
		if d := math.Abs(v - centroids[j]); d < bestDist {
			best, bestDist = j, d
		}
	}
	return best
}

func assignNearest(values, centroids []float64, labels []int) {
	for i, v := range values {
		labels[i] = nearest(v, centroids)
	}
}

// fillEmptyClusters moves the point farthest from its centroid into each
// empty cluster, taking only from clusters with more than one member.
func fillEmptyClusters(values, centroids []float64, labels []int) {
	sizes := make([]int, len(centroids))
	for _, l := range labels {
		sizes[l]++
	}

	for j := range centroids {
		if sizes[j] > 0 {
			continue
		}

		far, farDist := -1, -1.0
		for i, v := range values {
			l := labels[i]
			if sizes[l] < 2 {
				continue
			}
			if d := math.Abs(v - centroids[l]); d > farDist {
				far, farDist = i, d
			}
		}
		if far < 0 {
			return
		}

		sizes[labels[far]]--
		labels[far] = j
		sizes[j]++
		centroids[j] = values[far]
	}
}

func updateCentroids(values, centroids []float64, labels []int) {
	sums := make([]float64, len(centroids))
	sizes := make([]int, len(centroids))
	for i, v := range values {
		sums[labels[i]] += v
		sizes[labels[i]]++
	}
	for j := range centroids {
		if sizes[j] > 0 {
			centroids[j] = sums[j] / float64(sizes[j])
		}
	}
}

func sameLabels(a, b []int) bool {
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
