package cluster

import (
	"fmt"
	"sort"

	"github.com/jengzang/putusan-backend-go/internal/models"
	"github.com/jengzang/putusan-backend-go/internal/stats"
)

const (
	// ClusterCount is the number of severity levels
	ClusterCount = 3
	// ClusterSeed fixes the k-means++ initialisation
	ClusterSeed = 42
)

// AssignSeverity normalizes bucket counts, clusters them and labels every
// bucket with the severity level of its cluster.
//
// When fewer than three clusters can be formed (fewer than three distinct
// counts) only the lowest labels are used: one cluster is Rendah, two are
// Rendah and Sedang.
func AssignSeverity(buckets []models.Bucket) ([]models.ClusterItem, error) {
	if len(buckets) == 0 {
		return []models.ClusterItem{}, nil
	}

	counts := make([]float64, len(buckets))
	for i, b := range buckets {
		counts[i] = float64(b.Count)
	}
	normalized := stats.Normalize(counts)

	result, err := stats.KMeans1D(normalized, stats.KMeansConfig{
		K:    ClusterCount,
		Seed: ClusterSeed,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to cluster counts: %w", err)
	}

	levels := RankClusters(counts, result.Labels)

	items := make([]models.ClusterItem, len(buckets))
	for i, b := range buckets {
		items[i] = models.ClusterItem{
			Name:            b.Name,
			Count:           b.Count,
			Level:           levels[result.Labels[i]],
			NormalizedCount: normalized[i],
		}
	}

	return items, nil
}

// RankClusters maps each cluster id present in labels to a severity level,
// ordering clusters by the mean of their raw counts.
func RankClusters(counts []float64, labels []int) map[int]models.SeverityLevel {
	sums := make(map[int]float64)
	sizes := make(map[int]int)
	for i, l := range labels {
		sums[l] += counts[i]
		sizes[l]++
	}

	ids := make([]int, 0, len(sizes))
	for id := range sizes {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(a, b int) bool {
		ma := sums[ids[a]] / float64(sizes[ids[a]])
		mb := sums[ids[b]] / float64(sizes[ids[b]])
		if ma != mb {
			return ma < mb
		}
		return ids[a] < ids[b]
	})

	levels := make(map[int]models.SeverityLevel, len(ids))
	for rank, id := range ids {
		if rank >= len(models.SeverityLevels) {
			rank = len(models.SeverityLevels) - 1
		}
		levels[id] = models.SeverityLevels[rank]
	}
	return levels
}
