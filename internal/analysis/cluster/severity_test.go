package cluster

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jengzang/putusan-backend-go/internal/models"
)

func levelsByName(items []models.ClusterItem) map[string]models.SeverityLevel {
	out := make(map[string]models.SeverityLevel, len(items))
	for _, it := range items {
		out[it.Name] = it.Level
	}
	return out
}

func rank(l models.SeverityLevel) int {
	for i, s := range models.SeverityLevels {
		if s == l {
			return i
		}
	}
	return -1
}

func TestAssignSeverity_Empty(t *testing.T) {
	items, err := AssignSeverity(nil)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestAssignSeverity_ThreeBuckets(t *testing.T) {
	buckets := []models.Bucket{
		{Name: "A", Count: 10},
		{Name: "B", Count: 12},
		{Name: "C", Count: 100},
	}

	items, err := AssignSeverity(buckets)
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.InDelta(t, 0.0, items[0].NormalizedCount, 1e-9)
	assert.InDelta(t, 0.022, items[1].NormalizedCount, 1e-3)
	assert.InDelta(t, 1.0, items[2].NormalizedCount, 1e-9)

	levels := levelsByName(items)
	assert.Equal(t, models.LevelTinggi, levels["C"])
	assert.Equal(t, models.LevelRendah, levels["A"])
	assert.Equal(t, models.LevelSedang, levels["B"])
}

func TestAssignSeverity_SingleBucket(t *testing.T) {
	items, err := AssignSeverity([]models.Bucket{{Name: "A", Count: 5}})
	require.NoError(t, err)
	require.Len(t, items, 1)

	assert.Equal(t, models.LevelRendah, items[0].Level)
	assert.Equal(t, 0.0, items[0].NormalizedCount)
	assert.Equal(t, 5, items[0].Count)
}

func TestAssignSeverity_TwoBuckets(t *testing.T) {
	items, err := AssignSeverity([]models.Bucket{
		{Name: "A", Count: 40},
		{Name: "B", Count: 3},
	})
	require.NoError(t, err)

	levels := levelsByName(items)
	assert.Equal(t, models.LevelRendah, levels["B"])
	assert.Equal(t, models.LevelSedang, levels["A"])
}

func TestAssignSeverity_AllEqualCounts(t *testing.T) {
	items, err := AssignSeverity([]models.Bucket{
		{Name: "A", Count: 4},
		{Name: "B", Count: 4},
		{Name: "C", Count: 4},
		{Name: "D", Count: 4},
	})
	require.NoError(t, err)

	for _, it := range items {
		assert.Equal(t, 0.0, it.NormalizedCount)
		assert.Equal(t, models.LevelRendah, it.Level)
	}
}

func TestAssignSeverity_AllLevelsPresent(t *testing.T) {
	buckets := []models.Bucket{
		{Name: "11", Count: 1}, {Name: "12", Count: 2}, {Name: "13", Count: 3},
		{Name: "31", Count: 40}, {Name: "32", Count: 45}, {Name: "33", Count: 48},
		{Name: "35", Count: 120}, {Name: "36", Count: 130},
	}

	items, err := AssignSeverity(buckets)
	require.NoError(t, err)

	seen := make(map[models.SeverityLevel]bool)
	for _, it := range items {
		seen[it.Level] = true
		assert.GreaterOrEqual(t, it.NormalizedCount, 0.0)
		assert.LessOrEqual(t, it.NormalizedCount, 1.0)
	}
	assert.Len(t, seen, 3)

	levels := levelsByName(items)
	assert.Equal(t, models.LevelRendah, levels["11"])
	assert.Equal(t, models.LevelSedang, levels["32"])
	assert.Equal(t, models.LevelTinggi, levels["36"])
}

func TestAssignSeverity_LevelsFollowCounts(t *testing.T) {
	buckets := []models.Bucket{
		{Name: "a", Count: 7}, {Name: "b", Count: 1}, {Name: "c", Count: 19},
		{Name: "d", Count: 3}, {Name: "e", Count: 55}, {Name: "f", Count: 21},
		{Name: "g", Count: 2}, {Name: "h", Count: 33},
	}

	items, err := AssignSeverity(buckets)
	require.NoError(t, err)

	for _, a := range items {
		for _, b := range items {
			if a.Count < b.Count {
				assert.LessOrEqual(t, rank(a.Level), rank(b.Level),
					"%s(%d) ranked above %s(%d)", a.Name, a.Count, b.Name, b.Count)
			}
		}
	}
}

func TestAssignSeverity_Deterministic(t *testing.T) {
	buckets := []models.Bucket{
		{Name: "a", Count: 9}, {Name: "b", Count: 14}, {Name: "c", Count: 2},
		{Name: "d", Count: 30}, {Name: "e", Count: 31}, {Name: "f", Count: 8},
	}

	first, err := AssignSeverity(buckets)
	require.NoError(t, err)
	for i := 0; i < 5; i++ {
		again, err := AssignSeverity(buckets)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}

func TestRankClusters_OrdersByMeanRawCount(t *testing.T) {
	counts := []float64{100, 1, 50, 2}
	labels := []int{0, 1, 2, 1}

	levels := RankClusters(counts, labels)

	assert.Equal(t, models.LevelRendah, levels[1])
	assert.Equal(t, models.LevelSedang, levels[2])
	assert.Equal(t, models.LevelTinggi, levels[0])
}
