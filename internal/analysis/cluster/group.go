// Package cluster groups judgments by jurisdiction and grades the group
// counts into severity levels.
package cluster

import (
	"sort"

	"github.com/jengzang/putusan-backend-go/internal/models"
)

// Resolve drops judgments whose jurisdiction did not resolve
func Resolve(records []models.Judgment) []models.Judgment {
	resolved := make([]models.Judgment, 0, len(records))
	for _, r := range records {
		if r.Jurisdiction != nil {
			resolved = append(resolved, r)
		}
	}
	return resolved
}

// KeyOf returns the grouping key of a jurisdiction. Missing or empty keys
// report false.
func KeyOf(j *models.Jurisdiction, key models.GroupKey) (string, bool) {
	if j == nil {
		return "", false
	}

	var v string
	switch key {
	case models.GroupByDistrict:
		v = j.NamaKabupaten
	case models.GroupByProvince:
		v = j.KodeProvinsi
	}
	return v, v != ""
}

// GroupAndCount counts judgments per distinct grouping key.
// Buckets are returned sorted by name.
func GroupAndCount(records []models.Judgment, key models.GroupKey) []models.Bucket {
	counts := make(map[string]int)
	for _, r := range records {
		if name, ok := KeyOf(r.Jurisdiction, key); ok {
			counts[name]++
		}
	}

	buckets := make([]models.Bucket, 0, len(counts))
	for name, count := range counts {
		buckets = append(buckets, models.Bucket{Name: name, Count: count})
	}
	sort.Slice(buckets, func(i, j int) bool {
		return buckets[i].Name < buckets[j].Name
	})

	return buckets
}
