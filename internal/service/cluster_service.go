package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jengzang/putusan-backend-go/internal/analysis/cluster"
	"github.com/jengzang/putusan-backend-go/internal/metrics"
	"github.com/jengzang/putusan-backend-go/internal/models"
)

// ClusterStore fetches judgments for the crime-cluster pipeline
type ClusterStore interface {
	FindForClustering(ctx context.Context, filter models.ClusterFilter) ([]models.Judgment, error)
}

// ClusterService groups judgments by region and grades the regions into
// severity levels
type ClusterService struct {
	store   ClusterStore
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewClusterService creates a new cluster service
func NewClusterService(store ClusterStore, m *metrics.Metrics, logger *slog.Logger) *ClusterService {
	return &ClusterService{
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

// GetCrimeClusters runs the fetch, group and cluster pipeline for one request.
// Returns models.ErrNotFound when no judgment with a resolved kabupaten
// matches the filter.
func (s *ClusterService) GetCrimeClusters(ctx context.Context, filter models.ClusterFilter) (*models.ClusterResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	start := time.Now()
	records, err := s.store.FindForClustering(ctx, filter)
	s.metrics.ObserveStoreLatency("find_for_clustering", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch judgments: %w", err)
	}

	resolved := cluster.Resolve(records)
	if len(resolved) == 0 {
		return nil, models.ErrNotFound
	}

	key := filter.GroupKey()
	buckets := cluster.GroupAndCount(resolved, key)

	items, err := cluster.AssignSeverity(buckets)
	if err != nil {
		return nil, err
	}
	s.metrics.ObserveClusterBuckets(len(buckets))

	s.logger.DebugContext(ctx, "crime clusters computed",
		"fetched", len(records),
		"resolved", len(resolved),
		"group_key", string(key),
		"buckets", len(buckets),
	)

	return &models.ClusterResponse{
		Meta: models.ClusterMeta{
			TotalRecords: len(resolved),
			Filters:      filter.Echo(),
		},
		Data: items,
	}, nil
}
