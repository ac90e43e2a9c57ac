package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jengzang/putusan-backend-go/internal/metrics"
	"github.com/jengzang/putusan-backend-go/internal/models"
)

const (
	defaultPage    = 1
	defaultPerPage = 10
)

// JudgmentStore lists and imports judgments
type JudgmentStore interface {
	List(ctx context.Context, filter models.JudgmentFilter) ([]models.JudgmentSummary, int64, error)
	Import(ctx context.Context, records []models.ImportRecord) (models.ImportResult, error)
}

// JudgmentService handles business logic for the judgment listing and the
// batch importer
type JudgmentService struct {
	store   JudgmentStore
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewJudgmentService creates a new judgment service
func NewJudgmentService(store JudgmentStore, m *metrics.Metrics, logger *slog.Logger) *JudgmentService {
	return &JudgmentService{
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

// List returns one page of judgments
func (s *JudgmentService) List(ctx context.Context, filter models.JudgmentFilter) (*models.JudgmentListResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}
	if filter.Page <= 0 {
		filter.Page = defaultPage
	}
	if filter.PerPage <= 0 {
		filter.PerPage = defaultPerPage
	}

	start := time.Now()
	items, total, err := s.store.List(ctx, filter)
	s.metrics.ObserveStoreLatency("list_judgments", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("failed to list judgments: %w", err)
	}

	totalPages := int((total + int64(filter.PerPage) - 1) / int64(filter.PerPage))

	return &models.JudgmentListResponse{
		Data: items,
		Meta: models.PageMeta{
			Total:      total,
			Page:       filter.Page,
			PerPage:    filter.PerPage,
			TotalPages: totalPages,
		},
	}, nil
}

// Import validates every record and stores the batch in one transaction.
// A single invalid record rejects the whole batch.
func (s *JudgmentService) Import(ctx context.Context, records []models.ImportRecord) (models.ImportResult, error) {
	for i, rec := range records {
		if err := models.ValidateRecord(rec); err != nil {
			return models.ImportResult{}, fmt.Errorf("record %d (%s): %w", i, rec.NomorPutusan, err)
		}
	}

	result, err := s.store.Import(ctx, records)
	if err != nil {
		return models.ImportResult{}, fmt.Errorf("failed to import judgments: %w", err)
	}

	s.logger.InfoContext(ctx, "judgments imported",
		"inserted", result.Inserted,
		"skipped", result.Skipped,
	)
	return result, nil
}
