package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"time"

	"github.com/jengzang/putusan-backend-go/internal/metrics"
	"github.com/jengzang/putusan-backend-go/internal/models"
	"github.com/jengzang/putusan-backend-go/internal/stats"
)

// DefaultStartYear is used when the store holds no judgments
const DefaultStartYear = 2000

// TrendStore fetches the data behind the trend analysis
type TrendStore interface {
	EarliestYear(ctx context.Context) (int, bool, error)
	FindTrendRecords(ctx context.Context, startYear, endYear int, provinsi string) ([]models.TrendRecord, error)
}

// TrendService builds per-year trend series for every judgment dimension
type TrendService struct {
	store   TrendStore
	metrics *metrics.Metrics
	logger  *slog.Logger
	now     func() time.Time
}

// NewTrendService creates a new trend service
func NewTrendService(store TrendStore, m *metrics.Metrics, logger *slog.Logger) *TrendService {
	return &TrendService{
		store:   store,
		metrics: m,
		logger:  logger,
		now:     time.Now,
	}
}

// GetTrend returns the trend series between the filter's years.
// Missing bounds default to the earliest stored year and the current year.
func (s *TrendService) GetTrend(ctx context.Context, filter models.TrendFilter) (*models.TrendResponse, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	startYear, endYear, err := s.resolveYears(ctx, filter)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	records, err := s.store.FindTrendRecords(ctx, startYear, endYear, filter.Provinsi)
	s.metrics.ObserveStoreLatency("find_trend_records", time.Since(start))
	if err != nil {
		return nil, fmt.Errorf("failed to fetch trend records: %w", err)
	}

	years := make([]int, 0)
	labels := make([]string, 0)
	for y := startYear; y <= endYear; y++ {
		years = append(years, y)
		labels = append(labels, strconv.Itoa(y))
	}

	jenis := newSeries(startYear, len(years))
	waktu := newSeries(startYear, len(years))
	lokasi := newSeries(startYear, len(years))
	wilayah := newSeries(startYear, len(years))
	perYear := make([]int, len(years))

	for _, rec := range records {
		idx := rec.Tahun - startYear
		if idx < 0 || idx >= len(years) {
			continue
		}
		perYear[idx]++
		jenis.add(rec.JenisKejahatan, rec.Tahun)
		waktu.add(rec.WaktuKejadian, rec.Tahun)
		lokasi.add(rec.LokasiKejadian, rec.Tahun)
		if filter.Provinsi != "" {
			wilayah.add(rec.NamaKabupaten, rec.Tahun)
		} else {
			wilayah.add(rec.NamaProvinsi, rec.Tahun)
		}
	}

	provinsiEcho := filter.Provinsi
	if provinsiEcho == "" {
		provinsiEcho = "Semua Provinsi"
	}

	s.logger.DebugContext(ctx, "trend computed",
		"start_year", startYear,
		"end_year", endYear,
		"records", len(records),
	)

	return &models.TrendResponse{
		Meta: models.TrendMeta{
			TotalRecords: len(records),
			Labels:       labels,
			Details: models.TrendDetails{
				JenisKejahatan: jenis.totals(),
				WaktuKejadian:  waktu.totals(),
				LokasiKejadian: lokasi.totals(),
				Wilayah:        wilayah.totals(),
			},
			Statistics: models.TrendStatistics{
				Tahun:          summarize(labels, perYear),
				JenisKejahatan: jenis.stats(),
				WaktuKejadian:  waktu.stats(),
				LokasiKejadian: lokasi.stats(),
				Wilayah:        wilayah.stats(),
			},
			Filters: models.TrendFilterEcho{
				Provinsi: provinsiEcho,
				Tahun:    fmt.Sprintf("%d-%d", startYear, endYear),
			},
		},
		Data: models.TrendData{
			Tahun:          years,
			JenisKejahatan: jenis.datasets(),
			WaktuKejadian:  waktu.datasets(),
			LokasiKejadian: lokasi.datasets(),
			Wilayah:        wilayah.datasets(),
		},
	}, nil
}

func (s *TrendService) resolveYears(ctx context.Context, filter models.TrendFilter) (int, int, error) {
	startYear := filter.StartYear
	if startYear == 0 {
		earliest, ok, err := s.store.EarliestYear(ctx)
		if err != nil {
			return 0, 0, fmt.Errorf("failed to get earliest year: %w", err)
		}
		startYear = DefaultStartYear
		if ok {
			startYear = earliest
		}
	}

	endYear := filter.EndYear
	if endYear == 0 {
		endYear = s.now().Year()
	}
	if startYear > endYear {
		return 0, 0, fmt.Errorf("%w: start_year %d is after end_year %d", models.ErrInvalidFilter, startYear, endYear)
	}
	return startYear, endYear, nil
}

// series counts records per category and year, keeping categories in
// first-seen order
type series struct {
	startYear int
	years     int
	order     []string
	counts    map[string][]int
}

func newSeries(startYear, years int) *series {
	return &series{
		startYear: startYear,
		years:     years,
		counts:    make(map[string][]int),
	}
}

func (s *series) add(category string, year int) {
	if category == "" {
		return
	}
	row, ok := s.counts[category]
	if !ok {
		row = make([]int, s.years)
		s.counts[category] = row
		s.order = append(s.order, category)
	}
	row[year-s.startYear]++
}

func (s *series) datasets() []models.TrendDataset {
	out := make([]models.TrendDataset, 0, len(s.order))
	for _, category := range s.order {
		out = append(out, models.TrendDataset{Label: category, Data: s.counts[category]})
	}
	return out
}

func (s *series) totals() map[string]int {
	out := make(map[string]int, len(s.order))
	for _, category := range s.order {
		total := 0
		for _, c := range s.counts[category] {
			total += c
		}
		out[category] = total
	}
	return out
}

func (s *series) stats() models.DimensionStats {
	totals := s.totals()
	counts := make([]int, len(s.order))
	for i, category := range s.order {
		counts[i] = totals[category]
	}
	return summarize(s.order, counts)
}

// summarize picks the first highest and first lowest count and the mean
// rounded to two decimals
func summarize(labels []string, counts []int) models.DimensionStats {
	var st models.DimensionStats
	lowest := math.MaxInt
	for i, c := range counts {
		if c > st.Tertinggi.Jumlah {
			st.Tertinggi = models.RankedCount{Label: labels[i], Jumlah: c}
		}
		if c < lowest {
			lowest = c
			st.Terendah = models.RankedCount{Label: labels[i], Jumlah: c}
		}
	}
	if len(counts) > 0 {
		st.RataRata = stats.Round2(stats.Mean(stats.Ints(counts)))
	}
	return st
}
