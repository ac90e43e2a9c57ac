package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/jengzang/putusan-backend-go/internal/models"
)

// MasterStore serves the master lookup lists
type MasterStore interface {
	GetProvinces(ctx context.Context) ([]models.Provinsi, error)
	GetYears(ctx context.Context) ([]int, error)
	GetCrimeTypes(ctx context.Context) ([]string, error)
}

// MasterService exposes master data for filter widgets
type MasterService struct {
	store MasterStore
}

// NewMasterService creates a new master service
func NewMasterService(store MasterStore) *MasterService {
	return &MasterService{store: store}
}

// GetProvinces returns all provinces
func (s *MasterService) GetProvinces(ctx context.Context) ([]models.Provinsi, error) {
	provinces, err := s.store.GetProvinces(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get provinces: %w", err)
	}
	return provinces, nil
}

// GetYears returns all judgment years
func (s *MasterService) GetYears(ctx context.Context) ([]int, error) {
	years, err := s.store.GetYears(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get years: %w", err)
	}
	return years, nil
}

// GetCrimeTypes returns all crime types
func (s *MasterService) GetCrimeTypes(ctx context.Context) ([]string, error) {
	types, err := s.store.GetCrimeTypes(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get crime types: %w", err)
	}
	return types, nil
}

// GetAll loads the three lists concurrently
func (s *MasterService) GetAll(ctx context.Context) (*models.MasterData, error) {
	var data models.MasterData
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		data.Provinsi, err = s.GetProvinces(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.Tahun, err = s.GetYears(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		data.JenisKejahatan, err = s.GetCrimeTypes(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
