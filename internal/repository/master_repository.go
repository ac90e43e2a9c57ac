package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jengzang/putusan-backend-go/internal/models"
)

// MasterRepository serves the lookup lists used by filter widgets
type MasterRepository struct {
	db *sql.DB
}

// NewMasterRepository creates a new master repository
func NewMasterRepository(db *sql.DB) *MasterRepository {
	return &MasterRepository{db: db}
}

// GetProvinces returns every province ordered by code
func (r *MasterRepository) GetProvinces(ctx context.Context) ([]models.Provinsi, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT kode_provinsi, nama_provinsi FROM provinsi ORDER BY kode_provinsi")
	if err != nil {
		return nil, fmt.Errorf("failed to query provinces: %w", err)
	}
	defer rows.Close()

	provinces := []models.Provinsi{}
	for rows.Next() {
		var p models.Provinsi
		if err := rows.Scan(&p.KodeProvinsi, &p.NamaProvinsi); err != nil {
			return nil, fmt.Errorf("failed to scan province: %w", err)
		}
		provinces = append(provinces, p)
	}
	return provinces, rows.Err()
}

// GetYears returns the distinct judgment years, ascending
func (r *MasterRepository) GetYears(ctx context.Context) ([]int, error) {
	rows, err := r.db.QueryContext(ctx, "SELECT DISTINCT tahun FROM putusan ORDER BY tahun")
	if err != nil {
		return nil, fmt.Errorf("failed to query years: %w", err)
	}
	defer rows.Close()

	years := []int{}
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			return nil, fmt.Errorf("failed to scan year: %w", err)
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

// GetCrimeTypes returns the distinct crime types, alphabetically
func (r *MasterRepository) GetCrimeTypes(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT DISTINCT jenis_kejahatan FROM putusan WHERE jenis_kejahatan != '' ORDER BY jenis_kejahatan")
	if err != nil {
		return nil, fmt.Errorf("failed to query crime types: %w", err)
	}
	defer rows.Close()

	types := []string{}
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, fmt.Errorf("failed to scan crime type: %w", err)
		}
		types = append(types, t)
	}
	return types, rows.Err()
}
