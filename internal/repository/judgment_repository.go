package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/jengzang/putusan-backend-go/internal/database"
	"github.com/jengzang/putusan-backend-go/internal/models"
)

// JudgmentRepository handles database operations for judgments
type JudgmentRepository struct {
	db      *sql.DB
	dialect database.Dialect
}

// NewJudgmentRepository creates a new judgment repository
func NewJudgmentRepository(db *sql.DB, dialect database.Dialect) *JudgmentRepository {
	return &JudgmentRepository{db: db, dialect: dialect}
}

// FindForClustering fetches judgments matching the cluster filter together
// with their kabupaten.
//
// The province filter constrains the joined kabupaten only, so judgments
// outside the province come back with a nil Jurisdiction.
func (r *JudgmentRepository) FindForClustering(ctx context.Context, filter models.ClusterFilter) ([]models.Judgment, error) {
	join := "LEFT JOIN kabupaten k ON k.id = p.kabupaten_id"

	var conditions []string
	var args []interface{}

	if filter.Provinsi != nil {
		join += " AND k.kode_provinsi = ?"
		args = append(args, *filter.Provinsi)
	}
	if filter.JenisKejahatan != nil {
		conditions = append(conditions, "p.jenis_kejahatan = ?")
		args = append(args, *filter.JenisKejahatan)
	}
	if filter.Tahun != nil {
		conditions = append(conditions, "p.tahun = ?")
		args = append(args, *filter.Tahun)
	}

	query := `SELECT p.id, p.jenis_kejahatan, p.tahun, k.id, k.nama_kabupaten, k.kode_provinsi
		FROM putusan p ` + join
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY p.id"

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query judgments: %w", err)
	}
	defer rows.Close()

	var judgments []models.Judgment
	for rows.Next() {
		var (
			j        models.Judgment
			kabID    sql.NullInt64
			kabName  sql.NullString
			kabProvi sql.NullString
		)
		if err := rows.Scan(&j.ID, &j.JenisKejahatan, &j.Tahun, &kabID, &kabName, &kabProvi); err != nil {
			return nil, fmt.Errorf("failed to scan judgment: %w", err)
		}
		if kabID.Valid {
			j.Jurisdiction = &models.Jurisdiction{
				ID:            kabID.Int64,
				NamaKabupaten: kabName.String,
				KodeProvinsi:  kabProvi.String,
			}
		}
		judgments = append(judgments, j)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate judgments: %w", err)
	}

	return judgments, nil
}

// List retrieves a page of judgments ordered by id
func (r *JudgmentRepository) List(ctx context.Context, filter models.JudgmentFilter) ([]models.JudgmentSummary, int64, error) {
	var conditions []string
	var args []interface{}

	if filter.Tahun > 0 {
		conditions = append(conditions, "tahun = ?")
		args = append(args, filter.Tahun)
	}
	if filter.Search != "" {
		pattern := "%" + strings.ToLower(filter.Search) + "%"
		conditions = append(conditions, "(LOWER(nomor_putusan) LIKE ? OR LOWER(judul_putusan) LIKE ?)")
		args = append(args, pattern, pattern)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	var total int64
	countQuery := "SELECT COUNT(*) FROM putusan" + whereClause
	if err := r.db.QueryRowContext(ctx, r.dialect.Rebind(countQuery), args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count judgments: %w", err)
	}

	offset := (filter.Page - 1) * filter.PerPage
	query := `SELECT id, nomor_putusan, uri_dokumen, judul_putusan, tahun FROM putusan` +
		whereClause + " ORDER BY id ASC LIMIT ? OFFSET ?"
	args = append(args, filter.PerPage, offset)

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to query judgments: %w", err)
	}
	defer rows.Close()

	items := []models.JudgmentSummary{}
	for rows.Next() {
		var s models.JudgmentSummary
		if err := rows.Scan(&s.ID, &s.NomorPutusan, &s.URIDokumen, &s.JudulPutusan, &s.Tahun); err != nil {
			return nil, 0, fmt.Errorf("failed to scan judgment: %w", err)
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("failed to iterate judgments: %w", err)
	}

	return items, total, nil
}

// EarliestYear returns the smallest stored year, or false when the table is empty
func (r *JudgmentRepository) EarliestYear(ctx context.Context) (int, bool, error) {
	var year sql.NullInt64
	if err := r.db.QueryRowContext(ctx, "SELECT MIN(tahun) FROM putusan").Scan(&year); err != nil {
		return 0, false, fmt.Errorf("failed to query earliest year: %w", err)
	}
	return int(year.Int64), year.Valid, nil
}

// FindTrendRecords retrieves the trend projection of judgments within a
// year range, optionally restricted to one province
func (r *JudgmentRepository) FindTrendRecords(ctx context.Context, startYear, endYear int, provinsi string) ([]models.TrendRecord, error) {
	query := `SELECT p.tahun, p.jenis_kejahatan, w.waktu_kejadian, l.nama_lokasi, k.nama_kabupaten, pr.nama_provinsi
		FROM putusan p
		LEFT JOIN waktu_kejadian w ON w.id = p.waktu_kejadian_id
		LEFT JOIN lokasi_kejadian l ON l.id = p.lokasi_kejadian_id
		LEFT JOIN kabupaten k ON k.id = p.kabupaten_id
		LEFT JOIN provinsi pr ON pr.kode_provinsi = k.kode_provinsi
		WHERE p.tahun >= ? AND p.tahun <= ?`
	args := []interface{}{startYear, endYear}

	if provinsi != "" {
		query += " AND k.kode_provinsi = ?"
		args = append(args, provinsi)
	}
	query += " ORDER BY p.id"

	rows, err := r.db.QueryContext(ctx, r.dialect.Rebind(query), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query trend records: %w", err)
	}
	defer rows.Close()

	var records []models.TrendRecord
	for rows.Next() {
		var rec models.TrendRecord
		var waktu, lokasi, kab, namaProvinsi sql.NullString
		if err := rows.Scan(&rec.Tahun, &rec.JenisKejahatan, &waktu, &lokasi, &kab, &namaProvinsi); err != nil {
			return nil, fmt.Errorf("failed to scan trend record: %w", err)
		}
		rec.WaktuKejadian = waktu.String
		rec.LokasiKejadian = lokasi.String
		rec.NamaKabupaten = kab.String
		rec.NamaProvinsi = namaProvinsi.String
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate trend records: %w", err)
	}

	return records, nil
}
