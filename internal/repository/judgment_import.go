package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jengzang/putusan-backend-go/internal/database"
	"github.com/jengzang/putusan-backend-go/internal/models"
)

// Import inserts judgments that do not exist yet, keyed by nomor_putusan.
// Referenced provinces, kabupaten, times and locations are created on demand.
// The whole batch runs in one transaction.
func (r *JudgmentRepository) Import(ctx context.Context, records []models.ImportRecord) (models.ImportResult, error) {
	var result models.ImportResult

	err := database.Transaction(ctx, r.db, func(tx *sql.Tx) error {
		result = models.ImportResult{}
		for _, rec := range records {
			inserted, err := r.importOne(ctx, tx, rec)
			if err != nil {
				return fmt.Errorf("failed to import %s: %w", rec.NomorPutusan, err)
			}
			if inserted {
				result.Inserted++
			} else {
				result.Skipped++
			}
		}
		return nil
	})
	if err != nil {
		return models.ImportResult{}, err
	}

	return result, nil
}

func (r *JudgmentRepository) importOne(ctx context.Context, tx *sql.Tx, rec models.ImportRecord) (bool, error) {
	var kabupatenID, waktuID, lokasiID sql.NullInt64
	var err error

	if rec.KodeProvinsi != "" && rec.NamaKabupaten != "" {
		namaProvinsi := rec.NamaProvinsi
		if namaProvinsi == "" {
			namaProvinsi = rec.KodeProvinsi
		}
		_, err = tx.ExecContext(ctx, r.dialect.Rebind(
			`INSERT INTO provinsi (kode_provinsi, nama_provinsi) VALUES (?, ?) ON CONFLICT (kode_provinsi) DO NOTHING`),
			rec.KodeProvinsi, namaProvinsi)
		if err != nil {
			return false, fmt.Errorf("failed to upsert provinsi: %w", err)
		}

		kabupatenID, err = r.lookupOrCreate(ctx, tx,
			`INSERT INTO kabupaten (nama_kabupaten, kode_provinsi) VALUES (?, ?) ON CONFLICT (nama_kabupaten, kode_provinsi) DO NOTHING`,
			`SELECT id FROM kabupaten WHERE nama_kabupaten = ? AND kode_provinsi = ?`,
			rec.NamaKabupaten, rec.KodeProvinsi)
		if err != nil {
			return false, fmt.Errorf("failed to resolve kabupaten: %w", err)
		}
	}

	if rec.WaktuKejadian != "" {
		waktuID, err = r.lookupOrCreate(ctx, tx,
			`INSERT INTO waktu_kejadian (waktu_kejadian) VALUES (?) ON CONFLICT (waktu_kejadian) DO NOTHING`,
			`SELECT id FROM waktu_kejadian WHERE waktu_kejadian = ?`,
			rec.WaktuKejadian)
		if err != nil {
			return false, fmt.Errorf("failed to resolve waktu kejadian: %w", err)
		}
	}

	if rec.LokasiKejadian != "" {
		lokasiID, err = r.lookupOrCreate(ctx, tx,
			`INSERT INTO lokasi_kejadian (nama_lokasi) VALUES (?) ON CONFLICT (nama_lokasi) DO NOTHING`,
			`SELECT id FROM lokasi_kejadian WHERE nama_lokasi = ?`,
			rec.LokasiKejadian)
		if err != nil {
			return false, fmt.Errorf("failed to resolve lokasi kejadian: %w", err)
		}
	}

	query := `INSERT INTO putusan
		(nomor_putusan, judul_putusan, uri_dokumen, jenis_kejahatan, tahun, kabupaten_id, waktu_kejadian_id, lokasi_kejadian_id)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT (nomor_putusan) DO NOTHING
		RETURNING id`

	var id int64
	err = tx.QueryRowContext(ctx, r.dialect.Rebind(query),
		rec.NomorPutusan, rec.JudulPutusan, rec.URIDokumen, rec.JenisKejahatan, rec.Tahun,
		kabupatenID, waktuID, lokasiID,
	).Scan(&id)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to insert putusan: %w", err)
	}

	return true, nil
}

// lookupOrCreate runs an insert-if-absent statement and returns the id
// selected by the lookup query. Both statements take the same arguments.
func (r *JudgmentRepository) lookupOrCreate(ctx context.Context, tx *sql.Tx, insert, lookup string, args ...interface{}) (sql.NullInt64, error) {
	if _, err := tx.ExecContext(ctx, r.dialect.Rebind(insert), args...); err != nil {
		return sql.NullInt64{}, err
	}

	var id int64
	if err := tx.QueryRowContext(ctx, r.dialect.Rebind(lookup), args...).Scan(&id); err != nil {
		return sql.NullInt64{}, err
	}
	return sql.NullInt64{Int64: id, Valid: true}, nil
}
