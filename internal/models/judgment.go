package models

// Jurisdiction is the kabupaten/kota a judgment was tried in
type Jurisdiction struct {
	ID            int64  `json:"id" db:"id"`
	NamaKabupaten string `json:"nama_kabupaten" db:"nama_kabupaten"`
	KodeProvinsi  string `json:"kode_provinsi" db:"kode_provinsi"`
}

// Judgment represents a stored court ruling (putusan)
type Judgment struct {
	ID             int64  `json:"id" db:"id"`
	NomorPutusan   string `json:"nomor_putusan,omitempty" db:"nomor_putusan"`
	JudulPutusan   string `json:"judul_putusan,omitempty" db:"judul_putusan"`
	URIDokumen     string `json:"uri_dokumen,omitempty" db:"uri_dokumen"`
	JenisKejahatan string `json:"jenis_kejahatan" db:"jenis_kejahatan"`
	Tahun          int    `json:"tahun" db:"tahun"`

	// Nil when the kabupaten join did not resolve
	Jurisdiction *Jurisdiction `json:"kabupaten"`
}

// JudgmentSummary is the listing projection of a judgment
type JudgmentSummary struct {
	ID           int64  `json:"id"`
	NomorPutusan string `json:"nomor_putusan"`
	URIDokumen   string `json:"uri_dokumen"`
	JudulPutusan string `json:"judul_putusan"`
	Tahun        int    `json:"tahun"`
}

// JudgmentListResponse is a paginated page of judgments
type JudgmentListResponse struct {
	Data []JudgmentSummary `json:"data"`
	Meta PageMeta          `json:"meta"`
}

// PageMeta describes a pagination window
type PageMeta struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	TotalPages int   `json:"total_pages"`
}

// ImportRecord is one judgment as produced by the extraction pipeline
type ImportRecord struct {
	NomorPutusan   string `json:"nomor_putusan" validate:"required"`
	JudulPutusan   string `json:"judul_putusan"`
	URIDokumen     string `json:"uri_dokumen"`
	JenisKejahatan string `json:"jenis_kejahatan" validate:"required"`
	Tahun          int    `json:"tahun" validate:"gte=1900,lte=2100"`
	NamaKabupaten  string `json:"nama_kabupaten"`
	KodeProvinsi   string `json:"kode_provinsi"`
	NamaProvinsi   string `json:"nama_provinsi"`
	WaktuKejadian  string `json:"waktu_kejadian"`
	LokasiKejadian string `json:"lokasi_kejadian"`
}

// ImportResult summarizes a batch import
type ImportResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}
