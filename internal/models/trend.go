package models

// TrendDataset is one labelled series of per-year counts
type TrendDataset struct {
	Label string `json:"label"`
	Data  []int  `json:"data"`
}

// RankedCount names a category and its count
type RankedCount struct {
	Label  string `json:"label"`
	Jumlah int    `json:"jumlah"`
}

// DimensionStats holds the highest, lowest and mean count of a dimension
type DimensionStats struct {
	Tertinggi RankedCount `json:"tertinggi"`
	Terendah  RankedCount `json:"terendah"`
	RataRata  float64     `json:"rata_rata"`
}

// TrendDetails holds total counts per category of each dimension
type TrendDetails struct {
	JenisKejahatan map[string]int `json:"jenis_kejahatan"`
	WaktuKejadian  map[string]int `json:"waktu_kejadian"`
	LokasiKejadian map[string]int `json:"lokasi_kejadian"`
	Wilayah        map[string]int `json:"wilayah"`
}

// TrendStatistics holds DimensionStats for every dimension
type TrendStatistics struct {
	Tahun          DimensionStats `json:"tahun"`
	JenisKejahatan DimensionStats `json:"jenis_kejahatan"`
	WaktuKejadian  DimensionStats `json:"waktu_kejadian"`
	LokasiKejadian DimensionStats `json:"lokasi_kejadian"`
	Wilayah        DimensionStats `json:"wilayah"`
}

// TrendFilterEcho echoes the applied trend filters
type TrendFilterEcho struct {
	Provinsi string `json:"provinsi"`
	Tahun    string `json:"tahun"`
}

// TrendMeta describes a trend response
type TrendMeta struct {
	TotalRecords int             `json:"total_records"`
	Labels       []string        `json:"labels"`
	Details      TrendDetails    `json:"details"`
	Statistics   TrendStatistics `json:"statistics"`
	Filters      TrendFilterEcho `json:"filters"`
}

// TrendData holds the per-year series
type TrendData struct {
	Tahun          []int          `json:"tahun"`
	JenisKejahatan []TrendDataset `json:"jenis_kejahatan"`
	WaktuKejadian  []TrendDataset `json:"waktu_kejadian"`
	LokasiKejadian []TrendDataset `json:"lokasi_kejadian"`
	Wilayah        []TrendDataset `json:"wilayah"`
}

// TrendResponse is the body of GET /api/analisis/trend
type TrendResponse struct {
	Meta TrendMeta `json:"meta"`
	Data TrendData `json:"data"`
}

// TrendRecord is the projection of a judgment used for trend analysis
type TrendRecord struct {
	Tahun          int
	JenisKejahatan string
	WaktuKejadian  string
	LokasiKejadian string
	NamaKabupaten  string
	NamaProvinsi   string
}
