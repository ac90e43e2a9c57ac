package models

// SeverityLevel is the ordinal label of a crime cluster
type SeverityLevel string

const (
	LevelRendah SeverityLevel = "Rendah"
	LevelSedang SeverityLevel = "Sedang"
	LevelTinggi SeverityLevel = "Tinggi"
)

// SeverityLevels lists the levels from lowest to highest
var SeverityLevels = []SeverityLevel{LevelRendah, LevelSedang, LevelTinggi}

// GroupKey selects the jurisdiction field buckets are keyed by
type GroupKey string

const (
	GroupByDistrict GroupKey = "kabupaten.nama_kabupaten"
	GroupByProvince GroupKey = "kabupaten.kode_provinsi"
)

// Bucket is one grouping key with its aggregated count
type Bucket struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ClusterItem is a bucket enriched with its severity level
type ClusterItem struct {
	Name            string        `json:"name"`
	Count           int           `json:"count"`
	Level           SeverityLevel `json:"level"`
	NormalizedCount float64       `json:"normalized_count"`
}

// ClusterFilters echoes the filters applied to a cluster request
type ClusterFilters struct {
	JenisKejahatan *string `json:"jenis_kejahatan"`
	Tahun          *int    `json:"tahun"`
	Provinsi       *string `json:"provinsi"`
}

// ClusterMeta describes a cluster response
type ClusterMeta struct {
	TotalRecords int            `json:"total_records"`
	Filters      ClusterFilters `json:"filters"`
}

// ClusterResponse is the body of GET /api/crime-clusters
type ClusterResponse struct {
	Meta ClusterMeta   `json:"meta"`
	Data []ClusterItem `json:"data"`
}
