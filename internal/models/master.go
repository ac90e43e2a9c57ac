package models

// Provinsi is a province master entry
type Provinsi struct {
	KodeProvinsi string `json:"kode_provinsi"`
	NamaProvinsi string `json:"nama_provinsi"`
}

// MasterData bundles every master list
type MasterData struct {
	Provinsi       []Provinsi `json:"provinsi"`
	Tahun          []int      `json:"tahun"`
	JenisKejahatan []string   `json:"jenis_kejahatan"`
}
