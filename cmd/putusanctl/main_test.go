package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadRecords(t *testing.T) {
	records, err := readRecords(strings.NewReader(`[
		{"nomor_putusan":"1/Pid.B/2023/PN Mdn","jenis_kejahatan":"Pencurian","tahun":2023,
		 "nama_kabupaten":"Kota Medan","kode_provinsi":"12","nama_provinsi":"Sumatera Utara"}
	]`))
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Kota Medan", records[0].NamaKabupaten)

	_, err = readRecords(strings.NewReader(`[{"nomor":"x"}]`))
	assert.Error(t, err)
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestImportAndSeed(t *testing.T) {
	t.Setenv("CONFIG_FILE", "")
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "putusan.db")
	file := filepath.Join(dir, "records.json")
	require.NoError(t, os.WriteFile(file, []byte(`[
		{"nomor_putusan":"1/Pid.B/2023/PN Mdn","jenis_kejahatan":"Pencurian","tahun":2023,"nama_kabupaten":"Kota Medan","kode_provinsi":"12"},
		{"nomor_putusan":"2/Pid.B/2023/PN Mdn","jenis_kejahatan":"Narkotika","tahun":2023}
	]`), 0o600))

	out, err := execute(t, "--db", dbPath, "--driver", "sqlite", "import", "--file", file)
	require.NoError(t, err)
	assert.Contains(t, out, "inserted 2, skipped 0")

	out, err = execute(t, "--db", dbPath, "--driver", "sqlite", "import", "-f", file)
	require.NoError(t, err)
	assert.Contains(t, out, "inserted 0, skipped 2")

	out, err = execute(t, "--db", dbPath, "--driver", "sqlite", "seed-users", "--password", "rahasia1")
	require.NoError(t, err)
	assert.Contains(t, out, "admin@putusan.local created")

	out, err = execute(t, "--db", dbPath, "--driver", "sqlite", "seed-users", "--password", "rahasia1")
	require.NoError(t, err)
	assert.Contains(t, out, "exists, skipped")
}

func TestImport_RequiresFile(t *testing.T) {
	_, err := execute(t, "--db", filepath.Join(t.TempDir(), "x.db"), "import")
	assert.Error(t, err)
}
