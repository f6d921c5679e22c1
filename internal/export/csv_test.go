package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opennacc/declaration-extractor/internal/assemble"
	"github.com/opennacc/declaration-extractor/internal/entity"
)

func sampleResults() []entity.DocumentResult {
	return []entity.DocumentResult{
		{
			DocumentID: "doc-1",
			NaccID:     7,
			Records: &entity.RecordSet{
				DocumentID: "doc-1",
				NaccID:     7,
				Tables: map[string][]entity.Row{
					"submitter": {
						{"nacc_id": 7, "document_id": "doc-1", "submitter_id": 1,
							"first_name": "สมชาย", "last_name": "ใจดี", "tax_paid": 12345.5},
					},
					"asset": {
						{"nacc_id": 7, "document_id": "doc-1", "asset_id": 1, "submitter_id": 1,
							"asset_type_id": 1, "asset_name": "ที่ดิน", "valuation": 2000000.0,
							"owner_by_submitter": true},
					},
				},
			},
		},
		{
			// assembly failed: contributes nothing
			DocumentID: "doc-2",
			NaccID:     8,
			Error:      "identity section has no submitter name",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteCSV(dir, sampleResults(), nil))

	f, err := os.Open(filepath.Join(dir, "Output_submitter.csv"))
	require.NoError(t, err)
	defer f.Close()

	records, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, tableColumns["submitter"], records[0])

	header := records[0]
	row := records[1]
	byCol := make(map[string]string, len(header))
	for i, h := range header {
		byCol[h] = row[i]
	}
	assert.Equal(t, "7", byCol["nacc_id"])
	assert.Equal(t, "สมชาย", byCol["first_name"])
	assert.Equal(t, "12345.5", byCol["tax_paid"])
	assert.Equal(t, "", byCol["age"])

	// asset booleans serialize as TRUE/FALSE
	af, err := os.Open(filepath.Join(dir, "Output_asset.csv"))
	require.NoError(t, err)
	defer af.Close()
	arecords, err := csv.NewReader(af).ReadAll()
	require.NoError(t, err)
	require.Len(t, arecords, 2)
	aby := make(map[string]string)
	for i, h := range arecords[0] {
		aby[h] = arecords[1][i]
	}
	assert.Equal(t, "TRUE", aby["owner_by_submitter"])
	assert.Equal(t, "2000000", aby["valuation"])

	// empty tables produce no files
	_, err = os.Stat(filepath.Join(dir, "Output_relative.csv"))
	assert.True(t, os.IsNotExist(err))
}

func TestTableColumnsCoverTableOrder(t *testing.T) {
	for _, table := range assemble.TableOrder {
		cols, ok := tableColumns[table]
		require.True(t, ok, "no column layout for table %s", table)
		assert.Contains(t, cols, "nacc_id")
	}
}

func TestExportRecordsXLSX(t *testing.T) {
	s := NewService(nil)
	data, err := s.ExportRecordsXLSX(sampleResults())
	require.NoError(t, err)
	assert.NotEmpty(t, data)
	// xlsx container is a zip archive
	assert.Equal(t, []byte{'P', 'K'}, data[:2])
}
