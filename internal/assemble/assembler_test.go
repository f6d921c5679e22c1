package assemble

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/internal/common"
	"github.com/opennacc/declaration-extractor/internal/entity"
)

func merged(section constants.Section, fields map[string]any, rows []map[string]any) entity.MergedRecord {
	return entity.MergedRecord{
		DocumentID: "doc-1",
		Section:    section,
		Fields:     fields,
		Rows:       rows,
	}
}

func sampleSections() []entity.MergedRecord {
	return []entity.MergedRecord{
		merged(constants.SectionIdentity,
			map[string]any{"title": "นาย", "first_name": "สมชาย", "last_name": "ใจดี", "age": 55},
			[]map[string]any{{"first_name": "สมชาย", "last_name": "เดิม"}},
		),
		merged(constants.SectionSpouse,
			map[string]any{"first_name": "สมหญิง", "last_name": "ใจดี"},
			nil,
		),
		merged(constants.SectionPositions, nil, []map[string]any{
			{"holder": "submitter", "position": "นายกเทศมนตรี", "workplace": "เทศบาลนคร"},
			{"holder": "spouse", "position": "ครู", "workplace": "โรงเรียน"},
		}),
		merged(constants.SectionRelatives, nil, []map[string]any{
			{"relationship_id": 1, "first_name": "สมศักดิ์"},
		}),
		merged(constants.SectionTax,
			map[string]any{"tax_year": 2566, "tax_paid": 50000.0},
			[]map[string]any{{"statement_type_id": 1, "valuation_submitter": 1000000.0}},
		),
		merged(constants.SectionIncome, nil, []map[string]any{
			{"statement_detail_type_id": 8, "detail": "เงินเดือน", "valuation_submitter": 900000.0},
		}),
		merged(constants.SectionExpense, nil, []map[string]any{
			{"statement_detail_type_id": 17, "detail": "ค่าใช้จ่ายประจำ", "valuation_submitter": 300000.0},
		}),
		merged(constants.SectionAssetLand, nil, []map[string]any{
			{"asset_type_id": 1, "asset_name": "ที่ดินโฉนด 123", "valuation": 2000000.0, "land_number": "123", "province": "เชียงใหม่"},
		}),
		merged(constants.SectionAssetVehicle, nil, []map[string]any{
			{"asset_type_id": 5, "asset_name": "รถยนต์", "valuation": 800000.0, "brand": "Toyota", "registration": "กข 1234"},
		}),
	}
}

func TestAssembleBuildsRelationalSet(t *testing.T) {
	a := NewAssembler(nil)
	rs, err := a.Assemble("doc-1", 999, sampleSections())
	require.NoError(t, err)

	// submitter anchors the document and carries the tax figures
	require.Len(t, rs.Tables["submitter"], 1)
	sub := rs.Tables["submitter"][0]
	assert.Equal(t, 1, sub["submitter_id"])
	assert.Equal(t, 999, sub["nacc_id"])
	assert.Equal(t, "สมชาย", sub["first_name"])
	assert.Equal(t, 2566, sub["tax_year"])

	require.Len(t, rs.Tables["submitter_old_name"], 1)
	assert.Equal(t, 1, rs.Tables["submitter_old_name"][0]["submitter_id"])

	require.Len(t, rs.Tables["spouse"], 1)
	assert.Equal(t, 1, rs.Tables["spouse"][0]["spouse_id"])
	assert.Equal(t, 1, rs.Tables["spouse"][0]["submitter_id"])

	// positions split by holder, holder column itself dropped
	require.Len(t, rs.Tables["submitter_position"], 1)
	require.Len(t, rs.Tables["spouse_position"], 1)
	assert.NotContains(t, rs.Tables["submitter_position"][0], "holder")

	require.Len(t, rs.Tables["relative"], 1)
	require.Len(t, rs.Tables["statement"], 1)
	require.Len(t, rs.Tables["statement_detail"], 2)

	// assets share one table with per-kind info rows
	require.Len(t, rs.Tables["asset"], 2)
	require.Len(t, rs.Tables["asset_land_info"], 1)
	require.Len(t, rs.Tables["asset_vehicle_info"], 1)
	assert.Equal(t, rs.Tables["asset"][0]["asset_id"], rs.Tables["asset_land_info"][0]["asset_id"])
	assert.NotContains(t, rs.Tables["asset"][0], "land_number")
	assert.Equal(t, "123", rs.Tables["asset_land_info"][0]["land_number"])
}

func TestAssembleAssetIDsAreStable(t *testing.T) {
	a := NewAssembler(nil)
	rs1, err := a.Assemble("doc-1", 999, sampleSections())
	require.NoError(t, err)
	rs2, err := a.Assemble("doc-1", 999, sampleSections())
	require.NoError(t, err)
	assert.Equal(t, rs1.Tables["asset"], rs2.Tables["asset"])
}

func TestAssembleMissingSubmitterFails(t *testing.T) {
	a := NewAssembler(nil)
	sections := []entity.MergedRecord{
		merged(constants.SectionIdentity, map[string]any{"age": 55}, nil),
	}
	_, err := a.Assemble("doc-1", 999, sections)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrAssembly)
}

func TestAssembleSpousePositionWithoutSpouseGoesToSubmitter(t *testing.T) {
	a := NewAssembler(nil)
	sections := []entity.MergedRecord{
		merged(constants.SectionIdentity, map[string]any{"first_name": "สมชาย", "last_name": "ใจดี"}, nil),
		merged(constants.SectionPositions, nil, []map[string]any{
			{"holder": "spouse", "position": "ครู"},
		}),
	}
	rs, err := a.Assemble("doc-1", 1, sections)
	require.NoError(t, err)
	assert.Empty(t, rs.Tables["spouse_position"])
	require.Len(t, rs.Tables["submitter_position"], 1)
}

func TestTableOrderParentsFirst(t *testing.T) {
	pos := make(map[string]int, len(TableOrder))
	for i, name := range TableOrder {
		pos[name] = i
	}
	assert.Less(t, pos["submitter"], pos["submitter_old_name"])
	assert.Less(t, pos["submitter"], pos["spouse"])
	assert.Less(t, pos["spouse"], pos["spouse_position"])
	assert.Less(t, pos["asset"], pos["asset_land_info"])
}
