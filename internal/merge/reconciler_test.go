package merge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/internal/entity"
)

func candidate(page int, confidence float64, fields map[string]any, rows []map[string]any) entity.CandidateRecord {
	status := constants.StatusSuccess
	return entity.CandidateRecord{
		DocumentID: "doc-1",
		Section:    constants.SectionIdentity,
		PageIndex:  page,
		Fields:     fields,
		Rows:       rows,
		Confidence: confidence,
		Status:     status,
	}
}

func TestMergeScalarHighestConfidenceWins(t *testing.T) {
	a := candidate(1, 0.6, map[string]any{"first_name": "สมชาย", "province": "เชียงใหม่"}, nil)
	b := candidate(2, 0.9, map[string]any{"first_name": "สมชาย", "province": "กรุงเทพมหานคร"}, nil)

	m := Merge("doc-1", constants.SectionIdentity, []entity.CandidateRecord{a, b})
	assert.Equal(t, "กรุงเทพมหานคร", m.Fields["province"])
	assert.Equal(t, []int{1, 2}, m.Provenance)
}

func TestMergeScalarTieGoesToEarliestPage(t *testing.T) {
	a := candidate(3, 0.8, map[string]any{"province": "ขอนแก่น"}, nil)
	b := candidate(1, 0.8, map[string]any{"province": "ภูเก็ต"}, nil)

	m := Merge("doc-1", constants.SectionIdentity, []entity.CandidateRecord{a, b})
	assert.Equal(t, "ภูเก็ต", m.Fields["province"])
}

func TestMergeDeterministicUnderPermutation(t *testing.T) {
	a := candidate(1, 0.7, map[string]any{"first_name": "ก"}, []map[string]any{
		{"first_name": "x", "last_name": "y"},
	})
	b := candidate(2, 0.9, map[string]any{"first_name": "ข"}, []map[string]any{
		{"first_name": "p", "last_name": "q"},
	})
	c := candidate(3, 0.8, nil, nil)

	m1 := Merge("doc-1", constants.SectionIdentity, []entity.CandidateRecord{a, b, c})
	m2 := Merge("doc-1", constants.SectionIdentity, []entity.CandidateRecord{c, b, a})
	m3 := Merge("doc-1", constants.SectionIdentity, []entity.CandidateRecord{b, a, c})

	assert.Equal(t, m1, m2)
	assert.Equal(t, m1, m3)
}

func TestMergeRowsUnionedByNaturalKey(t *testing.T) {
	a := candidate(1, 0.8, nil, []map[string]any{
		{"first_name": "สมชาย", "last_name": "ใจดี"},
	})
	b := candidate(2, 0.8, nil, []map[string]any{
		{"first_name": "สมหญิง", "last_name": "ใจดี"},
		{"first_name": "สมชาย", "last_name": "ใจดี"}, // duplicate across pages
	})

	m := Merge("doc-1", constants.SectionIdentity, []entity.CandidateRecord{a, b})
	require.Len(t, m.Rows, 2)
	assert.Empty(t, m.Anomalies)
}

func TestMergeConflictingRowKeptAsAnomaly(t *testing.T) {
	a := candidate(1, 0.6, nil, []map[string]any{
		{"first_name": "สมชาย", "last_name": "ใจดี", "title": "นาย"},
	})
	b := candidate(2, 0.9, nil, []map[string]any{
		{"first_name": "สมชาย", "last_name": "ใจดี", "title": "ดร."},
	})

	m := Merge("doc-1", constants.SectionIdentity, []entity.CandidateRecord{a, b})
	require.Len(t, m.Rows, 1)
	assert.Equal(t, "ดร.", m.Rows[0]["title"])
	require.Len(t, m.Anomalies, 1)
	assert.Equal(t, 1, m.Anomalies[0].PageIndex)
}

func TestMergeAnomalyOnlyPageCountsAsProvenance(t *testing.T) {
	// page 1 saw the position title but could not resolve it; page 2 resolved
	// it. Both pages contributed evidence, so both appear in provenance.
	unresolved := entity.CandidateRecord{
		DocumentID: "doc-1",
		Section:    constants.SectionPositions,
		PageIndex:  1,
		Confidence: 0.6,
		Status:     constants.StatusPartial,
		Anomalies: []entity.FieldAnomaly{
			{Field: "position_category_type_id", Value: "รองประธาน?", Reason: "label not in position_category_type", PageIndex: 1},
		},
	}
	resolved := entity.CandidateRecord{
		DocumentID: "doc-1",
		Section:    constants.SectionPositions,
		PageIndex:  2,
		Confidence: 0.9,
		Status:     constants.StatusSuccess,
		Rows: []map[string]any{
			{"holder": "submitter", "position": "รองประธาน", "position_category_type_id": 12},
		},
	}

	m := Merge("doc-1", constants.SectionPositions, []entity.CandidateRecord{unresolved, resolved})
	require.Len(t, m.Rows, 1)
	assert.Equal(t, 12, m.Rows[0]["position_category_type_id"])
	assert.Equal(t, []int{1, 2}, m.Provenance)
	require.Len(t, m.Anomalies, 1)
}

func TestMergeIgnoresFailedCandidates(t *testing.T) {
	ok := candidate(1, 0.9, map[string]any{"first_name": "สมชาย"}, nil)
	failed := entity.CandidateRecord{
		DocumentID: "doc-1",
		Section:    constants.SectionIdentity,
		PageIndex:  2,
		Status:     constants.StatusFailed,
		Error:      "empty source text",
	}

	m := Merge("doc-1", constants.SectionIdentity, []entity.CandidateRecord{ok, failed})
	assert.Equal(t, "สมชาย", m.Fields["first_name"])
	assert.Equal(t, []int{1}, m.Provenance)
}

func TestMergeEmptyInput(t *testing.T) {
	m := Merge("doc-1", constants.SectionIdentity, nil)
	assert.Empty(t, m.Fields)
	assert.Empty(t, m.Rows)
	assert.Empty(t, m.Provenance)
	assert.Zero(t, m.Confidence)
}

func TestFromSingle(t *testing.T) {
	c := candidate(2, 0.85, map[string]any{"first_name": "สมชาย"}, nil)
	m := FromSingle(c)
	assert.Equal(t, c.Fields, m.Fields)
	assert.Equal(t, 0.85, m.Confidence)
	assert.Equal(t, []int{2}, m.Provenance)
}

func TestRowKeyNormalization(t *testing.T) {
	key := []string{"first_name", "relationship_id"}
	a := RowKey(key, map[string]any{"first_name": "  Som Chai ", "relationship_id": 1})
	b := RowKey(key, map[string]any{"first_name": "som  chai", "relationship_id": 1})
	assert.Equal(t, a, b)

	c := RowKey(key, map[string]any{"first_name": "som chai"})
	assert.NotEqual(t, a, c)
}
