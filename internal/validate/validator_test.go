package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/internal/entity"
	"github.com/opennacc/declaration-extractor/internal/enums"
)

func testRegistry() *enums.Registry {
	return enums.New(map[string][]enums.Entry{
		constants.DomainRelationship:        {{ID: 1, Label: "บิดา"}, {ID: 2, Label: "มารดา"}},
		constants.DomainStatementType:       {{ID: 1, Label: "ทรัพย์สิน"}},
		constants.DomainStatementDetailType: {{ID: 8, Label: "เงินเดือน"}, {ID: 10, Label: "เบี้ยประชุม"}, {ID: 15, Label: "รายได้อื่น"}},
		constants.DomainAssetType:           {{ID: 1, Label: "ที่ดิน"}},
	})
}

func cleanRecordSet() *entity.RecordSet {
	return &entity.RecordSet{
		DocumentID: "doc-1",
		NaccID:     7,
		Tables: map[string][]entity.Row{
			"submitter": {
				{"nacc_id": 7, "submitter_id": 1, "first_name": "สมชาย", "tax_year": 2566},
			},
			"relative": {
				{"nacc_id": 7, "relative_id": 1, "submitter_id": 1, "relationship_id": 1},
			},
			"statement": {
				{"nacc_id": 7, "statement_id": 1, "submitter_id": 1, "statement_type_id": 1, "valuation_submitter": 1000000.0},
			},
			"statement_detail": {
				{"nacc_id": 7, "statement_detail_id": 1, "submitter_id": 1, "statement_detail_type_id": 8, "valuation_submitter": 600000.0},
				{"nacc_id": 7, "statement_detail_id": 2, "submitter_id": 1, "statement_detail_type_id": 15, "valuation_submitter": 400000.0},
			},
			"asset": {
				{"nacc_id": 7, "asset_id": 1, "submitter_id": 1, "asset_type_id": 1, "valuation": 2000000.0,
					"acquiring_year": 2550, "ending_year": 2560},
			},
			"asset_land_info": {
				{"nacc_id": 7, "asset_id": 1, "province": "เชียงใหม่"},
			},
		},
	}
}

func TestValidateAllRulesPass(t *testing.T) {
	v := NewValidator(testRegistry(), 0.05, nil)
	verdicts := v.Validate(cleanRecordSet())
	require.Len(t, verdicts, len(RuleOrder))
	for _, vd := range verdicts {
		assert.True(t, vd.Passed, "rule %s: %s", vd.Rule, vd.Detail)
	}
	assert.Equal(t, constants.StatusSuccess, Status(verdicts))
}

func verdictFor(t *testing.T, verdicts []entity.Verdict, rule string) entity.Verdict {
	t.Helper()
	for _, vd := range verdicts {
		if vd.Rule == rule {
			return vd
		}
	}
	t.Fatalf("no verdict for rule %s", rule)
	return entity.Verdict{}
}

func TestForeignKeyViolation(t *testing.T) {
	rs := cleanRecordSet()
	rs.Tables["asset_land_info"][0]["asset_id"] = 42

	v := NewValidator(testRegistry(), 0.05, nil)
	verdicts := v.Validate(rs)
	vd := verdictFor(t, verdicts, RuleForeignKeys)
	assert.False(t, vd.Passed)
	assert.Contains(t, vd.Detail, "asset_land_info")
	assert.Equal(t, constants.StatusFailed, Status(verdicts))
}

func TestUnknownEnumID(t *testing.T) {
	rs := cleanRecordSet()
	rs.Tables["relative"][0]["relationship_id"] = 99

	v := NewValidator(testRegistry(), 0.05, nil)
	vd := verdictFor(t, v.Validate(rs), RuleEnumValid)
	assert.False(t, vd.Passed)
	assert.Equal(t, entity.SeverityMandatory, vd.Severity)
}

func TestNegativeMoney(t *testing.T) {
	rs := cleanRecordSet()
	rs.Tables["asset"][0]["valuation"] = -500.0

	v := NewValidator(testRegistry(), 0.05, nil)
	vd := verdictFor(t, v.Validate(rs), RuleMoneyNonNeg)
	assert.False(t, vd.Passed)
}

func TestImplausibleDates(t *testing.T) {
	rs := cleanRecordSet()
	rs.Tables["asset"][0]["acquiring_month"] = 13

	v := NewValidator(testRegistry(), 0.05, nil)
	vd := verdictFor(t, v.Validate(rs), RuleDatesValid)
	assert.False(t, vd.Passed)
	assert.Contains(t, vd.Detail, "acquiring_month")
}

func TestStatementTotalsWithinTolerance(t *testing.T) {
	rs := cleanRecordSet()
	// details sum to 1,000,000.00; a 0.01 rounding residue is within slack
	rs.Tables["statement"][0]["valuation_submitter"] = 1000000.01

	v := NewValidator(testRegistry(), 0.05, nil)
	vd := verdictFor(t, v.Validate(rs), RuleStatementTotals)
	assert.True(t, vd.Passed, vd.Detail)
}

func TestStatementTotalsBeyondTolerance(t *testing.T) {
	rs := cleanRecordSet()
	rs.Tables["statement"][0]["valuation_submitter"] = 1000100.0

	v := NewValidator(testRegistry(), 0.05, nil)
	verdicts := v.Validate(rs)
	vd := verdictFor(t, verdicts, RuleStatementTotals)
	assert.False(t, vd.Passed)
	assert.Equal(t, entity.SeverityAdvisory, vd.Severity)
	// advisory failure degrades, never fails, the document
	assert.Equal(t, constants.StatusPartial, Status(verdicts))
}

func TestStatementTotalsToleranceIsAbsolute(t *testing.T) {
	// the slack never scales with the total: on a 1.5M statement, a one-satang
	// residue passes and a 100.00 deviation fails
	rs := cleanRecordSet()
	rs.Tables["statement_detail"][0]["valuation_submitter"] = 900000.0
	rs.Tables["statement_detail"][1]["valuation_submitter"] = 600000.0

	v := NewValidator(testRegistry(), 0.05, nil)

	rs.Tables["statement"][0]["valuation_submitter"] = 1500000.01
	vd := verdictFor(t, v.Validate(rs), RuleStatementTotals)
	assert.True(t, vd.Passed, vd.Detail)

	rs.Tables["statement"][0]["valuation_submitter"] = 1500100.0
	vd = verdictFor(t, v.Validate(rs), RuleStatementTotals)
	assert.False(t, vd.Passed)
}

func TestDateRangeOrdering(t *testing.T) {
	rs := cleanRecordSet()
	rs.Tables["asset"][0]["acquiring_year"] = 2565
	rs.Tables["asset"][0]["ending_year"] = 2550

	v := NewValidator(testRegistry(), 0.05, nil)
	vd := verdictFor(t, v.Validate(rs), RuleDateRanges)
	assert.False(t, vd.Passed)
	assert.Equal(t, entity.SeverityAdvisory, vd.Severity)
}

func TestSummaryAggregation(t *testing.T) {
	v := NewValidator(testRegistry(), 0.05, nil)

	good := v.Validate(cleanRecordSet())

	bad := cleanRecordSet()
	bad.DocumentID = "doc-2"
	bad.Tables["relative"][0]["relationship_id"] = 99
	badVerdicts := v.Validate(bad)

	s := NewSummary()
	s.Add(good)
	s.Add(badVerdicts)

	assert.Equal(t, 2, s.Documents)
	assert.Equal(t, 1, s.DocumentsFail)
	rules := s.Rules()
	require.Len(t, rules, len(RuleOrder))
	for _, rc := range rules {
		if rc.Rule == RuleEnumValid {
			assert.Equal(t, 1, rc.Passed)
			assert.Equal(t, 1, rc.Failed)
		}
	}
}
