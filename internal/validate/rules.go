package validate

import (
	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/internal/entity"
)

// Rule names are stable identifiers; they appear in verdicts, logs and the
// summary report.
const (
	RuleForeignKeys     = "foreign_keys"
	RuleEnumValid       = "enum_valid"
	RuleMoneyNonNeg     = "money_non_negative"
	RuleDatesValid      = "dates_valid"
	RuleStatementTotals = "statement_totals_match_details"
	RuleDateRanges      = "date_ranges_ordered"
)

// ruleSeverity fixes how each rule affects the document status. Structural
// rules are mandatory; cross-table arithmetic and chronology are advisory
// because source documents themselves get these wrong.
var ruleSeverity = map[string]entity.Severity{
	RuleForeignKeys:     entity.SeverityMandatory,
	RuleEnumValid:       entity.SeverityMandatory,
	RuleMoneyNonNeg:     entity.SeverityMandatory,
	RuleDatesValid:      entity.SeverityMandatory,
	RuleStatementTotals: entity.SeverityAdvisory,
	RuleDateRanges:      entity.SeverityAdvisory,
}

// RuleOrder is the evaluation and reporting order.
var RuleOrder = []string{
	RuleForeignKeys,
	RuleEnumValid,
	RuleMoneyNonNeg,
	RuleDatesValid,
	RuleStatementTotals,
	RuleDateRanges,
}

// fkRef declares one child-to-parent reference.
type fkRef struct {
	childTable  string
	childCol    string
	parentTable string
	parentCol   string
}

var foreignKeys = []fkRef{
	{"submitter_old_name", "submitter_id", "submitter", "submitter_id"},
	{"submitter_position", "submitter_id", "submitter", "submitter_id"},
	{"spouse", "submitter_id", "submitter", "submitter_id"},
	{"spouse_old_name", "spouse_id", "spouse", "spouse_id"},
	{"spouse_position", "spouse_id", "spouse", "spouse_id"},
	{"relative", "submitter_id", "submitter", "submitter_id"},
	{"statement", "submitter_id", "submitter", "submitter_id"},
	{"statement_detail", "submitter_id", "submitter", "submitter_id"},
	{"asset", "submitter_id", "submitter", "submitter_id"},
	{"asset_land_info", "asset_id", "asset", "asset_id"},
	{"asset_building_info", "asset_id", "asset", "asset_id"},
	{"asset_vehicle_info", "asset_id", "asset", "asset_id"},
	{"asset_other_info", "asset_id", "asset", "asset_id"},
}

// enumColumns maps id-bearing columns to their vocabulary.
var enumColumns = map[string]string{
	"relationship_id":           constants.DomainRelationship,
	"statement_type_id":         constants.DomainStatementType,
	"statement_detail_type_id":  constants.DomainStatementDetailType,
	"asset_type_id":             constants.DomainAssetType,
	"asset_acquisition_type_id": constants.DomainAssetAcquisition,
	"date_acquiring_type_id":    constants.DomainDateAcquiringType,
	"date_ending_type_id":       constants.DomainDateEndingType,
	"position_period_type_id":   constants.DomainPositionPeriodType,
	"position_category_type_id": constants.DomainPositionCategory,
}

// moneyColumns are always-present amount columns; any column prefixed with
// "valuation" is treated as money as well.
var moneyColumns = map[string]struct{}{
	"assessed_income": {},
	"tax_paid":        {},
}

// statementDetailGroups maps a statement type (summary row) to the detail
// types whose line items it totals.
var statementDetailGroups = map[int][]int{
	1: {8, 10, 15},
	2: {9},
	3: {11},
	4: {12, 13},
	5: {17, 18, 19, 20},
}

// dateRangeChecks lists (table, start prefix, end prefix) chronology checks.
var dateRangeChecks = []struct {
	table string
	start string
	end   string
}{
	{"submitter_position", "start", "end"},
	{"spouse_position", "start", "end"},
	{"asset", "acquiring", "ending"},
}
