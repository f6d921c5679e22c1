package llm

import (
	"github.com/opennacc/declaration-extractor/constants"
)

// FieldKind drives schema generation, normalization and validation for one
// extracted field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindInt
	KindMoney // decimal, thousands separators stripped on receipt
	KindBool
	KindEnum  // value must resolve through the enum registry
	KindYear  // Buddhist-era calendar year
	KindDay   // day of month, 1..31
	KindMonth // 1..12
)

// FieldDef describes one field the reasoning service is asked to return.
type FieldDef struct {
	Name     string
	Kind     FieldKind
	Domain   string // enum domain when Kind is KindEnum
	Required bool
}

// SectionDef is the contract for one logical section: its scalar fields, its
// repeating rows (if any), the natural key used to de-duplicate rows across
// pages, and the enum domains attached to the request.
type SectionDef struct {
	Name      constants.Section
	Fields    []FieldDef // scalar fields, nil for rows-only sections
	RowFields []FieldDef // repeating row fields, nil for scalar-only sections
	RowKey    []string
	Domains   []string
}

var oldNameRows = []FieldDef{
	{Name: "title", Kind: KindText},
	{Name: "first_name", Kind: KindText, Required: true},
	{Name: "last_name", Kind: KindText},
	{Name: "title_en", Kind: KindText},
	{Name: "first_name_en", Kind: KindText},
	{Name: "last_name_en", Kind: KindText},
}

func assetRows(extra ...FieldDef) []FieldDef {
	base := []FieldDef{
		{Name: "asset_type_id", Kind: KindEnum, Domain: constants.DomainAssetType, Required: true},
		{Name: "asset_name", Kind: KindText, Required: true},
		{Name: "date_acquiring_type_id", Kind: KindEnum, Domain: constants.DomainDateAcquiringType},
		{Name: "acquiring_date", Kind: KindDay},
		{Name: "acquiring_month", Kind: KindMonth},
		{Name: "acquiring_year", Kind: KindYear},
		{Name: "date_ending_type_id", Kind: KindEnum, Domain: constants.DomainDateEndingType},
		{Name: "ending_date", Kind: KindDay},
		{Name: "ending_month", Kind: KindMonth},
		{Name: "ending_year", Kind: KindYear},
		{Name: "asset_acquisition_type_id", Kind: KindEnum, Domain: constants.DomainAssetAcquisition},
		{Name: "valuation", Kind: KindMoney},
		{Name: "owner_by_submitter", Kind: KindBool},
		{Name: "owner_by_spouse", Kind: KindBool},
		{Name: "owner_by_child", Kind: KindBool},
	}
	return append(base, extra...)
}

var assetDomains = []string{
	constants.DomainAssetType,
	constants.DomainAssetAcquisition,
	constants.DomainDateAcquiringType,
	constants.DomainDateEndingType,
}

var statementValuationRows = []FieldDef{
	{Name: "valuation_submitter", Kind: KindMoney},
	{Name: "valuation_spouse", Kind: KindMoney},
	{Name: "valuation_child", Kind: KindMoney},
}

func detailRows() []FieldDef {
	rows := []FieldDef{
		{Name: "statement_detail_type_id", Kind: KindEnum, Domain: constants.DomainStatementDetailType, Required: true},
		{Name: "detail", Kind: KindText},
	}
	rows = append(rows, statementValuationRows...)
	return append(rows, FieldDef{Name: "note", Kind: KindText})
}

// Sections is the fixed descriptor table, in document order.
var Sections = []SectionDef{
	{
		Name: constants.SectionIdentity,
		Fields: []FieldDef{
			{Name: "title", Kind: KindText},
			{Name: "first_name", Kind: KindText, Required: true},
			{Name: "last_name", Kind: KindText, Required: true},
			{Name: "age", Kind: KindInt},
			{Name: "marital_status", Kind: KindText},
			{Name: "status_date", Kind: KindDay},
			{Name: "status_month", Kind: KindMonth},
			{Name: "status_year", Kind: KindYear},
			{Name: "sub_district", Kind: KindText},
			{Name: "district", Kind: KindText},
			{Name: "province", Kind: KindText},
			{Name: "post_code", Kind: KindText},
		},
		RowFields: oldNameRows, // former names, if any
		RowKey:    []string{"first_name", "last_name"},
	},
	{
		Name: constants.SectionSpouse,
		Fields: []FieldDef{
			{Name: "title", Kind: KindText},
			{Name: "first_name", Kind: KindText},
			{Name: "last_name", Kind: KindText},
			{Name: "age", Kind: KindInt},
			{Name: "status", Kind: KindText},
			{Name: "status_date", Kind: KindDay},
			{Name: "status_month", Kind: KindMonth},
			{Name: "status_year", Kind: KindYear},
			{Name: "sub_district", Kind: KindText},
			{Name: "district", Kind: KindText},
			{Name: "province", Kind: KindText},
			{Name: "post_code", Kind: KindText},
		},
		RowFields: oldNameRows,
		RowKey:    []string{"first_name", "last_name"},
	},
	{
		Name: constants.SectionRelatives,
		RowFields: []FieldDef{
			{Name: "relationship_id", Kind: KindEnum, Domain: constants.DomainRelationship, Required: true},
			{Name: "title", Kind: KindText},
			{Name: "first_name", Kind: KindText, Required: true},
			{Name: "last_name", Kind: KindText},
			{Name: "age", Kind: KindInt},
			{Name: "address", Kind: KindText},
			{Name: "occupation", Kind: KindText},
			{Name: "school", Kind: KindText},
			{Name: "workplace", Kind: KindText},
			{Name: "workplace_location", Kind: KindText},
			{Name: "is_death", Kind: KindBool},
		},
		RowKey:  []string{"first_name", "last_name", "relationship_id"},
		Domains: []string{constants.DomainRelationship},
	},
	{
		Name: constants.SectionPositions,
		RowFields: []FieldDef{
			{Name: "holder", Kind: KindText, Required: true}, // "submitter" or "spouse"
			{Name: "position_period_type_id", Kind: KindEnum, Domain: constants.DomainPositionPeriodType},
			{Name: "position", Kind: KindText, Required: true},
			{Name: "position_category_type_id", Kind: KindEnum, Domain: constants.DomainPositionCategory},
			{Name: "workplace", Kind: KindText},
			{Name: "workplace_location", Kind: KindText},
			{Name: "date_acquiring_type_id", Kind: KindEnum, Domain: constants.DomainDateAcquiringType},
			{Name: "start_date", Kind: KindDay},
			{Name: "start_month", Kind: KindMonth},
			{Name: "start_year", Kind: KindYear},
			{Name: "date_ending_type_id", Kind: KindEnum, Domain: constants.DomainDateEndingType},
			{Name: "end_date", Kind: KindDay},
			{Name: "end_month", Kind: KindMonth},
			{Name: "end_year", Kind: KindYear},
			{Name: "note", Kind: KindText},
		},
		RowKey: []string{"holder", "position", "workplace"},
		Domains: []string{
			constants.DomainPositionPeriodType,
			constants.DomainPositionCategory,
			constants.DomainDateAcquiringType,
			constants.DomainDateEndingType,
		},
	},
	{
		Name:      constants.SectionIncome,
		RowFields: detailRows(),
		RowKey:    []string{"statement_detail_type_id", "detail"},
		Domains:   []string{constants.DomainStatementDetailType},
	},
	{
		Name:      constants.SectionExpense,
		RowFields: detailRows(),
		RowKey:    []string{"statement_detail_type_id", "detail"},
		Domains:   []string{constants.DomainStatementDetailType},
	},
	{
		// summary page: per-statement-type totals plus the filed tax figures
		Name: constants.SectionTax,
		Fields: []FieldDef{
			{Name: "tax_year", Kind: KindYear},
			{Name: "assessed_income", Kind: KindMoney},
			{Name: "tax_paid", Kind: KindMoney},
		},
		RowFields: append([]FieldDef{
			{Name: "statement_type_id", Kind: KindEnum, Domain: constants.DomainStatementType, Required: true},
		}, statementValuationRows...),
		RowKey:  []string{"statement_type_id"},
		Domains: []string{constants.DomainStatementType},
	},
	{
		Name: constants.SectionAssetLand,
		RowFields: assetRows(
			FieldDef{Name: "land_number", Kind: KindText},
			FieldDef{Name: "area_rai", Kind: KindInt},
			FieldDef{Name: "area_ngan", Kind: KindInt},
			FieldDef{Name: "area_sqwa", Kind: KindMoney},
			FieldDef{Name: "province", Kind: KindText},
		),
		RowKey:  []string{"asset_name", "asset_type_id"},
		Domains: assetDomains,
	},
	{
		Name: constants.SectionAssetBuilding,
		RowFields: assetRows(
			FieldDef{Name: "building_type", Kind: KindText},
			FieldDef{Name: "room_number", Kind: KindText},
			FieldDef{Name: "province", Kind: KindText},
		),
		RowKey:  []string{"asset_name", "asset_type_id"},
		Domains: assetDomains,
	},
	{
		Name: constants.SectionAssetVehicle,
		RowFields: assetRows(
			FieldDef{Name: "brand", Kind: KindText},
			FieldDef{Name: "model", Kind: KindText},
			FieldDef{Name: "registration", Kind: KindText},
			FieldDef{Name: "province", Kind: KindText},
		),
		RowKey:  []string{"asset_name", "asset_type_id"},
		Domains: assetDomains,
	},
	{
		Name: constants.SectionAssetOther,
		RowFields: assetRows(
			FieldDef{Name: "asset_type_other", Kind: KindText},
			FieldDef{Name: "description", Kind: KindText},
		),
		RowKey:  []string{"asset_name", "asset_type_id"},
		Domains: assetDomains,
	},
}

var sectionIndex = func() map[constants.Section]SectionDef {
	m := make(map[constants.Section]SectionDef, len(Sections))
	for _, def := range Sections {
		m[def.Name] = def
	}
	return m
}()

// SectionFor returns the descriptor for a section.
func SectionFor(name constants.Section) (SectionDef, bool) {
	def, ok := sectionIndex[name]
	return def, ok
}

// FieldByName finds a field definition among defs.
func FieldByName(defs []FieldDef, name string) (FieldDef, bool) {
	for _, d := range defs {
		if d.Name == name {
			return d, true
		}
	}
	return FieldDef{}, false
}
