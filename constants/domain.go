package constants

// Enum vocabulary domains. Each domain is backed by one CSV file supplied by
// the enum collaborator (e.g. relationship.csv) and loaded once at startup.
const (
	DomainRelationship        = "relationship"
	DomainStatementType       = "statement_type"
	DomainStatementDetailType = "statement_detail_type"
	DomainAssetType           = "asset_type"
	DomainAssetAcquisition    = "asset_acquisition_type"
	DomainDateAcquiringType   = "date_acquiring_type"
	DomainDateEndingType      = "date_ending_type"
	DomainPositionPeriodType  = "position_period_type"
	DomainPositionCategory    = "position_category_type"
)

// AllDomains lists every vocabulary the registry expects to find at load time.
var AllDomains = []string{
	DomainRelationship,
	DomainStatementType,
	DomainStatementDetailType,
	DomainAssetType,
	DomainAssetAcquisition,
	DomainDateAcquiringType,
	DomainDateEndingType,
	DomainPositionPeriodType,
	DomainPositionCategory,
}
