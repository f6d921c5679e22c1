package constants

// Section is one logical category of extracted data. Each section is sent to
// the reasoning service as an independent request.
type Section string

const (
	SectionIdentity  Section = "identity"
	SectionSpouse    Section = "spouse"
	SectionRelatives Section = "relatives"
	SectionPositions Section = "positions"
	SectionIncome    Section = "income"
	SectionExpense   Section = "expense"
	SectionTax       Section = "tax"

	SectionAssetLand     Section = "asset_land"
	SectionAssetBuilding Section = "asset_building"
	SectionAssetVehicle  Section = "asset_vehicle"
	SectionAssetOther    Section = "asset_other"
)

// AllSections lists sections in document order. Extraction fans out over this
// list; the order itself only matters for reproducible logs and reports.
var AllSections = []Section{
	SectionIdentity,
	SectionSpouse,
	SectionRelatives,
	SectionPositions,
	SectionIncome,
	SectionExpense,
	SectionTax,
	SectionAssetLand,
	SectionAssetBuilding,
	SectionAssetVehicle,
	SectionAssetOther,
}
