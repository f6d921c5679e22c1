package export

// tableColumns fixes the serialized column order of every output table.
// Values absent from a row serialize as empty cells.
var tableColumns = map[string][]string{
	"submitter": {
		"nacc_id", "document_id", "submitter_id",
		"title", "first_name", "last_name", "age", "marital_status",
		"status_date", "status_month", "status_year",
		"sub_district", "district", "province", "post_code",
		"tax_year", "assessed_income", "tax_paid",
	},
	"submitter_old_name": {
		"nacc_id", "document_id", "old_name_id", "submitter_id",
		"title", "first_name", "last_name",
		"title_en", "first_name_en", "last_name_en",
	},
	"submitter_position": {
		"nacc_id", "document_id", "position_id", "submitter_id",
		"position_period_type_id", "position", "position_category_type_id",
		"workplace", "workplace_location",
		"date_acquiring_type_id", "start_date", "start_month", "start_year",
		"date_ending_type_id", "end_date", "end_month", "end_year",
		"note",
	},
	"spouse": {
		"nacc_id", "document_id", "spouse_id", "submitter_id",
		"title", "first_name", "last_name", "age", "status",
		"status_date", "status_month", "status_year",
		"sub_district", "district", "province", "post_code",
	},
	"spouse_old_name": {
		"nacc_id", "document_id", "old_name_id", "spouse_id",
		"title", "first_name", "last_name",
		"title_en", "first_name_en", "last_name_en",
	},
	"spouse_position": {
		"nacc_id", "document_id", "position_id", "spouse_id",
		"position_period_type_id", "position", "position_category_type_id",
		"workplace", "workplace_location",
		"date_acquiring_type_id", "start_date", "start_month", "start_year",
		"date_ending_type_id", "end_date", "end_month", "end_year",
		"note",
	},
	"relative": {
		"nacc_id", "document_id", "relative_id", "submitter_id",
		"relationship_id", "title", "first_name", "last_name", "age",
		"address", "occupation", "school", "workplace", "workplace_location",
		"is_death",
	},
	"statement": {
		"nacc_id", "document_id", "statement_id", "submitter_id",
		"statement_type_id",
		"valuation_submitter", "valuation_spouse", "valuation_child",
	},
	"statement_detail": {
		"nacc_id", "document_id", "statement_detail_id", "submitter_id",
		"statement_detail_type_id", "detail",
		"valuation_submitter", "valuation_spouse", "valuation_child",
		"note",
	},
	"asset": {
		"nacc_id", "document_id", "asset_id", "submitter_id",
		"asset_type_id", "asset_name",
		"date_acquiring_type_id", "acquiring_date", "acquiring_month", "acquiring_year",
		"date_ending_type_id", "ending_date", "ending_month", "ending_year",
		"asset_acquisition_type_id", "valuation",
		"owner_by_submitter", "owner_by_spouse", "owner_by_child",
	},
	"asset_land_info": {
		"nacc_id", "document_id", "asset_id",
		"land_number", "area_rai", "area_ngan", "area_sqwa", "province",
	},
	"asset_building_info": {
		"nacc_id", "document_id", "asset_id",
		"building_type", "room_number", "province",
	},
	"asset_vehicle_info": {
		"nacc_id", "document_id", "asset_id",
		"brand", "model", "registration", "province",
	},
	"asset_other_info": {
		"nacc_id", "document_id", "asset_id",
		"asset_type_other", "description",
	},
}
