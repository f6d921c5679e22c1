package assemble

import (
	"log/slog"

	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/internal/common"
	"github.com/opennacc/declaration-extractor/internal/entity"
)

// TableOrder lists every output table, parents before children, so that
// serialization and persistence can always write referenced rows first.
var TableOrder = []string{
	"submitter",
	"submitter_old_name",
	"submitter_position",
	"spouse",
	"spouse_old_name",
	"spouse_position",
	"relative",
	"statement",
	"statement_detail",
	"asset",
	"asset_land_info",
	"asset_building_info",
	"asset_vehicle_info",
	"asset_other_info",
}

var assetInfoTables = map[constants.Section]string{
	constants.SectionAssetLand:     "asset_land_info",
	constants.SectionAssetBuilding: "asset_building_info",
	constants.SectionAssetVehicle:  "asset_vehicle_info",
	constants.SectionAssetOther:    "asset_other_info",
}

// assetInfoColumns are the per-kind columns that move to the info table; the
// remainder of an asset row stays on the shared asset table.
var assetInfoColumns = map[constants.Section][]string{
	constants.SectionAssetLand:     {"land_number", "area_rai", "area_ngan", "area_sqwa", "province"},
	constants.SectionAssetBuilding: {"building_type", "room_number", "province"},
	constants.SectionAssetVehicle:  {"brand", "model", "registration", "province"},
	constants.SectionAssetOther:    {"asset_type_other", "description"},
}

// Assembler projects merged section records into the relational RecordSet.
// Synthetic ids are scoped per document and assigned in section order, so
// assembly of the same input is always identical.
type Assembler struct {
	log *slog.Logger
}

func NewAssembler(logger *slog.Logger) *Assembler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Assembler{log: logger}
}

// Assemble builds the RecordSet for one document. A document whose identity
// section yielded neither first nor last name cannot anchor the relational
// output and is rejected.
func (a *Assembler) Assemble(documentID string, naccID int, sections []entity.MergedRecord) (*entity.RecordSet, error) {
	bySection := make(map[constants.Section]entity.MergedRecord, len(sections))
	for _, s := range sections {
		bySection[s.Section] = s
	}

	identity := bySection[constants.SectionIdentity]
	if identity.Fields["first_name"] == nil && identity.Fields["last_name"] == nil {
		return nil, common.NewAppError("ASSEMBLY_NO_SUBMITTER",
			"identity section has no submitter name", common.ErrAssembly)
	}

	rs := &entity.RecordSet{
		DocumentID: documentID,
		NaccID:     naccID,
		Tables:     make(map[string][]entity.Row, len(TableOrder)),
	}
	base := func() entity.Row {
		return entity.Row{"nacc_id": naccID, "document_id": documentID}
	}

	// submitter anchors everything; id 1 within the document
	const submitterID = 1
	submitter := base()
	submitter["submitter_id"] = submitterID
	for k, v := range identity.Fields {
		submitter[k] = v
	}
	if tax, ok := bySection[constants.SectionTax]; ok {
		for k, v := range tax.Fields {
			submitter[k] = v
		}
	}
	rs.Tables["submitter"] = []entity.Row{submitter}

	for i, row := range identity.Rows {
		r := base()
		r["old_name_id"] = i + 1
		r["submitter_id"] = submitterID
		mergeInto(r, row)
		rs.Tables["submitter_old_name"] = append(rs.Tables["submitter_old_name"], r)
	}

	// spouse is optional; present only when extraction found any field
	spouseID := 0
	if spouse, ok := bySection[constants.SectionSpouse]; ok && (len(spouse.Fields) > 0 || len(spouse.Rows) > 0) {
		spouseID = 1
		r := base()
		r["spouse_id"] = spouseID
		r["submitter_id"] = submitterID
		for k, v := range spouse.Fields {
			r[k] = v
		}
		rs.Tables["spouse"] = []entity.Row{r}

		for i, row := range spouse.Rows {
			or := base()
			or["old_name_id"] = i + 1
			or["spouse_id"] = spouseID
			mergeInto(or, row)
			rs.Tables["spouse_old_name"] = append(rs.Tables["spouse_old_name"], or)
		}
	}

	// positions split by holder
	if positions, ok := bySection[constants.SectionPositions]; ok {
		subN, spN := 0, 0
		for _, row := range positions.Rows {
			holder, _ := row["holder"].(string)
			r := base()
			mergeInto(r, row)
			delete(r, "holder")
			if holder == "spouse" && spouseID != 0 {
				spN++
				r["position_id"] = spN
				r["spouse_id"] = spouseID
				rs.Tables["spouse_position"] = append(rs.Tables["spouse_position"], r)
			} else {
				subN++
				r["position_id"] = subN
				r["submitter_id"] = submitterID
				rs.Tables["submitter_position"] = append(rs.Tables["submitter_position"], r)
			}
		}
	}

	if relatives, ok := bySection[constants.SectionRelatives]; ok {
		for i, row := range relatives.Rows {
			r := base()
			r["relative_id"] = i + 1
			r["submitter_id"] = submitterID
			mergeInto(r, row)
			rs.Tables["relative"] = append(rs.Tables["relative"], r)
		}
	}

	// statement totals come from the summary section; income and expense
	// line items share the statement_detail table
	if tax, ok := bySection[constants.SectionTax]; ok {
		for i, row := range tax.Rows {
			r := base()
			r["statement_id"] = i + 1
			r["submitter_id"] = submitterID
			mergeInto(r, row)
			rs.Tables["statement"] = append(rs.Tables["statement"], r)
		}
	}
	detailN := 0
	for _, section := range []constants.Section{constants.SectionIncome, constants.SectionExpense} {
		rec, ok := bySection[section]
		if !ok {
			continue
		}
		for _, row := range rec.Rows {
			detailN++
			r := base()
			r["statement_detail_id"] = detailN
			r["submitter_id"] = submitterID
			mergeInto(r, row)
			rs.Tables["statement_detail"] = append(rs.Tables["statement_detail"], r)
		}
	}

	// assets share one table; kind-specific columns split into info tables.
	// Fixed section order keeps asset ids stable run to run.
	assetN := 0
	for _, section := range []constants.Section{
		constants.SectionAssetLand,
		constants.SectionAssetBuilding,
		constants.SectionAssetVehicle,
		constants.SectionAssetOther,
	} {
		rec, ok := bySection[section]
		if !ok {
			continue
		}
		infoTable := assetInfoTables[section]
		infoCols := assetInfoColumns[section]
		for _, row := range rec.Rows {
			assetN++
			r := base()
			r["asset_id"] = assetN
			r["submitter_id"] = submitterID
			info := base()
			info["asset_id"] = assetN
			hasInfo := false
			for k, v := range row {
				if contains(infoCols, k) {
					info[k] = v
					hasInfo = true
				} else {
					r[k] = v
				}
			}
			rs.Tables["asset"] = append(rs.Tables["asset"], r)
			if hasInfo {
				rs.Tables[infoTable] = append(rs.Tables[infoTable], info)
			}
		}
	}

	a.log.Info("assemble.done",
		"doc_id", documentID,
		"nacc_id", naccID,
		"tables", len(rs.Tables),
		"assets", assetN,
		"details", detailN,
	)
	return rs, nil
}

func mergeInto(dst entity.Row, src map[string]any) {
	for k, v := range src {
		dst[k] = v
	}
}

func contains(ss []string, s string) bool {
	for _, x := range ss {
		if x == s {
			return true
		}
	}
	return false
}
