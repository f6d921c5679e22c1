package export

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/opennacc/declaration-extractor/internal/assemble"
	"github.com/opennacc/declaration-extractor/internal/entity"
	"github.com/opennacc/declaration-extractor/internal/validate"
)

// Service produces XLSX workbooks for batch results: one sheet per populated
// table plus a Summary sheet with per-document outcomes and rule counts.
type Service struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{logger: logger}
}

// ExportRecordsXLSX returns an XLSX workbook (as bytes) for the given results.
func (s *Service) ExportRecordsXLSX(results []entity.DocumentResult) ([]byte, error) {
	start := time.Now()

	f := excelize.NewFile()
	const summarySheet = "Summary"
	// excelize opens with "Sheet1"; rename it so Summary comes first
	if err := f.SetSheetName("Sheet1", summarySheet); err != nil {
		return nil, fmt.Errorf("rename summary sheet: %w", err)
	}
	s.writeSummary(f, summarySheet, results)

	totalRows := 0
	for _, table := range assemble.TableOrder {
		var rows []entity.Row
		for _, r := range results {
			if r.Records == nil {
				continue
			}
			rows = append(rows, r.Records.Tables[table]...)
		}
		if len(rows) == 0 {
			continue
		}
		if _, err := f.NewSheet(table); err != nil {
			return nil, fmt.Errorf("create sheet %s: %w", table, err)
		}
		cols := tableColumns[table]
		for i, h := range cols {
			cell, _ := excelize.CoordinatesToCellName(i+1, 1)
			_ = f.SetCellValue(table, cell, h)
		}
		for ri, row := range rows {
			for ci, col := range cols {
				if v := row[col]; v != nil {
					cell, _ := excelize.CoordinatesToCellName(ci+1, ri+2)
					_ = f.SetCellValue(table, cell, v)
				}
			}
		}
		totalRows += len(rows)
	}

	if index, err := f.GetSheetIndex(summarySheet); err == nil {
		f.SetActiveSheet(index)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"documents", len(results),
		"rows", totalRows,
		"bytes", buf.Len(),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func (s *Service) writeSummary(f *excelize.File, sheet string, results []entity.DocumentResult) {
	headers := []string{"Document ID", "NACC ID", "Mode", "Status", "Confidence", "Failed Rules", "Error"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	summary := validate.NewSummary()
	row := 2
	for _, r := range results {
		failed := 0
		for _, vd := range r.Verdicts {
			if !vd.Passed {
				failed++
			}
		}
		if len(r.Verdicts) > 0 {
			summary.Add(r.Verdicts)
		}
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, r.DocumentID)
		write(2, r.NaccID)
		write(3, string(r.Mode))
		write(4, string(r.Status))
		write(5, r.Confidence)
		write(6, failed)
		write(7, r.Error)
		row++
	}

	// rule roll-up below the per-document block
	row++
	for _, rc := range summary.Rules() {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, rc.Rule)
		write(2, string(rc.Severity))
		write(3, fmt.Sprintf("passed %d / failed %d", rc.Passed, rc.Failed))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 38)
	_ = f.SetColWidth(sheet, "B", "D", 12)
	_ = f.SetColWidth(sheet, "G", "G", 60)
}
