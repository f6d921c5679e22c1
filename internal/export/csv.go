package export

import (
	"encoding/csv"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"

	"github.com/opennacc/declaration-extractor/internal/assemble"
	"github.com/opennacc/declaration-extractor/internal/entity"
)

// WriteCSV writes one Output_<table>.csv per populated table into dir,
// accumulating rows across all results. Documents without records (assembly
// failed) contribute nothing. Tables are written in parent-first order.
func WriteCSV(dir string, results []entity.DocumentResult, logger *slog.Logger) error {
	if logger == nil {
		logger = slog.Default()
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	written := 0
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
		path := filepath.Join(dir, "Output_"+table+".csv")
		if err := writeTable(path, table, rows); err != nil {
			return fmt.Errorf("write %s: %w", table, err)
		}
		logger.Info("export.csv.table", "table", table, "rows", len(rows), "path", path)
		written++
	}
	logger.Info("export.csv.done", "dir", dir, "tables", written, "documents", len(results))
	return nil
}

func writeTable(path, table string, rows []entity.Row) error {
	cols := tableColumns[table]
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(cols); err != nil {
		return err
	}
	record := make([]string, len(cols))
	for _, row := range rows {
		for i, col := range cols {
			record[i] = cellString(row[col])
		}
		if err := w.Write(record); err != nil {
			return err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return err
	}
	return f.Close()
}

// cellString renders one value for CSV. Floats keep their shortest exact
// form; booleans serialize as TRUE/FALSE to match the upstream table dumps.
func cellString(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case bool:
		if t {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}
