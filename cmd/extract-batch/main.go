package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/internal/assemble"
	"github.com/opennacc/declaration-extractor/internal/common"
	"github.com/opennacc/declaration-extractor/internal/entity"
	"github.com/opennacc/declaration-extractor/internal/enums"
	"github.com/opennacc/declaration-extractor/internal/export"
	"github.com/opennacc/declaration-extractor/internal/extract"
	"github.com/opennacc/declaration-extractor/internal/llm/openai"
	"github.com/opennacc/declaration-extractor/internal/pipeline"
	"github.com/opennacc/declaration-extractor/internal/repository"
	"github.com/opennacc/declaration-extractor/internal/retry"
	"github.com/opennacc/declaration-extractor/internal/validate"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		dir     = flag.String("dir", "", "directory of documents: one subdirectory per document with page .txt files (required)")
		out     = flag.String("out", "", "output directory for CSV/XLSX (defaults to OUTPUT_DIR)")
		mode    = flag.String("mode", "", "extraction mode: combined or per_page (defaults to EXTRACTION_MODE)")
		persist = flag.Bool("persist", false, "persist results to the configured database")
	)
	flag.Parse()

	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	_ = godotenv.Load()

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if *mode != "" {
		cfg.Extract.Mode = constants.ExtractionMode(*mode)
	}
	if *out != "" {
		cfg.Export.OutputDir = *out
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	registry, err := enums.Load(cfg.Enum.Dir, logger)
	if err != nil {
		logger.Error("failed to load enum vocabularies", "error", err)
		os.Exit(1)
	}

	client := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
		MaxTokens:   cfg.LLM.MaxTokens,
	}, logger)

	extractor := extract.NewExtractor(cfg.Extract, retry.Config{
		MaxAttempts: cfg.Retry.MaxAttempts,
		BaseDelay:   cfg.Retry.BaseDelay,
		MaxDelay:    cfg.Retry.MaxDelay,
		Jitter:      cfg.Retry.Jitter,
	}, registry, client, logger)
	assembler := assemble.NewAssembler(logger)
	validator := validate.NewValidator(registry, validate.DefaultTolerance, logger)
	processor := pipeline.NewProcessor(cfg.Extract, cfg.Pipeline, extractor, assembler, validator, logger)

	// optional persistence (sqlite works well for local runs)
	var sink *repository.ResultSink
	var docsRepo repository.DocumentRepository
	if *persist {
		db, err := repository.Open(ctx, cfg.Database, logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer db.Close(logger)
		docsRepo = repository.NewDocumentRepository(db.Ent, logger)
		sink = repository.NewResultSink(docsRepo, logger)
	}

	inputs, err := scanDocuments(*dir)
	if err != nil {
		logger.Error("failed to scan input directory", "dir", *dir, "error", err)
		os.Exit(1)
	}
	logger.Info("starting batch", "documents", len(inputs), "mode", cfg.Extract.Mode)

	var results []entity.DocumentResult
	summary := validate.NewSummary()
	failures := 0
	for _, input := range inputs {
		if docsRepo != nil {
			doc, err := docsRepo.Create(ctx, input.NaccID, input.DocumentID, len(input.Pages))
			if err != nil {
				logger.Error("failed to create document row", "doc", input.DocumentID, "error", err)
				os.Exit(1)
			}
			input.DocumentID = doc.ID.String()
		}
		result := processor.ProcessDocument(ctx, input)
		if sink != nil {
			if err := sink.Accept(ctx, result); err != nil {
				logger.Error("failed to persist result", "doc_id", result.DocumentID, "error", err)
			}
		}
		if result.Status == constants.StatusFailed {
			failures++
		}
		if len(result.Verdicts) > 0 {
			summary.Add(result.Verdicts)
		}
		results = append(results, result)
	}

	if err := export.WriteCSV(cfg.Export.OutputDir, results, logger); err != nil {
		logger.Error("failed to write CSV output", "error", err)
		os.Exit(1)
	}

	exporter := export.NewService(logger)
	xlsxBytes, err := exporter.ExportRecordsXLSX(results)
	if err != nil {
		logger.Error("failed to build XLSX", "error", err)
		os.Exit(1)
	}
	xlsxPath := filepath.Join(cfg.Export.OutputDir, "declarations-"+time.Now().Format("20060102-150405")+".xlsx")
	if err := os.WriteFile(xlsxPath, xlsxBytes, 0o644); err != nil {
		logger.Error("failed to write XLSX output", "error", err)
		os.Exit(1)
	}

	logger.Info("batch complete",
		"documents", len(results),
		"failures", failures,
		"output_dir", cfg.Export.OutputDir)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents: %d\n", len(results))
	fmt.Printf("- Failures: %d\n", failures)
	for _, rc := range summary.Rules() {
		fmt.Printf("- Rule %s (%s): passed %d / failed %d\n", rc.Rule, rc.Severity, rc.Passed, rc.Failed)
	}
	fmt.Printf("- Output: %s\n", cfg.Export.OutputDir)
}

// scanDocuments treats every subdirectory of root as one document; its .txt
// files, sorted by name, are the pages. A leading integer in the directory
// name is taken as the NACC id.
func scanDocuments(root string) ([]pipeline.DocumentInput, error) {
	entries, err := os.ReadDir(root)
	if err != nil {
		return nil, err
	}

	var inputs []pipeline.DocumentInput
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		docDir := filepath.Join(root, e.Name())
		pageFiles, err := filepath.Glob(filepath.Join(docDir, "*.txt"))
		if err != nil {
			return nil, err
		}
		if len(pageFiles) == 0 {
			continue
		}
		sort.Strings(pageFiles)

		pages := make([]string, 0, len(pageFiles))
		for _, pf := range pageFiles {
			b, err := os.ReadFile(pf)
			if err != nil {
				return nil, fmt.Errorf("read page %s: %w", pf, err)
			}
			pages = append(pages, string(b))
		}

		inputs = append(inputs, pipeline.DocumentInput{
			DocumentID: e.Name(),
			NaccID:     naccIDFromName(e.Name()),
			Pages:      pages,
		})
	}
	return inputs, nil
}

func naccIDFromName(name string) int {
	digits := name
	if i := strings.IndexFunc(name, func(r rune) bool { return r < '0' || r > '9' }); i >= 0 {
		digits = name[:i]
	}
	n, _ := strconv.Atoi(digits)
	return n
}
