package pipeline

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/internal/assemble"
	"github.com/opennacc/declaration-extractor/internal/common"
	"github.com/opennacc/declaration-extractor/internal/entity"
	"github.com/opennacc/declaration-extractor/internal/extract"
	"github.com/opennacc/declaration-extractor/internal/merge"
	"github.com/opennacc/declaration-extractor/internal/validate"
)

// PageBreak separates page texts when a document is sent as one request.
const PageBreak = "\n\n---PAGE BREAK---\n\n"

// DocumentInput is one document's recognized text, one entry per page.
type DocumentInput struct {
	DocumentID string
	NaccID     int
	Pages      []string
}

// Processor drives one document through extraction, reconciliation, assembly
// and validation. All service calls across all concurrent documents share one
// semaphore, so MaxConcurrentCalls is the single rate-limiting point.
type Processor struct {
	log       *slog.Logger
	cfg       common.ExtractConfig
	timeout   time.Duration
	sem       chan struct{}
	extractor *extract.Extractor
	assembler *assemble.Assembler
	validator *validate.Validator
}

func NewProcessor(cfg common.ExtractConfig, pipeCfg common.PipelineConfig, extractor *extract.Extractor, assembler *assemble.Assembler, validator *validate.Validator, logger *slog.Logger) *Processor {
	if logger == nil {
		logger = slog.Default()
	}
	calls := pipeCfg.MaxConcurrentCalls
	if calls < 1 {
		calls = 1
	}
	return &Processor{
		log:       logger,
		cfg:       cfg,
		timeout:   pipeCfg.DocumentTimeout,
		sem:       make(chan struct{}, calls),
		extractor: extractor,
		assembler: assembler,
		validator: validator,
	}
}

// ProcessDocument runs one document end to end. Failures inside the document
// come back as a failed result; the only error-shaped outcome is a cancelled
// context.
func (p *Processor) ProcessDocument(ctx context.Context, input DocumentInput) entity.DocumentResult {
	start := time.Now()
	result := entity.DocumentResult{
		DocumentID: input.DocumentID,
		NaccID:     input.NaccID,
		Mode:       p.cfg.Mode,
	}

	if p.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.timeout)
		defer cancel()
	}
	ctx = common.WithDocumentID(ctx, input.DocumentID)

	p.log.Info("pipeline.document.start",
		"doc_id", input.DocumentID,
		"nacc_id", input.NaccID,
		"mode", p.cfg.Mode,
		"pages", len(input.Pages),
	)

	var sections []entity.MergedRecord
	var extractionStatus constants.ExtractionStatus
	if p.cfg.Mode == constants.ModeCombined {
		sections, extractionStatus = p.runCombined(ctx, input)
	} else {
		sections, extractionStatus = p.runPerPage(ctx, input)
	}
	result.Sections = sections
	result.Status = extractionStatus
	result.Confidence = meanConfidence(sections)

	if err := ctx.Err(); err != nil {
		result.Status = constants.StatusFailed
		result.Error = err.Error()
		p.log.Error("pipeline.document.cancelled", "doc_id", input.DocumentID, "error", err)
		return result
	}

	records, err := p.assembler.Assemble(input.DocumentID, input.NaccID, sections)
	if err != nil {
		result.Status = constants.StatusFailed
		result.Error = err.Error()
		p.log.Error("pipeline.document.assembly_failed", "doc_id", input.DocumentID, "error", err)
		return result
	}
	result.Records = records

	result.Verdicts = p.validator.Validate(records)
	result.Status = constants.Worse(extractionStatus, validate.Status(result.Verdicts))

	p.log.Info("pipeline.document.done",
		"doc_id", input.DocumentID,
		"status", result.Status,
		"confidence", result.Confidence,
		"sections", len(result.Sections),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return result
}

// runCombined sends the whole document once per section.
func (p *Processor) runCombined(ctx context.Context, input DocumentInput) ([]entity.MergedRecord, constants.ExtractionStatus) {
	source := strings.Join(input.Pages, PageBreak)

	candidates := make([]entity.CandidateRecord, len(constants.AllSections))
	var wg sync.WaitGroup
	for i, section := range constants.AllSections {
		wg.Add(1)
		go func(i int, section constants.Section) {
			defer wg.Done()
			candidates[i] = p.extractOne(ctx, entity.RawSection{
				DocumentID: input.DocumentID,
				NaccID:     input.NaccID,
				Section:    section,
				SourceText: source,
			})
		}(i, section)
	}
	wg.Wait()

	sections := make([]entity.MergedRecord, len(candidates))
	statuses := make([]constants.ExtractionStatus, len(candidates))
	for i, c := range candidates {
		sections[i] = merge.FromSingle(c)
		statuses[i] = c.Status
	}
	return sections, aggregate(statuses)
}

// runPerPage fans out one request per (section, page) and reconciles each
// section's candidates afterwards.
func (p *Processor) runPerPage(ctx context.Context, input DocumentInput) ([]entity.MergedRecord, constants.ExtractionStatus) {
	pages := len(input.Pages)
	candidates := make([][]entity.CandidateRecord, len(constants.AllSections))
	for i := range candidates {
		candidates[i] = make([]entity.CandidateRecord, pages)
	}

	var wg sync.WaitGroup
	for si, section := range constants.AllSections {
		for pi := 0; pi < pages; pi++ {
			wg.Add(1)
			go func(si, pi int, section constants.Section) {
				defer wg.Done()
				candidates[si][pi] = p.extractOne(ctx, entity.RawSection{
					DocumentID: input.DocumentID,
					NaccID:     input.NaccID,
					Section:    section,
					SourceText: input.Pages[pi],
					PageIndex:  pi + 1,
					PageCount:  pages,
				})
			}(si, pi, section)
		}
	}
	wg.Wait()

	sections := make([]entity.MergedRecord, len(constants.AllSections))
	var statuses []constants.ExtractionStatus
	for si, section := range constants.AllSections {
		sections[si] = merge.Merge(input.DocumentID, section, candidates[si])
		statuses = append(statuses, sectionStatus(candidates[si]))
	}
	return sections, aggregate(statuses)
}

// extractOne gates one service call through the shared semaphore.
func (p *Processor) extractOne(ctx context.Context, raw entity.RawSection) entity.CandidateRecord {
	select {
	case p.sem <- struct{}{}:
		defer func() { <-p.sem }()
	case <-ctx.Done():
		return entity.CandidateRecord{
			DocumentID: raw.DocumentID,
			Section:    raw.Section,
			PageIndex:  raw.PageIndex,
			Status:     constants.StatusFailed,
			Error:      ctx.Err().Error(),
		}
	}
	return p.extractor.Extract(ctx, raw)
}

// sectionStatus folds per-page candidates into one section status: the
// section succeeded if any page did and none degraded, failed only when every
// page failed.
func sectionStatus(candidates []entity.CandidateRecord) constants.ExtractionStatus {
	allFailed := true
	anyDegraded := false
	for _, c := range candidates {
		switch c.Status {
		case constants.StatusSuccess:
			allFailed = false
		case constants.StatusPartial:
			allFailed = false
			anyDegraded = true
		}
	}
	switch {
	case allFailed:
		return constants.StatusFailed
	case anyDegraded:
		return constants.StatusPartial
	default:
		return constants.StatusSuccess
	}
}

// aggregate folds section statuses into the document's extraction status:
// any degraded section degrades the document, but only a fully failed
// document is failed.
func aggregate(statuses []constants.ExtractionStatus) constants.ExtractionStatus {
	if len(statuses) == 0 {
		return constants.StatusFailed
	}
	allFailed := true
	anyDegraded := false
	for _, s := range statuses {
		switch s {
		case constants.StatusSuccess:
			allFailed = false
		case constants.StatusPartial:
			allFailed = false
			anyDegraded = true
		default:
			anyDegraded = true
		}
	}
	switch {
	case allFailed:
		return constants.StatusFailed
	case anyDegraded:
		return constants.StatusPartial
	default:
		return constants.StatusSuccess
	}
}

func meanConfidence(sections []entity.MergedRecord) float64 {
	if len(sections) == 0 {
		return 0
	}
	var sum float64
	for _, s := range sections {
		sum += s.Confidence
	}
	return sum / float64(len(sections))
}
