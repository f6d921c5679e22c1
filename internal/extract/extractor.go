package extract

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/internal/common"
	"github.com/opennacc/declaration-extractor/internal/entity"
	"github.com/opennacc/declaration-extractor/internal/enums"
	"github.com/opennacc/declaration-extractor/internal/llm"
	"github.com/opennacc/declaration-extractor/internal/retry"
)

// Extractor turns one RawSection into one CandidateRecord: it issues the
// structured-extraction call (with retries), recovers and validates the JSON
// envelope, then normalizes every field against its declared kind and the
// enum registry. Extraction failures become failed records, never pipeline
// errors.
type Extractor struct {
	log      *slog.Logger
	cfg      common.ExtractConfig
	retryCfg retry.Config
	registry *enums.Registry
	client   llm.SectionClient
}

func NewExtractor(cfg common.ExtractConfig, retryCfg retry.Config, registry *enums.Registry, client llm.SectionClient, logger *slog.Logger) *Extractor {
	if logger == nil {
		logger = slog.Default()
	}
	return &Extractor{
		log:      logger,
		cfg:      cfg,
		retryCfg: retryCfg,
		registry: registry,
		client:   client,
	}
}

// Extract runs one section extraction end to end.
func (e *Extractor) Extract(ctx context.Context, raw entity.RawSection) entity.CandidateRecord {
	start := time.Now()
	rec := entity.CandidateRecord{
		DocumentID: raw.DocumentID,
		Section:    raw.Section,
		PageIndex:  raw.PageIndex,
	}

	def, ok := llm.SectionFor(raw.Section)
	if !ok {
		rec.Status = constants.StatusFailed
		rec.Error = fmt.Sprintf("unknown section %q", raw.Section)
		return rec
	}
	if len(raw.SourceText) == 0 {
		// nothing to send; don't spend a service call on an empty page
		rec.Status = constants.StatusFailed
		rec.Error = "empty source text"
		return rec
	}

	source := raw.SourceText
	if e.cfg.MaxSourceChars > 0 && len(source) > e.cfg.MaxSourceChars {
		e.log.Warn("extract.source_truncated",
			"doc_id", raw.DocumentID, "section", raw.Section,
			"len", len(source), "max", e.cfg.MaxSourceChars)
		source = source[:e.cfg.MaxSourceChars]
	}

	schema := llm.BuildSectionSchema(def)
	req := llm.SectionRequest{
		DocumentID:  raw.DocumentID,
		NaccID:      raw.NaccID,
		Section:     string(raw.Section),
		SourceText:  source,
		PageIndex:   raw.PageIndex,
		PageCount:   raw.PageCount,
		EnumContext: e.registry.PromptContext(def.Domains...),
		Schema:      schema,
	}

	var env llm.Envelope
	err := retry.Do(ctx, e.retryCfg, e.log, func(ctx context.Context) error {
		resp, err := e.client.ExtractSection(ctx, req)
		if err != nil {
			return err
		}
		doc, err := llm.ExtractJSON(resp)
		if err != nil {
			return err
		}
		if err := llm.ValidateJSONAgainstSchema(schema, doc); err != nil {
			return common.NewAppError("LLM_MALFORMED", "envelope does not match section schema", common.ErrMalformedResponse)
		}
		env, err = llm.DecodeEnvelope(doc)
		return err
	})
	if err != nil {
		e.log.Error("extract.section_failed",
			"doc_id", raw.DocumentID, "section", raw.Section, "page", raw.PageIndex,
			"error", err, "elapsed_ms", time.Since(start).Milliseconds())
		rec.Status = constants.StatusFailed
		rec.Error = err.Error()
		return rec
	}

	attempted, resolved := 0, 0
	requiredResolved, requiredLost := 0, 0

	// scalar fields
	if len(def.Fields) > 0 {
		rec.Fields = make(map[string]any, len(def.Fields))
		for _, fd := range def.Fields {
			v, present := env.Fields[fd.Name]
			if !present || v == nil || v == "" {
				if fd.Required {
					requiredLost++
					rec.Anomalies = append(rec.Anomalies, entity.FieldAnomaly{
						Field: fd.Name, Reason: "required field missing", PageIndex: raw.PageIndex,
					})
				}
				continue
			}
			attempted++
			nv, err := e.normalize(fd, v)
			if err != nil {
				if fd.Required {
					requiredLost++
				}
				rec.Anomalies = append(rec.Anomalies, entity.FieldAnomaly{
					Field: fd.Name, Value: fmt.Sprintf("%v", v), Reason: err.Error(), PageIndex: raw.PageIndex,
				})
				continue
			}
			rec.Fields[fd.Name] = nv
			resolved++
			if fd.Required {
				requiredResolved++
			}
		}
	}

	// repeating rows
	for _, row := range env.Rows {
		attempted++
		out := make(map[string]any, len(def.RowFields))
		keep := true
		for _, fd := range def.RowFields {
			v, present := row[fd.Name]
			if !present || v == nil || v == "" {
				if fd.Required {
					rec.Anomalies = append(rec.Anomalies, entity.FieldAnomaly{
						Field: fd.Name, Reason: "required row field missing", PageIndex: raw.PageIndex,
					})
					keep = false
				}
				continue
			}
			nv, err := e.normalize(fd, v)
			if err != nil {
				rec.Anomalies = append(rec.Anomalies, entity.FieldAnomaly{
					Field: fd.Name, Value: fmt.Sprintf("%v", v), Reason: err.Error(), PageIndex: raw.PageIndex,
				})
				if fd.Required {
					keep = false
				}
				continue
			}
			out[fd.Name] = nv
		}
		if keep {
			rec.Rows = append(rec.Rows, out)
			resolved++
			requiredResolved++
		} else {
			requiredLost++
		}
	}

	rec.Confidence = score(env.Confidence, attempted, resolved, len(rec.Anomalies))
	switch {
	case requiredLost > 0 && requiredResolved == 0:
		// nothing required survived: the record cannot anchor anything downstream
		rec.Status = constants.StatusFailed
		rec.Error = "required fields unresolved"
	case len(rec.Anomalies) > 0, rec.Confidence < e.cfg.ConfidenceThreshold:
		rec.Status = constants.StatusPartial
	default:
		rec.Status = constants.StatusSuccess
	}

	e.log.Info("extract.section_done",
		"doc_id", raw.DocumentID, "section", raw.Section, "page", raw.PageIndex,
		"status", rec.Status, "confidence", rec.Confidence,
		"fields", len(rec.Fields), "rows", len(rec.Rows), "anomalies", len(rec.Anomalies),
		"elapsed_ms", time.Since(start).Milliseconds())
	return rec
}

// normalize coerces one wire value per its declared kind. Enum fields resolve
// fail-closed through the registry; a value that does not resolve is an
// anomaly, never a guess.
func (e *Extractor) normalize(fd llm.FieldDef, v any) (any, error) {
	switch fd.Kind {
	case llm.KindMoney:
		return NormalizeMoney(v)
	case llm.KindYear:
		year, converted, err := NormalizeYearBE(v)
		if err != nil {
			return nil, err
		}
		if converted {
			e.log.Debug("extract.year_converted", "field", fd.Name, "year", year)
		}
		return year, nil
	case llm.KindInt, llm.KindDay, llm.KindMonth:
		return NormalizeInt(v)
	case llm.KindBool:
		return NormalizeBool(v)
	case llm.KindEnum:
		switch t := v.(type) {
		case float64:
			if e.registry.ResolveID(fd.Domain, int(t)) {
				return int(t), nil
			}
			return nil, fmt.Errorf("id %d not in %s", int(t), fd.Domain)
		case int:
			if e.registry.ResolveID(fd.Domain, t) {
				return t, nil
			}
			return nil, fmt.Errorf("id %d not in %s", t, fd.Domain)
		case string:
			if id, ok := e.registry.Resolve(fd.Domain, t); ok {
				return id, nil
			}
			return nil, fmt.Errorf("label %q not in %s", t, fd.Domain)
		default:
			return nil, fmt.Errorf("enum value has type %T", v)
		}
	default:
		s, err := NormalizeText(v)
		if err != nil {
			return nil, err
		}
		if s == "" {
			return nil, fmt.Errorf("empty after trimming")
		}
		return s, nil
	}
}

// score combines the model's self-reported confidence with the resolution
// ratio. The model can only lower the computed score, never raise it, and any
// anomaly applies a flat penalty.
func score(reported float64, attempted, resolved, anomalies int) float64 {
	c := 1.0
	if attempted > 0 {
		c = float64(resolved) / float64(attempted)
	}
	if anomalies > 0 {
		c *= 0.9
	}
	if reported > 0 && reported < c {
		c = reported
	}
	return c
}
