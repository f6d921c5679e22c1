package server

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/opennacc/declaration-extractor/constants"
	extractorv1 "github.com/opennacc/declaration-extractor/gen/extractor/v1"
	"github.com/opennacc/declaration-extractor/internal/async"
	"github.com/opennacc/declaration-extractor/internal/common"
	"github.com/opennacc/declaration-extractor/internal/entity"
	"github.com/opennacc/declaration-extractor/internal/export"
	"github.com/opennacc/declaration-extractor/internal/pipeline"
	"github.com/opennacc/declaration-extractor/internal/repository"
)

// ExtractorService is the gRPC surface over the pipeline: it creates the
// document row, queues the work, and serves results once the queue has
// persisted them. It is also the queue's sink, closing the job it opened
// when a document finishes.
type ExtractorService struct {
	extractorv1.UnimplementedExtractorServiceServer

	docs     repository.DocumentRepository
	jobs     repository.ExtractJobRepository
	exporter *export.Service
	cfg      *common.Config
	logger   *slog.Logger

	queue *async.DocumentQueue

	// document id -> running job id, until the sink closes it
	pending sync.Map
}

func NewExtractorService(docs repository.DocumentRepository, jobs repository.ExtractJobRepository, exporter *export.Service, cfg *common.Config, logger *slog.Logger) *ExtractorService {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExtractorService{
		docs:     docs,
		jobs:     jobs,
		exporter: exporter,
		cfg:      cfg,
		logger:   logger,
	}
}

// AttachQueue wires the processing queue after construction; the queue needs
// the service as its sink, so the two are built in sequence.
func (s *ExtractorService) AttachQueue(q *async.DocumentQueue) {
	s.queue = q
}

func (s *ExtractorService) ProcessDocument(ctx context.Context, req *extractorv1.ProcessDocumentRequest) (*extractorv1.ProcessDocumentResponse, error) {
	if req.GetNaccId() <= 0 {
		return nil, common.InvalidArgumentError("nacc_id is required")
	}
	if len(req.GetPages()) == 0 {
		return nil, common.InvalidArgumentError("at least one page of text is required")
	}
	if s.queue == nil {
		return nil, common.InternalError("processing queue not attached")
	}

	doc, err := s.docs.Create(ctx, int(req.GetNaccId()), req.GetName(), len(req.GetPages()))
	if err != nil {
		return nil, common.InternalError("create document failed")
	}

	job, err := s.jobs.Start(ctx, doc.ID, string(s.cfg.Extract.Mode), s.cfg.LLM.Model)
	if err != nil {
		return nil, common.InternalError("start extract job failed")
	}
	s.pending.Store(doc.ID.String(), job.ID)

	if err := s.queue.Enqueue(ctx, pipeline.DocumentInput{
		DocumentID: doc.ID.String(),
		NaccID:     int(req.GetNaccId()),
		Pages:      req.GetPages(),
	}); err != nil {
		return nil, common.InternalError("enqueue failed")
	}

	return &extractorv1.ProcessDocumentResponse{
		DocumentId: doc.ID.String(),
		Status:     "QUEUED",
	}, nil
}

// Accept implements async.Sink: persist the result and close the job.
func (s *ExtractorService) Accept(ctx context.Context, result entity.DocumentResult) error {
	id, err := uuid.Parse(result.DocumentID)
	if err != nil {
		return common.WrapError(err, "document id is not a uuid")
	}
	if err := s.docs.SaveResult(ctx, id, result); err != nil {
		return err
	}

	if v, ok := s.pending.LoadAndDelete(result.DocumentID); ok {
		jobID := v.(uuid.UUID)
		if result.Error != "" {
			return s.jobs.FinishFailure(ctx, jobID, result.Error)
		}
		return s.jobs.FinishSuccess(ctx, jobID, string(constants.JobStatusValidated), float32(result.Confidence))
	}
	return nil
}

func (s *ExtractorService) GetDocument(ctx context.Context, req *extractorv1.GetDocumentRequest) (*extractorv1.GetDocumentResponse, error) {
	id, err := uuid.Parse(req.GetDocumentId())
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a uuid")
	}
	doc, err := s.docs.Get(ctx, id)
	if err != nil {
		s.logger.Warn("get document failed", "doc_id", id, "error", err)
		return nil, common.NotFoundError("document not found")
	}

	out := &extractorv1.Document{
		Id:        doc.ID.String(),
		NaccId:    int32(doc.NaccID),
		PageCount: int32(doc.PageCount),
		CreatedAt: doc.CreatedAt.Format(time.RFC3339Nano),
		UpdatedAt: doc.UpdatedAt.Format(time.RFC3339Nano),
	}
	if doc.Name != nil {
		out.Name = *doc.Name
	}
	if doc.Mode != nil {
		out.Mode = *doc.Mode
	}
	if doc.Status != nil {
		out.Status = *doc.Status
	}
	if doc.Confidence != nil {
		out.Confidence = *doc.Confidence
	}
	if doc.ErrorMessage != nil {
		out.ErrorMessage = *doc.ErrorMessage
	}
	if len(doc.Records) > 0 {
		out.RecordsJson = string(doc.Records)
	}
	return &extractorv1.GetDocumentResponse{Document: out}, nil
}

func (s *ExtractorService) ListVerdicts(ctx context.Context, req *extractorv1.ListVerdictsRequest) (*extractorv1.ListVerdictsResponse, error) {
	id, err := uuid.Parse(req.GetDocumentId())
	if err != nil {
		return nil, common.InvalidArgumentError("document_id must be a uuid")
	}
	verdicts, err := s.docs.ListVerdicts(ctx, id)
	if err != nil {
		s.logger.Warn("list verdicts failed", "doc_id", id, "error", err)
		return nil, common.InternalError("list verdicts failed")
	}

	out := make([]*extractorv1.Verdict, 0, len(verdicts))
	for _, v := range verdicts {
		pv := &extractorv1.Verdict{
			Rule:     v.Rule,
			Severity: v.Severity,
			Passed:   v.Passed,
		}
		if v.Detail != nil {
			pv.Detail = *v.Detail
		}
		out = append(out, pv)
	}
	return &extractorv1.ListVerdictsResponse{Verdicts: out}, nil
}

func (s *ExtractorService) ExportRecords(ctx context.Context, req *extractorv1.ExportRecordsRequest) (*extractorv1.ExportRecordsResponse, error) {
	if len(req.GetDocumentIds()) == 0 {
		return nil, common.InvalidArgumentError("at least one document_id is required")
	}

	results := make([]entity.DocumentResult, 0, len(req.GetDocumentIds()))
	for _, raw := range req.GetDocumentIds() {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, common.InvalidArgumentErrorf("document_id %q must be a uuid", raw)
		}
		doc, err := s.docs.Get(ctx, id)
		if err != nil {
			return nil, common.NotFoundError("document " + raw + " not found")
		}
		result := entity.DocumentResult{
			DocumentID: doc.ID.String(),
			NaccID:     doc.NaccID,
		}
		if doc.Status != nil {
			result.Status = constants.ExtractionStatus(*doc.Status)
		}
		if doc.Mode != nil {
			result.Mode = constants.ExtractionMode(*doc.Mode)
		}
		if doc.Confidence != nil {
			result.Confidence = float64(*doc.Confidence)
		}
		if doc.ErrorMessage != nil {
			result.Error = *doc.ErrorMessage
		}
		if len(doc.Records) > 0 {
			var tables map[string][]entity.Row
			if err := json.Unmarshal(doc.Records, &tables); err != nil {
				s.logger.Warn("stored records unreadable", "doc_id", id, "error", err)
			} else {
				result.Records = &entity.RecordSet{
					DocumentID: result.DocumentID,
					NaccID:     result.NaccID,
					Tables:     tables,
				}
			}
		}
		verdicts, err := s.docs.ListVerdicts(ctx, id)
		if err == nil {
			for _, v := range verdicts {
				ev := entity.Verdict{
					DocumentID: result.DocumentID,
					Rule:       v.Rule,
					Severity:   entity.Severity(v.Severity),
					Passed:     v.Passed,
				}
				if v.Detail != nil {
					ev.Detail = *v.Detail
				}
				result.Verdicts = append(result.Verdicts, ev)
			}
		}
		results = append(results, result)
	}

	data, err := s.exporter.ExportRecordsXLSX(results)
	if err != nil {
		s.logger.Error("export failed", "error", err)
		return nil, common.InternalError("export failed")
	}
	return &extractorv1.ExportRecordsResponse{
		Xlsx:     data,
		Filename: "declarations-" + time.Now().Format("20060102-150405") + ".xlsx",
	}, nil
}
