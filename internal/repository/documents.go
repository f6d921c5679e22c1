package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/opennacc/declaration-extractor/constants"
	"github.com/opennacc/declaration-extractor/gen/ent"
	"github.com/opennacc/declaration-extractor/gen/ent/document"
	"github.com/opennacc/declaration-extractor/gen/ent/verdict"
	"github.com/opennacc/declaration-extractor/internal/entity"
)

type DocumentRepository interface {
	Create(ctx context.Context, naccID int, name string, pageCount int) (*ent.Document, error)
	Get(ctx context.Context, id uuid.UUID) (*ent.Document, error)
	SaveResult(ctx context.Context, id uuid.UUID, result entity.DocumentResult) error
	ListByNaccID(ctx context.Context, naccID int) ([]*ent.Document, error)
	ListVerdicts(ctx context.Context, id uuid.UUID) ([]*ent.Verdict, error)
}

type documentRepo struct {
	ent *ent.Client
	log *slog.Logger
}

func NewDocumentRepository(entc *ent.Client, log *slog.Logger) DocumentRepository {
	if log == nil {
		log = slog.Default()
	}
	return &documentRepo{ent: entc, log: log}
}

func (r *documentRepo) Create(ctx context.Context, naccID int, name string, pageCount int) (*ent.Document, error) {
	doc, err := r.ent.Document.
		Create().
		SetNaccID(naccID).
		SetName(name).
		SetPageCount(pageCount).
		SetStatus(string(constants.JobStatusQueued)).
		Save(ctx)
	if err != nil {
		r.log.Error("document create failed", "nacc_id", naccID, "err", err)
		return nil, err
	}
	r.log.Info("document created", "doc_id", doc.ID, "nacc_id", naccID, "pages", pageCount)
	return doc, nil
}

func (r *documentRepo) Get(ctx context.Context, id uuid.UUID) (*ent.Document, error) {
	return r.ent.Document.Get(ctx, id)
}

// SaveResult stores the outcome of one pipeline run: status, confidence, the
// relational projection as JSON, and a fresh set of verdicts. Earlier verdicts
// for the document are replaced, not appended.
func (r *documentRepo) SaveResult(ctx context.Context, id uuid.UUID, result entity.DocumentResult) error {
	upd := r.ent.Document.
		UpdateOneID(id).
		SetStatus(string(result.Status)).
		SetConfidence(float32(result.Confidence)).
		SetUpdatedAt(time.Now())
	if result.Error != "" {
		upd.SetErrorMessage(result.Error)
	}
	if result.Records != nil {
		if b, err := json.Marshal(result.Records.Tables); err == nil {
			upd.SetRecords(b)
		}
	}
	if _, err := upd.Save(ctx); err != nil {
		r.log.Error("document save failed", "doc_id", id, "err", err)
		return err
	}

	if _, err := r.ent.Verdict.Delete().Where(verdict.DocumentID(id)).Exec(ctx); err != nil {
		r.log.Error("verdict cleanup failed", "doc_id", id, "err", err)
		return err
	}
	if len(result.Verdicts) > 0 {
		builders := make([]*ent.VerdictCreate, 0, len(result.Verdicts))
		for _, v := range result.Verdicts {
			builders = append(builders, r.ent.Verdict.
				Create().
				SetDocumentID(id).
				SetRule(v.Rule).
				SetSeverity(string(v.Severity)).
				SetPassed(v.Passed).
				SetDetail(v.Detail))
		}
		if _, err := r.ent.Verdict.CreateBulk(builders...).Save(ctx); err != nil {
			r.log.Error("verdict save failed", "doc_id", id, "err", err)
			return err
		}
	}

	r.log.Info("document result saved",
		"doc_id", id,
		"status", result.Status,
		"confidence", result.Confidence,
		"verdicts", len(result.Verdicts),
	)
	return nil
}

func (r *documentRepo) ListByNaccID(ctx context.Context, naccID int) ([]*ent.Document, error) {
	return r.ent.Document.
		Query().
		Where(document.NaccID(naccID)).
		Order(ent.Desc(document.FieldCreatedAt)).
		All(ctx)
}

func (r *documentRepo) ListVerdicts(ctx context.Context, id uuid.UUID) ([]*ent.Verdict, error) {
	return r.ent.Verdict.
		Query().
		Where(verdict.DocumentID(id)).
		Order(ent.Asc(verdict.FieldRule)).
		All(ctx)
}
