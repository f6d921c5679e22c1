package repository

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/opennacc/declaration-extractor/internal/entity"
)

// ResultSink persists finished documents; it satisfies async.Sink. The
// document row must already exist (DocumentID is its UUID), which is how the
// server flow hands work to the queue.
type ResultSink struct {
	docs DocumentRepository
	log  *slog.Logger
}

func NewResultSink(docs DocumentRepository, log *slog.Logger) *ResultSink {
	if log == nil {
		log = slog.Default()
	}
	return &ResultSink{docs: docs, log: log}
}

func (s *ResultSink) Accept(ctx context.Context, result entity.DocumentResult) error {
	id, err := uuid.Parse(result.DocumentID)
	if err != nil {
		return fmt.Errorf("document id %q is not a uuid: %w", result.DocumentID, err)
	}
	return s.docs.SaveResult(ctx, id, result)
}
