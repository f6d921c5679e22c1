package async

import (
	"context"
	"sync"
	"time"

	"log/slog"

	"github.com/google/uuid"

	"github.com/opennacc/declaration-extractor/internal/common"
	"github.com/opennacc/declaration-extractor/internal/entity"
	"github.com/opennacc/declaration-extractor/internal/pipeline"
)

// Sink receives finished documents. Implementations persist or collect
// results; a sink error is logged, never retried here.
type Sink interface {
	Accept(ctx context.Context, result entity.DocumentResult) error
}

// DocumentQueue processes documents in the background with a fixed worker
// pool. Backpressure is by blocking Enqueue once the buffer is full.
type DocumentQueue struct {
	proc    *pipeline.Processor
	sink    Sink
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan pipeline.DocumentInput
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*DocumentQueue)

func WithWorkers(n int) Option {
	return func(q *DocumentQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *DocumentQueue) {
		if n > 0 {
			q.ch = make(chan pipeline.DocumentInput, n)
		}
	}
}
func WithDocumentTimeout(d time.Duration) Option {
	return func(q *DocumentQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewDocumentQueue(proc *pipeline.Processor, sink Sink, logger *slog.Logger, opts ...Option) *DocumentQueue {
	q := &DocumentQueue{
		proc:    proc,
		sink:    sink,
		logger:  logger,
		workers: 4,
		timeout: 5 * time.Minute,
		ch:      make(chan pipeline.DocumentInput, 256),
	}
	if q.logger == nil {
		q.logger = slog.Default()
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *DocumentQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for input := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					ctx = common.WithRequestID(ctx, uuid.New().String())
					result := q.proc.ProcessDocument(ctx, input)
					if q.sink != nil {
						if err := q.sink.Accept(ctx, result); err != nil {
							q.logger.Error("sink rejected result", "worker_id", workerID, "doc_id", input.DocumentID, "error", err)
						}
					}
					cancel()

					if result.Error != "" {
						q.logger.Error("document failed", "worker_id", workerID, "doc_id", input.DocumentID, "error", result.Error)
					} else {
						q.logger.Info("document processed", "worker_id", workerID, "doc_id", input.DocumentID, "status", result.Status)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *DocumentQueue) Enqueue(_ context.Context, input pipeline.DocumentInput) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "doc_id", input.DocumentID)
		return nil
	}
	select {
	case q.ch <- input:
		q.logger.Info("queued document for processing", "doc_id", input.DocumentID, "pages", len(input.Pages))
	default:
		q.logger.Warn("queue full, applying backpressure", "doc_id", input.DocumentID)
		q.ch <- input
	}
	return nil
}

func (q *DocumentQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
