package retry

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"github.com/opennacc/declaration-extractor/internal/common"
)

// Config bounds the retry loop. Attempt n waits BaseDelay * 2^(n-1), capped
// at MaxDelay, with optional jitter.
type Config struct {
	MaxAttempts int
	BaseDelay   time.Duration
	MaxDelay    time.Duration
	Jitter      bool
}

// Do runs op up to cfg.MaxAttempts times. Only classified-transient failures
// are retried; a malformed response is retried once and then surfaces as-is;
// anything else returns immediately. The returned error is always the last
// one observed — callers turn it into a failed record, it is never allowed
// to abort a pipeline run.
func Do(ctx context.Context, cfg Config, logger *slog.Logger, op func(ctx context.Context) error) error {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	if cfg.BaseDelay <= 0 {
		cfg.BaseDelay = 500 * time.Millisecond
	}

	var lastErr error
	malformedRetried := false
	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			if lastErr != nil {
				return lastErr
			}
			return err
		}

		lastErr = op(ctx)
		if lastErr == nil {
			return nil
		}

		switch {
		case common.IsTransient(lastErr):
			// fall through to backoff
		case common.IsMalformed(lastErr):
			if malformedRetried {
				return lastErr
			}
			malformedRetried = true
		default:
			// input validation and other permanent failures: never retried
			return lastErr
		}

		if attempt == cfg.MaxAttempts {
			break
		}

		delay := backoff(cfg, attempt)
		logger.Warn("retry.backoff",
			"attempt", attempt,
			"max_attempts", cfg.MaxAttempts,
			"delay_ms", delay.Milliseconds(),
			"error", lastErr,
		)

		timer := time.NewTimer(delay)
		select {
		case <-ctx.Done():
			timer.Stop()
			return lastErr
		case <-timer.C:
		}
	}
	return lastErr
}

func backoff(cfg Config, attempt int) time.Duration {
	delay := cfg.BaseDelay << (attempt - 1)
	if cfg.MaxDelay > 0 && delay > cfg.MaxDelay {
		delay = cfg.MaxDelay
	}
	if cfg.Jitter && delay > 0 {
		// up to ±25% to avoid thundering herd against the service
		span := int64(delay / 4)
		delay += time.Duration(rand.Int63n(2*span+1) - span)
	}
	return delay
}
