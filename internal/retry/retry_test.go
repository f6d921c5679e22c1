package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/opennacc/declaration-extractor/internal/common"
)

func fastConfig(attempts int) Config {
	return Config{MaxAttempts: attempts, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond}
}

func TestTransientRetriedUpToBound(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), nil, func(context.Context) error {
		calls++
		return common.NewAppError("LLM_UNAVAILABLE", "boom", common.ErrTransient)
	})
	require.Error(t, err)
	assert.True(t, common.IsTransient(err))
	assert.Equal(t, 3, calls)
}

func TestTransientThenSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(5), nil, func(context.Context) error {
		calls++
		if calls < 3 {
			return common.NewAppError("LLM_UNAVAILABLE", "boom", common.ErrTransient)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestMalformedRetriedExactlyOnce(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(10), nil, func(context.Context) error {
		calls++
		return common.NewAppError("LLM_MALFORMED", "garbage", common.ErrMalformedResponse)
	})
	require.Error(t, err)
	assert.True(t, common.IsMalformed(err))
	// first attempt plus one retry, despite the larger attempt budget
	assert.Equal(t, 2, calls)
}

func TestMalformedThenSuccess(t *testing.T) {
	calls := 0
	err := Do(context.Background(), fastConfig(3), nil, func(context.Context) error {
		calls++
		if calls == 1 {
			return common.NewAppError("LLM_MALFORMED", "garbage", common.ErrMalformedResponse)
		}
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, 2, calls)
}

func TestPermanentNotRetried(t *testing.T) {
	calls := 0
	permanent := errors.New("bad request")
	err := Do(context.Background(), fastConfig(5), nil, func(context.Context) error {
		calls++
		return permanent
	})
	require.ErrorIs(t, err, permanent)
	assert.Equal(t, 1, calls)
}

func TestContextCancelStopsRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	calls := 0
	err := Do(ctx, Config{MaxAttempts: 10, BaseDelay: 50 * time.Millisecond}, nil, func(context.Context) error {
		calls++
		cancel()
		return common.NewAppError("LLM_UNAVAILABLE", "boom", common.ErrTransient)
	})
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestBackoffCappedAtMaxDelay(t *testing.T) {
	cfg := Config{MaxAttempts: 8, BaseDelay: 100 * time.Millisecond, MaxDelay: 400 * time.Millisecond}
	assert.Equal(t, 100*time.Millisecond, backoff(cfg, 1))
	assert.Equal(t, 200*time.Millisecond, backoff(cfg, 2))
	assert.Equal(t, 400*time.Millisecond, backoff(cfg, 3))
	assert.Equal(t, 400*time.Millisecond, backoff(cfg, 6))
}

func TestJitterStaysWithinSpan(t *testing.T) {
	cfg := Config{MaxAttempts: 3, BaseDelay: 100 * time.Millisecond, MaxDelay: time.Second, Jitter: true}
	for i := 0; i < 100; i++ {
		d := backoff(cfg, 2)
		assert.GreaterOrEqual(t, d, 150*time.Millisecond)
		assert.LessOrEqual(t, d, 250*time.Millisecond)
	}
}
