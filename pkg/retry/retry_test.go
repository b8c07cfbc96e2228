package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	apperrors "github.com/orgball2608/pixelfed-scraper/pkg/errors"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDoRetriesTransientUntilCeiling(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.Nop(), "test", func() error {
		calls++
		return apperrors.FromStatus(503)
	}, Config{MaxAttempts: 3})

	require.Error(t, err)
	assert.True(t, apperrors.IsServiceUnavailable(err))
	assert.Equal(t, 3, calls)
}

func TestDoStopsOnDefinitiveError(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.Nop(), "test", func() error {
		calls++
		return apperrors.FromStatus(404)
	}, Config{MaxAttempts: 3})

	assert.True(t, apperrors.IsNotFound(err))
	assert.Equal(t, 1, calls)
}

func TestDoHonoursRetryAfter(t *testing.T) {
	calls := 0
	start := time.Now()
	err := Do(context.Background(), logger.Nop(), "test", func() error {
		calls++
		if calls == 1 {
			return After(apperrors.FromStatus(429), 20*time.Millisecond)
		}
		return nil
	}, Config{MaxAttempts: 3, Delay: time.Hour})

	require.NoError(t, err)
	assert.Equal(t, 2, calls)
	assert.GreaterOrEqual(t, time.Since(start), 20*time.Millisecond)
	assert.Less(t, time.Since(start), time.Minute)
}

func TestDoRateLimitCountsAsAttempt(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.Nop(), "test", func() error {
		calls++
		return After(apperrors.FromStatus(429), 0)
	}, Config{MaxAttempts: 2})

	assert.True(t, apperrors.IsRateLimited(err))
	assert.Equal(t, 2, calls)
}

func TestDoSucceedsWithoutRetry(t *testing.T) {
	calls := 0
	err := Do(context.Background(), logger.Nop(), "test", func() error {
		calls++
		return nil
	}, DefaultConfig())

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestDoCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := Do(ctx, logger.Nop(), "test", func() error {
		return errors.New("boom")
	}, Config{MaxAttempts: 5, Delay: time.Hour})

	assert.Error(t, err)
}
