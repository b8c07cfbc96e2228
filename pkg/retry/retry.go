package retry

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	apperrors "github.com/orgball2608/pixelfed-scraper/pkg/errors"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
)

type Config struct {
	// MaxAttempts counts the first call too.
	MaxAttempts int
	// Delay is the fixed wait between attempts.
	Delay time.Duration
}

func DefaultConfig() Config {
	return Config{
		MaxAttempts: 3,
		Delay:       5 * time.Second,
	}
}

// AfterError asks Do to wait Wait before the next attempt instead of the
// configured delay. It is what a 429 with Retry-After turns into.
type AfterError struct {
	Err  error
	Wait time.Duration
}

func (e *AfterError) Error() string {
	return fmt.Sprintf("%v (retry after %s)", e.Err, e.Wait)
}

func (e *AfterError) Unwrap() error {
	return e.Err
}

func After(err error, wait time.Duration) error {
	return &AfterError{Err: err, Wait: wait}
}

// hinted serves a one-shot server supplied interval before falling back to base.
type hinted struct {
	base backoff.BackOff
	hint time.Duration
	set  bool
}

func (h *hinted) NextBackOff() time.Duration {
	if h.set {
		h.set = false
		return h.hint
	}
	return h.base.NextBackOff()
}

func (h *hinted) Reset() {
	h.set = false
	h.base.Reset()
}

// Do runs operation until it succeeds, fails definitively (see
// errors.IsDefinitive) or runs out of attempts. The last error is returned.
func Do(ctx context.Context, log logger.Logger, operationName string, operation func() error, cfg Config) error {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}

	bo := &hinted{base: backoff.NewConstantBackOff(cfg.Delay)}
	retryable := backoff.WithMaxRetries(bo, uint64(cfg.MaxAttempts-1))
	retryableWithContext := backoff.WithContext(retryable, ctx)

	op := func() error {
		err := operation()
		if err == nil {
			return nil
		}
		if apperrors.IsDefinitive(err) {
			return backoff.Permanent(err)
		}
		var after *AfterError
		if apperrors.As(err, &after) {
			bo.hint, bo.set = after.Wait, true
		}
		return err
	}

	notify := func(err error, t time.Duration) {
		log.Warn(
			"Operation failed, retrying...",
			"operation", operationName,
			"error", err,
			"next_attempt_in", t.Round(time.Millisecond).String(),
		)
	}

	return backoff.RetryNotify(op, retryableWithContext, notify)
}
