package ratelimit

import (
	"context"
	"time"

	"golang.org/x/time/rate"
)

// Limiter spaces out outgoing requests to one host.
type Limiter interface {
	Wait(ctx context.Context) error
}

// Pacer lets one request through immediately and then at most one per
// interval. A zero interval disables pacing.
type Pacer struct {
	limiter *rate.Limiter
}

// NewPacer creates a limiter that keeps at least interval between requests.
// Example: NewPacer(1500*time.Millisecond) -> 1 request every 1.5 seconds
func NewPacer(interval time.Duration) *Pacer {
	limit := rate.Inf
	if interval > 0 {
		limit = rate.Every(interval)
	}
	return &Pacer{limiter: rate.NewLimiter(limit, 1)}
}

var _ Limiter = (*Pacer)(nil)

// Wait blocks until the next request is allowed or ctx is done.
func (p *Pacer) Wait(ctx context.Context) error {
	return p.limiter.Wait(ctx)
}
