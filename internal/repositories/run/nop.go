package run

import (
	"context"
	"time"

	"github.com/orgball2608/pixelfed-scraper/internal/domain"
)

// Nop is used when no database is configured.
type Nop struct{}

var _ Repository = Nop{}

func (Nop) Create(context.Context, domain.Run) error { return nil }

func (Nop) GetLatestByUsername(context.Context, string, int) ([]*domain.Run, error) {
	return nil, nil
}

func (Nop) CleanupOldRecords(context.Context, time.Duration) (int64, error) { return 0, nil }
