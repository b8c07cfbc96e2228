package run

import (
	"context"
	"errors"
	"time"

	"github.com/orgball2608/pixelfed-scraper/internal/domain"
)

var ErrAlreadyExists = errors.New("run already exists")

//go:generate go run go.uber.org/mock/mockgen -source=run.go -destination=mocks/mock.go
type Repository interface {
	// Create records a finished run
	Create(ctx context.Context, run domain.Run) error

	// GetLatestByUsername returns the most recent runs for a username, newest first
	GetLatestByUsername(ctx context.Context, username string, count int) ([]*domain.Run, error)

	// CleanupOldRecords deletes runs started before now minus olderThan
	CleanupOldRecords(ctx context.Context, olderThan time.Duration) (int64, error)
}
