package scraper

import (
	"context"

	"github.com/orgball2608/pixelfed-scraper/internal/domain"
)

//go:generate go run go.uber.org/mock/mockgen -source=scraper.go -destination=mocks/mock.go
type Service interface {
	// Run performs one complete scrape and rewrites the output document.
	// Only a failure to write the document is returned as an error.
	Run(ctx context.Context) (domain.Run, error)
	// Schedule registers Run as a cron job and returns once the scheduler
	// is started. The scheduler stops when ctx is done.
	Schedule(ctx context.Context) error
}
