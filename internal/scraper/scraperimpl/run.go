package scraperimpl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/orgball2608/pixelfed-scraper/internal/domain"
	"github.com/orgball2608/pixelfed-scraper/internal/extract"
	"github.com/orgball2608/pixelfed-scraper/internal/fetcher"
	"github.com/orgball2608/pixelfed-scraper/internal/scraper"
)

// Run resolves the account, walks the fetch strategies, extracts images and
// rewrites the output document.
func (s *ScraperImpl) Run(ctx context.Context) (domain.Run, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	start := s.now()
	handle := s.Config.Pixelfed.Username

	auth := "No token"
	if s.Pixelfed.HasToken() {
		auth = "Token provided"
	}
	s.Logger.Info("Starting Pixelfed scrape",
		"instance", s.Config.Pixelfed.Instance,
		"username", handle,
		"auth", auth,
	)

	accountID := fetcher.ResolveAccountID(ctx, s.Pixelfed, s.Logger, handle)

	result := fetcher.Run(ctx, s.Logger, fetcher.Strategies(s.Pixelfed, s.Logger, handle, accountID))
	s.Logger.Info("Fetched posts", "posts", len(result.Posts), "method", result.Method)

	images := extract.Images(result.Posts)
	s.Logger.Info("Extracted images", "images", len(images))

	doc := s.buildDocument(accountID, result, images)

	run := domain.Run{
		ID:          uuid.NewString(),
		Instance:    s.Config.Pixelfed.Instance,
		Username:    handle,
		AccountID:   accountID,
		Method:      result.Method,
		TotalPosts:  doc.Metadata.TotalPosts,
		TotalImages: doc.Metadata.TotalImages,
		OutputPath:  s.Output.Path(),
		StartedAt:   start,
	}

	var runErr error
	if err := s.Output.Write(doc); err != nil {
		runErr = fmt.Errorf("failed to write output: %w", err)
		run.Error = runErr.Error()
		s.Logger.Error("Failed to save document", "path", s.Output.Path(), "error", err)
	} else {
		s.Logger.Info("Saved document", "path", s.Output.Path())
	}
	run.Duration = s.now().Sub(start)

	s.finish(ctx, run)

	s.Logger.Info("Scraping complete",
		"duration", run.Duration.Round(100*time.Millisecond).String(),
		"images", run.TotalImages,
		"output", run.OutputPath,
	)
	return run, runErr
}

func (s *ScraperImpl) buildDocument(accountID string, result fetcher.Result, images []domain.ImageRecord) domain.Document {
	var id *string
	if accountID != "" {
		id = &accountID
	}

	return domain.Document{
		Metadata: domain.Metadata{
			Instance:    s.Config.Pixelfed.Instance,
			Username:    s.Config.Pixelfed.Username,
			AccountID:   id,
			ProfileURL:  s.Config.ProfileURL(),
			TotalPosts:  len(result.Posts),
			TotalImages: len(images),
			ScrapedAt:   s.now().UTC().Format(time.RFC3339Nano),
			Method:      result.Method,
			Version:     domain.DocumentVersion,
		},
		Images: images,
	}
}

// finish records the run and reports it. Both are best effort.
func (s *ScraperImpl) finish(ctx context.Context, run domain.Run) {
	var previous *domain.Run
	latest, err := s.RunRepo.GetLatestByUsername(ctx, run.Username, 1)
	if err != nil {
		s.Logger.Warn("Failed to load previous run", "error", err)
	} else if len(latest) > 0 {
		previous = latest[0]
	}

	if err := s.RunRepo.Create(ctx, run); err != nil {
		s.Logger.Error("Failed to record run", "run_id", run.ID, "error", err)
	}

	if err := s.Telegram.SendMessageToDefaultChannel(scraper.FormatReport(run, previous)); err != nil {
		s.Logger.Warn("Failed to send run report", "run_id", run.ID, "error", err)
	}
}
