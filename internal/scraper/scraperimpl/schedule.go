package scraperimpl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-co-op/gocron/v2"
)

const (
	runHistoryRetention = 30 * 24 * time.Hour
	runTimeout          = 30 * time.Minute
)

var ErrNoSchedule = errors.New("no schedule configured")

// Schedule runs the scrape on the configured cron expression. Runs never
// overlap: a tick that fires while a run is active is dropped.
func (s *ScraperImpl) Schedule(ctx context.Context) error {
	expr := s.Config.Scraper.Schedule
	if expr == "" {
		return ErrNoSchedule
	}

	if s.Scheduler == nil {
		scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
		if err != nil {
			return fmt.Errorf("failed to create scheduler: %w", err)
		}
		s.Scheduler = scheduler
	}

	s.Logger.Info("Setting up scrape schedule", "cron", expr)
	_, err := s.Scheduler.NewJob(
		gocron.CronJob(expr, false),
		gocron.NewTask(func() {
			if ctx.Err() != nil {
				s.Logger.Info("Context cancelled, skipping scheduled scrape")
				return
			}
			runCtx, cancel := context.WithTimeout(ctx, runTimeout)
			defer cancel()

			if _, err := s.Run(runCtx); err != nil {
				s.Logger.Error("Scheduled scrape failed", "error", err)
			}
		}),
		gocron.WithSingletonMode(gocron.LimitModeReschedule),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule scrape: %w", err)
	}

	// Schedule a job to prune run history at 3:00 AM every day
	_, err = s.Scheduler.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(3, 0, 0))),
		gocron.NewTask(func() {
			cleanupCtx, cancel := context.WithTimeout(ctx, 5*time.Minute)
			defer cancel()

			rowsDeleted, err := s.RunRepo.CleanupOldRecords(cleanupCtx, runHistoryRetention)
			if err != nil {
				s.Logger.Error("Failed to clean up old runs", "error", err)
				return
			}
			s.Logger.Info("Run history cleanup completed", "rows_deleted", rowsDeleted)
		}),
	)
	if err != nil {
		return fmt.Errorf("failed to schedule run history cleanup: %w", err)
	}

	s.Scheduler.Start()

	go func() {
		<-ctx.Done()
		s.Logger.Info("Stopping scrape scheduler")
		if err := s.Scheduler.Shutdown(); err != nil {
			s.Logger.Error("Failed to shut down scheduler", "error", err)
		}
	}()

	return nil
}
