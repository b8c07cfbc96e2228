package app

import (
	"context"

	"github.com/orgball2608/pixelfed-scraper/internal/command"
	"github.com/orgball2608/pixelfed-scraper/internal/command/commandimpl"
	"github.com/orgball2608/pixelfed-scraper/internal/output"
	"github.com/orgball2608/pixelfed-scraper/internal/pgx"
	"github.com/orgball2608/pixelfed-scraper/internal/pixelfed"
	"github.com/orgball2608/pixelfed-scraper/internal/pixelfed/pixelfedimpl"
	"github.com/orgball2608/pixelfed-scraper/internal/repositories/run"
	"github.com/orgball2608/pixelfed-scraper/internal/scraper"
	"github.com/orgball2608/pixelfed-scraper/internal/scraper/scraperimpl"
	"github.com/orgball2608/pixelfed-scraper/internal/telegram/telegramimpl"
	"github.com/orgball2608/pixelfed-scraper/pkg/config"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
	"go.uber.org/fx"
)

var Module = fx.Options(
	fx.Provide(
		config.New,
		logger.FxOption,
		pgx.New,
	),
	fx.Provide(
		fx.Annotate(
			pixelfedimpl.New,
			fx.As(new(pixelfed.Client)),
		),
		telegramimpl.New,
		fx.Annotate(
			output.New,
			fx.As(new(output.Writer)),
		),
		fx.Annotate(
			scraperimpl.New,
			fx.As(new(scraper.Service)),
		),
		fx.Annotate(
			commandimpl.New,
			fx.As(new(command.Client)),
		),
	),
	run.Module,
	fx.Invoke(start),
)

// start either registers the cron schedule, together with the bot command
// listener when Telegram is configured, or performs a single run and shuts
// the application down with its exit code.
func start(
	lc fx.Lifecycle,
	shutdowner fx.Shutdowner,
	log logger.Logger,
	cfg *config.Config,
	svc scraper.Service,
	commands command.Client,
) {
	ctx, cancel := context.WithCancel(context.Background())

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			if cfg.Scraper.Schedule != "" {
				if err := svc.Schedule(ctx); err != nil {
					return err
				}
				if cfg.TelegramEnabled() {
					go func() {
						if err := commands.HandleCommand(ctx); err != nil && ctx.Err() == nil {
							log.Error("Command handler stopped", "error", err)
						}
					}()
				}
				return nil
			}

			go func() {
				code := 0
				if _, err := svc.Run(ctx); err != nil {
					log.Error("Scrape run failed", "error", err)
					code = 1
				}
				if err := shutdowner.Shutdown(fx.ExitCode(code)); err != nil {
					log.Error("Failed to request shutdown", "error", err)
				}
			}()
			return nil
		},
		OnStop: func(context.Context) error {
			cancel()
			return nil
		},
	})
}
