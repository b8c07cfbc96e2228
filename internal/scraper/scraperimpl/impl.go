package scraperimpl

import (
	"sync"
	"time"

	"github.com/go-co-op/gocron/v2"
	"github.com/orgball2608/pixelfed-scraper/internal/output"
	"github.com/orgball2608/pixelfed-scraper/internal/pixelfed"
	"github.com/orgball2608/pixelfed-scraper/internal/repositories/run"
	"github.com/orgball2608/pixelfed-scraper/internal/scraper"
	"github.com/orgball2608/pixelfed-scraper/internal/telegram"
	"github.com/orgball2608/pixelfed-scraper/pkg/config"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Pixelfed pixelfed.Client
	Telegram telegram.Client
	RunRepo  run.Repository
	Output   output.Writer
	Logger   logger.Logger
	Config   *config.Config
}

type ScraperImpl struct {
	Pixelfed  pixelfed.Client
	Telegram  telegram.Client
	RunRepo   run.Repository
	Output    output.Writer
	Logger    logger.Logger
	Config    *config.Config
	Scheduler gocron.Scheduler

	// mu serializes runs started by the scheduler and by bot commands.
	mu  sync.Mutex
	now func() time.Time
}

func New(opts Opts) *ScraperImpl {
	return &ScraperImpl{
		Pixelfed: opts.Pixelfed,
		Telegram: opts.Telegram,
		RunRepo:  opts.RunRepo,
		Output:   opts.Output,
		Logger:   opts.Logger.WithComponent("Scraper"),
		Config:   opts.Config,
		now:      time.Now,
	}
}

var _ scraper.Service = (*ScraperImpl)(nil)
