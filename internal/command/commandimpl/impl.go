package commandimpl

import (
	"sync"

	"github.com/orgball2608/pixelfed-scraper/internal/command"
	"github.com/orgball2608/pixelfed-scraper/internal/repositories/run"
	"github.com/orgball2608/pixelfed-scraper/internal/scraper"
	"github.com/orgball2608/pixelfed-scraper/internal/telegram"
	"github.com/orgball2608/pixelfed-scraper/pkg/config"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Scraper  scraper.Service
	Telegram telegram.Client
	RunRepo  run.Repository
	Logger   logger.Logger
	Config   *config.Config
}

type CommandImpl struct {
	Scraper  scraper.Service
	Telegram telegram.Client
	RunRepo  run.Repository
	Logger   logger.Logger
	Config   *config.Config

	// scraping is held while a /scrape request is in flight.
	scraping sync.Mutex
}

func New(opts Opts) *CommandImpl {
	return &CommandImpl{
		Scraper:  opts.Scraper,
		Telegram: opts.Telegram,
		RunRepo:  opts.RunRepo,
		Logger:   opts.Logger.WithComponent("Command"),
		Config:   opts.Config,
	}
}

var _ command.Client = (*CommandImpl)(nil)
