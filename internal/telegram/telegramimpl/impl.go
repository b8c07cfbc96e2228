package telegramimpl

import (
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/pixelfed-scraper/internal/telegram"
	"github.com/orgball2608/pixelfed-scraper/pkg/config"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
	"go.uber.org/fx"
)

type Opts struct {
	fx.In

	Config *config.Config
	Logger logger.Logger
}

type TelegramImpl struct {
	TgBot  *tgbotapi.BotAPI
	Logger logger.Logger
	Config *config.Config
}

// New returns a bot backed client, or a no-op one when Telegram is not
// configured or the bot cannot be reached.
func New(opts Opts) (telegram.Client, error) {
	log := opts.Logger.WithComponent("Telegram")
	if !opts.Config.TelegramEnabled() {
		log.Info("Telegram not configured, run reports disabled")
		return Nop{}, nil
	}

	endpoint := opts.Config.Telegram.APIEndpoint
	if endpoint == "" {
		endpoint = tgbotapi.APIEndpoint
	}
	tgBot, err := tgbotapi.NewBotAPIWithAPIEndpoint(opts.Config.Telegram.Token, endpoint)
	if err != nil {
		log.Error("Error creating bot, run reports disabled", "error", err)
		return Nop{}, nil
	}

	return &TelegramImpl{
		TgBot:  tgBot,
		Logger: log,
		Config: opts.Config,
	}, nil
}

var _ telegram.Client = (*TelegramImpl)(nil)

// Nop drops every message.
type Nop struct{}

var _ telegram.Client = Nop{}

func (Nop) GetUpdatesChan(tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel { return nil }
func (Nop) StopReceivingUpdates()                                        {}
func (Nop) SendMessage(int64, string) error                              { return nil }
func (Nop) SendMessageToDefaultChannel(string) error                     { return nil }
