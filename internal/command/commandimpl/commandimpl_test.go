package commandimpl

import (
	"context"
	"errors"
	"testing"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/orgball2608/pixelfed-scraper/internal/domain"
	mock_run "github.com/orgball2608/pixelfed-scraper/internal/repositories/run/mocks"
	mock_scraper "github.com/orgball2608/pixelfed-scraper/internal/scraper/mocks"
	mock_telegram "github.com/orgball2608/pixelfed-scraper/internal/telegram/mocks"
	"github.com/orgball2608/pixelfed-scraper/pkg/config"
	"github.com/orgball2608/pixelfed-scraper/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const ownerChat int64 = 1001

type mocks struct {
	scraper  *mock_scraper.MockService
	telegram *mock_telegram.MockClient
	runs     *mock_run.MockRepository
}

func newTestCommand(t *testing.T) (*CommandImpl, mocks) {
	ctrl := gomock.NewController(t)
	m := mocks{
		scraper:  mock_scraper.NewMockService(ctrl),
		telegram: mock_telegram.NewMockClient(ctrl),
		runs:     mock_run.NewMockRepository(ctrl),
	}

	cfg := &config.Config{}
	cfg.Pixelfed.Username = "abusayed"
	cfg.Telegram.User = ownerChat

	return New(Opts{
		Scraper:  m.scraper,
		Telegram: m.telegram,
		RunRepo:  m.runs,
		Logger:   logger.Nop(),
		Config:   cfg,
	}), m
}

func commandMessage(text string) *tgbotapi.Message {
	return &tgbotapi.Message{
		Text: text,
		Chat: &tgbotapi.Chat{ID: ownerChat},
		Entities: []tgbotapi.MessageEntity{
			{Type: "bot_command", Offset: 0, Length: len(text)},
		},
	}
}

func TestProcessCommandScrape(t *testing.T) {
	c, m := newTestCommand(t)
	c.Config.Telegram.Channel = "pixelfed_runs"

	gomock.InOrder(
		m.telegram.EXPECT().SendMessage(ownerChat, gomock.Any()).Return(nil),
		m.scraper.EXPECT().Run(gomock.Any()).Return(domain.Run{Method: "api", TotalImages: 3}, nil),
		m.telegram.EXPECT().SendMessage(ownerChat, gomock.Any()).DoAndReturn(func(_ int64, text string) error {
			assert.Contains(t, text, "`api`")
			return nil
		}),
	)

	require.NoError(t, c.processCommand(context.Background(), commandMessage("/scrape")))
}

func TestProcessCommandScrapeReportsOnceWithoutChannel(t *testing.T) {
	c, m := newTestCommand(t)

	gomock.InOrder(
		m.telegram.EXPECT().SendMessage(ownerChat, gomock.Any()).Return(nil),
		m.scraper.EXPECT().Run(gomock.Any()).Return(domain.Run{Method: "api", TotalImages: 3}, nil),
	)

	require.NoError(t, c.processCommand(context.Background(), commandMessage("/scrape")))
}

func TestProcessCommandScrapeAlreadyRunning(t *testing.T) {
	c, m := newTestCommand(t)
	c.scraping.Lock()
	defer c.scraping.Unlock()

	m.telegram.EXPECT().SendMessage(ownerChat, gomock.Any()).DoAndReturn(func(_ int64, text string) error {
		assert.Contains(t, text, "already running")
		return nil
	})

	require.NoError(t, c.processCommand(context.Background(), commandMessage("/scrape")))
}

func TestProcessCommandStatus(t *testing.T) {
	c, m := newTestCommand(t)

	m.runs.EXPECT().GetLatestByUsername(gomock.Any(), "abusayed", historySize).Return([]*domain.Run{
		{Method: "atom_feed", TotalImages: 12},
	}, nil)
	m.telegram.EXPECT().SendMessage(ownerChat, gomock.Any()).DoAndReturn(func(_ int64, text string) error {
		assert.Contains(t, text, "`atom_feed` 12 images")
		return nil
	})

	require.NoError(t, c.processCommand(context.Background(), commandMessage("/status")))
}

func TestProcessCommandStatusFailure(t *testing.T) {
	c, m := newTestCommand(t)

	m.runs.EXPECT().GetLatestByUsername(gomock.Any(), "abusayed", historySize).Return(nil, errors.New("db down"))
	m.telegram.EXPECT().SendMessage(ownerChat, gomock.Any()).Return(nil)

	require.NoError(t, c.processCommand(context.Background(), commandMessage("/status")))
}

func TestProcessCommandHelpAndUnknown(t *testing.T) {
	c, m := newTestCommand(t)

	m.telegram.EXPECT().SendMessage(ownerChat, helpMessage).Return(nil)
	m.telegram.EXPECT().SendMessage(ownerChat, gomock.Not(helpMessage)).Return(nil)

	require.NoError(t, c.processCommand(context.Background(), commandMessage("/help")))
	require.NoError(t, c.processCommand(context.Background(), commandMessage("/dance")))
}

func TestAllowed(t *testing.T) {
	c, _ := newTestCommand(t)
	assert.True(t, c.allowed(ownerChat))
	assert.False(t, c.allowed(42))

	c.Config.Telegram.User = 0
	assert.False(t, c.allowed(0))
}

func TestHandleCommandStopsWithContext(t *testing.T) {
	c, m := newTestCommand(t)
	updates := make(chan tgbotapi.Update)

	m.telegram.EXPECT().GetUpdatesChan(gomock.Any()).Return(tgbotapi.UpdatesChannel(updates))
	m.telegram.EXPECT().StopReceivingUpdates()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	assert.ErrorIs(t, c.HandleCommand(ctx), context.Canceled)
}

func TestHandleCommandClosedChannel(t *testing.T) {
	c, m := newTestCommand(t)
	updates := make(chan tgbotapi.Update)
	close(updates)

	m.telegram.EXPECT().GetUpdatesChan(gomock.Any()).Return(tgbotapi.UpdatesChannel(updates))

	assert.Error(t, c.HandleCommand(context.Background()))
}

func TestHandleUpdateIgnoresStrangersAndChatter(t *testing.T) {
	c, _ := newTestCommand(t)

	stranger := commandMessage("/scrape")
	stranger.Chat = &tgbotapi.Chat{ID: 42}
	c.handleUpdate(context.Background(), tgbotapi.Update{Message: stranger})

	c.handleUpdate(context.Background(), tgbotapi.Update{Message: &tgbotapi.Message{
		Text: "hello",
		Chat: &tgbotapi.Chat{ID: ownerChat},
	}})
	c.handleUpdate(context.Background(), tgbotapi.Update{})
}
