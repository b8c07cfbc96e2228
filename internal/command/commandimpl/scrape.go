package commandimpl

import (
	"context"

	"github.com/orgball2608/pixelfed-scraper/internal/scraper"
)

const historySize = 5

func (c *CommandImpl) handleScrape(ctx context.Context, chatID int64) error {
	if !c.scraping.TryLock() {
		return c.Telegram.SendMessage(chatID, `⏳ A scrape is already running\.`)
	}
	defer c.scraping.Unlock()

	if err := c.Telegram.SendMessage(chatID, `🚀 Scrape started\.`); err != nil {
		c.Logger.Warn("Failed to acknowledge scrape request", "error", err)
	}

	run, err := c.Scraper.Run(ctx)
	if err != nil {
		c.Logger.Error("Requested scrape failed", "run_id", run.ID, "error", err)
	}
	if c.receivesRunReports(chatID) {
		return nil
	}
	return c.Telegram.SendMessage(chatID, scraper.FormatReport(run, nil))
}

// receivesRunReports reports whether every finished run is already sent to
// chatID, which happens when no channel is configured.
func (c *CommandImpl) receivesRunReports(chatID int64) bool {
	return c.Config.Telegram.Channel == "" && chatID == c.Config.Telegram.User
}

func (c *CommandImpl) handleStatus(ctx context.Context, chatID int64) error {
	runs, err := c.RunRepo.GetLatestByUsername(ctx, c.Config.Pixelfed.Username, historySize)
	if err != nil {
		c.Logger.Error("Failed to load run history", "error", err)
		return c.Telegram.SendMessage(chatID, `Failed to load run history\.`)
	}
	return c.Telegram.SendMessage(chatID, scraper.FormatHistory(runs))
}
