package commandimpl

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/panjf2000/ants/v2"
)

const workers = 4

const helpMessage = `👋 *Pixelfed scraper bot*

/scrape \- Run a scrape now and report the result\.
/status \- Show the most recent scrapes\.
/help \- Show this message\.`

func (c *CommandImpl) HandleCommand(ctx context.Context) error {
	pool, err := ants.NewPool(workers, ants.WithPreAlloc(true))
	if err != nil {
		return fmt.Errorf("failed to create update pool: %w", err)
	}
	defer pool.Release()

	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := c.Telegram.GetUpdatesChan(u)
	c.Logger.Info("Command handler started, listening for updates.")

	for {
		select {
		case <-ctx.Done():
			c.Logger.Info("Command handler shutting down.")
			c.Telegram.StopReceivingUpdates()
			return ctx.Err()
		case update, ok := <-updates:
			if !ok {
				c.Logger.Warn("Telegram updates channel closed unexpectedly.")
				return errors.New("telegram updates channel closed")
			}

			err := pool.Submit(func() {
				defer func() {
					if r := recover(); r != nil {
						c.Logger.Error("Panic recovered while processing an update", "panic", r, "stack", string(debug.Stack()))
					}
				}()

				c.handleUpdate(ctx, update)
			})
			if err != nil {
				c.Logger.Error("Failed to submit update to ants pool", "updateID", update.UpdateID, "error", err)
			}
		}
	}
}

func (c *CommandImpl) handleUpdate(ctx context.Context, u tgbotapi.Update) {
	if u.Message == nil || !u.Message.IsCommand() {
		return
	}
	if !c.allowed(u.Message.Chat.ID) {
		c.Logger.Warn("Ignoring command from unknown chat", "chatID", u.Message.Chat.ID)
		return
	}

	if err := c.processCommand(ctx, u.Message); err != nil {
		c.Logger.Error("Error processing command",
			"command", u.Message.Command(),
			"error", err)
	}
}

// allowed restricts the bot to the configured user.
func (c *CommandImpl) allowed(chatID int64) bool {
	return c.Config.Telegram.User != 0 && chatID == c.Config.Telegram.User
}

func (c *CommandImpl) processCommand(ctx context.Context, msg *tgbotapi.Message) error {
	chatID := msg.Chat.ID

	switch msg.Command() {
	case "start", "help":
		return c.Telegram.SendMessage(chatID, helpMessage)
	case "scrape":
		return c.handleScrape(ctx, chatID)
	case "status":
		return c.handleStatus(ctx, chatID)
	default:
		return c.Telegram.SendMessage(chatID, `Unknown command\. Type /help to see the list of available commands\.`)
	}
}
