package telegramimpl

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
)

// SendMessage sends a MarkdownV2 text message to a chat
func (tg *TelegramImpl) SendMessage(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message", "chatID", chatID, "error", err)
		return fmt.Errorf("failed to send message to %d: %w", chatID, err)
	}

	tg.Logger.Info("Message sent", "chatID", chatID)
	return nil
}

// SendMessageToDefaultChannel sends a MarkdownV2 text message to the
// configured channel, falling back to the configured user
func (tg *TelegramImpl) SendMessageToDefaultChannel(text string) error {
	if tg.Config.Telegram.Channel == "" {
		return tg.SendMessage(tg.Config.Telegram.User, text)
	}

	channelName := "@" + tg.Config.Telegram.Channel
	msg := tgbotapi.NewMessageToChannel(channelName, text)
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.DisableWebPagePreview = true

	if _, err := tg.TgBot.Send(msg); err != nil {
		tg.Logger.Error("Error sending message to channel", "channel", channelName, "error", err)
		return fmt.Errorf("failed to send message to channel %s: %w", channelName, err)
	}

	tg.Logger.Info("Message sent to channel", "channel", channelName)
	return nil
}

func (tg *TelegramImpl) GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel {
	return tg.TgBot.GetUpdatesChan(u)
}

func (tg *TelegramImpl) StopReceivingUpdates() {
	tg.TgBot.StopReceivingUpdates()
}
