package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

//go:generate go run go.uber.org/mock/mockgen -source=telegram.go -destination=mocks/mock.go
type Client interface {
	GetUpdatesChan(u tgbotapi.UpdateConfig) tgbotapi.UpdatesChannel
	StopReceivingUpdates()

	// SendMessage sends MarkdownV2 text to a chat.
	SendMessage(chatID int64, text string) error
	// SendMessageToDefaultChannel sends MarkdownV2 text to the configured
	// channel, or to the configured user when no channel is set.
	SendMessageToDefaultChannel(text string) error
}
