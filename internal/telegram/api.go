package telegram

import tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

// sender is the narrow slice of the Bot API every outbound message goes
// through. Handlers depend on it instead of *tgbotapi.BotAPI, so tests
// substitute a capturing implementation and never need a live connection.
type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// botAPISender forwards to the real Bot API client.
type botAPISender struct{ api *tgbotapi.BotAPI }

func (s botAPISender) Send(c tgbotapi.Chattable) (tgbotapi.Message, error) {
	return s.api.Send(c)
}
