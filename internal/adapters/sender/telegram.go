package sender

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/rs/zerolog/log"
)

//go:generate mockery --name TelegramAPI

// TelegramAPI is the slice of the bot client the sender needs.
type TelegramAPI interface {
	SendMessage(ctx context.Context, params *bot.SendMessageParams) (*models.Message, error)
	SetWebhook(ctx context.Context, params *bot.SetWebhookParams) (bool, error)
}

type TelegramSender struct {
	bot TelegramAPI
}

func NewTelegramSender(bot TelegramAPI) *TelegramSender {
	return &TelegramSender{bot: bot}
}

func (s *TelegramSender) SendMessage(ctx context.Context, chatID int64, text string) error {
	_, err := s.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
	if err != nil {
		log.Error().Err(err).Int64("chatId", chatID).Msg("failed to send message")
		return err
	}

	log.Debug().Int64("chatId", chatID).Msg("message sent")

	return nil
}

// RegisterWebhook points the Telegram Bot API at baseURL + "/webhook" so
// updates arrive over HTTP instead of long polling.
func (s *TelegramSender) RegisterWebhook(ctx context.Context, baseURL string) error {
	webhookURL := baseURL + "/webhook"

	_, err := s.bot.SetWebhook(ctx, &bot.SetWebhookParams{URL: webhookURL})
	if err != nil {
		log.Error().Err(err).Str("url", webhookURL).Msg("failed to register webhook")
		return err
	}

	log.Info().Str("url", webhookURL).Msg("webhook registered")

	return nil
}
