package service

import (
	"context"
	"schedbot/internal/core/domain"
	"schedbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

// CallbackRelay forwards a delay service's delivery trigger to the chat it
// names. It keeps no correlation state; the chat ID in the payload is
// trusted to identify the original requester.
type CallbackRelay struct {
	sender port.TextSender
}

func NewCallbackRelay(sender port.TextSender) *CallbackRelay {
	return &CallbackRelay{sender: sender}
}

// Relay validates the payload and sends its text to the chat exactly once.
func (r *CallbackRelay) Relay(ctx context.Context, payload domain.CallbackPayload) error {
	if payload.ChatID == 0 || payload.Text == "" {
		log.Warn().
			Int64("chatId", payload.ChatID).
			Msg("discarding malformed callback payload")
		return domain.ErrMalformedCallback
	}

	log.Info().Int64("chatId", payload.ChatID).Msg("relaying scheduled reminder")

	return r.sender.SendMessage(ctx, payload.ChatID, payload.Text)
}
