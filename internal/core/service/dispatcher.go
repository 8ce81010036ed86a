package service

import (
	"context"
	"fmt"
	"schedbot/internal/core/domain"
	"schedbot/internal/core/port"

	"github.com/rs/zerolog/log"
)

const malformedSchedule = "🤔 I couldn't read that reminder.\n" +
	"Format: /schedule <message>, <number>, <hour/minute>\n" +
	"Example: /schedule Buy milk, 3, hour"

const outOfRange = "⏱ Please pick a duration between 1 and %d hours."

const delegationFailed = "⚠️ Could not schedule your reminder: %s. Please try again later."

const scheduled = "✅ Scheduled \"%s\" in %d hour(s). I'll remind you here!"

// ScheduleDispatcher orchestrates a schedule command: validate the body,
// resolve the delay endpoint for the requested duration, hand the message
// off, and confirm to the user. Every terminal path sends exactly one chat
// message; user-input and delegation errors are recovered into that message
// rather than surfaced to the webhook transport.
type ScheduleDispatcher struct {
	sender    port.TextSender
	delegator port.Delegator
	endpoints []string
}

func NewScheduleDispatcher(sender port.TextSender, delegator port.Delegator, endpoints []string) *ScheduleDispatcher {
	return &ScheduleDispatcher{sender: sender, delegator: delegator, endpoints: endpoints}
}

// Dispatch handles the raw body of a schedule command for the given chat.
// The returned error is non-nil only when the chat send itself failed; that
// is the one failure the transport layer needs to know about.
func (d *ScheduleDispatcher) Dispatch(ctx context.Context, chatID int64, raw string) error {
	l := log.With().
		Int64("chatId", chatID).
		Str("command", "/schedule").
		Logger()

	req, err := domain.ParseScheduleRequest(raw)
	if err != nil {
		l.Debug().Str("body", raw).Msg("malformed schedule body")
		return d.sender.SendMessage(ctx, chatID, malformedSchedule)
	}

	endpoint, err := ResolveEndpoint(req.DurationUnits, d.endpoints)
	if err != nil {
		l.Debug().Int("durationUnits", req.DurationUnits).Msg("duration outside endpoint table")
		return d.sender.SendMessage(ctx, chatID, fmt.Sprintf(outOfRange, len(d.endpoints)))
	}

	if err := d.delegator.Delegate(ctx, endpoint, chatID, req.TaskText); err != nil {
		l.Error().Err(err).Str("endpoint", endpoint).Msg("delay service delegation failed")
		return d.sender.SendMessage(ctx, chatID, fmt.Sprintf(delegationFailed, err))
	}

	l.Info().Int("durationUnits", req.DurationUnits).Msg("reminder delegated")

	return d.sender.SendMessage(ctx, chatID, fmt.Sprintf(scheduled, req.TaskText, req.DurationUnits))
}
