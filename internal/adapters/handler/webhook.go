package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"schedbot/internal/core/domain"
	"schedbot/internal/core/port"
	"schedbot/internal/core/service"

	"github.com/gofrs/uuid/v5"
	"github.com/rs/zerolog/log"
)

const startMessage = "🤖 Welcome to the Scheduler Bot!\n\n" +
	"Use /schedule to set reminders:\n" +
	"Example: /schedule Buy milk, 3, hour\n" +
	"Format: /schedule <message>, <number>, <hour/minute>"

const defaultMessage = "🤔 I didn't understand that command.\n" +
	"/start - Show welcome message\n" +
	"/help - Show this help message\n" +
	"/schedule - Set reminders\n" +
	"/format - Get the format of the schedule function!\n" +
	"💡 Tip: Send any other message for general info!"

const formatMessage = "/schedule Buy milk, 3, hour"

const wakeMessage = "🌞 I'm awake!"

// Webhook exposes the bot's HTTP surface: Telegram updates, delay-service
// callbacks and the health probe.
type Webhook struct {
	sender     port.TextSender
	dispatcher *service.ScheduleDispatcher
	relay      *service.CallbackRelay
	timeout    time.Duration
}

func NewWebhook(sender port.TextSender, dispatcher *service.ScheduleDispatcher,
	relay *service.CallbackRelay, timeout time.Duration) *Webhook {
	return &Webhook{sender: sender, dispatcher: dispatcher, relay: relay, timeout: timeout}
}

func (h *Webhook) Register(mux *http.ServeMux) {
	mux.HandleFunc("POST /webhook", h.HandleUpdate)
	mux.HandleFunc("POST /callback", h.HandleCallback)
	mux.HandleFunc("GET /health", h.HandleHealth)
}

type update struct {
	Message *struct {
		Chat struct {
			ID int64 `json:"id"`
		} `json:"chat"`
		Text string `json:"text"`
	} `json:"message"`
}

// HandleUpdate processes one Telegram webhook delivery. Updates without a
// message or text are acknowledged as a no-op so the platform does not
// retry them.
func (h *Webhook) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	l := log.With().Str("deliveryId", uuid.Must(uuid.NewV4()).String()).Logger()

	var u update
	if err := json.NewDecoder(r.Body).Decode(&u); err != nil {
		l.Error().Err(err).Msg("failed to decode webhook payload")
		http.Error(w, "invalid update payload", http.StatusInternalServerError)
		return
	}

	if u.Message == nil || u.Message.Text == "" {
		l.Debug().Msg("update carries no message text, ignoring")
		w.WriteHeader(http.StatusOK)
		return
	}

	msg := domain.Message{ChatID: u.Message.Chat.ID, Text: u.Message.Text}
	l.Info().Int64("chatId", msg.ChatID).Str("text", msg.Text).Msg("received message")

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	cmd := domain.ParseCommand(msg.Text)

	var err error
	switch cmd.Kind {
	case domain.Start:
		err = h.sender.SendMessage(ctx, msg.ChatID, startMessage)
	case domain.Format:
		err = h.sender.SendMessage(ctx, msg.ChatID, formatMessage)
	case domain.Wake:
		err = h.sender.SendMessage(ctx, msg.ChatID, wakeMessage)
	case domain.Schedule:
		err = h.dispatcher.Dispatch(ctx, msg.ChatID, cmd.Raw)
	case domain.Help, domain.Unknown:
		err = h.sender.SendMessage(ctx, msg.ChatID, defaultMessage)
	}

	if err != nil {
		l.Error().Err(err).Int64("chatId", msg.ChatID).Msg("failed to respond to message")
		http.Error(w, "failed to respond", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

// HandleCallback relays a delay service's delivery trigger back to the chat
// that scheduled it.
func (h *Webhook) HandleCallback(w http.ResponseWriter, r *http.Request) {
	l := log.With().Str("deliveryId", uuid.Must(uuid.NewV4()).String()).Logger()

	var payload domain.CallbackPayload
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		l.Error().Err(err).Msg("failed to decode callback payload")
		http.Error(w, "invalid callback payload", http.StatusBadRequest)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	if err := h.relay.Relay(ctx, payload); err != nil {
		if errors.Is(err, domain.ErrMalformedCallback) {
			http.Error(w, "callback missing chat_id or text", http.StatusBadRequest)
			return
		}

		l.Error().Err(err).Int64("chatId", payload.ChatID).Msg("failed to relay callback")
		http.Error(w, "failed to relay callback", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}

func (h *Webhook) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"healthy"}`))
}
