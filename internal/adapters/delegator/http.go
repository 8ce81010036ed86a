package delegator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"schedbot/internal/core/domain"

	"github.com/rs/zerolog/log"
)

// HTTPDelegator hands messages to delay services over plain HTTP POST.
type HTTPDelegator struct {
	client *http.Client
}

func NewHTTPDelegator(timeout time.Duration) *HTTPDelegator {
	return &HTTPDelegator{client: &http.Client{Timeout: timeout}}
}

type delegationRequest struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

func (d *HTTPDelegator) Delegate(ctx context.Context, endpoint string, chatID int64, text string) error {
	payloadBuf := new(bytes.Buffer)
	err := json.NewEncoder(payloadBuf).Encode(delegationRequest{ChatID: chatID, Text: text})
	if err != nil {
		return fmt.Errorf("error encoding delegation request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, payloadBuf)
	if err != nil {
		log.Error().Err(err).Str("endpoint", endpoint).Msg("error creating POST request for delay service")
		return err
	}

	req.Header.Add("Content-Type", "application/json")

	res, err := d.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %w", domain.ErrDelegationFailed, err)
	}

	defer res.Body.Close()

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("%w: unexpected status code %d", domain.ErrDelegationFailed, res.StatusCode)
	}

	log.Debug().Str("endpoint", endpoint).Int64("chatId", chatID).Msg("message delegated to delay service")

	return nil
}
