package port

import "context"

type TextSender interface {
	// SendMessage delivers a text message to the given chat and returns an
	// error if the messaging platform rejects it.
	SendMessage(ctx context.Context, chatID int64, text string) error
}
