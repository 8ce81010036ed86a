package port

import "context"

type Delegator interface {
	// Delegate hands a message off to an external delay service at the given
	// endpoint. The service holds the message for its configured interval and
	// later posts it back through the callback relay.
	Delegate(ctx context.Context, endpoint string, chatID int64, text string) error
}
