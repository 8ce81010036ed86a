package domain

// Message is a single inbound chat message as delivered by the webhook.
type Message struct {
	ChatID int64
	Text   string
}

// CallbackPayload is the delivery trigger a delay service posts back once
// the requested interval has elapsed. The chat ID shares the identifier
// space of Message.ChatID; it is the only correlation between a callback
// and the schedule request that caused it.
type CallbackPayload struct {
	ChatID int64  `json:"chat_id"`
	Text   string `json:"text"`
}

type CommandKind int

const (
	Unknown CommandKind = iota
	Start
	Help
	Format
	Wake
	Schedule
)

// Command is the decoded form of an inbound message text. Raw carries the
// full original text for commands that take arguments (Schedule).
type Command struct {
	Kind CommandKind
	Raw  string
}

// ScheduleRequest is a validated schedule command body. Unit is the
// free-text unit word as typed by the user; it is echoed back in replies
// but never consulted for routing, which is hour-indexed.
type ScheduleRequest struct {
	TaskText      string
	DurationUnits int
	Unit          string
}
