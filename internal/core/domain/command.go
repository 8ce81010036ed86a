package domain

import (
	"strconv"
	"strings"
)

const scheduleFieldCount = 3

// ParseCommand decodes an inbound message text into a Command. It never
// fails; anything unrecognized resolves to Unknown so the caller always has
// a defined action.
func ParseCommand(text string) Command {
	switch {
	case text == "/start":
		return Command{Kind: Start}
	case text == "/help":
		return Command{Kind: Help}
	case text == "/format":
		return Command{Kind: Format}
	case strings.HasPrefix(text, "/wake"):
		return Command{Kind: Wake}
	case strings.HasPrefix(text, "/schedule"):
		return Command{Kind: Schedule, Raw: text}
	default:
		return Command{Kind: Unknown}
	}
}

// ParseScheduleRequest extracts a ScheduleRequest from a schedule command
// body of the form "/schedule <message>, <number>, <unit>". The quantity
// must parse as an integer and the task text must be non-empty after
// trimming; range checking of the quantity is the router's job, not the
// parser's.
func ParseScheduleRequest(raw string) (ScheduleRequest, error) {
	parts := strings.Split(raw, ",")
	if len(parts) != scheduleFieldCount {
		return ScheduleRequest{}, ErrMalformedSchedule
	}

	taskText := strings.TrimSpace(strings.TrimPrefix(parts[0], "/schedule"))
	if taskText == "" {
		return ScheduleRequest{}, ErrMalformedSchedule
	}

	units, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return ScheduleRequest{}, ErrMalformedSchedule
	}

	return ScheduleRequest{
		TaskText:      taskText,
		DurationUnits: units,
		Unit:          strings.TrimSpace(parts[2]),
	}, nil
}
