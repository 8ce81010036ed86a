package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name string
		text string
		want CommandKind
	}{
		{name: "start", text: "/start", want: Start},
		{name: "help", text: "/help", want: Help},
		{name: "format", text: "/format", want: Format},
		{name: "wake", text: "/wake", want: Wake},
		{name: "wake with trailing text", text: "/wake up please", want: Wake},
		{name: "schedule", text: "/schedule Buy milk, 3, hour", want: Schedule},
		{name: "bare schedule", text: "/schedule", want: Schedule},
		{name: "unknown slash command", text: "/foo", want: Unknown},
		{name: "plain text", text: "hello", want: Unknown},
		{name: "empty", text: "", want: Unknown},
		{name: "start with trailing text is not start", text: "/start now", want: Unknown},
		{name: "format with trailing text is not format", text: "/format x", want: Unknown},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cmd := ParseCommand(tc.text)
			assert.Equal(t, tc.want, cmd.Kind)
		})
	}
}

func TestParseCommandKeepsRawScheduleBody(t *testing.T) {
	cmd := ParseCommand("/schedule Buy milk, 3, hour")

	require.Equal(t, Schedule, cmd.Kind)
	assert.Equal(t, "/schedule Buy milk, 3, hour", cmd.Raw)
}

func TestParseScheduleRequest(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    ScheduleRequest
		wantErr error
	}{
		{
			name: "valid request",
			raw:  "/schedule Buy milk, 3, hour",
			want: ScheduleRequest{TaskText: "Buy milk", DurationUnits: 3, Unit: "hour"},
		},
		{
			name: "untrimmed fields",
			raw:  "/schedule   Call mom  ,  1 ,  minute ",
			want: ScheduleRequest{TaskText: "Call mom", DurationUnits: 1, Unit: "minute"},
		},
		{
			name:    "no commas",
			raw:     "/schedule missing fields",
			wantErr: ErrMalformedSchedule,
		},
		{
			name:    "quantity not a number",
			raw:     "/schedule text, notanumber, hour",
			wantErr: ErrMalformedSchedule,
		},
		{
			name:    "empty task text",
			raw:     "/schedule , 3, hour",
			wantErr: ErrMalformedSchedule,
		},
		{
			name:    "too many fields",
			raw:     "/schedule a, b, 3, hour",
			wantErr: ErrMalformedSchedule,
		},
		{
			name:    "only one comma",
			raw:     "/schedule Buy milk, 3",
			wantErr: ErrMalformedSchedule,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			req, err := ParseScheduleRequest(tc.raw)
			if tc.wantErr != nil {
				require.ErrorIs(t, err, tc.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.want, req)
		})
	}
}
