package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatus(t *testing.T) {
	tests := []struct {
		input    string
		expected Status
	}{
		{"", StatusConfirmed},
		{"CONFIRMED", StatusConfirmed},
		{"TENTATIVE", StatusTentative},
		{"CANCELLED", StatusCancelled},
	}
	for _, tt := range tests {
		got, err := ParseStatus(tt.input)
		require.NoError(t, err, "input %q", tt.input)
		assert.Equal(t, tt.expected, got)
	}

	for _, input := range []string{"INVALID", "confirmed", "Tentative"} {
		_, err := ParseStatus(input)
		require.Error(t, err, "input %q", input)
		assert.Contains(t, err.Error(), input)
	}
}

func TestEventValidate(t *testing.T) {
	valid := Event{
		Title:    "Test Event",
		Start:    "2025-03-15T19:00:00",
		End:      "2025-03-15T22:00:00",
		TimeZone: "UTC",
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*Event)
		want   string
	}{
		{"missing title", func(e *Event) { e.Title = "" }, "title"},
		{"missing start", func(e *Event) { e.Start = "" }, "start"},
		{"missing end", func(e *Event) { e.End = "" }, "end"},
		{"missing timezone", func(e *Event) { e.TimeZone = "" }, "timezone"},
		{"bad status", func(e *Event) { e.Status = "MAYBE" }, "MAYBE"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event := valid
			tt.mutate(&event)
			err := event.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
