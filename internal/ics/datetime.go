package ics

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDatetime reports a start/end value that does not parse as
// an ISO 8601 datetime.
var ErrInvalidDatetime = errors.New("invalid datetime")

// datetimeLayouts cover offset-suffixed and naive inputs; fractional
// seconds are optional in both.
var datetimeLayouts = []string{
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02T15:04:05.999999999",
}

// FormatDateTime converts an ISO 8601 datetime string into the fixed
// iCalendar local form 20060102T150405. A trailing Z or numeric offset
// is accepted but discarded: the wall-clock components are kept exactly
// as given, never converted to another zone. The TZID label attached to
// DTSTART/DTEND elsewhere is display metadata only and plays no part
// here.
func FormatDateTime(s string) (string, error) {
	for _, layout := range datetimeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("20060102T150405"), nil
		}
	}
	return "", fmt.Errorf("parsing datetime %q: %w", s, ErrInvalidDatetime)
}
