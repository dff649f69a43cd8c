package models

import "fmt"

// Event represents a single calendar event before it is rendered to
// iCalendar text. All fields hold the caller's raw text; escaping and
// datetime formatting happen at serialization time.
type Event struct {
	Title          string   // Summary or title of the event (required)
	Start          string   // Start datetime in ISO 8601 form (required)
	End            string   // End datetime in ISO 8601 form (required)
	TimeZone       string   // Timezone label attached as TZID; never resolved (required)
	Location       string   // Venue name and/or address
	Description    string   // Detailed description
	URL            string   // Event web page
	OrganizerName  string   // Organizer display name
	OrganizerEmail string   // Organizer email; ignored without a name
	Categories     string   // Comma-separated tags
	Status         Status   // Defaults to StatusConfirmed when empty
	Image          string   // Banner or poster URL
	Attachments    []string // Attachment URLs, emitted in order
	ConferenceURL  string   // Video conference URL
	Geo            string   // "latitude,longitude" pair, emitted verbatim
}

// Status is the VEVENT STATUS value.
type Status string

const (
	StatusConfirmed Status = "CONFIRMED"
	StatusTentative Status = "TENTATIVE"
	StatusCancelled Status = "CANCELLED"
)

// ParseStatus validates a caller-supplied status string. The empty
// string maps to StatusConfirmed.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case "":
		return StatusConfirmed, nil
	case StatusConfirmed, StatusTentative, StatusCancelled:
		return Status(s), nil
	}
	return "", fmt.Errorf("invalid status %q (must be CONFIRMED, TENTATIVE, or CANCELLED)", s)
}

// Validate checks that the required fields are present and the status,
// if set, is one of the known values.
func (e *Event) Validate() error {
	required := []struct {
		name  string
		value string
	}{
		{"title", e.Title},
		{"start", e.Start},
		{"end", e.End},
		{"timezone", e.TimeZone},
	}
	for _, f := range required {
		if f.value == "" {
			return fmt.Errorf("missing required field %q", f.name)
		}
	}
	if e.Status != "" {
		if _, err := ParseStatus(string(e.Status)); err != nil {
			return err
		}
	}
	return nil
}
