package ics

import (
	"fmt"
	"strings"
	"time"

	"icsgen/internal/models"

	"github.com/google/uuid"
)

const prodID = "-//icsgen//Event Generator//EN"

// DefaultUIDDomain is appended to the generated UUID so event UIDs are
// globally scoped, as RFC 5545 recommends.
const DefaultUIDDomain = "icsgen.local"

// Generator renders events as single-VEVENT iCalendar documents. The
// clock and UID source are injectable so tests can pin DTSTAMP and UID;
// the zero value uses the system clock and random UUIDs.
type Generator struct {
	Domain string           // UID domain suffix; DefaultUIDDomain when empty
	Now    func() time.Time // defaults to time.Now
	NewUID func() string    // defaults to uuid.NewString
}

// Generate renders the event as a complete VCALENDAR document: one
// VEVENT, CRLF line endings, lines folded at 75 characters, and a
// single trailing CRLF. Each call produces a fresh UID and DTSTAMP;
// everything else is a pure function of the event.
func (g *Generator) Generate(event *models.Event) (string, error) {
	if err := event.Validate(); err != nil {
		return "", err
	}

	uid := fmt.Sprintf("%s@%s", g.newUID(), g.domain())
	dtstamp := g.now().UTC().Format("20060102T150405Z")

	dtstart, err := FormatDateTime(event.Start)
	if err != nil {
		return "", fmt.Errorf("start: %w", err)
	}
	dtend, err := FormatDateTime(event.End)
	if err != nil {
		return "", fmt.Errorf("end: %w", err)
	}

	status := event.Status
	if status == "" {
		status = models.StatusConfirmed
	}

	lines := []string{
		"BEGIN:VCALENDAR",
		"VERSION:2.0",
		"PRODID:" + prodID,
		"CALSCALE:GREGORIAN",
		"METHOD:PUBLISH",
		"BEGIN:VEVENT",
		"UID:" + uid,
		"DTSTAMP:" + dtstamp,
		fmt.Sprintf("DTSTART;TZID=%s:%s", event.TimeZone, dtstart),
		fmt.Sprintf("DTEND;TZID=%s:%s", event.TimeZone, dtend),
		"SUMMARY:" + EscapeText(event.Title),
		"STATUS:" + string(status),
	}

	if event.Location != "" {
		lines = append(lines, "LOCATION:"+EscapeText(event.Location))
	}
	if event.Description != "" {
		lines = append(lines, "DESCRIPTION:"+EscapeText(event.Description))
	}
	if event.URL != "" {
		lines = append(lines, "URL:"+event.URL)
	}
	if event.OrganizerName != "" {
		// Some clients reject ORGANIZER without a URI, so a
		// placeholder scheme stands in when no email was given.
		if event.OrganizerEmail != "" {
			lines = append(lines, fmt.Sprintf("ORGANIZER;CN=%s:mailto:%s", EscapeText(event.OrganizerName), event.OrganizerEmail))
		} else {
			lines = append(lines, fmt.Sprintf("ORGANIZER;CN=%s:invalid:nomail", EscapeText(event.OrganizerName)))
		}
	}
	if event.Categories != "" {
		lines = append(lines, "CATEGORIES:"+EscapeText(event.Categories))
	}
	if event.Image != "" {
		lines = append(lines, "IMAGE;VALUE=URI:"+event.Image)
	}
	for _, attachment := range event.Attachments {
		if mimeType := AttachmentMIMEType(attachment); mimeType != "" {
			lines = append(lines, fmt.Sprintf("ATTACH;FMTTYPE=%s:%s", mimeType, attachment))
		} else {
			lines = append(lines, "ATTACH:"+attachment)
		}
	}
	if event.ConferenceURL != "" {
		lines = append(lines, "CONFERENCE;VALUE=URI;FEATURE=VIDEO:"+event.ConferenceURL)
	}
	if event.Geo != "" {
		lines = append(lines, "GEO:"+event.Geo)
	}

	lines = append(lines, "END:VEVENT", "END:VCALENDAR")

	folded := make([]string, len(lines))
	for i, line := range lines {
		folded[i] = FoldLine(line, FoldLimit)
	}
	return strings.Join(folded, "\r\n") + "\r\n", nil
}

func (g *Generator) domain() string {
	if g.Domain != "" {
		return g.Domain
	}
	return DefaultUIDDomain
}

func (g *Generator) now() time.Time {
	if g.Now != nil {
		return g.Now()
	}
	return time.Now()
}

func (g *Generator) newUID() string {
	if g.NewUID != nil {
		return g.NewUID()
	}
	return uuid.NewString()
}
