package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"icsgen/internal/ics"
	"icsgen/internal/models"
	"icsgen/internal/writer"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
)

func main() {
	// Load .env file first, but don't error if it doesn't exist.
	_ = godotenv.Load()

	app := &cli.App{
		Name:  "icsgen",
		Usage: "Generate an iCalendar (.ics) file for a single event.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "title", Usage: "Event title/name.", Required: true},
			&cli.StringFlag{Name: "start", Usage: "Start datetime (ISO format: 2025-03-15T19:00:00).", Required: true},
			&cli.StringFlag{Name: "end", Usage: "End datetime (ISO format: 2025-03-15T22:00:00).", Required: true},
			&cli.StringFlag{Name: "timezone", Usage: "Timezone label (e.g. America/Los_Angeles).", Required: true},
			&cli.StringFlag{Name: "location", Usage: "Event location (venue name and/or address)."},
			&cli.StringFlag{Name: "description", Usage: "Detailed event description."},
			&cli.StringFlag{Name: "url", Usage: "Event URL."},
			&cli.StringFlag{Name: "organizer", Usage: "Organizer name."},
			&cli.StringFlag{Name: "organizer-email", Usage: "Organizer email address."},
			&cli.StringFlag{Name: "categories", Usage: "Event categories/tags (comma-separated)."},
			&cli.StringFlag{Name: "status", Value: "CONFIRMED", Usage: "Event status: CONFIRMED, TENTATIVE or CANCELLED."},
			&cli.StringFlag{Name: "image", Usage: "Event image URL (banner, logo, poster)."},
			&cli.StringSliceFlag{Name: "attach", Usage: "Attachment URL. Repeat for multiple attachments."},
			&cli.StringFlag{Name: "conference", Usage: "Video conference URL (Zoom, Teams, etc.)."},
			&cli.StringFlag{Name: "geo", Usage: "Geographic coordinates as \"latitude,longitude\"."},
			&cli.StringFlag{Name: "output", Aliases: []string{"o"}, Usage: "Output file path (default: stdout)."},
		},
		Action: generate,
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Failed to generate calendar", "error", err)
		os.Exit(1)
	}
}

func generate(c *cli.Context) error {
	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}
	logger := setupLogger(logLevel)

	status, err := models.ParseStatus(c.String("status"))
	if err != nil {
		return err
	}

	event := &models.Event{
		Title:          c.String("title"),
		Start:          c.String("start"),
		End:            c.String("end"),
		TimeZone:       c.String("timezone"),
		Location:       c.String("location"),
		Description:    c.String("description"),
		URL:            c.String("url"),
		OrganizerName:  c.String("organizer"),
		OrganizerEmail: c.String("organizer-email"),
		Categories:     c.String("categories"),
		Status:         status,
		Image:          c.String("image"),
		Attachments:    c.StringSlice("attach"),
		ConferenceURL:  c.String("conference"),
		Geo:            c.String("geo"),
	}

	gen := &ics.Generator{Domain: os.Getenv("ICSGEN_UID_DOMAIN")}
	content, err := gen.Generate(event)
	if err != nil {
		return err
	}
	logger.Debug("Rendered calendar document.", "bytes", len(content))

	absPath, err := writer.Write(os.Stdout, content, c.String("output"))
	if err != nil {
		return err
	}
	if absPath != "" {
		fmt.Printf("Calendar file created: %s\n", absPath)
	}
	return nil
}

func setupLogger(level string) *slog.Logger {
	var logLevel slog.Level
	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))
}
