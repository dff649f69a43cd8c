package ics

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAttachmentMIMEType(t *testing.T) {
	tests := []struct {
		url      string
		expected string
	}{
		{"https://example.com/agenda.pdf", "application/pdf"},
		{"https://example.com/map.jpg", "image/jpeg"},
		{"https://example.com/photo.jpeg", "image/jpeg"},
		{"https://example.com/logo.png", "image/png"},
		{"https://example.com/notes.doc", "application/msword"},
		{"https://example.com/document.docx", "application/msword"},
		{"https://example.com/FILE.PDF", "application/pdf"},
		{"https://example.com/IMAGE.JPG", "image/jpeg"},
		{"https://example.com/other.txt", ""},
		{"https://example.com/no-extension", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, AttachmentMIMEType(tt.url), "url %s", tt.url)
	}
}
