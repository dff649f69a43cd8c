package ics

import "strings"

// attachmentTypes maps attachment URL suffixes to the FMTTYPE emitted
// with the ATTACH property. Checked in order, first match wins.
var attachmentTypes = []struct {
	suffixes []string
	mimeType string
}{
	{[]string{".pdf"}, "application/pdf"},
	{[]string{".jpg", ".jpeg"}, "image/jpeg"},
	{[]string{".png"}, "image/png"},
	{[]string{".doc", ".docx"}, "application/msword"},
}

// AttachmentMIMEType guesses a MIME type from the attachment URL's
// extension, case-insensitively. It returns "" for anything outside the
// known set, in which case ATTACH is emitted without a FMTTYPE
// parameter.
func AttachmentMIMEType(url string) string {
	lower := strings.ToLower(url)
	for _, at := range attachmentTypes {
		for _, suffix := range at.suffixes {
			if strings.HasSuffix(lower, suffix) {
				return at.mimeType
			}
		}
	}
	return ""
}
