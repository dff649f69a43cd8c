package ics

import "strings"

// textEscaper escapes the characters RFC 5545 reserves inside TEXT
// property values. The backslash pair is listed first so backslashes
// introduced by the other pairs are never escaped again.
var textEscaper = strings.NewReplacer(
	`\`, `\\`,
	`,`, `\,`,
	`;`, `\;`,
	"\n", `\n`,
)

// EscapeText escapes a free-text value for use in a TEXT property.
// Empty input yields an empty string. Everything outside the reserved
// set, non-ASCII included, passes through unmodified.
func EscapeText(s string) string {
	if s == "" {
		return ""
	}
	return textEscaper.Replace(s)
}
