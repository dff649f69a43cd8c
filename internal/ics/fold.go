package ics

import "strings"

// FoldLimit is the maximum content-line length RFC 5545 allows before a
// line must be folded.
const FoldLimit = 75

// FoldLine folds a logical content line at limit characters, marking
// each continuation with a single leading space and joining the
// segments with CRLF. Lines at or under the limit come back unchanged.
//
// The cut is by character count, not octets, and the continuation space
// counts toward the next segment's budget. A continuation can therefore
// land mid-grapheme for combining sequences, but individual code points
// are never split. Strict octet-boundary folding would change output
// for non-ASCII values, so the character-count cut is kept.
func FoldLine(line string, limit int) string {
	runes := []rune(line)
	if len(runes) <= limit {
		return line
	}

	var segments []string
	for len(runes) > limit {
		segments = append(segments, string(runes[:limit]))
		rest := make([]rune, 0, len(runes)-limit+1)
		rest = append(rest, ' ')
		runes = append(rest, runes[limit:]...)
	}
	segments = append(segments, string(runes))
	return strings.Join(segments, "\r\n")
}
