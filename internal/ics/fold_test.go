package ics

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFoldLineShortLinesUnchanged(t *testing.T) {
	assert.Equal(t, "", FoldLine("", FoldLimit))
	assert.Equal(t, "SHORT LINE", FoldLine("SHORT LINE", FoldLimit))

	exact := strings.Repeat("A", 75)
	assert.Equal(t, exact, FoldLine(exact, FoldLimit))
}

func TestFoldLineAtBoundary(t *testing.T) {
	line := strings.Repeat("A", 76)
	expected := strings.Repeat("A", 75) + "\r\n A"
	assert.Equal(t, expected, FoldLine(line, FoldLimit))
}

func TestFoldLineLongLine(t *testing.T) {
	line := strings.Repeat("B", 200)
	folded := FoldLine(line, FoldLimit)

	segments := strings.Split(folded, "\r\n")
	require.Greater(t, len(segments), 1)
	assert.Equal(t, strings.Repeat("B", 75), segments[0])
	for _, segment := range segments[1:] {
		assert.True(t, strings.HasPrefix(segment, " "), "continuation %q must start with a space", segment)
		assert.LessOrEqual(t, len([]rune(segment)), 75)
	}

	// Unfolding recovers the original line.
	assert.Equal(t, line, strings.ReplaceAll(folded, "\r\n ", ""))
}

func TestFoldLineCustomLimit(t *testing.T) {
	folded := FoldLine(strings.Repeat("C", 50), 25)
	segments := strings.Split(folded, "\r\n")
	assert.Equal(t, strings.Repeat("C", 25), segments[0])
	require.Len(t, segments, 3)
}

func TestFoldLineUnicode(t *testing.T) {
	line := strings.Repeat("Event: 🎉 ", 20)
	folded := FoldLine(line, FoldLimit)

	// Folding cuts at character positions, so no code point is ever
	// corrupted and unfolding restores the input exactly.
	assert.Contains(t, folded, "🎉")
	assert.Equal(t, line, strings.ReplaceAll(folded, "\r\n ", ""))
}
