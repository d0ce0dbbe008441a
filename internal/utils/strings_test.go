package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSpaces_EscapesControlBytes(t *testing.T) {
	assert.Equal(t, `a\tb\nc`, FormatSpaces("a\tb\nc"))
}

func TestFormatSpaces_TruncatesLongLines(t *testing.T) {
	long := strings.Repeat("x", maxFormattedLine+50)
	out := FormatSpaces(long)

	assert.Equal(t, maxFormattedLine+len("..."), len(out))
	assert.True(t, strings.HasSuffix(out, "..."))
}
