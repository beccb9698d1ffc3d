package finding

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDeriveSpan_FirstLine(t *testing.T) {
	content := "key = secretvalue\nother = 1\n"
	start := len("key = ")
	end := start + len("secretvalue")

	span := DeriveSpan(content, start, end)

	assert.Equal(t, 1, span.Line)
	assert.Equal(t, 7, span.Column) // "key = " is 6 chars, 1-indexed column 7
	assert.Equal(t, start, span.ByteStart)
	assert.Equal(t, end, span.ByteEnd)
}

func TestDeriveSpan_SecondLine(t *testing.T) {
	content := "first line\nsecret = abcdef\n"
	lineTwoStart := len("first line\n")
	start := lineTwoStart + len("secret = ")
	end := start + len("abcdef")

	span := DeriveSpan(content, start, end)

	assert.Equal(t, 2, span.Line)
	assert.Equal(t, 10, span.Column)
}

func TestDeriveSpan_ColumnCountsRunesNotBytes(t *testing.T) {
	content := "café = abcdef"
	start := len("café = ")
	end := start + len("abcdef")

	span := DeriveSpan(content, start, end)

	// "café = " has 7 runes even though it is 8 bytes (é is 2 bytes in UTF-8).
	assert.Equal(t, 8, span.Column)
}
