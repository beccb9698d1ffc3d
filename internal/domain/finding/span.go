// Package finding holds the Finding and Span types produced by the
// detection pipeline.
package finding

import "strings"

// Span locates a match within a file: 1-indexed line/column in characters,
// plus the half-open byte range [ByteStart, ByteEnd) the match occupies.
// Both byte offsets must lie on UTF-8 character boundaries; the scanner
// guarantees this by deriving spans only from regex matches or AST node
// ranges, both of which are boundary-safe.
type Span struct {
	Line      int
	Column    int
	ByteStart int
	ByteEnd   int
}

// DeriveSpan computes a Span for the half-open byte range [start, end) in
// content.
func DeriveSpan(content string, start, end int) Span {
	line := 1 + strings.Count(content[:start], "\n")
	lineStart := strings.LastIndexByte(content[:start], '\n') + 1
	column := 1 + len([]rune(content[lineStart:start]))

	return Span{
		Line:      line,
		Column:    column,
		ByteStart: start,
		ByteEnd:   end,
	}
}
