package parsel

import (
	"fmt"
	"sort"
	"unicode/utf8"
)

// Location is a human-oriented position within the input: 1-indexed
// line, 1-indexed rune column, and the underlying byte offset.
type Location struct {
	Line   int
	Column int
	Cursor int
}

func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// posIndex resolves byte offsets to line/column locations.  It is
// built lazily, only when a diagnostic actually needs one.
type posIndex struct {
	input []byte

	// lineStart holds 0-based byte offsets of each line start
	lineStart []int
}

func newPosIndex(input []byte) *posIndex {
	// line 1 always starts at offset 0
	lineStart := make([]int, 1, 64)
	for i, b := range input {
		if b == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &posIndex{input: input, lineStart: lineStart}
}

func (pi *posIndex) LocationAt(cursor int) Location {
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(pi.input) {
		cursor = len(pi.input)
	}

	// first lineStart > cursor, then one step back
	lineIdx := sort.Search(len(pi.lineStart), func(i int) bool {
		return pi.lineStart[i] > cursor
	}) - 1
	if lineIdx < 0 {
		lineIdx = 0
	}
	start := pi.lineStart[lineIdx]

	return Location{
		Line:   lineIdx + 1,
		Column: utf8.RuneCount(pi.input[start:cursor]) + 1,
		Cursor: cursor,
	}
}
