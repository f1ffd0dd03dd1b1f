// SPDX-License-Identifier: MIT
package lexer

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

type (
	// Location is a coordinate in a source file.
	//
	// The first line is 0; the first column is 0.
	Location struct {
		Line uint
		Col  uint
	}

	// TokenSpan is the source extent covered by one token, to allow clear
	// error messages.
	TokenSpan struct {
		// Filepath of the file the span belongs to; used for diagnostics
		// only, never opened.
		Filepath string

		// Start is the first character of the span.
		Start Location
		// End is the last character of the span.
		End Location
	}
)

// NewLocation instantiates a Location.
func NewLocation(line, col uint) Location { return Location{Line: line, Col: col} }

// Human projects the zero-indexed Location to the 1-indexed form editors
// display.
func (l Location) Human() (line, col uint) {
	return saturatingAdd(l.Line, 1), saturatingAdd(l.Col, 1)
}

// IncrCol advances the Location by one column.
func (l *Location) IncrCol() { l.Col = saturatingAdd(l.Col, 1) }

// IncrLine advances the Location to the start of the next line.
func (l *Location) IncrLine() {
	l.Line = saturatingAdd(l.Line, 1)
	l.Col = 0
}

// Before reports whether l does not come after other in (line, col)
// lexicographic order.
func (l Location) Before(other Location) bool {
	if l.Line != other.Line {
		return l.Line < other.Line
	}

	return l.Col <= other.Col
}

// String renders the Location in its human form.
func (l Location) String() string {
	line, col := l.Human()
	return fmt.Sprintf("%d:%d", line, col)
}

// newSpan instantiates an empty TokenSpan.
//
// The file reference is re-attached explicitly on every reset so spans in the
// same file need not re-derive it.
func newSpan(filepath string) TokenSpan { return TokenSpan{Filepath: filepath} }

// String renders the TokenSpan in its human form.
func (s TokenSpan) String() string {
	if s.Filepath == "" {
		return s.Start.String()
	}

	return fmt.Sprintf("%s:%s", s.Filepath, s.Start)
}

// saturatingAdd sums two unsigned integers, clamping at the type's maximum
// instead of wrapping.
func saturatingAdd[T constraints.Unsigned](a, b T) T {
	if sum := a + b; sum >= a {
		return sum
	}

	// Overflowed; clamp to the all-ones maximum.
	return ^T(0)
}
