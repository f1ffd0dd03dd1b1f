// SPDX-License-Identifier: MIT
package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type (
	// LiteralKind discriminates the Literal variants.
	LiteralKind int

	// Literal holds the parsed payload of a literal token.
	//
	// Exactly one payload field is meaningful, selected by kind.
	Literal struct {
		kind LiteralKind

		ch   rune
		str  string
		ival int64
		fval float64
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	_           LiteralKind = iota // Consume 0 so the zero value is not a valid LiteralKind.
	LiteralChar             // Character literal, e.g. 'a'.
	LiteralStr              // String literal, e.g. "a".
	LiteralInt              // Integer literal, e.g. 42.
	LiteralFloat            // Floating-point literal, e.g. 4.2.
)

// Literal parsing errors.
var (
	ErrInvalidNumber = errors.New("invalid number literal")
	ErrInvalidEscape = errors.New("invalid escape sequence")
)

// escapes maps the character following a backslash to its value.
var escapes = map[rune]rune{
	'n':  '\n',
	't':  '\t',
	'r':  '\r',
	'0':  0,
	'\\': '\\',
	'\'': '\'',
	'"':  '"',
}

// CharLiteral wraps a character in a Literal.
func CharLiteral(ch rune) Literal { return Literal{kind: LiteralChar, ch: ch} }

// StrLiteral wraps a string in a Literal.
func StrLiteral(str string) Literal { return Literal{kind: LiteralStr, str: str} }

// IntLiteral wraps an integer in a Literal.
func IntLiteral(val int64) Literal { return Literal{kind: LiteralInt, ival: val} }

// FloatLiteral wraps a floating-point number in a Literal.
func FloatLiteral(val float64) Literal { return Literal{kind: LiteralFloat, fval: val} }

// Kind obtains the LiteralKind discriminant.
func (l Literal) Kind() LiteralKind { return l.kind }

// Char obtains the character payload.
func (l Literal) Char() rune { return l.ch }

// Str obtains the string payload.
func (l Literal) Str() string { return l.str }

// Int obtains the integer payload.
func (l Literal) Int() int64 { return l.ival }

// Float obtains the floating-point payload.
func (l Literal) Float() float64 { return l.fval }

// String renders the Literal's payload.
func (l Literal) String() string {
	switch l.kind {
	case LiteralChar:
		return strconv.QuoteRune(l.ch)
	case LiteralStr:
		return strconv.Quote(l.str)
	case LiteralInt:
		return strconv.FormatInt(l.ival, 10)
	case LiteralFloat:
		return strconv.FormatFloat(l.fval, 'g', -1, 64)
	default:
		return ""
	}
}

// ParseNumber converts a finished number lexeme into a typed Literal.
//
// The lexer accepts sign & decimal-point characters unconditionally inside a
// number lexeme; validation happens here.
func ParseNumber(text string) (l Literal, err error) {
	if i, intErr := strconv.ParseInt(text, 0, 64); intErr == nil {
		l = IntLiteral(i)
		return
	}

	f, floatErr := strconv.ParseFloat(text, 64)
	if floatErr != nil {
		err = fmt.Errorf("%w: %s", ErrInvalidNumber, text)
		return
	}
	l = FloatLiteral(f)

	return
}

// Unescape resolves C escape sequences in a finished string lexeme.
func Unescape(text string) (out string, err error) {
	if !strings.ContainsRune(text, '\\') {
		out = text
		return
	}

	var buffer strings.Builder
	buffer.Grow(len(text))

	escaped := false
	for _, r := range text {
		if !escaped {
			if r == '\\' {
				escaped = true
				continue
			}
			buffer.WriteRune(r)

			continue
		}

		resolved, ok := escapes[r]
		if !ok {
			err = fmt.Errorf("%w: \\%c", ErrInvalidEscape, r)
			return
		}
		buffer.WriteRune(resolved)
		escaped = false
	}
	if escaped {
		err = fmt.Errorf("%w: trailing backslash", ErrInvalidEscape)
		return
	}

	out = buffer.String()

	return
}
