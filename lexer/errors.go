// SPDX-License-Identifier: MIT
package lexer

import (
	"errors"
	"fmt"
)

// Lexing errors.
//
// Every one of these aborts the whole Lex call; there is no token-level or
// line-level recovery.
var (
	ErrMissingCharElement  = errors.New("missing element in char")
	ErrOverfullCharElement = errors.New("more than one element in char")
	ErrInvalidCharacter    = errors.New("invalid character")
	ErrUnterminatedString  = errors.New("unterminated string literal")
	ErrUnterminatedChar    = errors.New("unterminated char literal")

	ErrPanicked = errors.New("recovery from panic")
)

type (
	// Error is a lexical error bound to the source span it was detected at.
	Error struct {
		Span TokenSpan
		Err  error
	}
)

// newError binds err to a single-character span at location.
func newError(filepath string, location Location, err error) *Error {
	return &Error{
		Span: TokenSpan{Filepath: filepath, Start: location, End: location},
		Err:  err,
	}
}

// Error renders the error with its human location.
func (e *Error) Error() string { return fmt.Sprintf("%s: %v", e.Span, e.Err) }

// Unwrap exposes the underlying sentinel for errors.Is.
func (e *Error) Unwrap() error { return e.Err }
