// SPDX-License-Identifier: MIT
package lexer

import (
	"strings"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/afymer/compiler/token"
)

type (
	// lexemeKind discriminates the single active lexeme of a tokenBuilder.
	lexemeKind int

	// tokenBuilder accumulates one lexeme at a time & flushes completed
	// tokens into the output stream.
	//
	// Each Lex call constructs its own instance; no state is shared across
	// invocations.
	tokenBuilder struct {
		logger logrus.FieldLogger
		debug  bool

		span TokenSpan
		kind lexemeKind

		// text buffers identifier, string & number lexemes.
		text strings.Builder

		// pendingChar holds the element of an open char literal;
		// charFilled distinguishes '' from a filled one.
		pendingChar rune
		charFilled  bool

		matcher operatorMatcher
	}
)

// iota is used to define an incrementing number sequence for const
// declarations
const (
	lexemeNone     lexemeKind = iota // Idle, between lexemes.
	lexemeIdent                      // Identifier or keyword.
	lexemeString                     // String literal body.
	lexemeChar                       // Char literal body.
	lexemeNumber                     // Number literal.
	lexemeOperator                   // Punctuator run held by the matcher.
)

// newTokenBuilder instantiates a tokenBuilder for one file.
func newTokenBuilder(filepath string, logger logrus.FieldLogger, debug bool) *tokenBuilder {
	return &tokenBuilder{
		logger: logger,
		debug:  debug,
		span:   newSpan(filepath),
	}
}

// isIdentRune reports whether r may extend an identifier lexeme.
func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// isNumberRune reports whether r may extend a number lexeme.
//
// Sign & decimal-point characters are accepted unconditionally; the number
// is validated when the lexeme is finalized, not here.
func isNumberRune(r rune) bool {
	return isIdentRune(r) || r == '.' || r == '+' || r == '-'
}

// isSpace reports whether r separates lexemes without producing a token.
func isSpace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' }

// lexChar dispatches one input character against the active lexeme.
//
// Called once per character in document order.
func (b *tokenBuilder) lexChar(tokens *Tokens, r rune, location Location) error {
	switch b.kind {
	case lexemeChar:
		return b.lexInChar(tokens, r, location)
	case lexemeString:
		if r == '"' {
			b.span.End = location
			return b.finishLexeme(tokens)
		}
		b.text.WriteRune(r)
		b.span.End = location

		return nil
	case lexemeIdent:
		if isIdentRune(r) {
			b.text.WriteRune(r)
			b.span.End = location

			return nil
		}
	case lexemeNumber:
		if isNumberRune(r) {
			b.text.WriteRune(r)
			b.span.End = location

			return nil
		}
	case lexemeOperator:
		if isPunctuator(r) {
			if op, resolved := b.matcher.push(r, location); resolved {
				b.emitOperator(tokens, op)
			}

			return nil
		}
	case lexemeNone:
		return b.openLexeme(tokens, r, location)
	}

	// The character ends the active lexeme: flush it, then reconsider the
	// character from the idle state.
	if err := b.finishLexeme(tokens); err != nil {
		return err
	}

	return b.openLexeme(tokens, r, location)
}

// lexInChar handles a character observed inside a char literal.
func (b *tokenBuilder) lexInChar(tokens *Tokens, r rune, location Location) error {
	switch {
	case !b.charFilled && r == '\'':
		return newError(b.span.Filepath, location, ErrMissingCharElement)
	case !b.charFilled:
		b.pendingChar, b.charFilled = r, true
		b.span.End = location

		return nil
	case r == '\'':
		b.span.End = location
		b.emit(tokens, token.FromLiteral(token.CharLiteral(b.pendingChar)))

		return nil
	default:
		return newError(b.span.Filepath, location, ErrOverfullCharElement)
	}
}

// openLexeme starts a new lexeme from the idle state.
func (b *tokenBuilder) openLexeme(tokens *Tokens, r rune, location Location) error {
	if isSpace(r) {
		return nil
	}

	b.span.Start, b.span.End = location, location

	switch {
	case r == '\'':
		b.kind = lexemeChar
		b.charFilled = false
	case r == '"':
		b.kind = lexemeString
	case unicode.IsDigit(r):
		b.kind = lexemeNumber
		b.text.WriteRune(r)
	case isIdentRune(r):
		b.kind = lexemeIdent
		b.text.WriteRune(r)
	case isPunctuator(r):
		b.kind = lexemeOperator
		if op, resolved := b.matcher.push(r, location); resolved {
			b.emitOperator(tokens, op)
		}
	default:
		return newError(b.span.Filepath, location, ErrInvalidCharacter)
	}

	return nil
}

// finishLexeme resolves the active lexeme into a finished token & emits it.
func (b *tokenBuilder) finishLexeme(tokens *Tokens) error {
	switch b.kind {
	case lexemeIdent:
		b.emit(tokens, token.FromIdent(b.text.String()))
	case lexemeNumber:
		literal, err := token.ParseNumber(b.text.String())
		if err != nil {
			return newError(b.span.Filepath, b.span.Start, err)
		}
		b.emit(tokens, token.FromLiteral(literal))
	case lexemeString:
		unescaped, err := token.Unescape(b.text.String())
		if err != nil {
			return newError(b.span.Filepath, b.span.Start, err)
		}
		b.emit(tokens, token.FromLiteral(token.StrLiteral(unescaped)))
	case lexemeOperator:
		for _, op := range b.matcher.flush() {
			b.emitOperator(tokens, op)
		}
		b.reset()
	}

	return nil
}

// flush drains whatever lexeme is still open at a line boundary or end of
// input.
//
// String & char literals may not cross lines, so an open one here is an
// error at its opening location.
func (b *tokenBuilder) flush(tokens *Tokens) error {
	switch b.kind {
	case lexemeString:
		return newError(b.span.Filepath, b.span.Start, ErrUnterminatedString)
	case lexemeChar:
		return newError(b.span.Filepath, b.span.Start, ErrUnterminatedChar)
	default:
		return b.finishLexeme(tokens)
	}
}

// emit appends the finished token with the current span & resets to idle.
func (b *tokenBuilder) emit(tokens *Tokens, tok token.Token) {
	if b.debug {
		b.logger.Debug("lexer emit: ", tok.String(), " at ", b.span.String())
	}

	*tokens = append(*tokens, LToken{Span: b.span, Token: tok})
	b.reset()
}

// emitOperator appends a resolved operator with the exact span of the
// characters it consumed.
//
// The builder span is not used: the matcher may hold characters for several
// operators at once, each with its own extent.
func (b *tokenBuilder) emitOperator(tokens *Tokens, op resolvedOp) {
	span := TokenSpan{Filepath: b.span.Filepath, Start: op.start, End: op.end}
	if b.debug {
		b.logger.Debug("lexer emit: ", op.op.String(), " at ", span.String())
	}

	*tokens = append(*tokens, LToken{Span: span, Token: token.FromOperator(op.op)})
}

// reset returns the builder to idle, preserving the file reference for the
// next lexeme's span.
func (b *tokenBuilder) reset() {
	b.span = newSpan(b.span.Filepath)
	b.kind = lexemeNone
	b.text.Reset()
	b.charFilled = false
}
