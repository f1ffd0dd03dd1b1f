// SPDX-License-Identifier: MIT
package lexer

// REF: https://github.com/sh4t/sql-parser

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"

	"github.com/afymer/compiler/token"
)

type (
	// LToken is a Token with localisation information.
	LToken struct {
		// Span is the source extent that covers the token.
		Span TokenSpan
		// Token is the actual token.
		Token token.Token
	}

	// Tokens is a convenient type for a token stream.
	Tokens []LToken

	// Lexer turns raw source lines into a Tokens stream.
	//
	// A Lexer holds configuration only; every Lex call owns its own
	// transient state, so one Lexer may serve any number of concurrent
	// invocations.
	Lexer struct {
		logger logrus.FieldLogger
		debug  bool
	}

	// Option defines the Lexer functional option type.
	Option func(*Lexer)
)

// New creates a Lexer.
func New(opts ...Option) *Lexer {
	l := &Lexer{logger: logrus.New()}

	for _, opt := range opts {
		opt(l)
	}

	return l
}

// WithDebug configures the debug option.
func WithDebug(debug bool) Option { return func(l *Lexer) { l.debug = debug } }

// WithLogger configures the logger option.
func WithLogger(logger logrus.FieldLogger) Option { return func(l *Lexer) { l.logger = logger } }

// Logger obtains the logger.
func (l *Lexer) Logger() logrus.FieldLogger { return l.logger }

// Lex tokenizes the provided lines. It is the responsibility of the caller
// to ensure that lines belong to filepath.
//
// Lexing stops at the first error; no partial token stream is returned.
func (l *Lexer) Lex(ctx context.Context, filepath string, lines []string) (tokens Tokens, err error) {
	builder := newTokenBuilder(filepath, l.logger, l.debug)

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: %v", ErrPanicked, r)
		}

		if err != nil {
			if l.debug {
				l.logger.Debugf("lexer state at failure: %s", spew.Sprint(builder))
			}
			tokens = nil
		}
	}()

	var location Location
	for _, line := range lines {
		select {
		case <-ctx.Done():
			err = ctx.Err()
			return
		default:
		}

		for _, r := range line {
			if err = builder.lexChar(&tokens, r, location); err != nil {
				return
			}
			location.IncrCol()
		}

		// A line boundary separates lexemes the way whitespace does.
		if err = builder.flush(&tokens); err != nil {
			return
		}
		location.IncrLine()
	}

	return
}
