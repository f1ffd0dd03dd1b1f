// SPDX-License-Identifier: MIT
package lexer

import (
	"context"
	"errors"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/afymer/compiler/types"
)

type (
	// Source is one file's worth of input: a diagnostic path & its
	// already-split lines.
	Source struct {
		Filepath string
		Lines    []string
	}
)

const defaultPoolSize = 4

// Concurrent lexing errors.
var (
	ErrNoSources = errors.New("no sources to lex")
	ErrLexFiles  = errors.New("failed to lex")
)

// LexFiles tokenizes independent files concurrently on a goroutine pool.
//
// Lexer invocations share no state, so one worker per file needs no
// coordination beyond result collection. A file that fails leaves no entry
// in the result map; the combined error reports every failure.
func LexFiles(ctx context.Context, workers int, sources []Source, opts ...Option) (results map[string]Tokens, err error) {
	if len(sources) < 1 {
		err = ErrNoSources
		return
	}
	if workers < 1 {
		workers = defaultPoolSize
	}

	pool, err := ants.NewPool(workers)
	if err != nil {
		return
	}
	defer pool.Release()

	var (
		mutex   sync.Mutex
		counter types.SafeCounter
	)
	results = make(map[string]Tokens, len(sources))

	done := make(chan bool, len(sources))
	errChan := make(chan error, types.BufferedErrChanSize)

	l := New(opts...)
	for index := range sources {
		src := sources[index]

		if err = pool.Submit(func() {
			tokens, lexErr := l.Lex(ctx, src.Filepath, src.Lines)
			if lexErr != nil {
				errChan <- lexErr
				return
			}

			mutex.Lock()
			results[src.Filepath] = tokens
			mutex.Unlock()
			counter.Add(len(tokens))

			done <- true
		}); err != nil {
			return
		}
	}

	if err = types.MonitorChannels(ctx, len(sources), done, errChan, ErrLexFiles.Error()); err != nil {
		results = nil
		return
	}

	l.logger.Debugf("lexed %d files: %d tokens", len(sources), counter.Value())

	return
}
