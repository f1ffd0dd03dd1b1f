// SPDX-License-Identifier: MIT
package types

import (
	"context"
	"errors"
	"sync"
	"testing"
)

func TestSafeCounter(t *testing.T) {
	var (
		counter SafeCounter
		wg      sync.WaitGroup
	)

	const workers = 8
	wg.Add(workers)
	for index := 0; index < workers; index++ {
		go func() {
			defer wg.Done()
			counter.Inc()
			counter.Add(2)
		}()
	}
	wg.Wait()

	if got, want := counter.Value(), workers*3; got != want {
		t.Errorf("SafeCounter.Value() = %d, want %d", got, want)
	}
}

func TestMonitorChannels(t *testing.T) {
	ctx := context.Background()
	errProbe := errors.New("probe")

	t.Run("all complete", func(t *testing.T) {
		done := make(chan bool, 2)
		errChan := make(chan error, BufferedErrChanSize)
		done <- true
		done <- true

		if err := MonitorChannels(ctx, 2, done, errChan, "operation"); err != nil {
			t.Errorf("MonitorChannels() error = %v, want nil", err)
		}
	})

	t.Run("error propagated", func(t *testing.T) {
		done := make(chan bool, 2)
		errChan := make(chan error, BufferedErrChanSize)
		done <- true
		errChan <- errProbe

		if err := MonitorChannels(ctx, 2, done, errChan, "operation"); !errors.Is(err, errProbe) {
			t.Errorf("MonitorChannels() error = %v, want %v", err, errProbe)
		}
	})

	t.Run("invalid goroutine count", func(t *testing.T) {
		err := MonitorChannels(ctx, 0, nil, nil, "operation")
		if !errors.Is(err, ErrInvalidGoroutineCount) {
			t.Errorf("MonitorChannels() error = %v, want %v", err, ErrInvalidGoroutineCount)
		}
	})
}
