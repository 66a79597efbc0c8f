// Package goroutine launches background work that must not take the process
// down on panic.
package goroutine

import (
	"fmt"
	"runtime/debug"

	"helpdesk/internal/shared/logger"
)

// Go runs fn on a new goroutine. The returned channel receives fn's error,
// or an error describing a recovered panic, and is closed once fn is done.
// A nil error is not sent.
func Go(log logger.Interface, name string, fn func() error) <-chan error {
	errCh := make(chan error, 1)

	go func() {
		defer close(errCh)
		defer func() {
			if r := recover(); r != nil {
				log.Errorw("goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprintf("%v", r),
					"stack", string(debug.Stack()),
				)
				errCh <- fmt.Errorf("%s panicked: %v", name, r)
			}
		}()

		if err := fn(); err != nil {
			errCh <- err
		}
	}()

	return errCh
}
