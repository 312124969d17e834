// Package signal turns SIGINT and SIGTERM into context cancellation so an
// in-flight call or backoff wait stops promptly.
package signal

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// Watch returns a child of parent that is cancelled when SIGINT or SIGTERM
// arrives. onInterrupt, if non-nil, runs with the received signal before
// the context is cancelled. The returned stop function releases the signal
// registration and cancels the context; it is safe to call more than once.
//
// Example usage:
//
//	ctx, stop := signal.Watch(context.Background(), func(s os.Signal) {
//	    logging.Warn("interrupted by " + s.String())
//	})
//	defer stop()
func Watch(parent context.Context, onInterrupt func(os.Signal)) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(parent)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	done := make(chan struct{})
	go func() {
		defer close(done)
		select {
		case s := <-sigCh:
			if onInterrupt != nil {
				onInterrupt(s)
			}
			cancel()
		case <-ctx.Done():
		}
	}()

	stop := func() {
		signal.Stop(sigCh)
		cancel()
		<-done
	}
	return ctx, stop
}
