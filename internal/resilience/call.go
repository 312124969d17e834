package resilience

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/jonboulle/clockwork"
)

// Operation is one remote call against a single variant.
type Operation[T any] func(ctx context.Context, variant string) (T, error)

// Config controls retry and fallback behavior.
type Config struct {
	MaxRetries     int           // retries per variant after the first attempt (>= 0)
	InitialDelay   time.Duration // first backoff wait (> 0)
	MaxDelay       time.Duration // backoff cap, 0 = uncapped
	AttemptTimeout time.Duration // deadline per invocation, 0 = none

	Classify Classifier      // nil = Classify
	Clock    clockwork.Clock // nil = real clock

	OnAttempt  func(a Attempt)
	OnRetry    func(a Attempt, delay time.Duration, err error)
	OnFallback func(a Attempt, class Class, err error)
}

// DefaultConfig mirrors the movie recommender's settings: two retries per
// model starting at one second, with a 30s ceiling.
func DefaultConfig() Config {
	return Config{
		MaxRetries:   2,
		InitialDelay: time.Second,
		MaxDelay:     30 * time.Second,
	}
}

// Validate checks the preconditions of CallWithResilience.
func (c Config) Validate() error {
	if c.MaxRetries < 0 {
		return fmt.Errorf("%w: max retries must be >= 0, got %d", ErrInvalidConfig, c.MaxRetries)
	}
	if c.InitialDelay <= 0 {
		return fmt.Errorf("%w: initial delay must be > 0, got %s", ErrInvalidConfig, c.InitialDelay)
	}
	if c.MaxDelay < 0 {
		return fmt.Errorf("%w: max delay must be >= 0, got %s", ErrInvalidConfig, c.MaxDelay)
	}
	if c.AttemptTimeout < 0 {
		return fmt.Errorf("%w: attempt timeout must be >= 0, got %s", ErrInvalidConfig, c.AttemptTimeout)
	}
	return nil
}

// Backoff returns the schedule described by the config.
func (c Config) Backoff() Backoff {
	return Backoff{Initial: c.InitialDelay, Max: c.MaxDelay}
}

// CallWithResilience invokes op for each variant in order until one succeeds.
//
// For each variant op is attempted up to MaxRetries+1 times. A Terminal error
// or the last attempt abandons the variant and moves to the next one; a
// Retryable error with attempts left waits InitialDelay × 2^attempt (capped
// at MaxDelay) and tries the same variant again. Invocations are strictly
// sequential.
//
// When every variant fails the returned error is an *ExhaustedError wrapping
// the last variant's error. If ctx is done before an attempt or during a
// backoff wait the call stops and returns an error wrapping ctx.Err().
func CallWithResilience[T any](ctx context.Context, cfg Config, variants []string, op Operation[T]) (T, error) {
	var zero T

	if len(variants) == 0 {
		return zero, ErrNoVariants
	}
	if err := cfg.Validate(); err != nil {
		return zero, err
	}

	classify := cfg.Classify
	if classify == nil {
		classify = Classify
	}
	clock := cfg.Clock
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	backoff := cfg.Backoff()
	variants = slices.Clone(variants)

	var (
		lastErr     error
		last        Attempt
		invocations int
	)

	for _, variant := range variants {
		for attempt := 0; attempt <= cfg.MaxRetries; attempt++ {
			if err := ctx.Err(); err != nil {
				return zero, cancelled(err)
			}

			a := Attempt{Variant: variant, Number: attempt}
			if cfg.OnAttempt != nil {
				cfg.OnAttempt(a)
			}

			invocations++
			result, err := invoke(ctx, cfg.AttemptTimeout, op, variant)
			if err == nil {
				return result, nil
			}

			// The caller gave up while the attempt was in flight.
			if ctxErr := ctx.Err(); ctxErr != nil {
				return zero, cancelled(ctxErr)
			}

			lastErr, last = err, a
			class := classify(err)

			if class == Terminal || attempt == cfg.MaxRetries {
				if cfg.OnFallback != nil {
					cfg.OnFallback(a, class, err)
				}
				break
			}

			delay := backoff.Delay(attempt)
			if cfg.OnRetry != nil {
				cfg.OnRetry(a, delay, err)
			}

			if err := sleep(ctx, clock, delay); err != nil {
				return zero, cancelled(err)
			}
		}
	}

	return zero, &ExhaustedError{
		Variants:    variants,
		Invocations: invocations,
		Last:        last,
		Err:         lastErr,
	}
}

func invoke[T any](ctx context.Context, timeout time.Duration, op Operation[T], variant string) (T, error) {
	if timeout <= 0 {
		return op(ctx, variant)
	}

	attemptCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	result, err := op(attemptCtx, variant)
	if err != nil && errors.Is(attemptCtx.Err(), context.DeadlineExceeded) && !errors.Is(err, context.DeadlineExceeded) {
		// Operations that swallow the context error still count as timeouts.
		err = fmt.Errorf("attempt timed out after %s: %w", timeout, errors.Join(context.DeadlineExceeded, err))
	}
	return result, err
}

func sleep(ctx context.Context, clock clockwork.Clock, d time.Duration) error {
	timer := clock.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.Chan():
		return nil
	}
}

func cancelled(err error) error {
	return fmt.Errorf("resilient call cancelled: %w", err)
}
