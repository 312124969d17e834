package logging

import (
	"fmt"
	"time"

	"github.com/CodexForgeBR/tools-hub/internal/resilience"
)

// Instrument returns cfg with hooks that log every attempt, retry and
// fallback. Hooks already set on cfg still run, after the log line.
func Instrument(cfg resilience.Config, callID string) resilience.Config {
	prevAttempt, prevRetry, prevFallback := cfg.OnAttempt, cfg.OnRetry, cfg.OnFallback

	cfg.OnAttempt = func(a resilience.Attempt) {
		Debug(fmt.Sprintf("[%s] attempt %d on %s", callID, a.Number+1, a.Variant))
		if prevAttempt != nil {
			prevAttempt(a)
		}
	}
	cfg.OnRetry = func(a resilience.Attempt, delay time.Duration, err error) {
		Warn(fmt.Sprintf("[%s] attempt %d on %s failed (retryable), retrying in %s: %v",
			callID, a.Number+1, a.Variant, FormatDuration(delay), err))
		if prevRetry != nil {
			prevRetry(a, delay, err)
		}
	}
	cfg.OnFallback = func(a resilience.Attempt, class resilience.Class, err error) {
		Warn(fmt.Sprintf("[%s] giving up on %s after attempt %d (%s): %v",
			callID, a.Variant, a.Number+1, class, err))
		if prevFallback != nil {
			prevFallback(a, class, err)
		}
	}
	return cfg
}
