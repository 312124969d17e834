// Package metrics records retry and fallback activity as Prometheus
// metrics. A Recorder owns its registry so runs and tests stay isolated.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/CodexForgeBR/tools-hub/internal/resilience"
)

// Call outcomes used as the "outcome" label.
const (
	OutcomeSuccess   = "success"
	OutcomeExhausted = "exhausted"
	OutcomeCancelled = "cancelled"
	OutcomeError     = "error"
)

// Recorder holds the tools-hub metric families.
type Recorder struct {
	registry *prometheus.Registry

	// AttemptsTotal counts operation invocations per tool and model.
	AttemptsTotal *prometheus.CounterVec
	// RetriesTotal counts retryable failures followed by a backoff wait.
	RetriesTotal *prometheus.CounterVec
	// FallbacksTotal counts models abandoned, by the class of the last error.
	FallbacksTotal *prometheus.CounterVec
	// BackoffSeconds accumulates time spent waiting between attempts.
	BackoffSeconds *prometheus.CounterVec
	// CallsTotal counts whole resilient calls by outcome.
	CallsTotal *prometheus.CounterVec
	// CallDuration tracks wall time of whole resilient calls.
	CallDuration *prometheus.HistogramVec
}

// NewRecorder creates a Recorder with a fresh registry.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		AttemptsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolshub_attempts_total",
				Help: "Total number of backend invocations",
			},
			[]string{"tool", "model"},
		),
		RetriesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolshub_retries_total",
				Help: "Total number of retries after a retryable failure",
			},
			[]string{"tool", "model"},
		),
		FallbacksTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolshub_fallbacks_total",
				Help: "Total number of models abandoned",
			},
			[]string{"tool", "model", "class"},
		),
		BackoffSeconds: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolshub_backoff_seconds_total",
				Help: "Total seconds spent in backoff waits",
			},
			[]string{"tool"},
		),
		CallsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "toolshub_calls_total",
				Help: "Total number of resilient calls by outcome",
			},
			[]string{"tool", "outcome"},
		),
		CallDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "toolshub_call_duration_seconds",
				Help:    "Resilient call latency in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"tool"},
		),
	}
}

// Registry exposes the recorder's registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Instrument returns cfg with hooks that record attempts, retries and
// fallbacks for tool. Hooks already set on cfg still run afterwards.
func (r *Recorder) Instrument(cfg resilience.Config, tool string) resilience.Config {
	prevAttempt, prevRetry, prevFallback := cfg.OnAttempt, cfg.OnRetry, cfg.OnFallback

	cfg.OnAttempt = func(a resilience.Attempt) {
		r.AttemptsTotal.WithLabelValues(tool, a.Variant).Inc()
		if prevAttempt != nil {
			prevAttempt(a)
		}
	}
	cfg.OnRetry = func(a resilience.Attempt, delay time.Duration, err error) {
		r.RetriesTotal.WithLabelValues(tool, a.Variant).Inc()
		r.BackoffSeconds.WithLabelValues(tool).Add(delay.Seconds())
		if prevRetry != nil {
			prevRetry(a, delay, err)
		}
	}
	cfg.OnFallback = func(a resilience.Attempt, class resilience.Class, err error) {
		r.FallbacksTotal.WithLabelValues(tool, a.Variant, class.String()).Inc()
		if prevFallback != nil {
			prevFallback(a, class, err)
		}
	}
	return cfg
}

// ObserveCall records the outcome and duration of one resilient call.
func (r *Recorder) ObserveCall(tool string, elapsed time.Duration, err error) {
	r.CallsTotal.WithLabelValues(tool, Outcome(err)).Inc()
	r.CallDuration.WithLabelValues(tool).Observe(elapsed.Seconds())
}

// WriteFile writes every metric to path in the Prometheus text format,
// suitable for the node exporter's textfile collector.
func (r *Recorder) WriteFile(path string) error {
	return prometheus.WriteToTextfile(path, r.registry)
}

// Outcome maps a call result to its outcome label.
func Outcome(err error) string {
	var exhausted *resilience.ExhaustedError
	switch {
	case err == nil:
		return OutcomeSuccess
	case errors.As(err, &exhausted):
		return OutcomeExhausted
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeCancelled
	default:
		return OutcomeError
	}
}
