// Package resilience runs a remote operation against a priority-ordered list
// of backend variants, retrying transient failures with exponential backoff
// and falling back to the next variant when a variant is exhausted or fails
// terminally.
//
// The package knows nothing about any particular SDK. Callers that talk to a
// specific backend supply a Classifier that maps its error shapes onto
// Retryable or Terminal.
package resilience

import (
	"context"
	"errors"
	"net"
	"strings"
	"syscall"
)

// Class is the retry classification of an error.
type Class int

const (
	// Terminal errors are not retried on the same variant.
	Terminal Class = iota
	// Retryable errors are transient; the same variant may be tried again.
	Retryable
)

// String returns the lower-case name of the class.
func (c Class) String() string {
	switch c {
	case Retryable:
		return "retryable"
	case Terminal:
		return "terminal"
	default:
		return "unknown"
	}
}

// Classifier maps an error to its retry class. It must be pure.
type Classifier func(err error) Class

// StatusCoder is implemented by errors that carry an HTTP-equivalent status.
type StatusCoder interface {
	StatusCode() int
}

// Retryable HTTP-equivalent status codes.
const (
	StatusTooManyRequests    = 429
	StatusServiceUnavailable = 503
)

// transientMarkers are lower-cased substrings that identify connection-reset
// and timeout conditions in error messages.
var transientMarkers = []string{
	"econnreset",
	"etimedout",
	"connection reset",
	"timeout",
	"timed out",
}

// Classify is the default Classifier.
//
// Retryable:
//   - a StatusCoder in the chain reporting 503 or 429
//   - syscall.ECONNRESET / syscall.ETIMEDOUT, a net.Error timeout, or
//     context.DeadlineExceeded anywhere in the chain
//   - a message containing a connection-reset or timeout marker
//
// Everything else is Terminal.
func Classify(err error) Class {
	if err == nil {
		return Terminal
	}

	var sc StatusCoder
	if errors.As(err, &sc) {
		if IsRetryableStatus(sc.StatusCode()) {
			return Retryable
		}
	}

	if errors.Is(err, syscall.ECONNRESET) || errors.Is(err, syscall.ETIMEDOUT) {
		return Retryable
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return Retryable
	}

	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		return Retryable
	}

	if HasTransientMarker(err.Error()) {
		return Retryable
	}

	return Terminal
}

// IsRetryableStatus reports whether an HTTP-equivalent status is transient.
func IsRetryableStatus(code int) bool {
	return code == StatusServiceUnavailable || code == StatusTooManyRequests
}

// HasTransientMarker reports whether msg mentions a connection reset or a
// timeout.
func HasTransientMarker(msg string) bool {
	lower := strings.ToLower(msg)
	for _, marker := range transientMarkers {
		if strings.Contains(lower, marker) {
			return true
		}
	}
	return false
}
