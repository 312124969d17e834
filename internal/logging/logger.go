// Package logging provides colored, leveled log output for the tools-hub CLI.
//
// All output functions write a prefixed, color-coded line to stderr so that
// tool results on stdout stay pipeable. Debug output is suppressed unless
// verbose mode is enabled via SetVerbose(true).
package logging

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
)

// verbose controls whether Debug() produces output.
var verbose bool

// Color printers for each log level.
var (
	infoPrefix    = color.New(color.FgBlue).SprintFunc()
	successPrefix = color.New(color.FgGreen).SprintFunc()
	warnPrefix    = color.New(color.FgYellow).SprintFunc()
	errorPrefix   = color.New(color.FgRed).SprintFunc()
	stepPrefix    = color.New(color.FgCyan).SprintFunc()
	debugPrefix   = color.New(color.FgBlue).SprintFunc()
)

// SetVerbose enables or disables Debug output.
func SetVerbose(v bool) {
	verbose = v
}

// Verbose reports whether Debug output is enabled.
func Verbose() bool {
	return verbose
}

func emit(prefix, msg string) {
	fmt.Fprintln(os.Stderr, prefix+" "+msg)
}

// Info prints an informational message in blue.
func Info(msg string) {
	emit(infoPrefix("[INFO]"), msg)
}

// Success prints a success message in green.
func Success(msg string) {
	emit(successPrefix("[SUCCESS]"), msg)
}

// Warn prints a warning message in yellow.
func Warn(msg string) {
	emit(warnPrefix("[WARN]"), msg)
}

// Error prints an error message in red.
func Error(msg string) {
	emit(errorPrefix("[ERROR]"), msg)
}

// Step prints a step header in cyan, surrounded by separator lines.
func Step(msg string) {
	sep := stepPrefix("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━")
	fmt.Fprintln(os.Stderr, sep)
	emit(stepPrefix("[STEP]"), msg)
	fmt.Fprintln(os.Stderr, sep)
}

// Debug prints a debug message in blue, only when verbose mode is enabled.
func Debug(msg string) {
	if !verbose {
		return
	}
	emit(debugPrefix("[DEBUG]"), msg)
}

// FormatDuration converts a duration to a human-readable string.
// Durations under a minute keep millisecond precision; longer ones are
// rounded to whole seconds.
//
// Examples:
//
//	FormatDuration(0)                       => "0s"
//	FormatDuration(250 * time.Millisecond)  => "250ms"
//	FormatDuration(1500 * time.Millisecond) => "1.5s"
//	FormatDuration(90 * time.Second)        => "1m 30s"
//	FormatDuration(3661 * time.Second)      => "1h 1m 1s"
func FormatDuration(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	if d = d.Round(time.Millisecond); d < time.Minute {
		return d.String()
	}

	seconds := int(d.Round(time.Second) / time.Second)
	if seconds < 3600 {
		m := seconds / 60
		s := seconds % 60
		return fmt.Sprintf("%dm %ds", m, s)
	}
	h := seconds / 3600
	m := (seconds % 3600) / 60
	s := seconds % 60
	return fmt.Sprintf("%dh %dm %ds", h, m, s)
}
