// Package tools implements the hub's AI tools. Each tool builds a prompt,
// runs it through an ai.Runner (which owns retry and model fallback) and
// parses the model's answer into a typed result.
package tools

import (
	"errors"
	"strings"
	"unicode"
)

// ErrInvalidResponse marks model output that could not be parsed into the
// tool's result type.
var ErrInvalidResponse = errors.New("invalid response from the AI service")

// ErrEmptyInput is returned when a tool is called without input.
var ErrEmptyInput = errors.New("input is empty")

// CountWords returns the number of whitespace-separated words in text.
func CountWords(text string) int {
	return len(strings.FieldsFunc(text, unicode.IsSpace))
}
