package ai

import (
	"context"
	"errors"
	"strings"

	"github.com/CodexForgeBR/tools-hub/internal/resilience"
)

// UserMessage turns a failed call into text fit for an end user.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	if errors.Is(err, context.Canceled) {
		return "The request was cancelled."
	}
	if errors.Is(err, ErrMissingAPIKey) {
		return "The Gemini API key is not configured. Set GEMINI_API_KEY."
	}

	if apiErr, ok := asAPIError(err); ok {
		switch {
		case apiErr.Code == resilience.StatusServiceUnavailable || apiErr.Status == statusUnavailable:
			return "The AI service is temporarily overloaded. Please try again in a moment."
		case apiErr.Code == resilience.StatusTooManyRequests || apiErr.Status == statusResourceExhausted:
			return "Too many requests. Please wait a moment and try again."
		case strings.TrimSpace(apiErr.Message) != "":
			return "AI service error: " + strings.TrimSpace(apiErr.Message)
		}
	}

	var exhausted *resilience.ExhaustedError
	if errors.As(err, &exhausted) && exhausted.Err != nil {
		return "Failed to get a response from the AI service: " + exhausted.Err.Error()
	}

	return "Failed to get a response from the AI service: " + err.Error()
}
