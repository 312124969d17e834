package ai

import (
	"errors"

	"google.golang.org/genai"

	"github.com/CodexForgeBR/tools-hub/internal/resilience"
)

// Gemini status strings that accompany the retryable HTTP codes.
const (
	statusUnavailable       = "UNAVAILABLE"
	statusResourceExhausted = "RESOURCE_EXHAUSTED"
)

// ClassifyError is the resilience.Classifier for Gemini calls.
// API errors are classified by their code and status; anything else (network
// failures, timeouts) falls through to resilience.Classify.
func ClassifyError(err error) resilience.Class {
	if apiErr, ok := asAPIError(err); ok {
		if resilience.IsRetryableStatus(apiErr.Code) ||
			apiErr.Status == statusUnavailable ||
			apiErr.Status == statusResourceExhausted {
			return resilience.Retryable
		}
		return resilience.Terminal
	}
	return resilience.Classify(err)
}

// asAPIError finds a genai.APIError in the chain, by value or by pointer.
func asAPIError(err error) (genai.APIError, bool) {
	var apiErr genai.APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	var apiErrPtr *genai.APIError
	if errors.As(err, &apiErrPtr) && apiErrPtr != nil {
		return *apiErrPtr, true
	}
	return genai.APIError{}, false
}
