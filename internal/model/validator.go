package model

import (
	"fmt"
	"strings"
	"unicode"
)

// geminiModelHints are lower-cased prefixes of names the Gemini API serves.
var geminiModelHints = []string{"gemini-", "models/", "tunedmodels/"}

// ValidateModel rejects names the API could never resolve. label is a
// human-readable name for the flag being validated used in error messages.
//
// Rules:
//   - Empty model is invalid.
//   - Whitespace anywhere in the name is invalid.
//   - Anything else is accepted; use IsGeminiModelHint to warn about
//     names that do not look like Gemini models.
func ValidateModel(model, label string) error {
	if model == "" {
		return fmt.Errorf("%s: model name is empty", label)
	}
	if strings.IndexFunc(model, unicode.IsSpace) >= 0 {
		return fmt.Errorf("%s %q contains whitespace", label, model)
	}
	return nil
}

// IsGeminiModelHint returns true when model looks like a Gemini model
// (gemini-*, models/* or tunedModels/*).
func IsGeminiModelHint(model string) bool {
	lower := strings.ToLower(model)
	for _, hint := range geminiModelHints {
		if strings.HasPrefix(lower, hint) {
			return true
		}
	}
	return false
}

// ValidateModels validates every entry of models and returns warnings for
// names that do not look like Gemini models.
func ValidateModels(models []string, label string) (warnings []string, err error) {
	for _, m := range models {
		if err := ValidateModel(m, label); err != nil {
			return nil, err
		}
		if !IsGeminiModelHint(m) {
			warnings = append(warnings, fmt.Sprintf("%s %q does not look like a Gemini model", label, m))
		}
	}
	return warnings, nil
}
