package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/CodexForgeBR/tools-hub/internal/ai"
	"github.com/CodexForgeBR/tools-hub/internal/prompt"
)

const humanizeTemperature = 0.7

// Humanize rewrites text to read more naturally.
func Humanize(ctx context.Context, runner ai.Runner, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("humanize: %w", ErrEmptyInput)
	}

	req := ai.TextRequest(prompt.BuildHumanizePrompt(text))
	req.Temperature = ai.Temperature(humanizeTemperature)

	resp, err := runner.Run(ctx, req)
	if err != nil {
		return "", err
	}

	out := strings.TrimSpace(resp.Text)
	if out == "" {
		return "", ai.ErrEmptyResponse
	}
	return out, nil
}
