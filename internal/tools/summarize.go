package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/CodexForgeBR/tools-hub/internal/ai"
	"github.com/CodexForgeBR/tools-hub/internal/prompt"
)

const summarizeTemperature = 0.3

// Summary is a summary plus the word counts shown alongside it.
type Summary struct {
	Text        string
	InputWords  int
	OutputWords int
}

// Summarize condenses text using the requested format and length.
func Summarize(ctx context.Context, runner ai.Runner, text string, format prompt.SummaryFormat, length prompt.SummaryLength) (*Summary, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("summarize: %w", ErrEmptyInput)
	}

	req := ai.Request{
		Parts:       []string{text},
		System:      prompt.BuildSummaryInstruction(format, length),
		Temperature: ai.Temperature(summarizeTemperature),
	}

	resp, err := runner.Run(ctx, req)
	if err != nil {
		return nil, err
	}

	out := strings.TrimSpace(resp.Text)
	if out == "" {
		return nil, ai.ErrEmptyResponse
	}
	return &Summary{
		Text:        out,
		InputWords:  CountWords(text),
		OutputWords: CountWords(out),
	}, nil
}
