package tools

import (
	"context"
	"fmt"
	"strings"

	"github.com/CodexForgeBR/tools-hub/internal/ai"
	"github.com/CodexForgeBR/tools-hub/internal/parser"
	"github.com/CodexForgeBR/tools-hub/internal/prompt"
)

// ParseColumn parses a "name=description" column spec.
func ParseColumn(spec string) (prompt.Column, error) {
	name, desc, ok := strings.Cut(spec, "=")
	name = strings.TrimSpace(name)
	desc = strings.TrimSpace(desc)
	if !ok || name == "" || desc == "" {
		return prompt.Column{}, fmt.Errorf("invalid column %q (want name=description)", spec)
	}
	return prompt.Column{Name: name, Description: desc}, nil
}

// GenerateMockData asks the model for a JavaScript generateData(count)
// function producing rows with the given columns and returns its source.
func GenerateMockData(ctx context.Context, runner ai.Runner, columns []prompt.Column) (string, error) {
	if len(columns) == 0 {
		return "", fmt.Errorf("mock-data: %w: at least one column is required", ErrEmptyInput)
	}

	resp, err := runner.Run(ctx, ai.TextRequest(prompt.BuildMockDataPrompt(columns)))
	if err != nil {
		return "", err
	}

	code := parser.StripCodeFences(resp.Text)
	if code == "" {
		return "", ai.ErrEmptyResponse
	}
	return code, nil
}
