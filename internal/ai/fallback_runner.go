package ai

import (
	"context"

	"github.com/CodexForgeBR/tools-hub/internal/resilience"
)

// FallbackRunner wraps a Generator with retry and model fallback.
// Models are tried in order; RetryCfg controls per-model retries and backoff.
type FallbackRunner struct {
	Inner    Generator
	Models   []string
	RetryCfg resilience.Config
}

// Run sends req through the resilient caller. Unless RetryCfg sets its own
// classifier, Gemini API errors are classified with ClassifyError.
func (r *FallbackRunner) Run(ctx context.Context, req Request) (*Response, error) {
	cfg := r.RetryCfg
	if cfg.Classify == nil {
		cfg.Classify = ClassifyError
	}

	return resilience.CallWithResilience(ctx, cfg, r.Models, func(ctx context.Context, model string) (*Response, error) {
		return r.Inner.Generate(ctx, model, req)
	})
}
