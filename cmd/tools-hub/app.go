package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/tools-hub/internal/ai"
	"github.com/CodexForgeBR/tools-hub/internal/banner"
	"github.com/CodexForgeBR/tools-hub/internal/cli"
	"github.com/CodexForgeBR/tools-hub/internal/config"
	"github.com/CodexForgeBR/tools-hub/internal/exitcode"
	"github.com/CodexForgeBR/tools-hub/internal/logging"
	"github.com/CodexForgeBR/tools-hub/internal/metrics"
	"github.com/CodexForgeBR/tools-hub/internal/model"
	"github.com/CodexForgeBR/tools-hub/internal/resilience"
	"github.com/CodexForgeBR/tools-hub/internal/tools"
	sighandler "github.com/CodexForgeBR/tools-hub/internal/signal"
)

// generatorFactory builds the backend for a run. Tests swap it for a fake.
type generatorFactory func(ctx context.Context, apiKey string) (ai.Generator, error)

func newGemini(ctx context.Context, apiKey string) (ai.Generator, error) {
	return ai.NewGeminiGenerator(ctx, apiKey)
}

// app carries state shared by the root command and the tool subcommands.
type app struct {
	flags    *config.Config // bound to CLI flags
	cfg      *config.Config // effective config after precedence merge
	recorder *metrics.Recorder

	newGenerator generatorFactory
	globalPath   string
	projectPath  string

	exitCode int
}

func newApp() *app {
	return &app{
		flags:        defaultFlags(),
		recorder:     metrics.NewRecorder(),
		newGenerator: newGemini,
		globalPath:   config.GlobalPath(),
		projectPath:  config.ProjectPath,
	}
}

// loadConfig merges defaults, config files, .env and explicit flags.
func (a *app) loadConfig(cmd *cobra.Command) error {
	if err := config.LoadDotEnv(); err != nil {
		return err
	}

	cfg, err := config.LoadWithPrecedence(a.globalPath, a.projectPath, a.flags.ConfigFile, cli.Overrides(cmd, a.flags))
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	cfg.ConfigFile = a.flags.ConfigFile
	a.cfg = cfg

	logging.SetVerbose(cfg.Verbose)
	return nil
}

// retryConfig derives the resilient-call settings for one run.
func (a *app) retryConfig(callID, tool string) resilience.Config {
	cfg := resilience.Config{
		MaxRetries:     a.cfg.MaxRetries,
		InitialDelay:   a.cfg.InitialDelay,
		MaxDelay:       a.cfg.MaxDelay,
		AttemptTimeout: a.cfg.AttemptTimeout,
	}
	cfg = logging.Instrument(cfg, callID)
	return a.recorder.Instrument(cfg, tool)
}

// trackingRunner remembers which model produced the last response.
type trackingRunner struct {
	inner ai.Runner

	mu    sync.Mutex
	model string
}

func (t *trackingRunner) Run(ctx context.Context, req ai.Request) (*ai.Response, error) {
	resp, err := t.inner.Run(ctx, req)
	if err == nil && resp != nil {
		t.mu.Lock()
		t.model = resp.Model
		t.mu.Unlock()
	}
	return resp, err
}

func (t *trackingRunner) lastModel() string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.model
}

// toolFunc runs one tool against runner and returns a function that renders
// its result.
type toolFunc func(ctx context.Context, runner ai.Runner) (render func(), err error)

// run executes fn for tool with retry, fallback, logging and metrics wired
// in, and records the process exit code. Errors from fn are reported to the
// user here, so run only returns errors that prevented the tool from starting.
func (a *app) run(cmd *cobra.Command, tool string, fn toolFunc) error {
	callID := uuid.NewString()
	models := model.ResolveModels(tool, a.cfg.Models)

	warnings, err := model.ValidateModels(models, "model")
	if err != nil {
		return err
	}
	for _, w := range warnings {
		logging.Warn(w)
	}

	var interrupted atomic.Bool
	ctx, stop := sighandler.Watch(cmd.Context(), func(s os.Signal) {
		interrupted.Store(true)
		logging.Warn("Received " + s.String() + ", cancelling...")
	})
	defer stop()

	banner.PrintStartupBanner(callID, tool, models, a.cfg.MaxRetries)

	start := time.Now()
	render, err := a.invoke(ctx, callID, tool, models, fn)
	elapsed := time.Since(start)
	stop()

	a.recorder.ObserveCall(tool, elapsed, err)
	if a.cfg.MetricsFile != "" {
		if werr := a.recorder.WriteFile(a.cfg.MetricsFile); werr != nil {
			logging.Warn(fmt.Sprintf("write metrics: %v", werr))
		}
	}

	a.exitCode = exitCodeFor(err, interrupted.Load())
	switch {
	case err == nil:
		render()
	case a.exitCode == exitcode.Interrupted:
		banner.PrintInterruptedBanner(tool)
	default:
		logging.Debug(fmt.Sprintf("[%s] %v", callID, err))
		banner.PrintFailureBanner(failureMessage(err), a.exitCode)
	}
	return nil
}

func (a *app) invoke(ctx context.Context, callID, tool string, models []string, fn toolFunc) (func(), error) {
	gen, err := a.newGenerator(ctx, a.cfg.APIKey)
	if err != nil {
		return nil, err
	}

	runner := &trackingRunner{inner: &ai.FallbackRunner{
		Inner:    gen,
		Models:   models,
		RetryCfg: a.retryConfig(callID, tool),
	}}

	start := time.Now()
	render, err := fn(ctx, runner)
	if err != nil {
		return nil, err
	}

	return func() {
		render()
		banner.PrintCompletionBanner(runner.lastModel(), logging.FormatDuration(time.Since(start)))
	}, nil
}

// exitCodeFor maps a run's error to the process exit code.
func exitCodeFor(err error, interrupted bool) int {
	var exhausted *resilience.ExhaustedError
	switch {
	case err == nil:
		return exitcode.Success
	case interrupted || errors.Is(err, context.Canceled):
		return exitcode.Interrupted
	case errors.Is(err, tools.ErrInvalidResponse), errors.Is(err, ai.ErrEmptyResponse):
		return exitcode.InvalidResponse
	case errors.As(err, &exhausted):
		return exitcode.Exhausted
	default:
		return exitcode.Error
	}
}

// failureMessage prefers the backend-aware message for backend failures.
func failureMessage(err error) string {
	var pathErr *fs.PathError
	switch {
	case errors.Is(err, tools.ErrEmptyInput), errors.Is(err, tools.ErrInvalidResponse):
		return err.Error()
	case errors.As(err, &pathErr):
		return err.Error()
	case errors.Is(err, ai.ErrEmptyResponse):
		return "The AI service returned an empty response."
	default:
		return ai.UserMessage(err)
	}
}
