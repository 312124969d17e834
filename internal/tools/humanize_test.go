package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/tools-hub/internal/ai"
)

func TestHumanize(t *testing.T) {
	r := textRunner("\n  Let's work together on this.  \n")

	out, err := Humanize(context.Background(), r, "Leverage cross-functional synergies.")

	require.NoError(t, err)
	assert.Equal(t, "Let's work together on this.", out)
	require.NotNil(t, r.req.Temperature)
	assert.InDelta(t, 0.7, *r.req.Temperature, 1e-6)
	assert.Contains(t, r.req.Parts[0], `"Leverage cross-functional synergies."`)
}

func TestHumanize_EmptyInput(t *testing.T) {
	r := textRunner("x")

	_, err := Humanize(context.Background(), r, " \n")

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Zero(t, r.calls)
}

func TestHumanize_EmptyResponse(t *testing.T) {
	_, err := Humanize(context.Background(), textRunner("   "), "text")

	assert.ErrorIs(t, err, ai.ErrEmptyResponse)
}
