package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultModels(t *testing.T) {
	tests := []struct {
		tool string
		want []string
	}{
		{Recommend, []string{"gemini-2.5-flash", "gemini-2.0-flash-001"}},
		{Humanize, []string{"gemini-2.5-flash", "gemini-2.0-flash-001"}},
		{Summarize, []string{"gemini-2.5-flash", "gemini-2.0-flash-001"}},
		{FactCheck, []string{"gemini-2.0-flash-exp", "gemini-2.5-flash"}},
		{MockData, []string{"gemini-2.0-flash-exp", "gemini-2.5-flash"}},
		{GeoVision, []string{"gemini-2.0-flash-exp", "gemini-2.5-flash-image"}},
		{"unknown", []string{"gemini-2.5-flash", "gemini-2.0-flash-001"}},
	}

	for _, tt := range tests {
		t.Run(tt.tool, func(t *testing.T) {
			assert.Equal(t, tt.want, DefaultModels(tt.tool))
		})
	}
}

func TestDefaultModels_ReturnsFreshSlice(t *testing.T) {
	a := DefaultModels(Recommend)
	a[0] = "mutated"

	assert.Equal(t, Flash25, DefaultModels(Recommend)[0])
}

func TestResolveModels(t *testing.T) {
	t.Run("configured wins", func(t *testing.T) {
		got := ResolveModels(Recommend, []string{" gemini-pro ", "", "gemini-pro", "gemini-2.5-flash"})
		assert.Equal(t, []string{"gemini-pro", "gemini-2.5-flash"}, got)
	})

	t.Run("empty falls back to defaults", func(t *testing.T) {
		assert.Equal(t, DefaultModels(FactCheck), ResolveModels(FactCheck, nil))
		assert.Equal(t, DefaultModels(FactCheck), ResolveModels(FactCheck, []string{" ", ""}))
	})
}
