package exitcode_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/CodexForgeBR/tools-hub/internal/exitcode"
)

func TestExitCodeValues(t *testing.T) {
	tests := []struct {
		name     string
		code     int
		expected int
	}{
		{"Success", exitcode.Success, 0},
		{"Error", exitcode.Error, 1},
		{"Exhausted", exitcode.Exhausted, 2},
		{"InvalidResponse", exitcode.InvalidResponse, 3},
		{"Interrupted", exitcode.Interrupted, 130},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.code)
		})
	}
}

func TestExitCodeNames(t *testing.T) {
	for _, code := range []int{exitcode.Success, exitcode.Error, exitcode.Exhausted, exitcode.InvalidResponse, exitcode.Interrupted} {
		assert.NotEqual(t, "unknown", exitcode.Name(code), "code %d", code)
	}
	assert.Equal(t, "Exhausted", exitcode.Name(2))
	assert.Equal(t, "unknown", exitcode.Name(99))
	assert.Equal(t, "unknown", exitcode.Name(-1))
}
