package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/CodexForgeBR/tools-hub/internal/ai"
	"github.com/CodexForgeBR/tools-hub/internal/prompt"
)

func TestParseColumn(t *testing.T) {
	col, err := ParseColumn(" email = work email, lowercase ")
	require.NoError(t, err)
	assert.Equal(t, prompt.Column{Name: "email", Description: "work email, lowercase"}, col)

	col, err = ParseColumn("expr=a=b")
	require.NoError(t, err)
	assert.Equal(t, "a=b", col.Description)

	for _, bad := range []string{"", "name", "=desc", "name="} {
		_, err := ParseColumn(bad)
		assert.Error(t, err, bad)
	}
}

func TestGenerateMockData_StripsFences(t *testing.T) {
	r := textRunner("```javascript\nfunction generateData(count) {\n  return [];\n}\n```")

	code, err := GenerateMockData(context.Background(), r, []prompt.Column{{Name: "id", Description: "uuid"}})

	require.NoError(t, err)
	assert.Equal(t, "function generateData(count) {\n  return [];\n}", code)
	assert.Contains(t, r.req.Parts[0], `- Column "id": uuid`)
}

func TestGenerateMockData_NoColumns(t *testing.T) {
	_, err := GenerateMockData(context.Background(), textRunner("x"), nil)

	assert.ErrorIs(t, err, ErrEmptyInput)
}

func TestGenerateMockData_EmptyResponse(t *testing.T) {
	_, err := GenerateMockData(context.Background(), textRunner("```js\n```"), []prompt.Column{{Name: "a", Description: "b"}})

	assert.ErrorIs(t, err, ai.ErrEmptyResponse)
}

func TestGenerateMockData_SingleLineFence(t *testing.T) {
	r := textRunner("Here is the function:\n```javascript function generateData(count) { return []; }```")

	code, err := GenerateMockData(context.Background(), r, []prompt.Column{{Name: "id", Description: "uuid"}})

	require.NoError(t, err)
	assert.Equal(t, "function generateData(count) { return []; }", code)
}
