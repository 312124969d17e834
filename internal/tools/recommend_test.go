package tools

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"

	"github.com/CodexForgeBR/tools-hub/internal/ai"
)

func TestRecommend(t *testing.T) {
	r := textRunner(`[{"title":"Arrival","reason":"Quiet, cerebral sci-fi.","match_reasons":["Like Interstellar, it is about time."]}]`)

	recs, err := Recommend(context.Background(), r, []string{" Interstellar ", "", "Her"}, 3)

	require.NoError(t, err)
	require.Len(t, recs, 1)
	assert.Equal(t, "Arrival", recs[0].Title)
	assert.Equal(t, []string{"Like Interstellar, it is about time."}, recs[0].MatchReasons)

	require.Len(t, r.req.Parts, 1)
	assert.Contains(t, r.req.Parts[0], "- Interstellar\n- Her")
	require.NotNil(t, r.req.Schema)
	assert.Equal(t, genai.TypeArray, r.req.Schema.Type)
}

func TestRecommend_FencedJSON(t *testing.T) {
	r := textRunner("```json\n[{\"title\":\"Moon\",\"reason\":\"r\",\"match_reasons\":[]}]\n```")

	recs, err := Recommend(context.Background(), r, []string{"Solaris"}, 1)

	require.NoError(t, err)
	assert.Equal(t, "Moon", recs[0].Title)
}

func TestRecommend_NoFavorites(t *testing.T) {
	r := textRunner("[]")

	_, err := Recommend(context.Background(), r, []string{" ", ""}, 5)

	assert.ErrorIs(t, err, ErrEmptyInput)
	assert.Zero(t, r.calls)
}

func TestRecommend_EmptyText(t *testing.T) {
	_, err := Recommend(context.Background(), textRunner("  "), []string{"Heat"}, 5)

	assert.ErrorIs(t, err, ai.ErrEmptyResponse)
}

func TestRecommend_InvalidJSON(t *testing.T) {
	_, err := Recommend(context.Background(), textRunner("I can't help with that."), []string{"Heat"}, 5)

	assert.ErrorIs(t, err, ErrInvalidResponse)
}
