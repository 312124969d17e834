package prompt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTemplatesEmbedded(t *testing.T) {
	for name, tmpl := range map[string]string{
		"recommend":  RecommendTemplate,
		"fact-check": FactCheckTemplate,
		"mock-data":  MockDataTemplate,
		"humanize":   HumanizeTemplate,
		"summarize":  SummarizeTemplate,
		"geo-vision": GeoVisionTemplate,
	} {
		assert.NotEmpty(t, strings.TrimSpace(tmpl), name)
	}
}

func TestBuildRecommendPrompt(t *testing.T) {
	got := BuildRecommendPrompt([]string{"Arrival ", "Her"}, 3)

	assert.Contains(t, got, "**3 unique movie recommendations**")
	assert.Contains(t, got, "- Arrival\n- Her")
	assert.NotContains(t, got, "{{")
}

func TestBuildRecommendPrompt_DefaultCount(t *testing.T) {
	got := BuildRecommendPrompt([]string{"Heat"}, 0)

	assert.Contains(t, got, "**5 unique movie recommendations**")
}

func TestBuildFactCheckPrompt_ListsVerdicts(t *testing.T) {
	got := BuildFactCheckPrompt()

	for _, v := range []string{"True", "False", "Misleading", "Mixed", "Unverified"} {
		assert.Contains(t, got, `"VERDICT: `+v+`"`)
	}
}

func TestBuildMockDataPrompt(t *testing.T) {
	got := BuildMockDataPrompt([]Column{
		{Name: "name", Description: "Sri Lankan full names"},
		{Name: "email", Description: "work email"},
	})

	assert.Contains(t, got, "following 2 keys")
	assert.Contains(t, got, `- Column "name": Sri Lankan full names`)
	assert.Contains(t, got, `- Column "email": work email`)
	assert.Contains(t, got, "generateData(count)")
	assert.NotContains(t, got, "{{")
}

func TestBuildHumanizePrompt(t *testing.T) {
	got := BuildHumanizePrompt("Utilize the synergy.")

	assert.Contains(t, got, "\"Utilize the synergy.\"")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(got), "Humanized Text:"))
}

func TestParseSummaryFormat(t *testing.T) {
	tests := []struct {
		in   string
		want SummaryFormat
	}{
		{"", FormatParagraph},
		{"paragraph", FormatParagraph},
		{"Bullets", FormatBulletPoints},
		{"bullet points", FormatBulletPoints},
		{"tldr", FormatTLDR},
		{"TL;DR", FormatTLDR},
	}
	for _, tt := range tests {
		got, err := ParseSummaryFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseSummaryFormat("haiku")
	assert.Error(t, err)
}

func TestParseSummaryLength(t *testing.T) {
	tests := []struct {
		in   string
		want SummaryLength
	}{
		{"", LengthMedium},
		{"short", LengthShort},
		{"MEDIUM", LengthMedium},
		{"long", LengthLong},
		{"detailed", LengthLong},
	}
	for _, tt := range tests {
		got, err := ParseSummaryLength(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseSummaryLength("epic")
	assert.Error(t, err)
}

func TestBuildSummaryInstruction(t *testing.T) {
	t.Run("bullets short", func(t *testing.T) {
		got := BuildSummaryInstruction(FormatBulletPoints, LengthShort)

		assert.Contains(t, got, "Format Preference: Bullet Points. Use a markdown list for the output.")
		assert.Contains(t, got, "Length Preference: Short. Keep it very concise")
	})

	t.Run("tldr detailed", func(t *testing.T) {
		got := BuildSummaryInstruction(FormatTLDR, LengthLong)

		assert.Contains(t, got, "Format Preference: TL;DR. Provide a very brief")
		assert.Contains(t, got, "Length Preference: Detailed. Provide a comprehensive summary")
	})

	t.Run("defaults", func(t *testing.T) {
		got := BuildSummaryInstruction(FormatParagraph, LengthMedium)

		assert.Contains(t, got, "Provide coherent paragraphs.")
		assert.Contains(t, got, "Balance brevity with detail.")
		assert.NotContains(t, got, "{{")
	})
}

func TestBuildGeoVisionPrompt(t *testing.T) {
	got := BuildGeoVisionPrompt(-33.8568, 151.2153)

	assert.Contains(t, got, "Latitude: -33.8568, Longitude: 151.2153.")
	assert.NotContains(t, got, "{{")
}
