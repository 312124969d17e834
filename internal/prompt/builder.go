// Package prompt builds the prompts sent to the AI backend for each tool.
package prompt

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultRecommendationCount is how many movies the recommender asks for.
const DefaultRecommendationCount = 5

// BuildRecommendPrompt constructs the movie recommendation prompt from the
// user's favorite titles.
func BuildRecommendPrompt(movies []string, count int) string {
	if count <= 0 {
		count = DefaultRecommendationCount
	}

	lines := make([]string, 0, len(movies))
	for _, m := range movies {
		lines = append(lines, "- "+strings.TrimSpace(m))
	}

	prompt := RecommendTemplate
	prompt = strings.ReplaceAll(prompt, "{{COUNT}}", strconv.Itoa(count))
	prompt = strings.ReplaceAll(prompt, "{{MOVIE_LIST}}", strings.Join(lines, "\n"))
	return prompt
}

// BuildFactCheckPrompt returns the fact-check instructions. The claim itself
// is sent as a separate part after these instructions.
func BuildFactCheckPrompt() string {
	return FactCheckTemplate
}

// Column is one field of a mock-data schema.
type Column struct {
	Name        string
	Description string
}

// BuildMockDataPrompt constructs the prompt asking for a JavaScript data
// generator that produces rows with the given columns.
func BuildMockDataPrompt(columns []Column) string {
	lines := make([]string, 0, len(columns))
	for _, c := range columns {
		lines = append(lines, fmt.Sprintf("- Column %q: %s", c.Name, c.Description))
	}

	prompt := MockDataTemplate
	prompt = strings.ReplaceAll(prompt, "{{COLUMN_COUNT}}", strconv.Itoa(len(columns)))
	prompt = strings.ReplaceAll(prompt, "{{COLUMNS}}", strings.Join(lines, "\n"))
	return prompt
}

// BuildHumanizePrompt wraps text in the rewrite instructions.
func BuildHumanizePrompt(text string) string {
	return strings.ReplaceAll(HumanizeTemplate, "{{TEXT}}", text)
}

// SummaryFormat is the requested shape of a summary.
type SummaryFormat string

// SummaryLength is the requested level of detail of a summary.
type SummaryLength string

const (
	FormatParagraph    SummaryFormat = "Paragraph"
	FormatBulletPoints SummaryFormat = "Bullet Points"
	FormatTLDR         SummaryFormat = "TL;DR"

	LengthShort  SummaryLength = "Short"
	LengthMedium SummaryLength = "Medium"
	LengthLong   SummaryLength = "Detailed"
)

// ParseSummaryFormat accepts the CLI spellings (paragraph, bullets, tldr) as
// well as the display names.
func ParseSummaryFormat(s string) (SummaryFormat, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "paragraph":
		return FormatParagraph, nil
	case "bullets", "bullet-points", "bullet points":
		return FormatBulletPoints, nil
	case "tldr", "tl;dr":
		return FormatTLDR, nil
	default:
		return "", fmt.Errorf("unknown summary format %q (want paragraph, bullets or tldr)", s)
	}
}

// ParseSummaryLength accepts short, medium and long (or detailed).
func ParseSummaryLength(s string) (SummaryLength, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "short":
		return LengthShort, nil
	case "", "medium":
		return LengthMedium, nil
	case "long", "detailed":
		return LengthLong, nil
	default:
		return "", fmt.Errorf("unknown summary length %q (want short, medium or long)", s)
	}
}

// BuildSummaryInstruction constructs the system instruction for the
// summarizer from the requested format and length.
func BuildSummaryInstruction(format SummaryFormat, length SummaryLength) string {
	var formatRule string
	switch format {
	case FormatBulletPoints:
		formatRule = "Use a markdown list for the output."
	case FormatTLDR:
		formatRule = "Provide a very brief, high-level overview in 1-2 sentences."
	default:
		formatRule = "Provide coherent paragraphs."
	}

	var lengthRule string
	switch length {
	case LengthShort:
		lengthRule = "Keep it very concise, capturing only the absolute most important points."
	case LengthLong:
		lengthRule = "Provide a comprehensive summary that includes supporting details and nuance."
	default:
		lengthRule = "Balance brevity with detail."
	}

	prompt := SummarizeTemplate
	prompt = strings.ReplaceAll(prompt, "{{FORMAT}}", string(format))
	prompt = strings.ReplaceAll(prompt, "{{FORMAT_RULE}}", formatRule)
	prompt = strings.ReplaceAll(prompt, "{{LENGTH}}", string(length))
	prompt = strings.ReplaceAll(prompt, "{{LENGTH_RULE}}", lengthRule)
	return prompt
}

// BuildGeoVisionPrompt asks for a picture of the place at the given
// coordinates.
func BuildGeoVisionPrompt(latitude, longitude float64) string {
	prompt := GeoVisionTemplate
	prompt = strings.ReplaceAll(prompt, "{{LATITUDE}}", strconv.FormatFloat(latitude, 'f', -1, 64))
	prompt = strings.ReplaceAll(prompt, "{{LONGITUDE}}", strconv.FormatFloat(longitude, 'f', -1, 64))
	return prompt
}
