package tools

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"regexp"
	"strings"

	"github.com/CodexForgeBR/tools-hub/internal/ai"
	"github.com/CodexForgeBR/tools-hub/internal/prompt"
)

// Verdict is the fact checker's overall rating of a claim.
type Verdict string

const (
	VerdictTrue       Verdict = "True"
	VerdictFalse      Verdict = "False"
	VerdictMisleading Verdict = "Misleading"
	VerdictMixed      Verdict = "Mixed"
	VerdictUnverified Verdict = "Unverified"
)

var verdictPattern = regexp.MustCompile(`(?i)VERDICT:\s*(True|False|Misleading|Mixed|Unverified)`)

// verdictLine matches the verdict line itself so it can be dropped from the
// explanation.
var verdictLine = regexp.MustCompile(`(?im)^[ \t]*VERDICT:.*(?:\r?\n|$)`)

// FactCheckResult is a rated claim with its explanation and sources.
type FactCheckResult struct {
	Verdict     Verdict
	Explanation string
	Sources     []ai.Source
}

// Image is an optional picture attached to a fact check.
type Image struct {
	MIMEType string
	Data     []byte
}

// LoadImage reads an image from disk and detects its MIME type.
func LoadImage(path string) (*Image, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read image: %w", err)
	}
	mime := http.DetectContentType(data)
	if !strings.HasPrefix(mime, "image/") {
		return nil, fmt.Errorf("%s is not an image (detected %s)", path, mime)
	}
	return &Image{MIMEType: mime, Data: data}, nil
}

// FactCheck rates a claim, optionally backed by an image, using search
// grounding.
func FactCheck(ctx context.Context, runner ai.Runner, claim string, img *Image) (*FactCheckResult, error) {
	claim = strings.TrimSpace(claim)
	if claim == "" && img == nil {
		return nil, fmt.Errorf("fact-check: %w: provide text or an image", ErrEmptyInput)
	}

	req := ai.Request{
		Parts:        []string{prompt.BuildFactCheckPrompt()},
		GoogleSearch: true,
	}
	if claim != "" {
		req.Parts = append(req.Parts, claim)
	}
	if img != nil {
		req.Inline = []ai.InlineData{{MIMEType: img.MIMEType, Data: img.Data}}
	}

	resp, err := runner.Run(ctx, req)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, ai.ErrEmptyResponse
	}

	return &FactCheckResult{
		Verdict:     ParseVerdict(resp.Text),
		Explanation: strings.TrimSpace(verdictLine.ReplaceAllString(resp.Text, "")),
		Sources:     resp.Sources,
	}, nil
}

// ParseVerdict extracts the VERDICT line from text. Text without a
// recognizable verdict is Unverified.
func ParseVerdict(text string) Verdict {
	m := verdictPattern.FindStringSubmatch(text)
	if m == nil {
		return VerdictUnverified
	}
	switch strings.ToLower(m[1]) {
	case "true":
		return VerdictTrue
	case "false":
		return VerdictFalse
	case "misleading":
		return VerdictMisleading
	case "mixed":
		return VerdictMixed
	default:
		return VerdictUnverified
	}
}
