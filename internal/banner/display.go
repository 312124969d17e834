// Package banner provides colored output for the tools-hub CLI.
//
// Status banners (startup, completion, failure, interruption) go to stderr.
// Tool results go to stdout so they can be piped or redirected.
package banner

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"

	"github.com/CodexForgeBR/tools-hub/internal/ai"
	"github.com/CodexForgeBR/tools-hub/internal/exitcode"
	"github.com/CodexForgeBR/tools-hub/internal/tools"
)

var (
	headerColor  = color.New(color.FgCyan, color.Bold).SprintFunc()
	successColor = color.New(color.FgGreen, color.Bold).SprintFunc()
	errorColor   = color.New(color.FgRed, color.Bold).SprintFunc()
	warnColor    = color.New(color.FgYellow, color.Bold).SprintFunc()
	titleColor   = color.New(color.Bold).SprintFunc()
	dimColor     = color.New(color.Faint).SprintFunc()
)

const rule = "═══════════════════════════════════════════════════"

// PrintStartupBanner displays the startup banner with call info.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  tools-hub - recommend
//	═══════════════════════════════════════════════════
//	  Call:       3f0c9a4e-...
//	  Models:     gemini-2.5-flash → gemini-2.0-flash-001
//	  Retries:    2 per model
//	═══════════════════════════════════════════════════
func PrintStartupBanner(callID string, tool string, models []string, maxRetries int) {
	sep := headerColor(rule)
	fmt.Fprintln(os.Stderr, sep)
	fmt.Fprintln(os.Stderr, headerColor("  tools-hub - "+tool))
	fmt.Fprintln(os.Stderr, sep)
	fmt.Fprintf(os.Stderr, "  Call:       %s\n", callID)
	fmt.Fprintf(os.Stderr, "  Models:     %s\n", strings.Join(models, " → "))
	fmt.Fprintf(os.Stderr, "  Retries:    %d per model\n", maxRetries)
	fmt.Fprintln(os.Stderr, sep)
}

// PrintCompletionBanner reports which model answered and how long it took.
func PrintCompletionBanner(model string, elapsed string) {
	sep := successColor(rule)
	fmt.Fprintln(os.Stderr, sep)
	fmt.Fprintln(os.Stderr, successColor("  ✓ Done"))
	fmt.Fprintf(os.Stderr, "  Model:      %s\n", model)
	fmt.Fprintf(os.Stderr, "  Duration:   %s\n", elapsed)
	fmt.Fprintln(os.Stderr, sep)
}

// PrintFailureBanner displays a user-facing failure message and the exit
// code the process is about to return.
//
// Example output:
//
//	═══════════════════════════════════════════════════
//	  ✗ The AI service is temporarily overloaded.
//	  Exit:       2 (Exhausted)
//	═══════════════════════════════════════════════════
func PrintFailureBanner(message string, code int) {
	sep := errorColor(rule)
	fmt.Fprintln(os.Stderr, sep)
	fmt.Fprintln(os.Stderr, errorColor("  ✗ "+message))
	fmt.Fprintf(os.Stderr, "  Exit:       %d (%s)\n", code, exitcode.Name(code))
	fmt.Fprintln(os.Stderr, sep)
}

// PrintInterruptedBanner displays when a run is interrupted by a signal.
func PrintInterruptedBanner(tool string) {
	sep := warnColor(rule)
	fmt.Fprintln(os.Stderr, sep)
	fmt.Fprintln(os.Stderr, warnColor("  ⚠ Interrupted"))
	fmt.Fprintf(os.Stderr, "  Tool:       %s\n", tool)
	fmt.Fprintln(os.Stderr, sep)
}

// PrintRecommendations renders movie recommendations as a numbered list.
func PrintRecommendations(recs []tools.Recommendation) {
	if len(recs) == 0 {
		fmt.Println("No recommendations.")
		return
	}
	for i, r := range recs {
		fmt.Printf("%d. %s\n", i+1, titleColor(r.Title))
		if r.Reason != "" {
			fmt.Printf("   %s\n", r.Reason)
		}
		for _, m := range r.MatchReasons {
			fmt.Printf("   • %s\n", m)
		}
		if i < len(recs)-1 {
			fmt.Println()
		}
	}
}

// verdictColor picks a color for a fact-check verdict.
func verdictColor(v tools.Verdict) func(a ...interface{}) string {
	switch v {
	case tools.VerdictTrue:
		return successColor
	case tools.VerdictFalse:
		return errorColor
	case tools.VerdictMisleading, tools.VerdictMixed:
		return warnColor
	default:
		return headerColor
	}
}

// PrintFactCheck renders a verdict, its explanation and the web sources.
func PrintFactCheck(res *tools.FactCheckResult) {
	fmt.Printf("Verdict: %s\n\n", verdictColor(res.Verdict)(string(res.Verdict)))
	fmt.Println(res.Explanation)
	printSources(res.Sources)
}

func printSources(sources []ai.Source) {
	if len(sources) == 0 {
		return
	}
	fmt.Println()
	fmt.Println(titleColor("Sources:"))
	for i, s := range sources {
		title := s.Title
		if title == "" {
			title = s.URI
		}
		fmt.Printf("  [%d] %s\n      %s\n", i+1, title, dimColor(s.URI))
	}
}

// PrintSummary renders a summary followed by a word-count line.
//
// Example output:
//
//	The report finds remote teams ship faster but meet less.
//
//	120 words → 8 words (93% shorter)
func PrintSummary(s *tools.Summary) {
	fmt.Println(s.Text)
	fmt.Println()
	fmt.Println(dimColor(wordCountLine(s.InputWords, s.OutputWords)))
}

func wordCountLine(in, out int) string {
	line := fmt.Sprintf("%d words → %d words", in, out)
	if in > 0 && out < in {
		line += fmt.Sprintf(" (%d%% shorter)", (in-out)*100/in)
	}
	return line
}

// PrintGeoVision reports where the generated image was saved, followed by
// its description and web sources.
func PrintGeoVision(img *tools.GeoImage, path string) {
	fmt.Printf("Image: %s (%s, %d bytes)\n", titleColor(path), img.MIMEType, len(img.Data))
	if img.Description != "" {
		fmt.Println()
		fmt.Println(img.Description)
	}
	printSources(img.Sources)
}

// PrintText writes a plain result such as rewritten text or generated code.
func PrintText(text string) {
	fmt.Println(text)
}
