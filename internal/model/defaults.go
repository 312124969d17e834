// Package model provides model-name helpers for the tools-hub CLI.
//
// It centralises the default model variants each tool falls back through
// and validation of user-supplied model names.
package model

// Tool identifiers used throughout the CLI.
const (
	Recommend = "recommend"
	FactCheck = "fact-check"
	MockData  = "mock-data"
	Humanize  = "humanize"
	Summarize = "summarize"
	GeoVision = "geo-vision"
)

// Gemini model names used as defaults.
const (
	Flash25    = "gemini-2.5-flash"
	Flash20    = "gemini-2.0-flash-001"
	Flash20Exp = "gemini-2.0-flash-exp"

	// FlashImage25 generates images; text-only models cannot serve geo-vision.
	FlashImage25 = "gemini-2.5-flash-image"
)

// DefaultModels returns the ordered model variants for tool. The first
// entry is preferred; the rest are fallbacks. Unknown tools get the
// recommender's list.
func DefaultModels(tool string) []string {
	switch tool {
	case FactCheck, MockData:
		return []string{Flash20Exp, Flash25}
	case GeoVision:
		return []string{Flash20Exp, FlashImage25}
	default:
		return []string{Flash25, Flash20}
	}
}
