// Package ai is the boundary between the tools and the generative-AI backend.
//
// Generator performs a single call against one model. FallbackRunner wraps a
// Generator with retry and model fallback, and ClassifyError adapts the
// Gemini SDK's error shapes to the retry classification.
package ai

import (
	"context"
	"errors"

	"google.golang.org/genai"
)

// ErrEmptyResponse is returned by tools when the model produced no text.
var ErrEmptyResponse = errors.New("no text returned from the AI service")

// InlineData is binary content sent alongside the prompt (e.g. an image).
type InlineData struct {
	MIMEType string
	Data     []byte
}

// Request describes one generation call, independent of the model.
type Request struct {
	Parts        []string      // text parts, in order
	Inline       []InlineData  // sent before the text parts
	System       string        // optional system instruction
	Temperature  *float32      // nil = backend default
	Schema       *genai.Schema // non-nil requests a JSON response matching it
	GoogleSearch bool          // enable search grounding
	Image        *ImageOptions // non-nil asks for image output alongside text
}

// ImageOptions configures image generation.
type ImageOptions struct {
	AspectRatio string // e.g. "16:9"; empty = model default
}

// Source is a web page the model grounded its answer on.
type Source struct {
	Title string
	URI   string
}

// Response is the text produced by the model plus grounding sources and any
// generated images.
type Response struct {
	Model   string
	Text    string
	Sources []Source
	Images  []InlineData
}

// Generator performs a single generation call against one model.
type Generator interface {
	Generate(ctx context.Context, model string, req Request) (*Response, error)
}

// Runner runs a request to completion, choosing the model itself.
type Runner interface {
	Run(ctx context.Context, req Request) (*Response, error)
}

// TextRequest builds a request with a single text part.
func TextRequest(prompt string) Request {
	return Request{Parts: []string{prompt}}
}

// Temperature returns a pointer suitable for Request.Temperature.
func Temperature(t float32) *float32 {
	return &t
}
