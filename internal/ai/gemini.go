package ai

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"google.golang.org/genai"
)

// ErrMissingAPIKey is returned when no Gemini API key is configured.
var ErrMissingAPIKey = errors.New("gemini API key is not configured")

// GeminiGenerator implements Generator on the Gemini API.
// Construct it once per process and share it; the underlying client is safe
// for concurrent use.
type GeminiGenerator struct {
	client *genai.Client
}

// NewGeminiGenerator creates the Gemini client.
func NewGeminiGenerator(ctx context.Context, apiKey string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	return &GeminiGenerator{client: client}, nil
}

// Generate sends req to model and returns its text and grounding sources.
func (g *GeminiGenerator) Generate(ctx context.Context, model string, req Request) (*Response, error) {
	resp, err := g.client.Models.GenerateContent(ctx, model, buildContents(req), buildConfig(req))
	if err != nil {
		return nil, fmt.Errorf("gemini %s: %w", model, err)
	}

	out := responseFromGenAI(resp)
	out.Model = model
	return out, nil
}

func buildContents(req Request) []*genai.Content {
	parts := make([]*genai.Part, 0, len(req.Inline)+len(req.Parts))
	for _, inline := range req.Inline {
		parts = append(parts, genai.NewPartFromBytes(inline.Data, inline.MIMEType))
	}
	for _, text := range req.Parts {
		parts = append(parts, genai.NewPartFromText(text))
	}
	return []*genai.Content{genai.NewContentFromParts(parts, genai.RoleUser)}
}

func buildConfig(req Request) *genai.GenerateContentConfig {
	cfg := &genai.GenerateContentConfig{
		Temperature: req.Temperature,
	}

	if req.System != "" {
		cfg.SystemInstruction = genai.NewContentFromText(req.System, genai.RoleUser)
	}

	if req.Schema != nil {
		cfg.ResponseMIMEType = "application/json"
		cfg.ResponseSchema = req.Schema
	}

	if req.GoogleSearch {
		cfg.Tools = []*genai.Tool{{GoogleSearch: &genai.GoogleSearch{}}}
	}

	if req.Image != nil {
		cfg.ResponseModalities = []string{string(genai.ModalityText), string(genai.ModalityImage)}
		if req.Image.AspectRatio != "" {
			cfg.ImageConfig = &genai.ImageConfig{AspectRatio: req.Image.AspectRatio}
		}
	}

	return cfg
}

// defaultImageMIMEType is assumed for inline images sent without a type.
const defaultImageMIMEType = "image/png"

// responseFromGenAI joins the non-thought text parts of the first candidate,
// collects its inline images and its web grounding chunks.
func responseFromGenAI(resp *genai.GenerateContentResponse) *Response {
	out := &Response{}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0] == nil {
		return out
	}

	candidate := resp.Candidates[0]

	if candidate.Content != nil {
		var sb strings.Builder
		for _, part := range candidate.Content.Parts {
			if part == nil || part.Thought {
				continue
			}
			if part.InlineData != nil && len(part.InlineData.Data) > 0 {
				mimeType := part.InlineData.MIMEType
				if mimeType == "" {
					mimeType = defaultImageMIMEType
				}
				out.Images = append(out.Images, InlineData{MIMEType: mimeType, Data: part.InlineData.Data})
				continue
			}
			sb.WriteString(part.Text)
		}
		out.Text = sb.String()
	}

	if candidate.GroundingMetadata != nil {
		for _, chunk := range candidate.GroundingMetadata.GroundingChunks {
			if chunk == nil || chunk.Web == nil || chunk.Web.URI == "" {
				continue
			}
			out.Sources = append(out.Sources, Source{Title: chunk.Web.Title, URI: chunk.Web.URI})
		}
	}

	return out
}
