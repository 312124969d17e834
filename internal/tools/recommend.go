package tools

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/CodexForgeBR/tools-hub/internal/ai"
	"github.com/CodexForgeBR/tools-hub/internal/parser"
	"github.com/CodexForgeBR/tools-hub/internal/prompt"
)

// Recommendation is one suggested movie.
type Recommendation struct {
	Title        string   `json:"title"`
	Reason       string   `json:"reason"`
	MatchReasons []string `json:"match_reasons"`
}

// recommendationSchema constrains the model to an array of Recommendation.
var recommendationSchema = &genai.Schema{
	Type: genai.TypeArray,
	Items: &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"title":  {Type: genai.TypeString, Description: "The title of the movie."},
			"reason": {Type: genai.TypeString, Description: "2-3 sentences on why the user will like it."},
			"match_reasons": {
				Type:        genai.TypeArray,
				Items:       &genai.Schema{Type: genai.TypeString},
				Description: "Short points tying the movie to the favorites.",
			},
		},
		Required: []string{"title", "reason", "match_reasons"},
	},
}

// Recommend asks the model for count movies similar to the favorites.
func Recommend(ctx context.Context, runner ai.Runner, favorites []string, count int) ([]Recommendation, error) {
	movies := make([]string, 0, len(favorites))
	for _, f := range favorites {
		if f = strings.TrimSpace(f); f != "" {
			movies = append(movies, f)
		}
	}
	if len(movies) == 0 {
		return nil, fmt.Errorf("recommend: %w: at least one favorite movie is required", ErrEmptyInput)
	}

	req := ai.TextRequest(prompt.BuildRecommendPrompt(movies, count))
	req.Schema = recommendationSchema

	resp, err := runner.Run(ctx, req)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(resp.Text) == "" {
		return nil, ai.ErrEmptyResponse
	}

	recs, err := parser.DecodeJSON[[]Recommendation](resp.Text, '[')
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return recs, nil
}
