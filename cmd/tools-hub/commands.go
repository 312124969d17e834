package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/CodexForgeBR/tools-hub/internal/ai"
	"github.com/CodexForgeBR/tools-hub/internal/banner"
	"github.com/CodexForgeBR/tools-hub/internal/model"
	"github.com/CodexForgeBR/tools-hub/internal/prompt"
	"github.com/CodexForgeBR/tools-hub/internal/tools"
)

func newRecommendCmd(a *app) *cobra.Command {
	var (
		movies []string
		count  int
	)
	cmd := &cobra.Command{
		Use:   "recommend",
		Short: "Recommend movies similar to your favorites",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(cmd, model.Recommend, func(ctx context.Context, r ai.Runner) (func(), error) {
				recs, err := tools.Recommend(ctx, r, movies, count)
				if err != nil {
					return nil, err
				}
				return func() { banner.PrintRecommendations(recs) }, nil
			})
		},
	}
	cmd.Flags().StringArrayVar(&movies, "movie", nil, "A favorite movie (repeatable)")
	cmd.Flags().IntVarP(&count, "count", "n", prompt.DefaultRecommendationCount, "Number of recommendations")
	return cmd
}

func newFactCheckCmd(a *app) *cobra.Command {
	var text, imagePath string
	cmd := &cobra.Command{
		Use:   "fact-check",
		Short: "Rate a claim (and optional image) with web sources",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			claim, err := readInput(cmd, text)
			if err != nil && !(errors.Is(err, tools.ErrEmptyInput) && imagePath != "") {
				return err
			}

			var img *tools.Image
			if imagePath != "" {
				if img, err = tools.LoadImage(imagePath); err != nil {
					return err
				}
			}

			return a.run(cmd, model.FactCheck, func(ctx context.Context, r ai.Runner) (func(), error) {
				res, err := tools.FactCheck(ctx, r, claim, img)
				if err != nil {
					return nil, err
				}
				return func() { banner.PrintFactCheck(res) }, nil
			})
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "Claim to check (default: stdin)")
	cmd.Flags().StringVar(&imagePath, "image", "", "Image file to check")
	return cmd
}

func newMockDataCmd(a *app) *cobra.Command {
	var specs []string
	cmd := &cobra.Command{
		Use:   "mock-data",
		Short: "Generate a JavaScript mock data generator",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			columns := make([]prompt.Column, 0, len(specs))
			for _, s := range specs {
				c, err := tools.ParseColumn(s)
				if err != nil {
					return err
				}
				columns = append(columns, c)
			}

			return a.run(cmd, model.MockData, func(ctx context.Context, r ai.Runner) (func(), error) {
				code, err := tools.GenerateMockData(ctx, r, columns)
				if err != nil {
					return nil, err
				}
				return func() { banner.PrintText(code) }, nil
			})
		},
	}
	cmd.Flags().StringArrayVarP(&specs, "column", "c", nil, `Column as "name=description" (repeatable)`)
	return cmd
}

func newHumanizeCmd(a *app) *cobra.Command {
	var text string
	cmd := &cobra.Command{
		Use:   "humanize",
		Short: "Rewrite text to sound natural",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			input, err := readInput(cmd, text)
			if err != nil {
				return err
			}
			return a.run(cmd, model.Humanize, func(ctx context.Context, r ai.Runner) (func(), error) {
				out, err := tools.Humanize(ctx, r, input)
				if err != nil {
					return nil, err
				}
				return func() { banner.PrintText(out) }, nil
			})
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "Text to rewrite (default: stdin)")
	return cmd
}

func newSummarizeCmd(a *app) *cobra.Command {
	var text, format, length string
	cmd := &cobra.Command{
		Use:   "summarize",
		Short: "Summarize text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := prompt.ParseSummaryFormat(format)
			if err != nil {
				return err
			}
			l, err := prompt.ParseSummaryLength(length)
			if err != nil {
				return err
			}
			input, err := readInput(cmd, text)
			if err != nil {
				return err
			}
			return a.run(cmd, model.Summarize, func(ctx context.Context, r ai.Runner) (func(), error) {
				s, err := tools.Summarize(ctx, r, input, f, l)
				if err != nil {
					return nil, err
				}
				return func() { banner.PrintSummary(s) }, nil
			})
		},
	}
	cmd.Flags().StringVarP(&text, "text", "t", "", "Text to summarize (default: stdin)")
	cmd.Flags().StringVar(&format, "format", "paragraph", "Output format: paragraph, bullets or tldr")
	cmd.Flags().StringVar(&length, "length", "medium", "Summary length: short, medium or long")
	return cmd
}

func newGeoVisionCmd(a *app) *cobra.Command {
	var (
		coords  tools.Coordinates
		outPath string
	)
	cmd := &cobra.Command{
		Use:   "geo-vision",
		Short: "Generate a photorealistic image of a location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := coords.Validate(); err != nil {
				return err
			}

			return a.run(cmd, model.GeoVision, func(ctx context.Context, r ai.Runner) (func(), error) {
				img, err := tools.GeoVision(ctx, r, coords)
				if err != nil {
					return nil, err
				}

				path := outPath
				if path == "" {
					path = "geo-vision" + tools.ImageExtension(img.MIMEType)
				}
				if err := os.WriteFile(path, img.Data, 0o644); err != nil {
					return nil, fmt.Errorf("save image: %w", err)
				}
				return func() { banner.PrintGeoVision(img, path) }, nil
			})
		},
	}
	cmd.Flags().Float64Var(&coords.Latitude, "lat", 0, "Latitude in decimal degrees")
	cmd.Flags().Float64Var(&coords.Longitude, "lon", 0, "Longitude in decimal degrees")
	cmd.Flags().StringVarP(&outPath, "out", "o", "", "Image file to write (default: geo-vision.<ext>)")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	return cmd
}

// readInput returns text, or the command's stdin when text is empty and
// stdin is not a terminal.
func readInput(cmd *cobra.Command, text string) (string, error) {
	if strings.TrimSpace(text) != "" {
		return text, nil
	}

	in := cmd.InOrStdin()
	if f, ok := in.(*os.File); ok {
		info, err := f.Stat()
		if err != nil || info.Mode()&os.ModeCharDevice != 0 {
			return "", fmt.Errorf("%w: pass --text or pipe text on stdin", tools.ErrEmptyInput)
		}
	}

	data, err := io.ReadAll(in)
	if err != nil {
		return "", fmt.Errorf("read stdin: %w", err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return "", fmt.Errorf("%w: pass --text or pipe text on stdin", tools.ErrEmptyInput)
	}
	return string(data), nil
}
