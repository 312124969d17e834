package tools

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/CodexForgeBR/tools-hub/internal/ai"
	"github.com/CodexForgeBR/tools-hub/internal/prompt"
)

// GeoVisionAspectRatio is the shape of generated location images.
const GeoVisionAspectRatio = "16:9"

// ErrNoImage is returned when the model answered without an image, usually
// because it declined the request or cannot produce visual output.
var ErrNoImage = fmt.Errorf("%w: no image was generated", ErrInvalidResponse)

// Coordinates is a point on Earth in decimal degrees.
type Coordinates struct {
	Latitude  float64
	Longitude float64
}

// Validate checks that c lies within the valid latitude and longitude ranges.
func (c Coordinates) Validate() error {
	var errs []error
	if c.Latitude < -90 || c.Latitude > 90 {
		errs = append(errs, fmt.Errorf("latitude %g out of range [-90, 90]", c.Latitude))
	}
	if c.Longitude < -180 || c.Longitude > 180 {
		errs = append(errs, fmt.Errorf("longitude %g out of range [-180, 180]", c.Longitude))
	}
	return errors.Join(errs...)
}

// GeoImage is a generated view of a location.
type GeoImage struct {
	MIMEType    string
	Data        []byte
	Description string
	Sources     []ai.Source
}

// GeoVision generates a photorealistic image of the place at coords, using
// search grounding to research its terrain and climate.
func GeoVision(ctx context.Context, runner ai.Runner, coords Coordinates) (*GeoImage, error) {
	if err := coords.Validate(); err != nil {
		return nil, fmt.Errorf("geo-vision: %w", err)
	}

	req := ai.TextRequest(prompt.BuildGeoVisionPrompt(coords.Latitude, coords.Longitude))
	req.GoogleSearch = true
	req.Image = &ai.ImageOptions{AspectRatio: GeoVisionAspectRatio}

	resp, err := runner.Run(ctx, req)
	if err != nil {
		return nil, err
	}
	if len(resp.Images) == 0 {
		return nil, ErrNoImage
	}

	// The last image wins when a model returns drafts before the final one.
	img := resp.Images[len(resp.Images)-1]
	return &GeoImage{
		MIMEType:    img.MIMEType,
		Data:        img.Data,
		Description: strings.TrimSpace(resp.Text),
		Sources:     resp.Sources,
	}, nil
}

// ImageExtension returns the file extension for an image MIME type.
func ImageExtension(mimeType string) string {
	switch strings.ToLower(mimeType) {
	case "image/jpeg", "image/jpg":
		return ".jpg"
	case "image/webp":
		return ".webp"
	case "image/gif":
		return ".gif"
	default:
		return ".png"
	}
}
