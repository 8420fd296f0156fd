package colour

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	"github.com/UserUnknownFactor/colorthief/pkg/colorthief"
)

// MedianCutExtractor extracts palettes with the colorthief quantizer.
type MedianCutExtractor struct {
	logger hclog.Logger
}

// NewMedianCutExtractor creates a new MedianCutExtractor.
func NewMedianCutExtractor(logger hclog.Logger) *MedianCutExtractor {
	return &MedianCutExtractor{logger: logger.Named("mediancut")}
}

// Extract returns the quantizer's boxes in production order, weighted by
// their share of the sampled pixels.
func (e *MedianCutExtractor) Extract(img image.Image, config ExtractorConfig) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}

	opts := []colorthief.Option{colorthief.WithLogger(e.logger)}
	if config.DefaultColor != nil {
		opts = append(opts, colorthief.WithDefaultColor(*config.DefaultColor))
	}
	swatches, err := colorthief.FromImage(img, opts...).PaletteDistribution(config.Options)
	if err != nil {
		return nil, err
	}
	return NewPaletteFromSwatches(swatches), nil
}
