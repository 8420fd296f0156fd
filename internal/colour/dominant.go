package colour

import (
	"fmt"
	"image"

	"github.com/cenkalti/dominantcolor"
	"github.com/hashicorp/go-hclog"

	"github.com/UserUnknownFactor/colorthief/pkg/colorthief"
)

// DominantExtractor delegates to cenkalti/dominantcolor, which clusters a
// downscaled copy of the image. Filtering options do not apply.
type DominantExtractor struct {
	logger hclog.Logger
}

// NewDominantExtractor creates a new DominantExtractor.
func NewDominantExtractor(logger hclog.Logger) *DominantExtractor {
	return &DominantExtractor{logger: logger.Named("dominant")}
}

// Extract returns up to config.ColorCount colours ordered by weight.
func (e *DominantExtractor) Extract(img image.Image, config ExtractorConfig) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if err := config.Options.Validate(); err != nil {
		return nil, err
	}

	found := dominantcolor.FindWeight(img, config.ColorCount)
	e.logger.Debug("dominant colours found", "requested", config.ColorCount, "found", len(found))
	if len(found) == 0 {
		return config.defaultPalette()
	}

	colors := make([]colorthief.Color, len(found))
	weights := make([]float64, len(found))
	for i, c := range found {
		colors[i] = colorthief.ColorFrom(c.RGBA)
		weights[i] = c.Weight
	}
	return NewPaletteWithWeights(colors, weights), nil
}
