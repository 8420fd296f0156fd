package colour

import (
	"fmt"
	"image"
	"math"
	"slices"

	"github.com/hashicorp/go-hclog"
	"github.com/muesli/clusters"
	"github.com/muesli/kmeans"

	"github.com/UserUnknownFactor/colorthief/pkg/colorthief"
)

// KMeansExtractor implements colour extraction using k-means clustering.
type KMeansExtractor struct {
	maxSamples int
	logger     hclog.Logger
}

// NewKMeansExtractor creates a new KMeansExtractor with default settings.
func NewKMeansExtractor(logger hclog.Logger) *KMeansExtractor {
	return &KMeansExtractor{
		maxSamples: 12000, // Limit total samples for performance
		logger:     logger.Named("kmeans"),
	}
}

// Extract clusters the sampled pixels and returns the cluster centres,
// most populous first. Results are not deterministic across runs.
func (e *KMeansExtractor) Extract(img image.Image, config ExtractorConfig) (*Palette, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if err := config.Options.Validate(); err != nil {
		return nil, err
	}

	pixels := samplePixels(img, config.Options)
	if len(pixels) == 0 {
		return config.defaultPalette()
	}

	// Thin out large inputs on top of the quality stride.
	step := 1
	if len(pixels) > e.maxSamples {
		step = int(math.Ceil(float64(len(pixels)) / float64(e.maxSamples)))
	}
	dataset := make(clusters.Observations, 0, len(pixels)/step+1)
	for i := 0; i < len(pixels); i += step {
		p := pixels[i]
		dataset = append(dataset, clusters.Coordinates{float64(p.R), float64(p.G), float64(p.B)})
	}

	k := min(config.ColorCount, len(dataset))
	e.logger.Debug("partitioning", "observations", len(dataset), "k", k)
	cc, err := kmeans.New().Partition(dataset, k)
	if err != nil {
		return nil, fmt.Errorf("k-means partitioning failed: %w", err)
	}

	// Sort by cluster population so dominant colours come first.
	slices.SortStableFunc(cc, func(a, b clusters.Cluster) int {
		return len(b.Observations) - len(a.Observations)
	})

	swatches := make([]colorthief.Swatch, 0, len(cc))
	for _, c := range cc {
		if len(c.Observations) == 0 || len(c.Center) < 3 {
			continue
		}
		swatches = append(swatches, colorthief.Swatch{
			Color: colorthief.Color{
				R: clampChannel(c.Center[0]),
				G: clampChannel(c.Center[1]),
				B: clampChannel(c.Center[2]),
			},
			Count: len(c.Observations) * step,
		})
	}
	return NewPaletteFromSwatches(swatches), nil
}

// clampChannel rounds v to the nearest valid 8-bit channel value.
func clampChannel(v float64) uint8 {
	return uint8(math.Max(0, math.Min(255, math.Round(v))))
}
