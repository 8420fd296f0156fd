// Package colour provides colour extraction back ends and palette formatting.
package colour

import (
	"fmt"
	"image"

	"github.com/hashicorp/go-hclog"

	"github.com/UserUnknownFactor/colorthief/pkg/colorthief"
)

// Extractor defines the interface for colour extraction algorithms.
type Extractor interface {
	// Extract extracts a colour palette from an image.
	Extract(img image.Image, config ExtractorConfig) (*Palette, error)
}

// Algorithm represents the colour extraction algorithm type.
type Algorithm string

const (
	// AlgorithmMedianCut uses modified median cut quantization.
	AlgorithmMedianCut Algorithm = "mediancut"

	// AlgorithmKMeans uses k-means clustering for colour extraction.
	AlgorithmKMeans Algorithm = "kmeans"

	// AlgorithmDominant extracts the most dominant (frequent) colours.
	AlgorithmDominant Algorithm = "dominant"
)

// ValidAlgorithms returns a list of valid algorithm names.
func ValidAlgorithms() []Algorithm {
	return []Algorithm{
		AlgorithmMedianCut,
		AlgorithmKMeans,
		AlgorithmDominant,
	}
}

// IsValidAlgorithm checks if the given algorithm name is valid.
func IsValidAlgorithm(alg Algorithm) bool {
	for _, valid := range ValidAlgorithms() {
		if alg == valid {
			return true
		}
	}
	return false
}

// NewExtractor creates a new Extractor based on the specified algorithm.
func NewExtractor(alg Algorithm, logger hclog.Logger) (Extractor, error) {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	switch alg {
	case AlgorithmMedianCut:
		return NewMedianCutExtractor(logger), nil
	case AlgorithmKMeans:
		return NewKMeansExtractor(logger), nil
	case AlgorithmDominant:
		return NewDominantExtractor(logger), nil
	default:
		return nil, fmt.Errorf("unknown algorithm: %s (valid algorithms: %v)", alg, ValidAlgorithms())
	}
}

// ExtractorConfig holds configuration for colour extraction.
type ExtractorConfig struct {
	Algorithm Algorithm
	colorthief.Options

	// DefaultColor, when set, is returned instead of an empty-input error.
	DefaultColor *colorthief.Color
}

// DefaultExtractorConfig returns the default extractor configuration.
func DefaultExtractorConfig() ExtractorConfig {
	return ExtractorConfig{
		Algorithm: AlgorithmMedianCut,
		Options:   colorthief.DefaultOptions(),
	}
}

// Validate validates the extractor configuration.
func (c ExtractorConfig) Validate() error {
	if !IsValidAlgorithm(c.Algorithm) {
		return fmt.Errorf("invalid algorithm: %s", c.Algorithm)
	}
	return c.Options.Validate()
}

// defaultPalette returns the single-colour fallback palette, or
// colorthief.ErrEmptyInput when no default is configured.
func (c ExtractorConfig) defaultPalette() (*Palette, error) {
	if c.DefaultColor == nil {
		return nil, colorthief.ErrEmptyInput
	}
	return NewPalette([]colorthief.Color{*c.DefaultColor}), nil
}

// samplePixels applies the configured stride and filter to img.
func samplePixels(img image.Image, opts colorthief.Options) []colorthief.Pixel {
	pixels := colorthief.PixelsFromImage(img)
	filter := colorthief.Filter{ExcludeWhite: opts.ExcludeWhite, ExcludeBlack: opts.ExcludeBlack}
	sampled := make([]colorthief.Pixel, 0, len(pixels)/opts.Quality+1)
	for i := 0; i < len(pixels); i += opts.Quality {
		if filter.Keep(pixels[i]) {
			sampled = append(sampled, pixels[i])
		}
	}
	return sampled
}
