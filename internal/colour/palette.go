// Package colour provides colour extraction back ends and palette formatting.
package colour

import (
	"encoding/json"
	"fmt"
	"slices"

	"github.com/UserUnknownFactor/colorthief/pkg/colorthief"
)

// Palette represents a collection of colours extracted from an image.
// Weights, when present, hold each colour's share of the image and sum to
// roughly 1.
type Palette struct {
	Colors  []colorthief.Color
	Weights []float64
}

// NewPalette creates a new Palette with the given colours.
func NewPalette(colors []colorthief.Color) *Palette {
	return &Palette{
		Colors: colors,
	}
}

// NewPaletteWithWeights creates a new Palette with colours and their weights.
func NewPaletteWithWeights(colors []colorthief.Color, weights []float64) *Palette {
	return &Palette{
		Colors:  colors,
		Weights: weights,
	}
}

// NewPaletteFromSwatches creates a weighted Palette from quantizer swatches.
// Swatches with a zero total keep zero weights.
func NewPaletteFromSwatches(swatches []colorthief.Swatch) *Palette {
	total := 0
	for _, s := range swatches {
		total += s.Count
	}
	colors := make([]colorthief.Color, len(swatches))
	weights := make([]float64, len(swatches))
	for i, s := range swatches {
		colors[i] = s.Color
		weights[i] = s.Share(total)
	}
	return NewPaletteWithWeights(colors, weights)
}

// Len returns the number of colours in the palette.
func (p *Palette) Len() int {
	return len(p.Colors)
}

// Weight returns the weight of the colour at index i, or 0 when unweighted.
func (p *Palette) Weight(i int) float64 {
	if i < 0 || i >= len(p.Weights) {
		return 0
	}
	return p.Weights[i]
}

// ToHex converts the palette colours to hex strings.
func (p *Palette) ToHex() []string {
	hexColors := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		hexColors[i] = c.Hex()
	}
	return hexColors
}

// ColorJSON represents a colour in JSON output format.
type ColorJSON struct {
	Hex    string           `json:"hex"`
	RGB    colorthief.Color `json:"rgb"`
	Weight float64          `json:"weight,omitempty"`
}

// PaletteJSON represents the palette in JSON format.
type PaletteJSON struct {
	Count  int         `json:"count"`
	Colors []ColorJSON `json:"colors"`
}

// ToJSON converts the palette to JSON format.
func (p *Palette) ToJSON() ([]byte, error) {
	colors := make([]ColorJSON, len(p.Colors))
	for i, c := range p.Colors {
		colors[i] = ColorJSON{
			Hex:    c.Hex(),
			RGB:    c,
			Weight: p.Weight(i),
		}
	}

	return json.MarshalIndent(PaletteJSON{
		Count:  len(p.Colors),
		Colors: colors,
	}, "", "  ")
}

// String returns a human-readable string representation of the palette.
func (p *Palette) String() string {
	if len(p.Colors) == 0 {
		return "Empty palette"
	}

	result := fmt.Sprintf("Palette with %d colours:\n", len(p.Colors))
	for i, c := range p.Colors {
		result += fmt.Sprintf("  %2d: %s (%s)\n", i+1, c.Hex(), c.String())
	}
	return result
}

// Get returns the colour at the specified index.
func (p *Palette) Get(index int) (colorthief.Color, error) {
	if index < 0 || index >= len(p.Colors) {
		return colorthief.Color{}, fmt.Errorf("index out of bounds: %d (palette has %d colours)", index, len(p.Colors))
	}
	return p.Colors[index], nil
}

// All returns an iterator over all colours in the palette.
func (p *Palette) All() func(func(int, colorthief.Color) bool) {
	return func(yield func(int, colorthief.Color) bool) {
		for i, c := range p.Colors {
			if !yield(i, c) {
				return
			}
		}
	}
}

// SortOrder selects how a palette is reordered before output.
type SortOrder string

const (
	// SortNone keeps the extractor's order.
	SortNone SortOrder = "none"

	// SortLuminance orders colours from darkest to brightest.
	SortLuminance SortOrder = "luminance"

	// SortWeight orders colours from heaviest to lightest weight.
	SortWeight SortOrder = "population"
)

// ParseSortOrder validates s as a SortOrder. The empty string means SortNone.
func ParseSortOrder(s string) (SortOrder, error) {
	switch order := SortOrder(s); order {
	case SortNone, SortLuminance, SortWeight:
		return order, nil
	case "":
		return SortNone, nil
	default:
		return "", fmt.Errorf("unknown sort order: %s (valid: none, luminance, population)", s)
	}
}

// Sort returns a copy of the palette reordered by order. Ties keep their
// original relative order.
func (p *Palette) Sort(order SortOrder) (*Palette, error) {
	order, err := ParseSortOrder(string(order))
	if err != nil {
		return nil, err
	}

	idx := make([]int, len(p.Colors))
	for i := range idx {
		idx[i] = i
	}

	switch order {
	case SortLuminance:
		slices.SortStableFunc(idx, func(a, b int) int {
			return compareFloat(Luminance(p.Colors[a]), Luminance(p.Colors[b]))
		})
	case SortWeight:
		slices.SortStableFunc(idx, func(a, b int) int {
			return compareFloat(p.Weight(b), p.Weight(a))
		})
	}

	sorted := &Palette{Colors: make([]colorthief.Color, len(idx))}
	if p.Weights != nil {
		sorted.Weights = make([]float64, len(idx))
	}
	for i, j := range idx {
		sorted.Colors[i] = p.Colors[j]
		if p.Weights != nil {
			sorted.Weights[i] = p.Weight(j)
		}
	}
	return sorted, nil
}

func compareFloat(a, b float64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
