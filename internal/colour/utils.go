// Package colour provides utility functions for colour manipulation and analysis.
package colour

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/UserUnknownFactor/colorthief/pkg/colorthief"
)

// Luminance calculates the relative luminance of a colour according to WCAG 2.0.
// Returns a value between 0 (darkest) and 1 (lightest).
// https://www.w3.org/TR/WCAG20/#relativeluminancedef.
func Luminance(c colorthief.Color) float64 {
	cf, _ := colorful.MakeColor(c)
	r, g, b := cf.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b
}

// ContrastRatio calculates the contrast ratio between two colours according to WCAG 2.0.
// Returns a value between 1 and 21, where 21 is maximum contrast (black vs white).
func ContrastRatio(c1, c2 colorthief.Color) float64 {
	l1 := Luminance(c1)
	l2 := Luminance(c2)

	// Ensure l1 is the lighter colour.
	if l1 < l2 {
		l1, l2 = l2, l1
	}

	return (l1 + 0.05) / (l2 + 0.05)
}

// RenderSwatch draws the palette as a strip of square tiles, one per colour.
func RenderSwatch(p *Palette, tileSize int) (*image.RGBA, error) {
	if p.Len() == 0 {
		return nil, fmt.Errorf("empty palette")
	}
	if tileSize <= 0 {
		tileSize = 64
	}

	img := image.NewRGBA(image.Rect(0, 0, tileSize*p.Len(), tileSize))
	for i, c := range p.Colors {
		fill := color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}
		x0 := i * tileSize
		for y := 0; y < tileSize; y++ {
			for x := x0; x < x0+tileSize; x++ {
				img.SetRGBA(x, y, fill)
			}
		}
	}
	return img, nil
}

// SaveSwatch renders the palette with RenderSwatch and writes it as PNG.
func SaveSwatch(p *Palette, tileSize int, path string) error {
	img, err := RenderSwatch(p, tileSize)
	if err != nil {
		return err
	}

	f, err := os.Create(path) // #nosec G304 - User-specified output path
	if err != nil {
		return fmt.Errorf("failed to create swatch file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("failed to encode swatch: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close swatch file: %w", err)
	}
	return nil
}
