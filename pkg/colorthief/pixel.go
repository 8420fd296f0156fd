package colorthief

import (
	"fmt"
	"image"
	"image/color"
)

// Pixel is one decoded 8-bit RGBA sample.
type Pixel struct {
	R, G, B, A uint8
}

// PixelsFromImage flattens img into row-major, non-premultiplied pixels.
func PixelsFromImage(img image.Image) []Pixel {
	bounds := img.Bounds()
	pixels := make([]Pixel, 0, bounds.Dx()*bounds.Dy())

	// Fast path for the common in-memory layout.
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
			i := nrgba.PixOffset(bounds.Min.X, y)
			for x := bounds.Min.X; x < bounds.Max.X; x++ {
				pixels = append(pixels, Pixel{nrgba.Pix[i], nrgba.Pix[i+1], nrgba.Pix[i+2], nrgba.Pix[i+3]})
				i += 4
			}
		}
		return pixels
	}

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels = append(pixels, Pixel{c.R, c.G, c.B, c.A})
		}
	}
	return pixels
}

// PixelsFromRGBA splits a packed RGBA byte slice into pixels.
// The slice length must be a multiple of 4.
func PixelsFromRGBA(data []byte) ([]Pixel, error) {
	if len(data)%4 != 0 {
		return nil, fmt.Errorf("%w: RGBA data length %d is not a multiple of 4", ErrInvalidParameter, len(data))
	}
	pixels := make([]Pixel, len(data)/4)
	for i := range pixels {
		j := i * 4
		pixels[i] = Pixel{data[j], data[j+1], data[j+2], data[j+3]}
	}
	return pixels, nil
}

// Filter decides which pixels take part in quantization.
type Filter struct {
	ExcludeWhite bool
	ExcludeBlack bool
}

// Keep reports whether p survives the filter. Pixels with alpha below
// AlphaThreshold never survive.
func (f Filter) Keep(p Pixel) bool {
	if p.A < AlphaThreshold {
		return false
	}
	c := Color{R: p.R, G: p.G, B: p.B}
	if f.ExcludeWhite && c.IsWhite() {
		return false
	}
	if f.ExcludeBlack && c.IsBlack() {
		return false
	}
	return true
}

// Apply returns the pixels that survive the filter, in input order.
func (f Filter) Apply(pixels []Pixel) []Pixel {
	kept := make([]Pixel, 0, len(pixels))
	for _, p := range pixels {
		if f.Keep(p) {
			kept = append(kept, p)
		}
	}
	return kept
}
