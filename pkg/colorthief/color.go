// Package colorthief extracts a dominant colour or a representative palette
// from an image using modified median cut quantization.
package colorthief

import (
	"fmt"
	"image/color"

	"github.com/lucasb-eyer/go-colorful"
)

// Pixel filtering thresholds.
const (
	// WhiteThreshold is exceeded on every channel by an almost white pixel.
	WhiteThreshold = 0xF0

	// BlackThreshold is above every channel of an almost black pixel.
	BlackThreshold = 0x0F

	// AlphaThreshold is the minimum alpha for a pixel to count as opaque.
	AlphaThreshold = 100
)

// Color is an opaque RGB colour produced by the quantizer.
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// RGBA implements color.Color. The alpha channel is always fully opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 255}.RGBA()
}

// String returns the colour as "rgb(r, g, b)".
func (c Color) String() string {
	return fmt.Sprintf("rgb(%d, %d, %d)", c.R, c.G, c.B)
}

// Hex returns the colour as an upper-case "#RRGGBB" string.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

// Tuple returns the channels as ints in R, G, B order.
func (c Color) Tuple() [3]int {
	return [3]int{int(c.R), int(c.G), int(c.B)}
}

// IsWhite reports whether every channel is above WhiteThreshold.
func (c Color) IsWhite() bool {
	return c.R > WhiteThreshold && c.G > WhiteThreshold && c.B > WhiteThreshold
}

// IsBlack reports whether every channel is below BlackThreshold.
func (c Color) IsBlack() bool {
	return c.R < BlackThreshold && c.G < BlackThreshold && c.B < BlackThreshold
}

// Complement returns the hue complement obtained by subtracting each channel
// from the sum of the highest and lowest channel. Near-white maps to black and
// near-black maps to white.
func (c Color) Complement() Color {
	if c.IsWhite() {
		return Color{}
	}
	if c.IsBlack() {
		return Color{R: 0xFF, G: 0xFF, B: 0xFF}
	}
	k := int(min(c.R, c.G, c.B)) + int(max(c.R, c.G, c.B))
	return Color{
		R: uint8(k - int(c.R)),
		G: uint8(k - int(c.G)),
		B: uint8(k - int(c.B)),
	}
}

// ParseHex parses "#rrggbb" or "rrggbb" (case-insensitive) into a Color.
func ParseHex(s string) (Color, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}
	cf, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex colour %q: %w", s, err)
	}
	r, g, b := cf.RGB255()
	return Color{R: r, G: g, B: b}, nil
}

// ColorFrom converts any color.Color to a Color, dropping alpha.
func ColorFrom(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: n.R, G: n.G, B: n.B}
}

// Swatch pairs a colour with the number of sampled pixels it represents.
type Swatch struct {
	Color Color `json:"color"`
	Count int   `json:"count"`
}

// Share returns the swatch's fraction of total, or 0 when total is 0.
func (s Swatch) Share(total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(s.Count) / float64(total)
}
