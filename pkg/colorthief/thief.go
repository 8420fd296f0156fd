package colorthief

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format
	_ "image/jpeg" // Register JPEG format
	_ "image/png"  // Register PNG format
	"io"

	"github.com/hashicorp/go-hclog"
	_ "golang.org/x/image/webp" // Register WebP format
)

// DominantPaletteSize is the palette size used internally to pick a single
// dominant colour. A one-box palette is just the mean of the whole image.
const DominantPaletteSize = 5

// Options controls a single extraction.
type Options struct {
	// ColorCount is the maximum palette size, 1 to MaxColors. Color and
	// ColorDistribution ignore it.
	ColorCount int

	// Quality is the sampling stride: 1 visits every pixel, n every nth.
	Quality int

	// ExcludeWhite drops almost white pixels.
	ExcludeWhite bool

	// ExcludeBlack drops almost black pixels.
	ExcludeBlack bool
}

// DefaultOptions returns the default extraction options.
func DefaultOptions() Options {
	return Options{
		ColorCount:   10,
		Quality:      1,
		ExcludeWhite: true,
		ExcludeBlack: true,
	}
}

// Validate validates the options.
func (o Options) Validate() error {
	if o.Quality < 1 {
		return fmt.Errorf("%w: quality must be at least 1, got %d", ErrInvalidParameter, o.Quality)
	}
	if o.ColorCount < 1 {
		return fmt.Errorf("%w: colour count must be at least 1, got %d", ErrInvalidParameter, o.ColorCount)
	}
	if o.ColorCount > MaxColors {
		return fmt.Errorf("%w: colour count too large: %d (maximum: %d)", ErrInvalidParameter, o.ColorCount, MaxColors)
	}
	return nil
}

func (o Options) filter() Filter {
	return Filter{ExcludeWhite: o.ExcludeWhite, ExcludeBlack: o.ExcludeBlack}
}

// Option configures a ColorThief.
type Option func(*ColorThief)

// WithDefaultColor sets the colour returned when no pixel is usable.
func WithDefaultColor(c Color) Option {
	return func(t *ColorThief) {
		t.defaultColor = &c
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(logger hclog.Logger) Option {
	return func(t *ColorThief) {
		if logger != nil {
			t.logger = logger
		}
	}
}

// WithPopulationFraction enables two-phase box ordering, see
// Quantizer.PopulationFraction.
func WithPopulationFraction(f float64) Option {
	return func(t *ColorThief) {
		t.populationFraction = f
	}
}

// ColorThief extracts colours from one image. It holds no mutable state and
// is safe for concurrent use.
type ColorThief struct {
	pixels             []Pixel
	defaultColor       *Color
	populationFraction float64
	logger             hclog.Logger
}

// New creates a ColorThief over already decoded pixels.
func New(pixels []Pixel, opts ...Option) *ColorThief {
	t := &ColorThief{
		pixels: pixels,
		logger: hclog.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// FromImage creates a ColorThief over img.
func FromImage(img image.Image, opts ...Option) *ColorThief {
	return New(PixelsFromImage(img), opts...)
}

// FromReader decodes an image from r with the registered codecs.
func FromReader(r io.Reader, opts ...Option) (*ColorThief, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image (format: %s): %w", format, err)
	}
	return FromImage(img, opts...), nil
}

// DefaultColor returns the configured fallback colour, if any.
func (t *ColorThief) DefaultColor() (Color, bool) {
	if t.defaultColor == nil {
		return Color{}, false
	}
	return *t.defaultColor, true
}

// Quantize runs the full pipeline and returns the raw colour map. It returns
// ErrEmptyInput when no pixel survives, regardless of the default colour.
func (t *ColorThief) Quantize(opts Options) (*ColorMap, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	hist, err := BuildHistogram(t.pixels, opts.Quality, opts.filter())
	if err != nil {
		return nil, err
	}
	t.logger.Debug("built histogram", "pixels", len(t.pixels), "quality", opts.Quality,
		"sampled", hist.Total(), "distinct", hist.Len())
	if hist.Empty() {
		return nil, ErrEmptyInput
	}

	q := Quantizer{
		MaxColors:          opts.ColorCount,
		PopulationFraction: t.populationFraction,
		Logger:             t.logger.Named("quantizer"),
	}
	cmap, err := q.Quantize(hist)
	if err != nil {
		return nil, err
	}
	t.logger.Debug("quantized", "requested", opts.ColorCount, "boxes", cmap.Len())
	return cmap, nil
}

// Palette returns up to opts.ColorCount representative colours in the order
// the quantizer produced them.
func (t *ColorThief) Palette(opts Options) ([]Color, error) {
	cmap, err := t.quantizeOrDefault(opts)
	if err != nil {
		return nil, err
	}
	if cmap == nil {
		return []Color{*t.defaultColor}, nil
	}
	return cmap.Palette(), nil
}

// PaletteDistribution is Palette with the sample count of every colour.
func (t *ColorThief) PaletteDistribution(opts Options) ([]Swatch, error) {
	cmap, err := t.quantizeOrDefault(opts)
	if err != nil {
		return nil, err
	}
	if cmap == nil {
		return []Swatch{{Color: *t.defaultColor}}, nil
	}
	return cmap.Distribution(), nil
}

// Color returns the dominant colour: the average of the most populous box of
// a DominantPaletteSize palette.
func (t *ColorThief) Color(opts Options) (Color, error) {
	s, err := t.ColorDistribution(opts)
	if err != nil {
		return Color{}, err
	}
	return s.Color, nil
}

// ColorDistribution is Color with the sample count of the dominant box.
func (t *ColorThief) ColorDistribution(opts Options) (Swatch, error) {
	opts.ColorCount = DominantPaletteSize
	cmap, err := t.quantizeOrDefault(opts)
	if err != nil {
		return Swatch{}, err
	}
	if cmap == nil {
		return Swatch{Color: *t.defaultColor}, nil
	}
	return cmap.Dominant(), nil
}

// quantizeOrDefault returns a nil map without error when the input is empty
// and a default colour is configured.
func (t *ColorThief) quantizeOrDefault(opts Options) (*ColorMap, error) {
	cmap, err := t.Quantize(opts)
	if err == nil {
		return cmap, nil
	}
	if errors.Is(err, ErrEmptyInput) && t.defaultColor != nil {
		t.logger.Debug("no usable pixels, using default colour", "color", t.defaultColor.Hex())
		return nil, nil
	}
	return nil, err
}
