package cli

import (
	"fmt"
	"image"
	"os"
	"strconv"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/UserUnknownFactor/colorthief/internal/colour"
	imageutil "github.com/UserUnknownFactor/colorthief/internal/image"
	"github.com/UserUnknownFactor/colorthief/pkg/colorthief"
)

// Environment variables consulted when the matching flag is not set.
const (
	envQuality      = "COLORTHIEF_QUALITY"
	envDefaultColor = "COLORTHIEF_DEFAULT_COLOR"
)

// Output formats.
const (
	formatHex  = "hex"
	formatRGB  = "rgb"
	formatJSON = "json"
)

// extractFlags are the flags shared by the color and palette commands.
type extractFlags struct {
	quality      int
	noWhite      bool
	noBlack      bool
	dist         bool
	defaultColor string
	format       string
	preview      bool
	maxSize      int
}

func (f *extractFlags) register(fs *pflag.FlagSet) {
	fs.IntVarP(&f.quality, "quality", "q", 1, "sample every Nth pixel (1 = every pixel, env "+envQuality+")")
	fs.BoolVar(&f.noWhite, "no-white", true, "ignore near-white pixels")
	fs.BoolVar(&f.noBlack, "no-black", true, "ignore near-black pixels")
	fs.BoolVar(&f.dist, "dist", false, "include pixel counts and shares")
	fs.StringVar(&f.defaultColor, "default-color", "", "colour reported when no pixels remain, as #rrggbb or a name (env "+envDefaultColor+")")
	fs.StringVarP(&f.format, "format", "f", formatHex, "output format (hex, rgb, json)")
	fs.BoolVar(&f.preview, "preview", false, "show colour previews in terminal")
	fs.IntVar(&f.maxSize, "max-size", 0, "downscale so the longer side is at most N pixels (0 disables)")
}

// resolve applies environment fallbacks for unset flags and validates the
// output format.
func (f *extractFlags) resolve(fs *pflag.FlagSet) error {
	if !fs.Changed("quality") {
		if v := os.Getenv(envQuality); v != "" {
			q, err := strconv.Atoi(v)
			if err != nil {
				return fmt.Errorf("invalid %s: %w", envQuality, err)
			}
			f.quality = q
		}
	}
	if !fs.Changed("default-color") {
		if v := os.Getenv(envDefaultColor); v != "" {
			f.defaultColor = v
		}
	}

	switch f.format {
	case formatHex, formatRGB, formatJSON:
	default:
		return fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", f.format)
	}
	if f.maxSize < 0 {
		return fmt.Errorf("--max-size must not be negative")
	}
	return nil
}

func (f *extractFlags) options(colorCount int) colorthief.Options {
	return colorthief.Options{
		ColorCount:   colorCount,
		Quality:      f.quality,
		ExcludeWhite: f.noWhite,
		ExcludeBlack: f.noBlack,
	}
}

// fallback parses --default-color as hex or a colour name; nil means no
// default.
func (f *extractFlags) fallback() (*colorthief.Color, error) {
	if f.defaultColor == "" {
		return nil, nil
	}
	if c, ok := colour.LookupColourName(f.defaultColor); ok {
		return &c, nil
	}
	c, err := colorthief.ParseHex(f.defaultColor)
	if err != nil {
		return nil, fmt.Errorf("invalid default colour: %w", err)
	}
	return &c, nil
}

// showPreview reports whether ANSI previews should be printed.
func (f *extractFlags) showPreview() bool {
	return f.preview && colour.SupportsANSIColours()
}

// loadImage loads source and applies --max-size.
func (a *app) loadImage(cmd *cobra.Command, source string, maxSize int) (image.Image, error) {
	loader := imageutil.NewSmartLoader(cmd.InOrStdin(), a.logger.Named("loader"))
	img, err := loader.Load(cmd.Context(), source)
	if err != nil {
		return nil, fmt.Errorf("failed to load image: %w", err)
	}

	bounds := img.Bounds()
	a.logger.Debug("image loaded", "source", source, "width", bounds.Dx(), "height", bounds.Dy())

	if maxSize > 0 {
		img = imageutil.Resize(img, maxSize)
		if img.Bounds() != bounds {
			a.logger.Debug("image downscaled", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
		}
	}
	return img, nil
}
