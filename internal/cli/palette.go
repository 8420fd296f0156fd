package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/UserUnknownFactor/colorthief/internal/colour"
)

// paletteFlags extends the shared flags with palette-only settings.
type paletteFlags struct {
	extractFlags
	colours   int
	algorithm string
	sort      string
	swatch    string
	output    string
}

func newPaletteCmd(a *app) *cobra.Command {
	var flags paletteFlags

	cmd := &cobra.Command{
		Use:   "palette <image>",
		Short: "Extract a colour palette from an image",
		Long: `Extract a colour palette from an image.

The default mediancut algorithm is deterministic and lists colours in the
order the quantizer produced them. kmeans and dominant are alternative back
ends for comparison.

Examples:
  # Extract 10 colours (default)
  colorthief palette wallpaper.jpg

  # Extract 6 colours, darkest first, with terminal previews
  colorthief palette -c 6 --sort luminance --preview wallpaper.jpg

  # Show each colour's share of the image
  colorthief palette --dist wallpaper.jpg

  # JSON output written to a file, plus a PNG swatch strip
  colorthief palette -f json -o palette.json --swatch palette.png wallpaper.jpg

  # Use k-means clustering instead of median cut
  colorthief palette --algorithm kmeans https://example.com/photo.webp`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPalette(cmd, args[0], &flags)
		},
	}

	flags.register(cmd.Flags())
	cmd.Flags().IntVarP(&flags.colours, "colours", "c", 10, "number of colours to extract (1-256)")
	cmd.Flags().StringVarP(&flags.algorithm, "algorithm", "a", string(colour.AlgorithmMedianCut), "extraction algorithm (mediancut, kmeans, dominant)")
	cmd.Flags().StringVar(&flags.sort, "sort", string(colour.SortNone), "colour order (none, luminance, population)")
	cmd.Flags().StringVar(&flags.swatch, "swatch", "", "also write the palette as a PNG swatch strip")
	cmd.Flags().StringVarP(&flags.output, "output", "o", "", "output file (default: stdout)")
	return cmd
}

// runPalette executes the palette command.
func (a *app) runPalette(cmd *cobra.Command, source string, flags *paletteFlags) error {
	if err := flags.resolve(cmd.Flags()); err != nil {
		return err
	}
	fallback, err := flags.fallback()
	if err != nil {
		return err
	}

	config := colour.DefaultExtractorConfig()
	config.Algorithm = colour.Algorithm(flags.algorithm)
	config.Options = flags.options(flags.colours)
	config.DefaultColor = fallback
	if err := config.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	order, err := colour.ParseSortOrder(flags.sort)
	if err != nil {
		return err
	}

	img, err := a.loadImage(cmd, source, flags.maxSize)
	if err != nil {
		return err
	}

	extractor, err := colour.NewExtractor(config.Algorithm, a.logger)
	if err != nil {
		return fmt.Errorf("failed to create extractor: %w", err)
	}

	a.logger.Debug("extracting palette", "algorithm", config.Algorithm, "colours", config.ColorCount, "quality", config.Quality)
	palette, err := extractor.Extract(img, config)
	if err != nil {
		return fmt.Errorf("failed to extract colours: %w", err)
	}

	palette, err = palette.Sort(order)
	if err != nil {
		return err
	}
	a.logger.Debug("palette extracted", "colours", palette.Len())

	if flags.swatch != "" {
		if err := colour.SaveSwatch(palette, 0, flags.swatch); err != nil {
			return err
		}
		a.logger.Info("wrote swatch", "path", flags.swatch)
	}

	output, err := formatPalette(palette, flags.format, flags.dist, flags.showPreview())
	if err != nil {
		return err
	}

	if flags.output == "" {
		fmt.Fprint(cmd.OutOrStdout(), output)
		return nil
	}
	if err := os.WriteFile(flags.output, []byte(output), 0o644); err != nil { // #nosec G306 - palette output is not sensitive
		return fmt.Errorf("failed to write output file: %w", err)
	}
	a.logger.Info("wrote palette", "path", flags.output)
	return nil
}
