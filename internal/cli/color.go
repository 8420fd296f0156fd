package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/UserUnknownFactor/colorthief/pkg/colorthief"
)

func newColorCmd(a *app) *cobra.Command {
	var flags extractFlags

	cmd := &cobra.Command{
		Use:     "color <image>",
		Aliases: []string{"colour"},
		Short:   "Print the dominant colour of an image",
		Long: `Print the dominant colour of an image.

The image is quantized into a handful of boxes and the average colour of the
most populous box is reported.

Examples:
  # Dominant colour as hex
  colorthief color photo.jpg

  # Sample every 10th pixel and include the pixel count
  colorthief color -q 10 --dist photo.jpg

  # Fall back to a colour when the image is fully transparent
  colorthief color --default-color '#808080' icon.png

  # Read a compressed image from stdin
  zstd -c photo.png | colorthief color -`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runColor(cmd, args[0], &flags)
		},
	}

	flags.register(cmd.Flags())
	return cmd
}

// runColor executes the color command.
func (a *app) runColor(cmd *cobra.Command, source string, flags *extractFlags) error {
	if err := flags.resolve(cmd.Flags()); err != nil {
		return err
	}
	fallback, err := flags.fallback()
	if err != nil {
		return err
	}
	opts := flags.options(colorthief.DominantPaletteSize)
	if err := opts.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	img, err := a.loadImage(cmd, source, flags.maxSize)
	if err != nil {
		return err
	}

	thiefOpts := []colorthief.Option{colorthief.WithLogger(a.logger.Named("colorthief"))}
	if fallback != nil {
		thiefOpts = append(thiefOpts, colorthief.WithDefaultColor(*fallback))
	}

	swatch, err := colorthief.FromImage(img, thiefOpts...).ColorDistribution(opts)
	if err != nil {
		return fmt.Errorf("failed to extract colour: %w", err)
	}
	a.logger.Debug("dominant colour", "colour", swatch.Color.Hex(), "pixels", swatch.Count)

	output, err := formatSwatch(swatch, flags.format, flags.dist, flags.showPreview())
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), output)
	return nil
}
