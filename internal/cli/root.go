// Package cli provides the command-line interface for colorthief.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/UserUnknownFactor/colorthief/internal/version"
)

// app carries state shared by every subcommand of one invocation.
type app struct {
	verbose bool
	quiet   bool
	logger  hclog.Logger
}

// NewRootCmd builds the colorthief command tree.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "colorthief",
		Short: "Grab the dominant colour or a colour palette from an image",
		Long: `colorthief extracts the dominant colour, or a small palette of representative
colours, from an image using modified median cut quantization.

Images can be read from a local file, standard input ("-") or an HTTPS URL,
and may be gzip, bzip2, xz or zstd compressed.

Supported image formats: JPEG, PNG, GIF, WebP`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			a.logger = newLogger(cmd.ErrOrStderr(), a.verbose, a.quiet)
			return nil
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVar(&a.quiet, "quiet", false, "suppress non-error output")
	rootCmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newColorCmd(a))
	rootCmd.AddCommand(newPaletteCmd(a))

	return rootCmd
}

// Execute runs the root command and exits non-zero on failure.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newLogger(w io.Writer, verbose, quiet bool) hclog.Logger {
	level := hclog.Info
	switch {
	case verbose:
		level = hclog.Debug
	case quiet:
		level = hclog.Error
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colorthief",
		Level:  level,
		Output: w,
	})
}

func newVersionCmd() *cobra.Command {
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if !asJSON {
				fmt.Fprintln(cmd.OutOrStdout(), version.String())
				return nil
			}
			data, err := json.MarshalIndent(version.GetInfo(), "", "  ")
			if err != nil {
				return fmt.Errorf("failed to encode version info: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), string(data))
			return nil
		},
	}
	cmd.Flags().BoolVar(&asJSON, "json", false, "print version information as JSON")
	return cmd
}
