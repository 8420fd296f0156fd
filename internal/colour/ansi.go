// Package colour provides colour extraction and palette generation functionality.
package colour

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/UserUnknownFactor/colorthief/pkg/colorthief"
)

// ANSI escape codes for terminal colours.
const (
	ansiReset    = "\033[0m"
	ansiFgPrefix = "\033[38;2;"
	ansiBgPrefix = "\033[48;2;"
	ansiSuffix   = "m"
	defaultWidth = 8
)

// ColourPreview returns an ANSI-coloured preview string for a colour.
// Width specifies how many characters wide the colour block should be.
func ColourPreview(c colorthief.Color, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	return bgColour + strings.Repeat(" ", width) + ansiReset
}

// ColourPreviewWithText returns a colour preview with text overlay.
// The text colour is chosen to have good contrast with the background.
func ColourPreviewWithText(c colorthief.Color, text string, width int) string {
	if width <= 0 {
		width = defaultWidth
	}

	fg := colorthief.Color{R: 255, G: 255, B: 255}
	if ContrastRatio(c, colorthief.Color{}) > ContrastRatio(c, fg) {
		fg = colorthief.Color{}
	}

	bgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiBgPrefix, c.R, c.G, c.B, ansiSuffix)
	fgColour := fmt.Sprintf("%s%d;%d;%d%s", ansiFgPrefix, fg.R, fg.G, fg.B, ansiSuffix)

	// Pad or truncate text to fit width.
	displayText := text
	if len(text) > width {
		displayText = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		displayText = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return bgColour + fgColour + displayText + ansiReset
}

// FormatColourWithPreview formats a colour with its preview and hex code.
func FormatColourWithPreview(c colorthief.Color, width int) string {
	return fmt.Sprintf("%s %s", ColourPreview(c, width), c.Hex())
}

// SupportsANSIColours reports whether stdout is a terminal and NO_COLOR is
// unset.
func SupportsANSIColours() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd())) // #nosec G115 - file descriptors fit in int
}
