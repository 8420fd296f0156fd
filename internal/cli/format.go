package cli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/UserUnknownFactor/colorthief/internal/colour"
	"github.com/UserUnknownFactor/colorthief/pkg/colorthief"
)

const previewWidth = 8

// swatchJSON is the JSON form of the color command's result.
type swatchJSON struct {
	Hex   string           `json:"hex"`
	RGB   colorthief.Color `json:"rgb"`
	Count *int             `json:"count,omitempty"`
}

// formatColor renders a single colour in the hex or rgb format.
func formatColor(c colorthief.Color, format string) string {
	if format == formatRGB {
		return c.String()
	}
	return c.Hex()
}

// formatSwatch formats the color command's result.
func formatSwatch(s colorthief.Swatch, format string, dist, showPreview bool) (string, error) {
	switch format {
	case formatHex, formatRGB:
		line := formatColor(s.Color, format)
		if dist {
			line += "  " + strconv.Itoa(s.Count)
		}
		if showPreview {
			line = colour.ColourPreview(s.Color, previewWidth) + " " + line
		}
		return line + "\n", nil
	case formatJSON:
		out := swatchJSON{Hex: s.Color.Hex(), RGB: s.Color}
		if dist {
			out.Count = &s.Count
		}
		data, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(data) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

// formatPalette formats the palette according to the specified format.
// With dist the hex and rgb formats become a table of shares.
func formatPalette(p *colour.Palette, format string, dist, showPreview bool) (string, error) {
	switch format {
	case formatHex, formatRGB:
		if dist {
			return formatDistTable(p, format, showPreview), nil
		}
		var b strings.Builder
		for _, c := range p.Colors {
			if showPreview {
				b.WriteString(colour.ColourPreview(c, previewWidth) + " ")
			}
			b.WriteString(formatColor(c, format) + "\n")
		}
		return b.String(), nil
	case formatJSON:
		jsonBytes, err := p.ToJSON()
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(jsonBytes) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: hex, rgb, json)", format)
	}
}

func formatDistTable(p *colour.Palette, format string, showPreview bool) string {
	headers := []string{"#", "Colour", "Share", "Name"}
	if showPreview {
		// Last column, so escape codes never skew padding.
		headers = append(headers, "Preview")
	}

	table := NewTable(headers)
	table.SetAlignRight(0)
	table.SetAlignRight(2)
	for i, c := range p.Colors {
		row := []string{
			strconv.Itoa(i + 1),
			formatColor(c, format),
			fmt.Sprintf("%.2f%%", p.Weight(i)*100),
			colour.NearestColourName(c),
		}
		if showPreview {
			row = append(row, colour.ColourPreview(c, previewWidth))
		}
		table.AddRow(row)
	}
	return table.Render()
}
