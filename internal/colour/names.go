package colour

import (
	"strings"

	"github.com/UserUnknownFactor/colorthief/pkg/colorthief"
)

// NamedColour is a terminal or common colour name with its typical RGB value.
type NamedColour struct {
	Name    string
	Color   colorthief.Color
	Aliases []string
}

// namedColours holds the xterm basic 16 colours followed by common names.
// Actual terminals may vary slightly.
var namedColours = []NamedColour{
	// Normal colours (0-7).
	{Name: "black", Color: colorthief.Color{R: 0, G: 0, B: 0}, Aliases: []string{"color0"}},
	{Name: "red", Color: colorthief.Color{R: 205, G: 49, B: 49}, Aliases: []string{"color1"}},
	{Name: "green", Color: colorthief.Color{R: 13, G: 188, B: 121}, Aliases: []string{"color2"}},
	{Name: "yellow", Color: colorthief.Color{R: 229, G: 229, B: 16}, Aliases: []string{"color3"}},
	{Name: "blue", Color: colorthief.Color{R: 36, G: 114, B: 200}, Aliases: []string{"color4"}},
	{Name: "magenta", Color: colorthief.Color{R: 188, G: 63, B: 188}, Aliases: []string{"color5", "purple"}},
	{Name: "cyan", Color: colorthief.Color{R: 17, G: 168, B: 205}, Aliases: []string{"color6"}},
	{Name: "white", Color: colorthief.Color{R: 229, G: 229, B: 229}, Aliases: []string{"color7", "gray", "grey"}},

	// Bright colours (8-15).
	{Name: "brightblack", Color: colorthief.Color{R: 102, G: 102, B: 102}, Aliases: []string{"color8", "darkgray", "darkgrey"}},
	{Name: "brightred", Color: colorthief.Color{R: 241, G: 76, B: 76}, Aliases: []string{"color9"}},
	{Name: "brightgreen", Color: colorthief.Color{R: 35, G: 209, B: 139}, Aliases: []string{"color10"}},
	{Name: "brightyellow", Color: colorthief.Color{R: 245, G: 245, B: 67}, Aliases: []string{"color11"}},
	{Name: "brightblue", Color: colorthief.Color{R: 59, G: 142, B: 234}, Aliases: []string{"color12"}},
	{Name: "brightmagenta", Color: colorthief.Color{R: 214, G: 112, B: 214}, Aliases: []string{"color13", "brightpurple"}},
	{Name: "brightcyan", Color: colorthief.Color{R: 41, G: 184, B: 219}, Aliases: []string{"color14"}},
	{Name: "brightwhite", Color: colorthief.Color{R: 255, G: 255, B: 255}, Aliases: []string{"color15"}},

	// Additional common colour names.
	{Name: "orange", Color: colorthief.Color{R: 255, G: 165, B: 0}},
	{Name: "pink", Color: colorthief.Color{R: 255, G: 192, B: 203}},
	{Name: "brown", Color: colorthief.Color{R: 165, G: 42, B: 42}},
	{Name: "lime", Color: colorthief.Color{R: 0, G: 255, B: 0}},
	{Name: "navy", Color: colorthief.Color{R: 0, G: 0, B: 128}, Aliases: []string{"darkblue"}},
	{Name: "teal", Color: colorthief.Color{R: 0, G: 128, B: 128}, Aliases: []string{"darkcyan"}},
	{Name: "maroon", Color: colorthief.Color{R: 128, G: 0, B: 0}, Aliases: []string{"darkred"}},
	{Name: "olive", Color: colorthief.Color{R: 128, G: 128, B: 0}, Aliases: []string{"darkyellow"}},
	{Name: "violet", Color: colorthief.Color{R: 238, G: 130, B: 238}},
	{Name: "indigo", Color: colorthief.Color{R: 75, G: 0, B: 130}},
}

// LookupColourName resolves a colour name or alias. Matching ignores case,
// spaces and dashes.
func LookupColourName(name string) (colorthief.Color, bool) {
	normalised := strings.ToLower(strings.NewReplacer(" ", "", "-", "").Replace(name))
	for _, nc := range namedColours {
		if nc.Name == normalised {
			return nc.Color, true
		}
		for _, alias := range nc.Aliases {
			if alias == normalised {
				return nc.Color, true
			}
		}
	}
	return colorthief.Color{}, false
}

// NearestColourName returns the name whose colour is closest to c in RGB.
// Earlier entries win ties.
func NearestColourName(c colorthief.Color) string {
	best, bestDist := "", -1
	for _, nc := range namedColours {
		dr := int(c.R) - int(nc.Color.R)
		dg := int(c.G) - int(nc.Color.G)
		db := int(c.B) - int(nc.Color.B)
		if d := dr*dr + dg*dg + db*db; bestDist < 0 || d < bestDist {
			best, bestDist = nc.Name, d
		}
	}
	return best
}

// ColourNames returns every supported name and alias.
func ColourNames() []string {
	names := make([]string, 0, len(namedColours)*2)
	for _, nc := range namedColours {
		names = append(names, nc.Name)
		names = append(names, nc.Aliases...)
	}
	return names
}
