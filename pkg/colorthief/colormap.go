package colorthief

import "math"

// ColorMap is the quantizer's result: non-empty boxes in the order they were
// produced, each with its average colour.
type ColorMap struct {
	boxes  []*Box
	colors []Color
}

func newColorMap(boxes []*Box) *ColorMap {
	m := &ColorMap{boxes: boxes, colors: make([]Color, len(boxes))}
	for i, b := range boxes {
		m.colors[i] = b.Average()
	}
	return m
}

// Len returns the number of boxes.
func (m *ColorMap) Len() int {
	return len(m.boxes)
}

// Boxes returns the result boxes in production order.
func (m *ColorMap) Boxes() []*Box {
	return append([]*Box(nil), m.boxes...)
}

// Palette returns the box colours in production order.
func (m *ColorMap) Palette() []Color {
	return append([]Color(nil), m.colors...)
}

// Distribution returns each box colour with its population.
func (m *ColorMap) Distribution() []Swatch {
	swatches := make([]Swatch, len(m.boxes))
	for i, b := range m.boxes {
		swatches[i] = Swatch{Color: m.colors[i], Count: b.Population()}
	}
	return swatches
}

// Total returns the population summed over all boxes.
func (m *ColorMap) Total() int {
	total := 0
	for _, b := range m.boxes {
		total += b.Population()
	}
	return total
}

// Dominant returns the swatch of the most populous box. The earliest box
// wins a tie.
func (m *ColorMap) Dominant() Swatch {
	best := 0
	for i, b := range m.boxes {
		if b.Population() > m.boxes[best].Population() {
			best = i
		}
	}
	return Swatch{Color: m.colors[best], Count: m.boxes[best].Population()}
}

// Nearest returns the palette colour closest to c in RGB space.
func (m *ColorMap) Nearest(c Color) Color {
	var nearest Color
	best := math.MaxFloat64
	for _, p := range m.colors {
		dr := float64(c.R) - float64(p.R)
		dg := float64(c.G) - float64(p.G)
		db := float64(c.B) - float64(p.B)
		if d := math.Sqrt(dr*dr + dg*dg + db*db); d < best {
			best = d
			nearest = p
		}
	}
	return nearest
}

// Map returns the colour of the first box containing c, falling back to
// Nearest.
func (m *ColorMap) Map(c Color) Color {
	p := Pixel{R: c.R, G: c.G, B: c.B, A: 255}
	for i, b := range m.boxes {
		if b.Contains(p) {
			return m.colors[i]
		}
	}
	return m.Nearest(c)
}
