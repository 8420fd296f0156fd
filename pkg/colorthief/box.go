package colorthief

// Axis is a colour channel a box can be split along.
type Axis int

// Axes in tie-break priority order.
const (
	AxisRed Axis = iota
	AxisGreen
	AxisBlue
)

func (a Axis) String() string {
	switch a {
	case AxisRed:
		return "red"
	case AxisGreen:
		return "green"
	default:
		return "blue"
	}
}

// Box is an axis-aligned region of the quantized colour cube together with
// the histogram it draws its counts from. Ranges are inclusive quantized
// values. A Box never changes after construction.
type Box struct {
	hist   *Histogram
	lo, hi [3]uint8

	population int
	sums       [3]uint64

	// seq is the production order assigned by the quantizer.
	seq int
}

// NewBox returns the box covering every signature in h.
func NewBox(h *Histogram) *Box {
	return newBox(h, h.lo, h.hi)
}

func newBox(h *Histogram, lo, hi [3]uint8) *Box {
	b := &Box{hist: h, lo: lo, hi: hi}
	b.visit(func(sig Signature, _ [3]uint8) {
		b.population += int(h.counts[sig])
		for i := range b.sums {
			b.sums[i] += h.sums[sig][i]
		}
	})
	return b
}

// visit calls fn for every occupied signature inside the box.
func (b *Box) visit(fn func(sig Signature, q [3]uint8)) {
	for r := int(b.lo[0]); r <= int(b.hi[0]); r++ {
		for g := int(b.lo[1]); g <= int(b.hi[1]); g++ {
			for bl := int(b.lo[2]); bl <= int(b.hi[2]); bl++ {
				q := [3]uint8{uint8(r), uint8(g), uint8(bl)}
				sig := signature(q[0], q[1], q[2])
				if b.hist.counts[sig] > 0 {
					fn(sig, q)
				}
			}
		}
	}
}

// Population returns the number of samples inside the box.
func (b *Box) Population() int {
	return b.population
}

// Volume returns the number of quantized cells the box spans.
func (b *Box) Volume() int {
	v := 1
	for i := range b.lo {
		v *= int(b.hi[i]) - int(b.lo[i]) + 1
	}
	return v
}

// WidestAxis returns the channel with the largest extent. Ties go to red,
// then green.
func (b *Box) WidestAxis() Axis {
	axis := AxisRed
	for _, a := range []Axis{AxisGreen, AxisBlue} {
		if b.extent(a) > b.extent(axis) {
			axis = a
		}
	}
	return axis
}

func (b *Box) extent(a Axis) int {
	return int(b.hi[a]) - int(b.lo[a])
}

// Average returns the count-weighted mean colour of the box's samples. An
// empty box yields the midpoint of its range.
func (b *Box) Average() Color {
	if b.population == 0 {
		var c [3]uint8
		for i := range c {
			c[i] = uint8((int(b.lo[i]) + int(b.hi[i]) + 1) << RShift / 2)
		}
		return Color{R: c[0], G: c[1], B: c[2]}
	}
	n := uint64(b.population)
	return Color{
		R: uint8(b.sums[0] / n),
		G: uint8(b.sums[1] / n),
		B: uint8(b.sums[2] / n),
	}
}

// Contains reports whether p quantizes into the box.
func (b *Box) Contains(p Pixel) bool {
	q := [3]uint8{p.R >> RShift, p.G >> RShift, p.B >> RShift}
	for i, v := range q {
		if v < b.lo[i] || v > b.hi[i] {
			return false
		}
	}
	return true
}

// Bounds returns the box's per-channel ranges expanded back to 8-bit values.
func (b *Box) Bounds() (lo, hi [3]uint8) {
	for i := range b.lo {
		lo[i] = b.lo[i] << RShift
		hi[i] = b.hi[i]<<RShift | (1<<RShift - 1)
	}
	return lo, hi
}

// splittable reports whether the box has more than one sample spread over
// more than one signature.
func (b *Box) splittable() bool {
	return b.population > 1 && b.extent(b.WidestAxis()) > 0
}

// split cuts the box along its widest axis at the population median. Both
// children are tightened to the signatures they hold. ok is false when no cut
// leaves both sides populated.
func (b *Box) split() (left, right *Box, ok bool) {
	if !b.splittable() {
		return nil, nil, false
	}
	axis := b.WidestAxis()
	lo, hi := int(b.lo[axis]), int(b.hi[axis])

	planes := make([]int, hi-lo+1)
	b.visit(func(sig Signature, q [3]uint8) {
		planes[int(q[axis])-lo] += int(b.hist.counts[sig])
	})

	cut := -1
	running := 0
	for i, n := range planes {
		running += n
		if 2*running >= b.population {
			cut = i
			break
		}
	}
	// Cutting after the last plane would leave the right side empty, so move
	// back to the previous occupied plane.
	if cut == len(planes)-1 {
		cut = -1
		for i := len(planes) - 2; i >= 0; i-- {
			if planes[i] > 0 {
				cut = i
				break
			}
		}
	}
	if cut < 0 {
		return nil, nil, false
	}

	leftHi, rightLo := b.hi, b.lo
	leftHi[axis] = uint8(lo + cut)
	rightLo[axis] = uint8(lo + cut + 1)

	left = newBox(b.hist, b.lo, leftHi).tighten()
	right = newBox(b.hist, rightLo, b.hi).tighten()
	if left.population == 0 || right.population == 0 {
		return nil, nil, false
	}
	return left, right, true
}

// tighten shrinks the ranges to the occupied signatures. Counts are
// unchanged.
func (b *Box) tighten() *Box {
	if b.population == 0 {
		return b
	}
	lo := [3]uint8{sigMax, sigMax, sigMax}
	var hi [3]uint8
	b.visit(func(_ Signature, q [3]uint8) {
		for i, v := range q {
			lo[i] = min(lo[i], v)
			hi[i] = max(hi[i], v)
		}
	})
	b.lo, b.hi = lo, hi
	return b
}
