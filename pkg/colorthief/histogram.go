package colorthief

import "fmt"

const (
	// SigBits is the number of significant bits kept per channel.
	SigBits = 5

	// RShift converts an 8-bit channel to its quantized value.
	RShift = 8 - SigBits

	histogramSize = 1 << (3 * SigBits)
	sigMax        = 1<<SigBits - 1
)

// Signature is the quantized colour key of a histogram bucket.
type Signature uint16

// SignatureOf quantizes r, g, b into a Signature.
func SignatureOf(r, g, b uint8) Signature {
	return signature(r>>RShift, g>>RShift, b>>RShift)
}

func signature(qr, qg, qb uint8) Signature {
	return Signature(qr)<<(2*SigBits) | Signature(qg)<<SigBits | Signature(qb)
}

// Channels returns the quantized channel values of s.
func (s Signature) Channels() (qr, qg, qb uint8) {
	return uint8(s >> (2 * SigBits) & sigMax), uint8(s >> SigBits & sigMax), uint8(s & sigMax)
}

// Histogram counts sampled pixels per Signature. Each bucket also keeps the
// channel sums of its members so averages do not lose the discarded bits.
// It is read-only once built.
type Histogram struct {
	counts   []uint32
	sums     [][3]uint64
	total    int
	distinct int
	lo, hi   [3]uint8
}

// BuildHistogram visits every quality-th pixel in order, drops the ones the
// filter rejects, and counts the rest by signature.
func BuildHistogram(pixels []Pixel, quality int, filter Filter) (*Histogram, error) {
	if quality < 1 {
		return nil, fmt.Errorf("%w: quality must be at least 1, got %d", ErrInvalidParameter, quality)
	}

	h := &Histogram{
		counts: make([]uint32, histogramSize),
		sums:   make([][3]uint64, histogramSize),
		lo:     [3]uint8{sigMax, sigMax, sigMax},
	}
	for i := 0; i < len(pixels); i += quality {
		p := pixels[i]
		if !filter.Keep(p) {
			continue
		}
		q := [3]uint8{p.R >> RShift, p.G >> RShift, p.B >> RShift}
		sig := signature(q[0], q[1], q[2])
		if h.counts[sig] == 0 {
			h.distinct++
		}
		h.counts[sig]++
		h.sums[sig][0] += uint64(p.R)
		h.sums[sig][1] += uint64(p.G)
		h.sums[sig][2] += uint64(p.B)
		h.total++
		for axis, v := range q {
			h.lo[axis] = min(h.lo[axis], v)
			h.hi[axis] = max(h.hi[axis], v)
		}
	}
	return h, nil
}

// Count returns the number of samples with signature s.
func (h *Histogram) Count(s Signature) int {
	return int(h.counts[s])
}

// Total returns the number of samples counted.
func (h *Histogram) Total() int {
	return h.total
}

// Len returns the number of distinct signatures.
func (h *Histogram) Len() int {
	return h.distinct
}

// Empty reports whether no pixel was counted.
func (h *Histogram) Empty() bool {
	return h.total == 0
}

// Signatures returns the occupied signatures in ascending order.
func (h *Histogram) Signatures() []Signature {
	sigs := make([]Signature, 0, h.distinct)
	for s, n := range h.counts {
		if n > 0 {
			sigs = append(sigs, Signature(s))
		}
	}
	return sigs
}
