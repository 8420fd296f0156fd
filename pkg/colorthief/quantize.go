package colorthief

import (
	"container/heap"
	"fmt"
	"math"
	"slices"

	"github.com/hashicorp/go-hclog"
)

// MaxColors is the largest palette the quantizer produces.
const MaxColors = 256

// Quantizer partitions a histogram into at most MaxColors boxes by repeated
// median cuts.
type Quantizer struct {
	// MaxColors is the number of boxes to aim for.
	MaxColors int

	// PopulationFraction, when positive, makes the first
	// ceil(PopulationFraction*MaxColors) boxes be chosen by population alone
	// before switching to volume times population.
	PopulationFraction float64

	Logger hclog.Logger
}

// Quantize splits h into boxes. It returns fewer boxes than requested when
// nothing more can be split.
func (q Quantizer) Quantize(h *Histogram) (*ColorMap, error) {
	if q.MaxColors < 1 || q.MaxColors > MaxColors {
		return nil, fmt.Errorf("%w: colour count must be between 1 and %d, got %d", ErrInvalidParameter, MaxColors, q.MaxColors)
	}
	if q.PopulationFraction < 0 || q.PopulationFraction > 1 {
		return nil, fmt.Errorf("%w: population fraction must be between 0 and 1, got %g", ErrInvalidParameter, q.PopulationFraction)
	}
	if h == nil || h.Empty() {
		return nil, ErrEmptyInput
	}
	logger := q.Logger
	if logger == nil {
		logger = hclog.NewNullLogger()
	}

	s := &splitter{queue: boxQueue{key: byVolumePopulation}, logger: logger}
	root := NewBox(h)
	s.add(root)

	if q.PopulationFraction > 0 {
		target := int(math.Ceil(q.PopulationFraction * float64(q.MaxColors)))
		s.run(min(target, q.MaxColors), byPopulation)
	}
	s.run(q.MaxColors, byVolumePopulation)

	return newColorMap(s.leaves()), nil
}

// Priority keys for the split queue.
func byPopulation(b *Box) int64 {
	return int64(b.Population())
}

func byVolumePopulation(b *Box) int64 {
	return int64(b.Volume()) * int64(b.Population())
}

type splitter struct {
	queue  boxQueue
	frozen []*Box
	count  int
	seq    int
	logger hclog.Logger
}

func (s *splitter) add(b *Box) {
	b.seq = s.seq
	s.seq++
	s.count++
	if b.splittable() {
		heap.Push(&s.queue, b)
	} else {
		s.frozen = append(s.frozen, b)
	}
}

// run splits boxes in priority order until target boxes exist or the queue
// is exhausted.
func (s *splitter) run(target int, key func(*Box) int64) {
	s.queue.key = key
	heap.Init(&s.queue)

	for s.count < target && s.queue.Len() > 0 {
		b := heap.Pop(&s.queue).(*Box)
		left, right, ok := b.split()
		if !ok {
			s.frozen = append(s.frozen, b)
			continue
		}
		s.count--
		s.logger.Trace("split box", "axis", b.WidestAxis(), "population", b.Population(),
			"left", left.Population(), "right", right.Population())
		s.add(left)
		s.add(right)
	}
}

// leaves returns every remaining box in production order.
func (s *splitter) leaves() []*Box {
	boxes := append(append(make([]*Box, 0, len(s.queue.items)+len(s.frozen)), s.queue.items...), s.frozen...)
	slices.SortFunc(boxes, func(a, b *Box) int { return a.seq - b.seq })
	return boxes
}

// boxQueue is a max-heap on key, earliest production first on ties.
type boxQueue struct {
	items []*Box
	key   func(*Box) int64
}

func (q boxQueue) Len() int { return len(q.items) }

func (q boxQueue) Less(i, j int) bool {
	ki, kj := q.key(q.items[i]), q.key(q.items[j])
	if ki != kj {
		return ki > kj
	}
	return q.items[i].seq < q.items[j].seq
}

func (q boxQueue) Swap(i, j int) { q.items[i], q.items[j] = q.items[j], q.items[i] }

func (q *boxQueue) Push(x any) { q.items = append(q.items, x.(*Box)) }

func (q *boxQueue) Pop() any {
	old := q.items
	n := len(old)
	b := old[n-1]
	old[n-1] = nil
	q.items = old[:n-1]
	return b
}
