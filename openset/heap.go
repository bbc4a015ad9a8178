package openset

import (
	"math"

	"github.com/katalvlaran/tilepath/tilemap"
)

// Heap is a fixed-capacity min-heap of Points ordered by Scorer.Heuristic.
// Keys are read from the Scorer on every comparison and each Point occupies
// at most one slot. The zero value is an empty heap with no capacity.
type Heap struct {
	items  tilemap.Workspace
	count  int
	scorer tilemap.Scorer
}

// New returns an empty Heap backed by ws and keyed by s.
func New(ws tilemap.Workspace, s tilemap.Scorer) Heap {
	return Heap{items: ws, scorer: s}
}

// Len returns the number of queued Points.
func (h *Heap) Len() int { return h.count }

// Cap returns the number of slots in the backing Workspace.
func (h *Heap) Cap() int { return len(h.items) }

// Reset empties the heap without touching the Workspace.
func (h *Heap) Reset() { h.count = 0 }

// Peek returns the minimum Point. The heap must not be empty.
func (h *Heap) Peek() tilemap.Point {
	return h.items[0]
}

// Push inserts p and sifts it up by its current heuristic. A Point that is
// already queued is not duplicated: its slot is sifted up instead, so a
// caller that lowers a queued Point's key must push it again.
// It returns tilemap.ErrOutOfWorkspace, leaving the heap unchanged,
// when p is new and every slot is in use.
func (h *Heap) Push(p tilemap.Point) error {
	for i := 0; i < h.count; i++ {
		if h.items[i] == p {
			h.up(i)
			return nil
		}
	}
	if h.count == len(h.items) {
		return tilemap.ErrOutOfWorkspace
	}

	n := h.count
	h.count++
	h.items[n] = p
	h.up(n)
	return nil
}

// up moves slot n toward the root while its key beats its parent's.
func (h *Heap) up(n int) {
	f := h.scorer.Heuristic(h.items[n])
	for n > 0 {
		parent := (n - 1) / 2
		if f >= h.scorer.Heuristic(h.items[parent]) {
			break
		}
		h.swap(n, parent)
		n = parent
	}
}

// Pop removes and returns the minimum Point. The heap must not be empty.
// When both children tie, the left one is preferred.
func (h *Heap) Pop() tilemap.Point {
	top := h.items[0]
	h.count--
	if h.count == 0 {
		return top
	}

	h.items[0] = h.items[h.count]
	f := int64(h.scorer.Heuristic(h.items[0]))
	n := 0
	for {
		left, right := 2*n+1, 2*n+2
		lf, rf := h.key(left), h.key(right)
		switch {
		case lf < f && lf <= rf:
			h.swap(n, left)
			n = left
		case rf < f && rf < lf:
			h.swap(n, right)
			n = right
		default:
			return top
		}
	}
}

// key returns the heuristic at slot i, or +inf past the end.
func (h *Heap) key(i int) int64 {
	if i >= h.count {
		return math.MaxInt64
	}
	return int64(h.scorer.Heuristic(h.items[i]))
}

func (h *Heap) swap(a, b int) {
	h.items[a], h.items[b] = h.items[b], h.items[a]
}
