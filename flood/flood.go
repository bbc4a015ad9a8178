package flood

import (
	"fmt"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tilepath/tilemap"
)

// Seed stores p at ws[head] and returns head+1. It fails with
// tilemap.ErrOutOfWorkspace when ws has no free slot left.
func Seed(ws tilemap.Workspace, head int, p tilemap.Point) (int, error) {
	if head < 0 || head > len(ws) {
		return head, fmt.Errorf("%w: %d of %d", ErrBadHead, head, len(ws))
	}
	if head == len(ws) {
		return head, tilemap.ErrOutOfWorkspace
	}
	ws[head] = p
	return head + 1, nil
}

// Flood computes distances from the seeds in ws[:head] over m.
//
// It returns nil when every reachable tile was visited, or
// tilemap.ErrOutOfWorkspace when the queue filled up first; in that case the
// distances of all tiles already dequeued remain valid.
func Flood(m tilemap.FloodMap, ws tilemap.Workspace, head int) error {
	if head < 0 || head > len(ws) {
		return fmt.Errorf("%w: %d of %d", ErrBadHead, head, len(ws))
	}
	router, _ := m.(tilemap.Router)

	m.ClearDistance()
	for _, p := range ws[:head] {
		m.SetDistance(p, 0)
		if router != nil {
			router.SetGradient(p, tilemap.NoDirection)
		}
	}

	q := queue{ws: ws, head: head % max(len(ws), 1), count: head}
	for q.count > 0 {
		cur := q.pop()
		next := m.Distance(cur) + 1
		for _, d := range tilemap.Directions {
			n, ok := cur.Neighbor(d)
			back := d.Inverse()
			if !ok || !m.Passable(n, back) || m.Distance(n) != tilemap.Unreached {
				continue
			}
			if !q.push(n) {
				if ce := Logger().Check(zapcore.DebugLevel, "flood queue exhausted"); ce != nil {
					ce.Write(zap.Int("slots", len(ws)), zap.Stringer("at", cur))
				}
				return tilemap.ErrOutOfWorkspace
			}
			m.SetDistance(n, next)
			if router != nil {
				router.SetGradient(n, back)
			}
		}
	}
	return nil
}

// queue is a fixed ring over a Workspace: pop at tail, push at head.
type queue struct {
	ws         tilemap.Workspace
	head, tail int
	count      int
}

func (q *queue) push(p tilemap.Point) bool {
	if q.count == len(q.ws) {
		return false
	}
	q.ws[q.head] = p
	q.head = (q.head + 1) % len(q.ws)
	q.count++
	return true
}

func (q *queue) pop() tilemap.Point {
	p := q.ws[q.tail]
	q.tail = (q.tail + 1) % len(q.ws)
	q.count--
	return p
}
