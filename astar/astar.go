package astar

import (
	"errors"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/tilepath/openset"
	"github.com/katalvlaran/tilepath/tilemap"
)

// ShortestPath computes an optimal route from start to goal over m, using ws
// as the open set. See the package documentation for the outcome contract.
//
// The route is not returned as a slice: it is delivered through
// m.MarkShortest, goal first, with the step count from the goal.
func ShortestPath(m tilemap.PathMap, start, goal tilemap.Point, ws tilemap.Workspace) (int, error) {
	s := searcher{
		m:     m,
		start: start,
		goal:  goal,
		open:  openset.New(ws, m),
	}

	if err := s.search(); err != nil {
		if errors.Is(err, tilemap.ErrOutOfWorkspace) {
			s.debug("open set exhausted", ws.Slots())
			return OutOfWorkspace, err
		}
		return NoPath, err
	}

	length, err := s.reconstruct()
	if err != nil {
		s.debug("gradient chain broken", length)
		return CorruptRoute, err
	}
	return length, nil
}

// searcher holds the state of one ShortestPath call.
type searcher struct {
	m           tilemap.PathMap
	start, goal tilemap.Point
	open        openset.Heap
}

// search runs the main A* loop. It returns nil once the goal is at the top
// of the open set.
func (s *searcher) search() error {
	m := s.m
	m.ClearDistance()
	m.SetDistance(s.start, 0)
	m.SetHeuristic(s.start, tilemap.Chebyshev(s.start, s.goal))
	m.SetGradient(s.start, tilemap.NoDirection)
	if err := s.open.Push(s.start); err != nil {
		return err
	}

	for s.open.Len() > 0 {
		cur := s.open.Pop()
		if cur == s.goal {
			return nil
		}

		tentative := m.Distance(cur) + 1
		for _, d := range tilemap.Directions {
			next, ok := cur.Neighbor(d)
			back := d.Inverse()
			if !ok || !m.Passable(next, back) {
				continue
			}
			if old := m.Distance(next); old != tilemap.Unreached && old <= tentative {
				continue
			}
			m.SetGradient(next, back)
			m.SetDistance(next, tentative)
			m.SetHeuristic(next, tentative+tilemap.Chebyshev(next, s.goal))
			if err := s.open.Push(next); err != nil {
				return err
			}
		}
	}
	return tilemap.ErrNoPath
}

// reconstruct walks the gradient chain from goal back to start through
// MarkShortest. The walk is bounded by the goal's distance so a broken
// chain fails instead of looping.
func (s *searcher) reconstruct() (int, error) {
	limit := s.m.Distance(s.goal)
	p := s.goal
	var steps int32
	for p != s.start {
		if steps >= limit {
			return int(steps), tilemap.ErrCorruptRoute
		}
		next, ok := p.Neighbor(s.m.MarkShortest(p, steps))
		if !ok {
			return int(steps), tilemap.ErrCorruptRoute
		}
		p = next
		steps++
	}
	s.m.MarkShortest(p, steps)
	return int(steps), nil
}

func (s *searcher) debug(msg string, n int) {
	if ce := Logger().Check(zapcore.DebugLevel, msg); ce != nil {
		ce.Write(
			zap.Stringer("start", s.start),
			zap.Stringer("goal", s.goal),
			zap.Int("n", n),
		)
	}
}
