package search

import (
	"fmt"

	"github.com/katalvlaran/mazebfs/grid"
)

// queueItem pairs a frontier cell with its distance from the start.
type queueItem struct {
	pos   grid.Position
	depth int
}

type phase uint8

const (
	exploring phase = iota
	tracing
	finished
)

// Stepper runs breadth-first search one step at a time. Each call to Next
// performs exactly the work up to the next observable event and then
// suspends, so a host can pace, render or abandon the run between steps.
//
// The Stepper mutates g in place: discovered cells become Visited (except
// the end), and every cell on the final path becomes Path. Start and end
// are assumed valid; see ValidateEndpoints.
type Stepper struct {
	g          *grid.Grid
	start, end grid.Position
	opts       Options

	phase   phase
	queue   []queueItem
	visited map[grid.Position]bool
	parent  map[grid.Position]grid.Position

	// expansion in progress
	cur     queueItem
	nbrs    []grid.Position
	nbrNext int

	path    []grid.Position
	pathIdx int
	res     Result
}

// NewStepper prepares a search of g from start to end. Only the hook
// options (OnEnqueue, OnDequeue) apply; pacing and cancellation belong to
// whoever calls Next.
func NewStepper(g *grid.Grid, start, end grid.Position, opts ...Option) *Stepper {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	n := g.Rows() * g.Cols()
	s := &Stepper{
		g:       g,
		start:   start,
		end:     end,
		opts:    o,
		queue:   make([]queueItem, 0, n),
		visited: make(map[grid.Position]bool, n),
		parent:  make(map[grid.Position]grid.Position, n),
		res:     Result{Order: make([]grid.Position, 0, n)},
	}
	s.enqueue(start, 0)

	return s
}

// Next advances to the next step and returns its event. It returns false
// once the search is over; Result then holds the outcome.
func (s *Stepper) Next() (Event, bool) {
	for {
		switch s.phase {
		case exploring:
			if ev, ok := s.nextDiscovery(); ok {
				return ev, true
			}
			if len(s.queue) == 0 {
				s.phase = finished
				continue
			}
			item := s.dequeue()
			if item.pos == s.end {
				s.res.Found = true
				s.path = s.trace()
				s.phase = tracing
				continue
			}
			s.cur = item
			s.nbrs = s.g.Neighbors(item.pos)
			s.nbrNext = 0
		case tracing:
			if s.pathIdx < len(s.path) {
				p := s.path[s.pathIdx]
				s.pathIdx++
				s.g.Set(p, grid.Path)
				return s.emit(StepPath, p), true
			}
			s.res.Path = s.path
			s.phase = finished
		default:
			return Event{}, false
		}
	}
}

// Done reports whether the search has finished.
func (s *Stepper) Done() bool { return s.phase == finished }

// Result returns the outcome so far. It is final once Done reports true.
func (s *Stepper) Result() *Result {
	r := s.res
	return &r
}

// nextDiscovery scans the remaining neighbors of the cell being expanded
// and discovers the first walkable, unseen one.
func (s *Stepper) nextDiscovery() (Event, bool) {
	for s.nbrNext < len(s.nbrs) {
		n := s.nbrs[s.nbrNext]
		s.nbrNext++
		if !s.g.IsWalkable(n) || s.visited[n] {
			continue
		}
		s.parent[n] = s.cur.pos
		s.enqueue(n, s.cur.depth+1)
		if n != s.end {
			s.g.Set(n, grid.Visited)
		}
		return s.emit(StepVisit, n), true
	}
	return Event{}, false
}

// enqueue marks pos visited at depth d, calls OnEnqueue and appends it
// to the frontier.
func (s *Stepper) enqueue(pos grid.Position, d int) {
	s.visited[pos] = true
	s.res.Order = append(s.res.Order, pos)
	s.opts.OnEnqueue(pos, d)
	s.queue = append(s.queue, queueItem{pos: pos, depth: d})
}

// dequeue pops the oldest frontier item and calls OnDequeue.
func (s *Stepper) dequeue() queueItem {
	item := s.queue[0]
	s.queue = s.queue[1:]
	s.opts.OnDequeue(item.pos, item.depth)
	return item
}

// trace walks parent links back from the end and returns start → end.
func (s *Stepper) trace() []grid.Position {
	path := []grid.Position{s.end}
	for cur := s.end; cur != s.start; {
		prev, ok := s.parent[cur]
		if !ok {
			break
		}
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

func (s *Stepper) emit(kind StepKind, p grid.Position) Event {
	s.res.Steps++
	return Event{Kind: kind, Pos: p, Index: s.res.Steps, g: s.g}
}

// Run searches g from start to end, mutating g in place, and returns the
// outcome. For each step it calls OnStep and then awaits the Scheduler
// before continuing.
//
// A nil error with Found == false means no path exists. A non-nil error
// means the run was abandoned: the context was cancelled, the Scheduler
// failed, or OnStep returned an error (wrapped). The partial Result is
// returned alongside the error.
//
// Start and end must satisfy ValidateEndpoints; Run does not check them.
func Run(g *grid.Grid, start, end grid.Position, opts ...Option) (*Result, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	s := NewStepper(g, start, end, opts...)

	for {
		if err := o.Ctx.Err(); err != nil {
			return s.Result(), err
		}
		ev, ok := s.Next()
		if !ok {
			return s.Result(), nil
		}
		if err := o.OnStep(ev); err != nil {
			return s.Result(), fmt.Errorf("search: OnStep error at %v: %w", ev.Pos, err)
		}
		if err := o.Scheduler.Await(o.Ctx); err != nil {
			return s.Result(), err
		}
	}
}
