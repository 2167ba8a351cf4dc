// Package search defines options, step events, results and sentinel
// errors for the paced breadth-first maze search.
package search

import (
	"context"
	"errors"

	"github.com/katalvlaran/mazebfs/grid"
)

// Sentinel errors for endpoint validation.
var (
	// ErrInvalidEndpoints is the umbrella error for a start/end pair that
	// must not be searched. It is always joined with a concrete reason.
	ErrInvalidEndpoints = errors.New("search: invalid endpoints")

	// ErrEndpointUnset means the start or the end has not been chosen.
	ErrEndpointUnset = errors.New("search: start and end must both be set")

	// ErrEndpointOutOfBounds means an endpoint lies outside the grid.
	ErrEndpointOutOfBounds = errors.New("search: endpoint outside the grid")

	// ErrEndpointWall means an endpoint references a wall cell.
	ErrEndpointWall = errors.New("search: endpoint is a wall")

	// ErrSameEndpoints means start and end are the same cell.
	ErrSameEndpoints = errors.New("search: start and end must differ")
)

// Scheduler paces step emission. pace.Ticker and pace.Immediate satisfy it.
type Scheduler interface {
	Await(ctx context.Context) error
}

type noWait struct{}

func (noWait) Await(ctx context.Context) error { return ctx.Err() }

// Option configures a search via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks that customize a search.
type Options struct {
	// Ctx allows cancellation. Run checks it before every step.
	Ctx context.Context

	// Scheduler is awaited after each emitted step. Defaults to no delay.
	Scheduler Scheduler

	// OnStep is called for every visit and path step, before pacing.
	// Returning an error abandons the run with that error.
	OnStep func(ev Event) error

	// OnEnqueue is called when a cell joins the frontier, with its
	// distance from the start.
	OnEnqueue func(pos grid.Position, depth int)

	// OnDequeue is called when a cell leaves the frontier for expansion.
	OnDequeue func(pos grid.Position, depth int)
}

// DefaultOptions returns Options with:
//   - context.Background()
//   - a Scheduler that never waits
//   - no-op hooks
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Scheduler: noWait{},
		OnStep:    func(Event) error { return nil },
		OnEnqueue: func(grid.Position, int) {},
		OnDequeue: func(grid.Position, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithScheduler sets the pacing between steps.
func WithScheduler(s Scheduler) Option {
	return func(o *Options) {
		if s != nil {
			o.Scheduler = s
		}
	}
}

// WithOnStep registers the per-step callback.
func WithOnStep(fn func(ev Event) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(pos grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(pos grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// StepKind tells visit steps from path steps.
type StepKind uint8

const (
	// StepVisit marks a cell discovered by the frontier.
	StepVisit StepKind = iota + 1
	// StepPath marks a cell confirmed on the shortest path.
	StepPath
)

func (k StepKind) String() string {
	switch k {
	case StepVisit:
		return "visit"
	case StepPath:
		return "path"
	default:
		return "unknown"
	}
}

// Event is one externally observable unit of search progress.
type Event struct {
	Kind StepKind
	Pos  grid.Position
	// Index counts emitted events from 1 within a run.
	Index int

	g *grid.Grid
}

// Grid returns the live grid after this step was applied. It is only
// valid until the callback returns; use Snapshot to keep it.
func (e Event) Grid() *grid.Grid { return e.g }

// Snapshot returns a copy of the grid as of this step.
func (e Event) Snapshot() *grid.Grid {
	if e.g == nil {
		return nil
	}
	return e.g.Clone()
}

// Result is the terminal outcome of a search.
//   - Found: whether the end was reached.
//   - Path: start → end inclusive, nil when not found.
//   - Order: discovery order, beginning with the start.
//   - Steps: number of events emitted.
type Result struct {
	Found bool
	Path  []grid.Position
	Order []grid.Position
	Steps int
}

// Length returns the path length in edges, or -1 when no path exists.
func (r *Result) Length() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}
