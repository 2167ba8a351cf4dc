// Package session owns the state a maze visualizer host works with: the
// loaded grid, the chosen start and end cells, the speed preset, and the
// run generation that decides which search run is authoritative.
//
// Every run searches its own copy of the loaded layout. Starting a run,
// loading a maze or resetting bumps the generation and cancels the run in
// flight; a superseded run notices at its next resumption point, stops
// with ErrSuperseded and delivers no further callbacks.
package session

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazebfs/grid"
	"github.com/katalvlaran/mazebfs/pace"
	"github.com/katalvlaran/mazebfs/search"
)

// ErrSuperseded ends a run that a newer run, load or reset replaced.
var ErrSuperseded = errors.New("session: run superseded")

// Observer receives the output events of a run.
//
// Snapshots of all runs are delivered one at a time, so OnCellsChanged
// must not wait for another run to make progress (Session.Run or
// Run.Wait on a newer run). Starting, loading or resetting from it is fine.
//
// OnSearchComplete is called after the run has released the session. It
// may start and wait for a new run, but not Wait on its own run. A newer
// run may already be delivering snapshots; Outcome.Generation tells them
// apart.
type Observer interface {
	// OnCellsChanged receives a snapshot after every visit or path step.
	OnCellsChanged(snapshot *grid.Grid)
	// OnSearchComplete fires once when a run finishes.
	OnSearchComplete(outcome Outcome)
}

// ObserverFuncs adapts plain functions to Observer. Nil fields are skipped.
type ObserverFuncs struct {
	CellsChanged   func(snapshot *grid.Grid)
	SearchComplete func(outcome Outcome)
}

// OnCellsChanged implements Observer.
func (f ObserverFuncs) OnCellsChanged(snapshot *grid.Grid) {
	if f.CellsChanged != nil {
		f.CellsChanged(snapshot)
	}
}

// OnSearchComplete implements Observer.
func (f ObserverFuncs) OnSearchComplete(outcome Outcome) {
	if f.SearchComplete != nil {
		f.SearchComplete(outcome)
	}
}

// Outcome is the terminal result of a run as seen by a host.
type Outcome struct {
	RunID      uuid.UUID
	Generation uint64
	Found      bool
	Path       []grid.Position
	// Visited counts visit steps.
	Visited int
}

// Option configures a Session.
type Option func(*Session)

// WithLogger sets the structured logger. Defaults to discarding output.
func WithLogger(l *slog.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithPreset sets the initial speed preset.
func WithPreset(p pace.Preset) Option {
	return func(s *Session) { s.preset = p }
}

// WithSchedulerFactory replaces how a run's Scheduler is built from the
// preset interval. Tests use it to run without delays.
func WithSchedulerFactory(fn func(interval time.Duration) search.Scheduler) Option {
	return func(s *Session) {
		if fn != nil {
			s.newScheduler = fn
		}
	}
}

// Session is safe for concurrent use. Observer callbacks run on the run's
// goroutine; see Observer for what they may call back into.
type Session struct {
	mu         sync.Mutex
	layout     *grid.Grid // pristine open/wall layout
	view       *grid.Grid // what the host should show right now
	start, end *grid.Position
	preset     pace.Preset
	gen        uint64
	cancel     context.CancelFunc

	// emitMu orders snapshot deliveries so a stale run's last snapshot
	// lands before a newer run delivers anything.
	emitMu sync.Mutex

	logger       *slog.Logger
	newScheduler func(time.Duration) search.Scheduler
}

// New creates a Session over a copy of g.
func New(g *grid.Grid, opts ...Option) *Session {
	s := &Session{
		layout: g.Clone(),
		view:   g.Clone(),
		preset: pace.DefaultPreset,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
		newScheduler: func(d time.Duration) search.Scheduler {
			return pace.NewTicker(d)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Grid returns a snapshot of what the host should currently display.
func (s *Session) Grid() *grid.Grid {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.view.Clone()
}

// Endpoints returns copies of the start and end, nil when unset.
func (s *Session) Endpoints() (start, end *grid.Position) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePos(s.start), clonePos(s.end)
}

// Generation returns the current run generation.
func (s *Session) Generation() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen
}

// Preset returns the speed preset the next run will use.
func (s *Session) Preset() pace.Preset {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.preset
}

// SetPreset changes the speed for the next run. A run in flight keeps
// the interval it started with.
func (s *Session) SetPreset(p pace.Preset) {
	s.mu.Lock()
	s.preset = p
	s.mu.Unlock()
	s.logger.Debug("speed changed", slog.String("preset", p.String()))
}

// SetSpeed parses a preset name and applies it. Unknown names fall back
// to pace.DefaultPreset and the parse error is returned.
func (s *Session) SetSpeed(name string) error {
	p, err := pace.ParsePreset(name)
	if err != nil {
		s.logger.Warn("unknown speed preset, using default",
			slog.String("name", name), slog.String("preset", p.String()))
	}
	s.SetPreset(p)
	return err
}

// Load replaces the maze. Start and end are cleared and any run in flight
// is superseded.
func (s *Session) Load(g *grid.Grid) {
	s.mu.Lock()
	s.supersedeLocked()
	s.layout = g.Clone()
	s.view = g.Clone()
	s.start, s.end = nil, nil
	gen := s.gen
	s.mu.Unlock()
	s.logger.Info("maze loaded",
		slog.Int("rows", g.Rows()), slog.Int("cols", g.Cols()), slog.Uint64("generation", gen))
}

// LoadText parses the custom text format and loads the result. A
// malformed input leaves the session untouched and returns an error
// matching grid.ErrMalformedGrid.
func (s *Session) LoadText(text string) error {
	g, err := grid.Parse(text)
	if err != nil {
		s.logger.Warn("custom maze rejected", slog.String("error", err.Error()))
		return err
	}
	s.Load(g)
	return nil
}

// Reset supersedes any run, clears run markings and both endpoints.
func (s *Session) Reset() {
	s.mu.Lock()
	s.supersedeLocked()
	s.view = s.layout.Clone()
	s.start, s.end = nil, nil
	gen := s.gen
	s.mu.Unlock()
	s.logger.Info("session reset", slog.Uint64("generation", gen))
}

// Select applies a pointer selection at p: the first selection sets the
// start, the second the end, and a third starts over with p as the start
// and no end. Walls and cells outside the grid are rejected with
// search.ErrInvalidEndpoints and leave the selection unchanged.
func (s *Session) Select(p grid.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkCellLocked(p); err != nil {
		return err
	}
	switch {
	case s.start == nil:
		s.start = &p
	case s.end == nil:
		s.end = &p
	default:
		s.start, s.end = &p, nil
	}
	return nil
}

// SetStart sets the start cell.
func (s *Session) SetStart(p grid.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkCellLocked(p); err != nil {
		return err
	}
	s.start = &p
	return nil
}

// SetEnd sets the end cell.
func (s *Session) SetEnd(p grid.Position) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.checkCellLocked(p); err != nil {
		return err
	}
	s.end = &p
	return nil
}

func (s *Session) checkCellLocked(p grid.Position) error {
	if !s.layout.InBounds(p) {
		return errors.Join(search.ErrInvalidEndpoints, search.ErrEndpointOutOfBounds)
	}
	if s.layout.At(p) == grid.Wall {
		return errors.Join(search.ErrInvalidEndpoints, search.ErrEndpointWall)
	}
	return nil
}

// supersedeLocked bumps the generation and cancels the run in flight.
func (s *Session) supersedeLocked() {
	s.gen++
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

func (s *Session) current(gen uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.gen == gen
}

// Run starts a search and waits for it. See Start.
func (s *Session) Run(ctx context.Context, obs Observer) (Outcome, error) {
	r, err := s.Start(ctx, obs)
	if err != nil {
		return Outcome{}, err
	}
	return r.Wait()
}

// Start validates the endpoints and launches a new run in the background,
// superseding any run in flight. The interval is read from the preset now
// and stays fixed for the whole run. Invalid endpoints are reported as
// search.ErrInvalidEndpoints before anything changes.
func (s *Session) Start(ctx context.Context, obs Observer) (*Run, error) {
	if obs == nil {
		obs = ObserverFuncs{}
	}

	s.mu.Lock()
	if err := search.ValidateEndpoints(s.layout, s.start, s.end); err != nil {
		s.mu.Unlock()
		return nil, err
	}
	s.supersedeLocked()
	runCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	work := s.layout.Clone()
	s.view = work.Clone()
	r := &Run{
		id:     uuid.New(),
		gen:    s.gen,
		start:  *s.start,
		end:    *s.end,
		cancel: cancel,
		done:   make(chan struct{}),
	}
	interval := s.preset.Interval()
	sched := &generationGate{inner: s.newScheduler(interval), s: s, gen: r.gen}
	s.mu.Unlock()

	log := s.logger.With(slog.String("run", r.id.String()), slog.Uint64("generation", r.gen))
	log.Info("run started",
		slog.String("start", r.start.String()), slog.String("end", r.end.String()),
		slog.Duration("interval", interval))

	go s.execute(runCtx, r, work, sched, obs, log)
	return r, nil
}

func (s *Session) execute(ctx context.Context, r *Run, work *grid.Grid, sched search.Scheduler, obs Observer, log *slog.Logger) {
	defer close(r.done)
	defer r.cancel()

	visited := 0
	res, err := search.Run(work, r.start, r.end,
		search.WithContext(ctx),
		search.WithScheduler(sched),
		search.WithOnStep(func(ev search.Event) error {
			if ev.Kind == search.StepVisit {
				visited++
			}
			return s.deliver(r.gen, func(snap *grid.Grid) { obs.OnCellsChanged(snap) }, ev.Snapshot())
		}),
	)
	r.outcome = Outcome{RunID: r.id, Generation: r.gen, Found: res.Found, Path: res.Path, Visited: visited}

	if err != nil {
		if !s.current(r.gen) {
			err = ErrSuperseded
		}
		r.err = err
		log.Debug("run abandoned", slog.String("reason", err.Error()), slog.Int("steps", res.Steps))
		return
	}

	// Staleness is settled under emitMu; the callback runs without it.
	s.emitMu.Lock()
	current := s.current(r.gen)
	s.emitMu.Unlock()
	if !current {
		r.err = ErrSuperseded
		log.Debug("run finished after being superseded")
		return
	}
	log.Info("run complete", slog.Bool("found", res.Found),
		slog.Int("path_len", res.Length()), slog.Int("visited", visited))
	obs.OnSearchComplete(r.outcome)
}

// deliver publishes a snapshot if gen is still current.
func (s *Session) deliver(gen uint64, fn func(*grid.Grid), snap *grid.Grid) error {
	s.emitMu.Lock()
	defer s.emitMu.Unlock()
	s.mu.Lock()
	if s.gen != gen {
		s.mu.Unlock()
		return ErrSuperseded
	}
	s.view = snap.Clone()
	s.mu.Unlock()
	fn(snap)
	return nil
}

// generationGate wraps a run's scheduler and refuses to resume a run whose
// generation is no longer current.
type generationGate struct {
	inner search.Scheduler
	s     *Session
	gen   uint64
}

func (g *generationGate) Await(ctx context.Context) error {
	if err := g.inner.Await(ctx); err != nil {
		return err
	}
	if !g.s.current(g.gen) {
		return ErrSuperseded
	}
	return nil
}

// Run is a handle on one search run.
type Run struct {
	id         uuid.UUID
	gen        uint64
	start, end grid.Position
	cancel     context.CancelFunc
	done       chan struct{}

	outcome Outcome
	err     error
}

// ID returns the run's unique identifier.
func (r *Run) ID() uuid.UUID { return r.id }

// Generation returns the generation the run was started under.
func (r *Run) Generation() uint64 { return r.gen }

// Done is closed when the run has stopped.
func (r *Run) Done() <-chan struct{} { return r.done }

// Cancel abandons the run at its next step boundary.
func (r *Run) Cancel() { r.cancel() }

// Wait blocks until the run stops. The error is nil when the run finished,
// ErrSuperseded when a newer run, load or reset replaced it, or the
// context error when it was cancelled.
func (r *Run) Wait() (Outcome, error) {
	<-r.done
	return r.outcome, r.err
}

func clonePos(p *grid.Position) *grid.Position {
	if p == nil {
		return nil
	}
	q := *p
	return &q
}
