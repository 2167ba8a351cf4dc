package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazebfs/catalog"
	"github.com/katalvlaran/mazebfs/grid"
	"github.com/katalvlaran/mazebfs/pace"
	"github.com/katalvlaran/mazebfs/search"
	"github.com/katalvlaran/mazebfs/session"
)

type app struct {
	screen tcell.Screen
	sess   *session.Session
	logger *slog.Logger
	file   string // custom maze file, reloadable with c

	ctx    context.Context
	cancel context.CancelFunc

	maze    string // label of the loaded maze
	message string // last outcome or complaint
	pressed bool   // primary button held; drags do not re-select

	// Fed by run goroutines, drained by the UI loop.
	redraw   chan struct{}
	outcomes chan session.Outcome
}

// newApp loads the configured maze into a fresh session bound to screen.
// A custom maze file wins over the built-in name.
func newApp(screen tcell.Screen, cfg Config, logger *slog.Logger, opts ...session.Option) (*app, error) {
	name := cfg.Maze
	if cfg.File != "" {
		name = catalog.Names()[0]
	}
	g, err := catalog.Get(name)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithCancel(context.Background())
	a := &app{
		screen:   screen,
		sess:     session.New(g, append([]session.Option{session.WithLogger(logger)}, opts...)...),
		logger:   logger,
		file:     cfg.File,
		ctx:      ctx,
		cancel:   cancel,
		maze:     name,
		message:  "select a start cell",
		redraw:   make(chan struct{}, 1),
		outcomes: make(chan session.Outcome, 1),
	}
	// Unknown names fall back to the default preset; the session logs it.
	_ = a.sess.SetSpeed(cfg.Speed)

	if cfg.File != "" {
		if err := a.loadFile(); err != nil {
			cancel()
			return nil, err
		}
	}
	return a, nil
}

// loadFile reads the custom maze file into the session. On failure the
// current maze stays loaded.
func (a *app) loadFile() error {
	data, err := os.ReadFile(a.file)
	if err != nil {
		return fmt.Errorf("mazeviz: read maze file: %w", err)
	}
	if err := a.sess.LoadText(string(data)); err != nil {
		return fmt.Errorf("mazeviz: %s: %w", a.file, err)
	}
	a.maze = a.file
	return nil
}

// reloadFile re-reads the custom maze file while the app runs.
func (a *app) reloadFile() {
	if a.file == "" {
		a.message = "no custom maze: set MAZEVIZ_FILE"
		return
	}
	if err := a.loadFile(); err != nil {
		a.logger.Warn("custom maze not loaded", slog.String("file", a.file), slog.String("error", err.Error()))
		a.message = "custom maze not loaded: " + malformedReason(err)
		return
	}
	a.message = "select a start cell"
}

// run is the UI loop. It returns when the user quits or the screen closes.
func (a *app) run() {
	defer a.cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				close(events)
				return
			}
			events <- ev
		}
	}()

	a.draw()
	for {
		select {
		case ev, ok := <-events:
			if !ok || !a.handleInput(ev) {
				return
			}
		case <-a.redraw:
			a.draw()
		case o := <-a.outcomes:
			a.finish(o)
		}
	}
}

// handleInput applies one terminal event and reports whether to keep going.
func (a *app) handleInput(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC {
			return false
		}
		if ev.Key() == tcell.KeyEnter {
			a.start()
			break
		}
		if ev.Key() != tcell.KeyRune {
			return true
		}
		switch r := ev.Rune(); {
		case r == 'q' || r == 'Q':
			return false
		case r == 's':
			a.start()
		case r == 'c':
			a.reloadFile()
		case r == 'r':
			a.sess.Reset()
			a.message = "select a start cell"
		case r == 'f':
			a.sess.SetPreset(pace.Fast)
		case r == 'n':
			a.sess.SetPreset(pace.Normal)
		case r == 'l':
			a.sess.SetPreset(pace.Slow)
		case r >= '1' && r <= '9':
			a.loadBuiltin(int(r - '1'))
		default:
			return true
		}

	case *tcell.EventMouse:
		held := ev.Buttons()&tcell.Button1 != 0
		if !held || a.pressed {
			a.pressed = held
			return true
		}
		a.pressed = true
		a.selectCell(cellAt(ev.Position()))

	case *tcell.EventResize:
		a.screen.Sync()
	}

	a.draw()
	return true
}

func (a *app) selectCell(p grid.Position) {
	if err := a.sess.Select(p); err != nil {
		a.message = fmt.Sprintf("cannot select %v: %s", p, endpointReason(err))
		return
	}
	if _, end := a.sess.Endpoints(); end == nil {
		a.message = "select an end cell"
	} else {
		a.message = "press enter to search"
	}
}

func (a *app) start() {
	_, err := a.sess.Start(a.ctx, a.observer())
	if err != nil {
		a.message = "cannot search: " + endpointReason(err)
		return
	}
	a.message = "searching..."
}

func (a *app) loadBuiltin(i int) {
	names := catalog.Names()
	if i >= len(names) {
		return
	}
	g, err := catalog.Get(names[i])
	if err != nil {
		a.logger.Error("built-in maze failed to load", slog.String("maze", names[i]), slog.String("error", err.Error()))
		return
	}
	a.sess.Load(g)
	a.maze = names[i]
	a.message = "select a start cell"
}

// finish reports an outcome unless a newer run has already replaced it.
func (a *app) finish(o session.Outcome) {
	if o.Generation != a.sess.Generation() {
		return
	}
	if o.Found {
		a.message = fmt.Sprintf("path found: %d steps, %d cells visited", len(o.Path)-1, o.Visited)
	} else {
		a.message = fmt.Sprintf("no path: %d cells visited", o.Visited)
	}
	a.draw()
}

// observer hands run callbacks to the UI loop. Snapshots only request a
// redraw since draw reads the session's current view.
func (a *app) observer() session.Observer {
	return session.ObserverFuncs{
		CellsChanged: func(*grid.Grid) {
			select {
			case a.redraw <- struct{}{}:
			default:
			}
		},
		SearchComplete: func(o session.Outcome) {
			select {
			case a.outcomes <- o:
			case <-a.ctx.Done():
			}
		},
	}
}

// malformedReason names the offending row and column when there is one.
func malformedReason(err error) string {
	var me *grid.MalformedError
	if !errors.As(err, &me) {
		return err.Error()
	}
	switch {
	case me.Row < 0:
		return me.Err.Error()
	case me.Col < 0:
		return fmt.Sprintf("row %d: %v", me.Row+1, me.Err)
	default:
		return fmt.Sprintf("row %d col %d: %v", me.Row+1, me.Col+1, me.Err)
	}
}

func endpointReason(err error) string {
	switch {
	case errors.Is(err, search.ErrEndpointUnset):
		return "start and end must both be selected"
	case errors.Is(err, search.ErrEndpointOutOfBounds):
		return "outside the maze"
	case errors.Is(err, search.ErrEndpointWall):
		return "that cell is a wall"
	case errors.Is(err, search.ErrSameEndpoints):
		return "start and end are the same cell"
	default:
		return err.Error()
	}
}
