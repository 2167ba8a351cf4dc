package main

import (
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebfs/grid"
	"github.com/katalvlaran/mazebfs/pace"
	"github.com/katalvlaran/mazebfs/search"
	"github.com/katalvlaran/mazebfs/session"
)

func newTestApp(t *testing.T, cfg Config) (*app, tcell.SimulationScreen) {
	t.Helper()
	screen := tcell.NewSimulationScreen("")
	require.NoError(t, screen.Init())
	screen.SetSize(80, 30)
	t.Cleanup(screen.Fini)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	a, err := newApp(screen, cfg, logger,
		session.WithSchedulerFactory(func(time.Duration) search.Scheduler { return pace.Immediate() }))
	require.NoError(t, err)
	t.Cleanup(a.cancel)
	return a, screen
}

func writeMaze(t *testing.T, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "maze.txt")
	require.NoError(t, os.WriteFile(path, []byte(text), 0o600))
	return path
}

func click(a *app, p grid.Position) {
	a.handleInput(tcell.NewEventMouse(p.Col*cellWidth, p.Row, tcell.Button1, tcell.ModNone))
	a.handleInput(tcell.NewEventMouse(p.Col*cellWidth, p.Row, tcell.ButtonNone, tcell.ModNone))
}

func key(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func bgAt(t *testing.T, screen tcell.SimulationScreen, x, y int) tcell.Color {
	t.Helper()
	cells, w, _ := screen.GetContents()
	_, bg, _ := cells[y*w+x].Style.Decompose()
	return bg
}

func awaitOutcome(t *testing.T, a *app) session.Outcome {
	t.Helper()
	select {
	case o := <-a.outcomes:
		a.finish(o)
		return o
	case <-time.After(2 * time.Second):
		t.Fatal("search did not complete")
		return session.Outcome{}
	}
}

// TestApp_ClickAndSearch walks the whole interaction on the worked 3×3
// maze: two clicks, enter, and the final path drawn in green.
func TestApp_ClickAndSearch(t *testing.T) {
	a, screen := newTestApp(t, Config{File: writeMaze(t, "000\n010\n000"), Speed: "fast"})
	assert.Equal(t, pace.Fast, a.sess.Preset())

	click(a, grid.Position{Row: 0, Col: 0})
	assert.Equal(t, "select an end cell", a.message)
	assert.Equal(t, colorStart, bgAt(t, screen, 0, 0))

	click(a, grid.Position{Row: 2, Col: 2})
	assert.Equal(t, colorEnd, bgAt(t, screen, 4, 2))
	assert.Equal(t, colorWall, bgAt(t, screen, 2, 1))

	require.True(t, a.handleInput(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone)))
	o := awaitOutcome(t, a)
	require.True(t, o.Found)
	assert.Equal(t, "path found: 4 steps, 7 cells visited", a.message)

	// Endpoints keep their own colours; interior path cells are green.
	assert.Equal(t, colorPath, bgAt(t, screen, 0, 1))
	assert.Equal(t, colorPath, bgAt(t, screen, 1, 2))
	assert.Equal(t, colorVisited, bgAt(t, screen, 2, 0))
	assert.Equal(t, colorStart, bgAt(t, screen, 1, 0))
}

// TestApp_NoPath reports the outcome without a path.
func TestApp_NoPath(t *testing.T) {
	a, _ := newTestApp(t, Config{File: writeMaze(t, "010\n010")})
	click(a, grid.Position{Row: 0, Col: 0})
	click(a, grid.Position{Row: 1, Col: 2})
	a.handleInput(key('s'))
	o := awaitOutcome(t, a)
	assert.False(t, o.Found)
	assert.Equal(t, "no path: 1 cells visited", a.message)
}

// TestApp_Rejections covers walls, off-board clicks and a premature start.
func TestApp_Rejections(t *testing.T) {
	a, _ := newTestApp(t, Config{File: writeMaze(t, "000\n010\n000")})

	a.handleInput(key('s'))
	assert.Equal(t, "cannot search: start and end must both be selected", a.message)

	click(a, grid.Position{Row: 1, Col: 1})
	assert.Equal(t, "cannot select (1,1): that cell is a wall", a.message)

	click(a, grid.Position{Row: 0, Col: 7})
	assert.Equal(t, "cannot select (0,7): outside the maze", a.message)

	start, _ := a.sess.Endpoints()
	assert.Nil(t, start)
}

// TestApp_DragDoesNotReselect ignores motion with the button held.
func TestApp_DragDoesNotReselect(t *testing.T) {
	a, _ := newTestApp(t, Config{File: writeMaze(t, "000\n000")})
	a.handleInput(tcell.NewEventMouse(0, 0, tcell.Button1, tcell.ModNone))
	a.handleInput(tcell.NewEventMouse(2, 0, tcell.Button1, tcell.ModNone))
	a.handleInput(tcell.NewEventMouse(4, 1, tcell.Button1, tcell.ModNone))

	start, end := a.sess.Endpoints()
	require.NotNil(t, start)
	assert.Equal(t, grid.Position{}, *start)
	assert.Nil(t, end)
}

// TestApp_Keys covers speed, maze switching, reset and quitting.
func TestApp_Keys(t *testing.T) {
	a, _ := newTestApp(t, Config{Maze: "corridors", Speed: "warp"})
	assert.Equal(t, pace.DefaultPreset, a.sess.Preset())

	a.handleInput(key('f'))
	assert.Equal(t, pace.Fast, a.sess.Preset())
	a.handleInput(key('l'))
	assert.Equal(t, pace.Slow, a.sess.Preset())
	a.handleInput(key('n'))
	assert.Equal(t, pace.Normal, a.sess.Preset())

	gen := a.sess.Generation()
	a.handleInput(key('2'))
	assert.Equal(t, "rooms", a.maze)
	assert.Greater(t, a.sess.Generation(), gen)

	a.handleInput(key('9'))
	assert.Equal(t, "rooms", a.maze)

	click(a, grid.Position{})
	a.handleInput(key('r'))
	start, _ := a.sess.Endpoints()
	assert.Nil(t, start)

	assert.False(t, a.handleInput(key('q')))
	assert.False(t, a.handleInput(tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone)))
	assert.False(t, a.handleInput(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModNone)))
	assert.True(t, a.handleInput(key('x')))
}

// TestApp_ReloadCustomMaze re-reads the maze file at runtime. A malformed
// file is reported with its row and leaves the current maze alone.
func TestApp_ReloadCustomMaze(t *testing.T) {
	path := writeMaze(t, "000\n010\n000")
	a, _ := newTestApp(t, Config{File: path})
	assert.Equal(t, path, a.maze)
	click(a, grid.Position{Row: 0, Col: 0})
	gen := a.sess.Generation()

	require.NoError(t, os.WriteFile(path, []byte("01\n0"), 0o600))
	a.handleInput(key('c'))
	assert.Equal(t, "custom maze not loaded: row 2: grid: all rows must have the same length", a.message)
	assert.Equal(t, "...\n.#.\n...", a.sess.Grid().String())
	assert.Equal(t, gen, a.sess.Generation())
	start, _ := a.sess.Endpoints()
	require.NotNil(t, start)

	require.NoError(t, os.WriteFile(path, []byte("0 0\n1 0"), 0o600))
	a.handleInput(key('c'))
	assert.Equal(t, "select a start cell", a.message)
	assert.Equal(t, "..\n#.", a.sess.Grid().String())
	assert.Greater(t, a.sess.Generation(), gen)
	start, _ = a.sess.Endpoints()
	assert.Nil(t, start)
}

// TestApp_ReloadWithoutFile explains why nothing happened.
func TestApp_ReloadWithoutFile(t *testing.T) {
	a, _ := newTestApp(t, Config{Maze: "open"})
	a.handleInput(key('c'))
	assert.Equal(t, "no custom maze: set MAZEVIZ_FILE", a.message)
	assert.Equal(t, "open", a.maze)
}

// TestMalformedReason formats each kind of parse failure.
func TestMalformedReason(t *testing.T) {
	_, err := grid.Parse("0x\n00")
	assert.Equal(t, "row 1 col 2: grid: cells may only be 0 or 1", malformedReason(err))

	_, err = grid.Parse("\n\n")
	assert.Equal(t, "grid: input must have at least one row and one column", malformedReason(err))

	assert.Equal(t, "boom", malformedReason(errors.New("boom")))
}

// TestApp_StaleOutcomeIgnored keeps the message of a newer state.
func TestApp_StaleOutcomeIgnored(t *testing.T) {
	a, _ := newTestApp(t, Config{Maze: "open"})
	a.message = "unchanged"
	a.finish(session.Outcome{Generation: a.sess.Generation() + 1, Found: true})
	assert.Equal(t, "unchanged", a.message)
}

// TestApp_RunQuits drives the real loop through the screen's event queue.
func TestApp_RunQuits(t *testing.T) {
	a, screen := newTestApp(t, Config{Maze: "open"})
	done := make(chan struct{})
	go func() {
		a.run()
		close(done)
	}()
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not exit on q")
	}
}

// TestNewApp_Errors covers unknown mazes and malformed files.
func TestNewApp_Errors(t *testing.T) {
	screen := tcell.NewSimulationScreen("")
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := newApp(screen, Config{Maze: "nowhere"}, logger)
	assert.Error(t, err)

	_, err = newApp(screen, Config{File: writeMaze(t, "01\n0")}, logger)
	assert.ErrorIs(t, err, grid.ErrMalformedGrid)

	_, err = newApp(screen, Config{File: filepath.Join(t.TempDir(), "missing.txt")}, logger)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

// TestLoadConfig reads overrides and defaults from the environment.
func TestLoadConfig(t *testing.T) {
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })
	t.Setenv("MAZEVIZ_MAZE", "spiral")
	t.Setenv("MAZEVIZ_SPEED", "slow")

	cfg, _ := loadConfig()
	assert.Equal(t, "spiral", cfg.Maze)
	assert.Equal(t, "slow", cfg.Speed)
	assert.Equal(t, "", cfg.LogPath)
}
