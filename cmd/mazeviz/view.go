package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazebfs/grid"
)

// Each maze cell is drawn this many columns wide so cells look square.
const cellWidth = 2

const helpLine = "click: start/end  enter: run  r: reset  f/n/l: speed  1-9: maze  c: custom  q: quit"

var (
	colorOpen    = tcell.ColorWhite
	colorWall    = tcell.ColorBlack
	colorVisited = tcell.NewHexColor(0x90caf9)
	colorPath    = tcell.NewHexColor(0x43a047)
	colorStart   = tcell.ColorBlue
	colorEnd     = tcell.ColorRed

	styleText = tcell.StyleDefault.Foreground(tcell.ColorSilver)
)

func cellColor(c grid.Cell) tcell.Color {
	switch c {
	case grid.Wall:
		return colorWall
	case grid.Visited:
		return colorVisited
	case grid.Path:
		return colorPath
	default:
		return colorOpen
	}
}

// cellAt maps a screen coordinate to the maze cell drawn there. The
// position may lie outside the grid; the session rejects it.
func cellAt(x, y int) grid.Position {
	return grid.Position{Row: y, Col: x / cellWidth}
}

// draw renders the board, then the status and help lines beneath it.
func (a *app) draw() {
	a.screen.Clear()

	g := a.sess.Grid()
	start, end := a.sess.Endpoints()
	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := grid.Position{Row: r, Col: c}
			color := cellColor(g.At(p))
			switch {
			case start != nil && *start == p:
				color = colorStart
			case end != nil && *end == p:
				color = colorEnd
			}
			style := tcell.StyleDefault.Background(color)
			for i := 0; i < cellWidth; i++ {
				a.screen.SetContent(c*cellWidth+i, r, ' ', nil, style)
			}
		}
	}

	y := g.Rows() + 1
	drawText(a.screen, 0, y, a.statusLine(g, start, end))
	drawText(a.screen, 0, y+1, a.message)
	drawText(a.screen, 0, y+2, helpLine)
	a.screen.Show()
}

func (a *app) statusLine(g *grid.Grid, start, end *grid.Position) string {
	reach := "-"
	if start != nil {
		reach = fmt.Sprint(len(g.Reachable(*start)))
	}
	return fmt.Sprintf("maze: %s  speed: %s  start: %s  end: %s  reachable: %s",
		a.maze, a.sess.Preset(), posLabel(start), posLabel(end), reach)
}

func posLabel(p *grid.Position) string {
	if p == nil {
		return "-"
	}
	return p.String()
}

func drawText(s tcell.Screen, x, y int, text string) {
	for i, r := range []rune(text) {
		s.SetContent(x+i, y, r, nil, styleText)
	}
}
