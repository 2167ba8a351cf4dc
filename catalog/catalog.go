// Package catalog ships the built-in mazes a host offers for selection.
package catalog

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazebfs/grid"
)

// ErrUnknownMaze is returned by Get for a name not in the catalog.
var ErrUnknownMaze = errors.New("catalog: unknown maze")

type entry struct {
	name string
	text string
}

// Ordered as a host should list them.
var entries = []entry{
	{"corridors", `
0000000000
0111101110
0100001000
0101111011
0100000010
0111011010
0001010010
1101010110
0001000000
0111111110
`},
	{"rooms", `
000010000000
011010111110
010000100010
010110101010
000100001010
110101111010
000101000010
011101011110
000001000000
`},
	{"spiral", `
000000000
111111110
000000010
011111010
010001010
010101010
010100010
010111110
010000000
`},
	{"open", `
00000000
00000000
00100100
00100100
00000000
00011000
00000000
`},
	{"islands", `
00100
00100
11111
00100
00100
`},
}

// Names lists the built-in mazes in display order.
func Names() []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.name
	}
	return out
}

// Get returns a fresh grid for the named maze.
func Get(name string) (*grid.Grid, error) {
	for _, e := range entries {
		if e.name == name {
			return grid.Parse(e.text)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownMaze, name)
}
