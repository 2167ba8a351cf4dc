package grid

import "strings"

// New validates a 0/1 matrix and builds a Grid with 0 → Open and 1 → Wall.
// The input is copied; later changes to values do not affect the Grid.
// Returns a *MalformedError wrapping ErrEmptyGrid, ErrNonRectangular or
// ErrInvalidCell.
// Complexity: O(R×C) time and memory.
func New(values [][]int) (*Grid, error) {
	if len(values) == 0 {
		return nil, malformed(-1, -1, ErrEmptyGrid)
	}
	if len(values[0]) == 0 {
		return nil, malformed(0, -1, ErrEmptyGrid)
	}
	rows, cols := len(values), len(values[0])
	g := &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
	for r, row := range values {
		if len(row) != cols {
			return nil, malformed(r, -1, ErrNonRectangular)
		}
		for c, v := range row {
			switch v {
			case 0:
				g.cells[g.index(Position{r, c})] = Open
			case 1:
				g.cells[g.index(Position{r, c})] = Wall
			default:
				return nil, malformed(r, c, ErrInvalidCell)
			}
		}
	}

	return g, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// InBounds reports whether p lies within the grid.
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// At returns the state of the cell at p. p must be in bounds.
func (g *Grid) At(p Position) Cell {
	return g.cells[g.index(p)]
}

// Set overwrites the state of the cell at p. p must be in bounds.
func (g *Grid) Set(p Position, c Cell) {
	g.cells[g.index(p)] = c
}

// IsWalkable reports whether p is in bounds and not a Wall.
func (g *Grid) IsWalkable(p Position) bool {
	return g.InBounds(p) && g.At(p) != Wall
}

// Neighbors returns the in-bounds positions one cardinal step from p,
// in the order down, right, up, left. Walls are included; callers filter
// with IsWalkable.
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(offsets))
	for _, d := range offsets {
		n := Position{p.Row + d.Row, p.Col + d.Col}
		if g.InBounds(n) {
			out = append(out, n)
		}
	}
	return out
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	cells := make([]Cell, len(g.cells))
	copy(cells, g.cells)
	return &Grid{rows: g.rows, cols: g.cols, cells: cells}
}

// Reset turns every Visited and Path cell back into Open, leaving walls.
func (g *Grid) Reset() {
	for i, c := range g.cells {
		if c == Visited || c == Path {
			g.cells[i] = Open
		}
	}
}

// Count returns how many cells currently hold state c.
func (g *Grid) Count(c Cell) int {
	n := 0
	for _, v := range g.cells {
		if v == c {
			n++
		}
	}
	return n
}

// String renders the grid one row per line: '.' open, '#' wall,
// '+' visited, '*' path.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r := 0; r < g.rows; r++ {
		if r > 0 {
			b.WriteByte('\n')
		}
		for c := 0; c < g.cols; c++ {
			b.WriteRune(g.At(Position{r, c}).rune())
		}
	}
	return b.String()
}

// index maps p to its row-major offset: Row*cols + Col.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// position converts a row-major offset back to a Position.
func (g *Grid) position(i int) Position {
	return Position{Row: i / g.cols, Col: i % g.cols}
}
