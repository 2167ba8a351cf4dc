package grid

import (
	"errors"
	"fmt"
)

// Sentinel errors for grid construction.
var (
	// ErrMalformedGrid is the umbrella error for any rejected grid input.
	ErrMalformedGrid = errors.New("grid: malformed grid")
	// ErrEmptyGrid indicates the input has no rows or no columns.
	ErrEmptyGrid = errors.New("grid: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrInvalidCell indicates a value other than 0 (open) or 1 (wall).
	ErrInvalidCell = errors.New("grid: cells may only be 0 or 1")
)

// MalformedError describes where an input grid was rejected.
// Row and Col are zero-based; -1 means the field does not apply.
type MalformedError struct {
	Row, Col int
	Err      error
}

func (e *MalformedError) Error() string {
	switch {
	case e.Row < 0:
		return fmt.Sprintf("%v: %v", ErrMalformedGrid, e.Err)
	case e.Col < 0:
		return fmt.Sprintf("%v: row %d: %v", ErrMalformedGrid, e.Row, e.Err)
	default:
		return fmt.Sprintf("%v: row %d col %d: %v", ErrMalformedGrid, e.Row, e.Col, e.Err)
	}
}

// Unwrap exposes both ErrMalformedGrid and the concrete reason to errors.Is.
func (e *MalformedError) Unwrap() []error {
	return []error{ErrMalformedGrid, e.Err}
}

func malformed(row, col int, err error) error {
	return &MalformedError{Row: row, Col: col, Err: err}
}

// Cell is the state of one grid position.
type Cell uint8

const (
	// Open is traversable and not yet explored.
	Open Cell = iota
	// Wall is impassable.
	Wall
	// Visited was explored during the current run.
	Visited
	// Path lies on the confirmed shortest path.
	Path
)

func (c Cell) String() string {
	switch c {
	case Open:
		return "open"
	case Wall:
		return "wall"
	case Visited:
		return "visited"
	case Path:
		return "path"
	default:
		return fmt.Sprintf("cell(%d)", uint8(c))
	}
}

// rune returns the single-character rendering used by Grid.String.
func (c Cell) rune() rune {
	switch c {
	case Wall:
		return '#'
	case Visited:
		return '+'
	case Path:
		return '*'
	default:
		return '.'
	}
}

// Position addresses a cell by zero-based row and column.
type Position struct {
	Row, Col int
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Adjacent reports whether q is exactly one cardinal step away from p.
func (p Position) Adjacent(q Position) bool {
	dr, dc := p.Row-q.Row, p.Col-q.Col
	return dr*dr+dc*dc == 1
}

// offsets lists the cardinal moves in search order: down, right, up, left.
var offsets = [4]Position{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}

// Grid is a rectangular block of cells. Its shape is fixed once built;
// cell states change in place while a search runs.
type Grid struct {
	rows, cols int
	cells      []Cell
}
