// Package grid models a rectangular maze as a grid of cell states and
// answers the adjacency questions a breadth-first search needs.
//
// What:
//
//   - Grid wraps a rows×cols block of Cell values stored row-major.
//   - Each cell is Open, Wall, Visited or Path; only Wall is impassable.
//   - Neighbors yields the four cardinal moves in the fixed order
//     down, right, up, left. Search tie-breaks depend on this order.
//   - Parse reads the custom text format: packed "0"/"1" rows or
//     whitespace-separated tokens, one row per line.
//
// Why:
//
//   - Visualizers mutate cell states in place while a search runs and
//     need cheap snapshots (Clone) to hand to a renderer.
//   - Hosts accept user-typed mazes and must reject bad input as a value,
//     not a panic.
//
// Complexity:
//
//   - New, Parse, Clone, Reset: O(R×C) time and memory.
//   - At, Set, IsWalkable, Neighbors: O(1).
//   - Reachable: O(R×C) time, O(R×C) memory.
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for every rejected input; always matched
//     by errors.Is on a *MalformedError.
//   - ErrEmptyGrid: no rows, or a zero-length first row.
//   - ErrNonRectangular: a row length differs from the first row.
//   - ErrInvalidCell: a value or token other than 0 and 1.
package grid
