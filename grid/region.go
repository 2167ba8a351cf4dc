package grid

// Reachable returns every walkable cell connected to from by cardinal
// moves, in breadth-first order starting with from itself. It returns nil
// when from is not walkable. Cell states other than Wall are ignored, so
// the result is the same before, during and after a search run.
//
// Time:   O(R·C).
// Memory: O(R·C) for the seen flags and output.
func (g *Grid) Reachable(from Position) []Position {
	if !g.IsWalkable(from) {
		return nil
	}
	seen := make([]bool, len(g.cells))
	i0 := g.index(from)
	seen[i0] = true
	queue := []int{i0}

	for qi := 0; qi < len(queue); qi++ {
		u := g.position(queue[qi])
		for _, d := range offsets {
			v := Position{u.Row + d.Row, u.Col + d.Col}
			if !g.IsWalkable(v) {
				continue
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}

	out := make([]Position, len(queue))
	for i, idx := range queue {
		out[i] = g.position(idx)
	}
	return out
}
