// Package mazebfs is a maze-solving visualizer core: load a grid maze,
// pick a start and an end, and watch breadth-first search spread
// cell by cell until it reveals the shortest path.
//
// 🚀 What is inside?
//
//	grid/         rectangular maze model: Open, Wall, Visited, Path cells,
//	              0/1 matrix and text parsing, reachability
//	search/       BFS as a stream of step events: pull with Stepper,
//	              push with Run, endpoint validation
//	pace/         speed presets and the Scheduler that spaces steps out
//	session/      endpoints, speed and run supersession for a host
//	catalog/      built-in named mazes
//	cmd/mazeviz/  terminal visualizer built on tcell
//
// ✨ Guarantees
//
//   - Deterministic: FIFO frontier, neighbours in the order down, right,
//     up, left; the same input always yields the same steps and path.
//   - Shortest: a found path has the minimum number of moves.
//   - Stoppable: a run ends at its next step boundary when its context is
//     cancelled or a newer run replaces it.
//
// Quick start:
//
//	g, _ := grid.Parse("000\n010\n000")
//	res, _ := search.Run(g, grid.Position{}, grid.Position{Row: 2, Col: 2})
//	fmt.Println(res.Found, res.Length()) // true 4
package mazebfs
