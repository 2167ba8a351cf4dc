// Package search runs breadth-first search over a grid.Grid and exposes
// its progress as a stream of discrete, paceable step events.
//
// What
//
//   - Finds the shortest path (in unit steps) between two cells, moving in
//     the four cardinal directions and treating walls as impassable.
//   - Emits a visit event whenever a cell joins the frontier, then one path
//     event per cell of the final path, start to end.
//   - Mutates the grid in place: discovered cells become Visited (the end
//     cell keeps its state until the path pass), path cells become Path.
//   - Returns a Result; Found == false is the "no path" outcome, not an
//     error.
//
// Two entry points share one engine:
//
//   - Stepper: pull-based. Next performs the work up to the next event and
//     suspends. Suited to frame-driven hosts.
//   - Run: push-based. Calls OnStep for each event, then awaits the
//     Scheduler, checking the context at every resumption.
//
// Determinism
//
//	The frontier is FIFO and grid.Neighbors yields down, right, up, left.
//	The same grid, start and end always produce the same event sequence
//	and the same path.
//
// Preconditions
//
//	ValidateEndpoints must pass before Run or NewStepper is called. The
//	engine trusts its inputs and performs no redundant checks.
//
// Options
//
//   - DefaultOptions(): background context, no delay, no-op hooks.
//   - WithContext(ctx):    cancel a run at its next step boundary.
//   - WithScheduler(s):    pace steps (see package pace).
//   - WithOnStep(fn):      observe every step; an error abandons the run.
//   - WithOnEnqueue(fn):   hook when a cell joins the frontier.
//   - WithOnDequeue(fn):   hook when a cell is expanded.
//
// Complexity (N = rows × cols)
//
//   - Time:   O(N) steps, O(N) work in total without snapshots.
//   - Memory: O(N) for frontier, visited set and parent links.
//
// Errors
//
//   - ErrInvalidEndpoints, joined with ErrEndpointUnset,
//     ErrEndpointOutOfBounds, ErrEndpointWall or ErrSameEndpoints.
//   - From Run only: ctx.Err(), Scheduler errors, wrapped OnStep errors.
package search
