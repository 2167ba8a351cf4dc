package search

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazebfs/grid"
)

// ValidateEndpoints checks the preconditions Run relies on: both endpoints
// set, inside g, not walls, and distinct. Failures match
// ErrInvalidEndpoints and the specific reason under errors.Is.
func ValidateEndpoints(g *grid.Grid, start, end *grid.Position) error {
	if start == nil || end == nil {
		return invalid(ErrEndpointUnset)
	}
	for _, p := range []grid.Position{*start, *end} {
		if !g.InBounds(p) {
			return invalid(fmt.Errorf("%w: %v", ErrEndpointOutOfBounds, p))
		}
		if g.At(p) == grid.Wall {
			return invalid(fmt.Errorf("%w: %v", ErrEndpointWall, p))
		}
	}
	if *start == *end {
		return invalid(fmt.Errorf("%w: %v", ErrSameEndpoints, *start))
	}
	return nil
}

func invalid(reason error) error {
	return errors.Join(ErrInvalidEndpoints, reason)
}
