package validate

import (
	"github.com/katalvlaran/gridpath/geom"
	"github.com/katalvlaran/gridpath/gridmodel"
)

// Grid validates a grid, start, and goal for any pathfinder. It checks
// grid shape, bounds, and walkability unconditionally, and connectivity
// only when opts.CheckConnectivity is set.
//
// movement is the neighbour model the connectivity flood should use;
// callers pass the same MovementOptions they intend to search with so
// the connectivity check and the search agree on what "adjacent" means.
func Grid(grid *gridmodel.Grid, start, goal geom.Point, movement gridmodel.MovementOptions, opts Options) Result {
	res := Result{IsValid: true}

	if grid == nil {
		res.IsValid = false
		res.Errors = append(res.Errors, MsgInvalidDimensions)

		return res
	}

	if !grid.InBounds(start) {
		res.IsValid = false
		res.Errors = append(res.Errors, MsgStartOutOfBounds)
	} else if !grid.Walkable(start) {
		res.IsValid = false
		res.Errors = append(res.Errors, MsgStartBlocked)
	}

	if !grid.InBounds(goal) {
		res.IsValid = false
		res.Errors = append(res.Errors, MsgGoalOutOfBounds)
	} else if !grid.Walkable(goal) {
		res.IsValid = false
		res.Errors = append(res.Errors, MsgGoalBlocked)
	}

	// Connectivity only makes sense once both endpoints are placeable.
	if opts.CheckConnectivity && res.IsValid {
		if !connected(grid, start, goal, movement) {
			res.IsValid = false
			res.Errors = append(res.Errors, MsgNoPath)
		}
	}

	return res
}

// GridShape validates only grid shape: dimensions and cell value domain.
// Flow Field calls it when ValidateInput is set. It reports the same
// conditions gridmodel.NewGrid's sentinel errors cover, in this
// package's own Msg* wording.
func GridShape(cells []gridmodel.CellState, width, height int) Result {
	res := Result{IsValid: true}
	if width <= 0 || height <= 0 {
		res.IsValid = false
		res.Errors = append(res.Errors, MsgInvalidDimensions)

		return res
	}
	if len(cells) != width*height {
		res.IsValid = false
		res.Errors = append(res.Errors, MsgGridLengthMismatch)

		return res
	}
	for _, c := range cells {
		if !c.Valid() {
			res.IsValid = false
			res.Errors = append(res.Errors, MsgInvalidCellState)

			return res
		}
	}

	return res
}
