package gridmodel

import "errors"

// Sentinel errors for grid construction and shape checks. The validate
// package reports the same conditions with its own Msg* wording rather
// than wrapping these errors.
var (
	// ErrGridLengthMismatch indicates len(cells) != width*height.
	ErrGridLengthMismatch = errors.New("gridmodel: cell slice length does not match width*height")
	// ErrInvalidDimensions indicates width <= 0 or height <= 0.
	ErrInvalidDimensions = errors.New("gridmodel: width and height must be positive")
	// ErrInvalidCellState indicates a cell value outside the CellState domain.
	ErrInvalidCellState = errors.New("gridmodel: cell value outside CellState domain")
)
