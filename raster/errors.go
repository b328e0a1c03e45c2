package raster

import "errors"

// Sentinel errors for raster construction and access.
var (
	// ErrEmptyGrid indicates the input 2D slice has no rows or no columns.
	ErrEmptyGrid = errors.New("raster: input grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("raster: all rows must have the same length")
	// ErrOutOfBounds indicates a (row, col) access outside [0,rows)x[0,cols).
	ErrOutOfBounds = errors.New("raster: coordinates out of bounds")
)
