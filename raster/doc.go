// Package raster defines the read-only 2D pixel accessor the rectangulation
// pipeline scans, plus a ready-to-use in-memory implementation.
//
// What:
//
//   - Source is the minimal accessor a caller must implement: shape plus
//     a bounds-checked cell reader.
//   - DenseSource wraps a rectangular [][]int, deep-copying it so the
//     pipeline never observes post-construction mutation.
//
// Why:
//
//   - The decomposition core (spec §1) treats the raster input as an
//     external collaborator: any source capable of delivering a
//     width x height grid of 0/1 values and its shape is acceptable.
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
package raster
