package scan

import (
	"fmt"

	"github.com/katalvlaran/rectraster/geom"
	"github.com/katalvlaran/rectraster/raster"
)

// Scan sweeps src in both directions and returns its raw boundary
// segments, horizontal and vertical separately.
// Complexity: O(rows*cols) time, O(rows+cols) additional space beyond
// the returned segments.
func Scan(src raster.Source) (Result, error) {
	rows, cols := src.Shape()

	vertical, err := scanWalls(cols, rows, geom.Vertical, false, func(minor, side int) (int, error) {
		return src.At(minor, side)
	})
	if err != nil {
		return Result{}, fmt.Errorf("scan: vertical pass: %w", err)
	}

	horizontal, err := scanWalls(rows, cols, geom.Horizontal, true, func(minor, side int) (int, error) {
		return src.At(side, minor)
	})
	if err != nil {
		return Result{}, fmt.Errorf("scan: horizontal pass: %w", err)
	}

	return Result{Horizontal: horizontal, Vertical: vertical}, nil
}

// sideReader(minor, side) returns the raster value on the side-indexed
// side of the wall, at sweep position minor. For the vertical pass major is a
// column index and minor a row index; for the horizontal pass the roles
// are transposed by the caller.
type sideReader func(minor, side int) (int, error)

// scanWalls runs the wall-sweep template described in the package doc
// comment once, for every wall major in [0, majorCount], sweeping minor
// over [0, minorCount]. upperIsFilledSide selects which side of the
// straddling pair (a, the major-1 side, or b, the major side) decides
// segment direction: false for the vertical pass (per spec, the
// column-i/"lower" side), true for the horizontal pass, to correct for
// the chirality flip introduced by transposing rows and columns.
func scanWalls(majorCount, minorCount int, orientation geom.Orientation, upperIsFilledSide bool, read sideReader) ([]RawSegment, error) {
	var segs []RawSegment

	for major := 0; major <= majorCount; major++ {
		lastA, lastB := 0, 0
		segStart := 0

		for minor := 0; minor <= minorCount; minor++ {
			a, b := 0, 0
			if minor < minorCount {
				if major-1 >= 0 {
					v, err := read(minor, major-1)
					if err != nil {
						return nil, err
					}
					a = v
				}
				if major < majorCount {
					v, err := read(minor, major)
					if err != nil {
						return nil, err
					}
					b = v
				}
			}

			if a == lastA && b == lastB {
				continue
			}

			if lastA != lastB {
				filled := lastB
				if upperIsFilledSide {
					filled = lastA
				}

				var start, end geom.Point
				if filled != 0 {
					start = mkPoint(orientation, major, minor)
					end = mkPoint(orientation, major, segStart)
				} else {
					start = mkPoint(orientation, major, segStart)
					end = mkPoint(orientation, major, minor)
				}
				segs = append(segs, RawSegment{Orientation: orientation, Start: start, End: end})
			}

			if a != b {
				segStart = minor
			}
			lastA, lastB = a, b
		}
	}

	return segs, nil
}

// mkPoint places a (major, minor) wall-sweep coordinate back into grid
// space: major is the coordinate along the segment's own axis, minor the
// coordinate along the perpendicular axis the sweep ran over.
func mkPoint(orientation geom.Orientation, major, minor int) geom.Point {
	if orientation == geom.Vertical {
		return geom.Point{X: major, Y: minor}
	}
	return geom.Point{X: minor, Y: major}
}
