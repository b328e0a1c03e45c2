package rectraster

import (
	"github.com/katalvlaran/rectraster/diagonal"
	"github.com/katalvlaran/rectraster/geom"
	"github.com/katalvlaran/rectraster/loop"
	"github.com/katalvlaran/rectraster/match"
	"github.com/katalvlaran/rectraster/raster"
	"github.com/katalvlaran/rectraster/resolve"
	"github.com/katalvlaran/rectraster/scan"
	"github.com/katalvlaran/rectraster/split"
)

// Decompose runs the full pipeline of spec.md §4: scan the raster into
// boundary segments, stitch them into loops, find and select a maximum
// non-crossing set of chords, split the polygon along them, resolve
// whatever concave vertices remain, and walk the result into
// rectangles.
// Complexity: O((n + k) log n), n the boundary-segment count and k the
// chord-crossing count (spec.md §5).
func Decompose(src raster.Source, opts ...Option) ([]geom.Rectangle, error) {
	o := newOptions(opts)

	g, err := stitch(src)
	if err != nil {
		return nil, err
	}
	if err := o.checkContext(); err != nil {
		return nil, err
	}

	if err := rectangulate(g); err != nil {
		return nil, err
	}
	if err := o.checkContext(); err != nil {
		return nil, err
	}

	loops := loop.Loops(g)
	rects := make([]geom.Rectangle, 0, len(loops))
	for _, cycle := range loops {
		r, err := loop.EmitRectangle(g, cycle)
		if err != nil {
			return nil, internalInvariantf("emitting rectangle: %w", err)
		}
		rects = append(rects, r)
	}

	return rects, nil
}

// Contours stitches the raster into closed boundary loops and returns
// each as an ordered list of corner points, without running chord
// selection or splitting — spec.md §6's "(a)" output form. A loop's
// winding (clockwise vs. counter-clockwise) distinguishes an outer
// boundary from a hole, per spec.md's glossary.
func Contours(src raster.Source, opts ...Option) ([][]geom.Point, error) {
	o := newOptions(opts)

	g, err := stitch(src)
	if err != nil {
		return nil, err
	}
	if err := o.checkContext(); err != nil {
		return nil, err
	}

	loops := loop.Loops(g)
	out := make([][]geom.Point, len(loops))
	for i, cycle := range loops {
		pts := make([]geom.Point, len(cycle))
		for j, id := range cycle {
			pts[j] = g.Segment(id).Start
		}
		out[i] = pts
	}

	return out, nil
}

// stitch runs spec.md §4.B and §4.C: scan the raster and build the
// segment/vertex arena. Scan failures (a misbehaving raster.Source) are
// InvalidInput; stitching failures (unequal H/V endpoint counts, a
// dangling segment) are MalformedGeometry, since by the time stitching
// runs, the raster itself has already been read successfully.
func stitch(src raster.Source) (*loop.Graph, error) {
	if src == nil {
		return nil, invalidInputf("nil raster source")
	}
	rows, cols := src.Shape()
	if rows < 0 || cols < 0 {
		return nil, invalidInputf("negative raster shape (%d, %d)", rows, cols)
	}

	res, err := scan.Scan(src)
	if err != nil {
		return nil, invalidInputf("scanning raster: %w", err)
	}

	g, err := loop.Build(res)
	if err != nil {
		return nil, malformedGeometryf("stitching boundary: %w", err)
	}
	if err := loop.CheckInvariants(g); err != nil {
		return nil, internalInvariantf("post-build invariant check: %w", err)
	}

	return g, nil
}

// rectangulate runs spec.md §4.D–§4.G in place on g: find chord
// candidates, select a maximum non-crossing subset, split the polygon
// along each, then resolve any vertex the matching left concave.
func rectangulate(g *loop.Graph) error {
	hChords, vChords := diagonal.FindChords(g)

	selH, selV := match.SelectChords(hChords, vChords)
	for _, c := range selH {
		split.Chord(g, c)
	}
	for _, c := range selV {
		split.Chord(g, c)
	}

	if err := resolve.All(g); err != nil {
		return internalInvariantf("resolving concave vertex: %w", err)
	}

	return nil
}
