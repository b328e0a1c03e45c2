package diagonal

import (
	"sort"

	"github.com/katalvlaran/rectraster/geom"
	"github.com/katalvlaran/rectraster/intervaltree"
	"github.com/katalvlaran/rectraster/loop"
)

// BuildCrossingTree indexes every live (non-removed) segment of the
// given orientation by its own-axis span, carrying each segment's
// perpendicular-axis coordinate as payload. Horizontal segments are
// keyed by their X range, vertical segments by their Y range — matching
// the convention a candidate chord's blocking check needs: a query at
// the chord's shared coordinate returns every opposite-orientation
// segment that crosses the line the chord would travel along.
func BuildCrossingTree(g *loop.Graph, orientation geom.Orientation) *intervaltree.Tree {
	var intervals []intervaltree.Interval
	for _, s := range g.Segments {
		if s.Orientation != orientation || g.IsRemoved(s.ID) {
			continue
		}
		lo, hi := ownAxisSpan(s)
		intervals = append(intervals, intervaltree.Interval{
			Lo: lo, Hi: hi,
			Payload: SegmentHit{Segment: s.ID, Cross: crossCoord(s)},
		})
	}
	return intervaltree.New(intervals)
}

func ownAxisSpan(s loop.Segment) (lo, hi int) {
	if s.Orientation == geom.Horizontal {
		return minMax(s.Start.X, s.End.X)
	}
	return minMax(s.Start.Y, s.End.Y)
}

func crossCoord(s loop.Segment) int {
	if s.Orientation == geom.Horizontal {
		return s.Start.Y
	}
	return s.Start.X
}

func minMax(a, b int) (lo, hi int) {
	if a < b {
		return a, b
	}
	return b, a
}

// FindChords scans the graph's concave vertices and emits, per axis,
// the chord candidates spec.md §4.D describes: consecutive pairs (after
// sorting by (coordinate on the perpendicular axis, coordinate on the
// chord's own axis)) that share the perpendicular coordinate, are not
// already directly connected by an existing boundary edge, and whose
// connecting interval is not crossed by any opposite-orientation
// segment.
// Complexity: O(n log n) for the sorts plus O(log m + k) per candidate
// pair's crossing check, where m is the opposite-orientation segment
// count and k the number of segments found crossing.
func FindChords(g *loop.Graph) (horizontal, vertical []Chord) {
	concave := loop.ConcaveVertices(g)

	horizontal = findAxis(g, concave, geom.Horizontal)
	vertical = findAxis(g, concave, geom.Vertical)

	return horizontal, vertical
}

func findAxis(g *loop.Graph, concave []loop.VertexID, orientation geom.Orientation) []Chord {
	blockers := geom.Horizontal
	if orientation == geom.Horizontal {
		blockers = geom.Vertical
	}
	tree := BuildCrossingTree(g, blockers)

	ids := append([]loop.VertexID(nil), concave...)
	sort.Slice(ids, func(i, j int) bool {
		pi, pj := g.Vertex(ids[i]).Point, g.Vertex(ids[j]).Point
		oi, ownI := otherAndOwn(pi, orientation)
		oj, ownJ := otherAndOwn(pj, orientation)
		if oi != oj {
			return oi < oj
		}
		return ownI < ownJ
	})

	var chords []Chord
	for i := 0; i+1 < len(ids); i++ {
		a, b := ids[i], ids[i+1]
		pa, pb := g.Vertex(a).Point, g.Vertex(b).Point

		otherA, ownA := otherAndOwn(pa, orientation)
		otherB, ownB := otherAndOwn(pb, orientation)
		if otherA != otherB {
			continue
		}
		if ownA == ownB {
			continue
		}

		if degenerate(g, a, pb) {
			continue
		}

		shared := otherA
		lo, hi := minMax(ownA, ownB)
		blocked := false
		tree.Stab(shared, func(iv intervaltree.Interval) (intervaltree.Signal, interface{}) {
			c := iv.Payload.(SegmentHit)
			if c.Cross > lo && c.Cross < hi {
				blocked = true
				return intervaltree.Stop, nil
			}
			return intervaltree.Continue, nil
		})
		if blocked {
			continue
		}

		chords = append(chords, Chord{Orientation: orientation, A: a, B: b, PA: pa, PB: pb})
	}

	return chords
}

// otherAndOwn splits a point into (perpendicular-axis coordinate,
// own-axis coordinate) for the given chord orientation: for Horizontal,
// that's (Y, X); for Vertical, (X, Y).
func otherAndOwn(p geom.Point, orientation geom.Orientation) (other, own int) {
	if orientation == geom.Horizontal {
		return p.Y, p.X
	}
	return p.X, p.Y
}

// degenerate reports whether A and B are already directly connected by
// a single existing boundary edge — spec.md §9's two required guards
// against zero-length chords between boundary-adjacent concave
// vertices.
func degenerate(g *loop.Graph, a loop.VertexID, pb geom.Point) bool {
	va := g.Vertex(a)
	if g.Segment(va.Outgoing).End == pb {
		return true
	}
	if g.Segment(va.Incoming).Start == pb {
		return true
	}
	return false
}
