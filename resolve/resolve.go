package resolve

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rectraster/diagonal"
	"github.com/katalvlaran/rectraster/geom"
	"github.com/katalvlaran/rectraster/intervaltree"
	"github.com/katalvlaran/rectraster/loop"
	"github.com/katalvlaran/rectraster/split"
)

// ErrNoIntersection is returned when a concave vertex's ray never
// strikes an opposite-orientation segment — a loop cannot be concave
// without an opposing wall to close against, so this signals the
// arena is already malformed by the time resolve runs.
var ErrNoIntersection = errors.New("resolve: ray found no boundary segment to strike")

// ErrDegenerateIntersection is returned when a ray's nearest hit lands
// exactly on the struck segment's own endpoint rather than its
// interior — the Steiner cut would collapse to zero length.
var ErrDegenerateIntersection = errors.New("resolve: ray struck a segment endpoint, not its interior")

// All resolves every vertex still marked concave, in arena order.
// Resolving one vertex never marks another concave, so a single pass
// over the vertices concave at call time is sufficient.
func All(g *loop.Graph) error {
	for _, vid := range loop.ConcaveVertices(g) {
		if err := Vertex(g, vid); err != nil {
			return err
		}
	}
	return nil
}

// Vertex resolves a single concave vertex per spec.md §4.G: it fires a
// ray from vid along its outgoing segment's perpendicular axis, finds
// the nearest boundary segment of the outgoing segment's own
// orientation that the ray strikes, splits that segment into two
// collinear pieces at the strike point, and wires a Steiner chord from
// vid to the new intersection vertex using the same four-pointer cut
// package split uses for a matched chord pair.
func Vertex(g *loop.Graph, vid loop.VertexID) error {
	vPoint := g.Vertex(vid).Point
	outSeg := *g.Segment(g.Vertex(vid).Outgoing)

	strikeOrientation := outSeg.Orientation
	sign := raySign(strikeOrientation, outSeg.Direction)
	own := vPoint.Along(strikeOrientation)
	across := vPoint.Across(strikeOrientation)

	tree := diagonal.BuildCrossingTree(g, strikeOrientation)

	var (
		found     bool
		bestSeg   loop.SegmentID
		bestDelta int
		bestCross int
	)
	tree.Stab(own, func(iv intervaltree.Interval) (intervaltree.Signal, interface{}) {
		hit := iv.Payload.(diagonal.SegmentHit)
		delta := (hit.Cross - across) * sign
		if delta <= 0 {
			return intervaltree.Continue, nil
		}
		if !found || delta < bestDelta {
			found, bestDelta, bestSeg, bestCross = true, delta, hit.Segment, hit.Cross
		}
		return intervaltree.Continue, nil
	})
	if !found {
		return fmt.Errorf("%w: vertex at %v", ErrNoIntersection, vPoint)
	}

	var intersection geom.Point
	if strikeOrientation == geom.Horizontal {
		intersection = geom.Point{X: own, Y: bestCross}
	} else {
		intersection = geom.Point{X: bestCross, Y: own}
	}

	ivID, err := insertSteinerPoint(g, bestSeg, intersection)
	if err != nil {
		return err
	}

	newOrientation := strikeOrientation.Other()
	A, B, PA, PB := vid, ivID, vPoint, intersection
	if PA.Along(newOrientation) > PB.Along(newOrientation) {
		A, B = B, A
		PA, PB = PB, PA
	}
	split.Chord(g, diagonal.Chord{Orientation: newOrientation, A: A, B: B, PA: PA, PB: PB})

	return nil
}

// raySign maps a vertex's outgoing segment (orientation, direction) to
// the sign of travel along the perpendicular axis a resolver ray must
// follow to stay inside the filled region: for a Horizontal outgoing
// segment the ray's Y-sign matches its Direction directly; for a
// Vertical one the ray's X-sign is the negation of its Direction.
func raySign(outgoingOrientation geom.Orientation, outgoingDirection geom.Direction) int {
	if outgoingOrientation == geom.Horizontal {
		return int(outgoingDirection)
	}
	return -int(outgoingDirection)
}

// insertSteinerPoint splits the live segment structID into two
// collinear pieces meeting at intersection, relinks the loop around the
// new pair, marks the original segment removed, and returns the ID of
// the new vertex sitting at intersection (not concave — it's a straight
// 180 degree joint until split.Chord attaches a chord to it).
func insertSteinerPoint(g *loop.Graph, structID loop.SegmentID, intersection geom.Point) (loop.VertexID, error) {
	struck := *g.Segment(structID)
	if intersection == struck.Start || intersection == struck.End {
		return 0, fmt.Errorf("%w: at %v", ErrDegenerateIntersection, intersection)
	}

	s1 := g.AddSegment(struck.Orientation, struck.Start, intersection, struck.Direction)
	s2 := g.AddSegment(struck.Orientation, intersection, struck.End, struck.Direction)

	g.Segment(struck.Prev).Next = s1
	g.Segment(s1).Prev = struck.Prev
	g.Segment(s1).Next = s2
	g.Segment(s2).Prev = s1
	g.Segment(s2).Next = struck.Next
	g.Segment(struck.Next).Prev = s2

	g.MarkRemoved(structID)

	return g.AddVertex(intersection, s1, s2, false), nil
}
