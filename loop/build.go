package loop

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/rectraster/geom"
	"github.com/katalvlaran/rectraster/scan"
)

// endpointKind distinguishes a raw segment's Start (outgoing, the loop
// continues away from here) from its End (incoming, the loop arrives
// here) while the builder is still pairing endpoints into corners.
type endpointKind int

const (
	outgoing endpointKind = iota
	incoming
)

// endpoint is one segment endpoint queued for stitching.
type endpoint struct {
	point     geom.Point
	kind      endpointKind
	direction geom.Direction
	segment   SegmentID
}

// Build stitches scan's raw horizontal and vertical segments into closed
// loops and returns the resulting Graph.
//
// Every raw segment contributes two endpoints: an outgoing one at its
// Start and an incoming one at its End. The horizontal endpoints are
// sorted by (X, Y, direction); the vertical endpoints are sorted by
// (X, Y, signedDirection) where signedDirection is +direction for an
// outgoing endpoint and -direction for an incoming one. Same-index
// entries of the two sorted lists are then zipped together — this pairs
// up the one horizontal and one vertical endpoint that coincide at each
// grid corner, in an order that keeps "pinch points" (two loops meeting
// at a single corner, as in a checkerboard pattern) from being cross-
// wired into each other. At every pair one side is outgoing and the
// other incoming; the incoming segment's Next becomes the outgoing
// segment's ID, and the outgoing segment's Prev becomes the incoming
// segment's ID.
//
// A corner is concave (a 270 degree reflex turn) when the horizontal and
// vertical endpoint directions compare in a kind-dependent way: equal
// when the H endpoint is outgoing, different when it is incoming.
// Complexity: O(n log n) in the number of raw segments.
func Build(result scan.Result) (*Graph, error) {
	g := &Graph{}

	hEnds := make([]endpoint, 0, len(result.Horizontal)*2)
	for _, rs := range result.Horizontal {
		id := g.AddSegment(geom.Horizontal, rs.Start, rs.End, directionOf(rs.Start, rs.End))
		hEnds = append(hEnds,
			endpoint{point: rs.Start, kind: outgoing, direction: g.Segments[id].Direction, segment: id},
			endpoint{point: rs.End, kind: incoming, direction: g.Segments[id].Direction, segment: id},
		)
	}

	vEnds := make([]endpoint, 0, len(result.Vertical)*2)
	for _, rs := range result.Vertical {
		id := g.AddSegment(geom.Vertical, rs.Start, rs.End, directionOf(rs.Start, rs.End))
		vEnds = append(vEnds,
			endpoint{point: rs.Start, kind: outgoing, direction: g.Segments[id].Direction, segment: id},
			endpoint{point: rs.End, kind: incoming, direction: g.Segments[id].Direction, segment: id},
		)
	}

	if len(hEnds) != len(vEnds) {
		return nil, fmt.Errorf("loop: %w (%d horizontal endpoints, %d vertical)", ErrUnequalEndpointCounts, len(hEnds), len(vEnds))
	}

	sort.SliceStable(hEnds, func(i, j int) bool {
		a, b := hEnds[i], hEnds[j]
		if a.point.X != b.point.X {
			return a.point.X < b.point.X
		}
		if a.point.Y != b.point.Y {
			return a.point.Y < b.point.Y
		}
		return a.direction < b.direction
	})
	sort.SliceStable(vEnds, func(i, j int) bool {
		a, b := vEnds[i], vEnds[j]
		if a.point.X != b.point.X {
			return a.point.X < b.point.X
		}
		if a.point.Y != b.point.Y {
			return a.point.Y < b.point.Y
		}
		return signedDirection(a) < signedDirection(b)
	})

	for i := range hEnds {
		h, v := hEnds[i], vEnds[i]

		var incomingSeg, outgoingSeg SegmentID
		var concave bool
		switch {
		case h.kind == outgoing && v.kind == incoming:
			incomingSeg, outgoingSeg = v.segment, h.segment
			concave = h.direction == v.direction
		case h.kind == incoming && v.kind == outgoing:
			incomingSeg, outgoingSeg = h.segment, v.segment
			concave = h.direction != v.direction
		default:
			return nil, fmt.Errorf("%w: both endpoints at a paired corner share kind (h=%v v=%v) at h=%v v=%v",
				ErrDanglingSegment, h.kind, v.kind, h.point, v.point)
		}

		g.Segments[incomingSeg].Next = outgoingSeg
		g.Segments[outgoingSeg].Prev = incomingSeg

		g.AddVertex(h.point, incomingSeg, outgoingSeg, concave)
	}

	for _, s := range g.Segments {
		if s.Prev == invalidID || s.Next == invalidID {
			return nil, fmt.Errorf("%w: segment %d (%v->%v)", ErrDanglingSegment, s.ID, s.Start, s.End)
		}
	}

	return g, nil
}

// signedDirection is the vertical-endpoint tiebreak key: the raw
// direction for an outgoing endpoint, its negation for an incoming one.
// This asymmetry relative to the horizontal comparator is what makes the
// zip in Build pick the loop-consistent pairing at a pinch point.
func signedDirection(e endpoint) geom.Direction {
	if e.kind == outgoing {
		return e.direction
	}
	return -e.direction
}

// directionOf reports the sign of travel along a segment's own axis.
func directionOf(start, end geom.Point) geom.Direction {
	if start.X != end.X {
		if end.X > start.X {
			return geom.Positive
		}
		return geom.Negative
	}
	if end.Y > start.Y {
		return geom.Positive
	}
	return geom.Negative
}
