package loop

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/rectraster/geom"
)

// ErrInvariantViolation wraps every failure CheckInvariants reports. It
// is never returned on its own; it is always joined with a more specific
// message identifying which of the four checks failed and where.
var ErrInvariantViolation = errors.New("loop: invariant violation")

// CheckInvariants verifies four structural properties of a Graph as
// Build produces it:
//
//  1. Every live segment's Next.Prev and Prev.Next point back to itself.
//  2. Walking Next from any live segment returns to it within the live
//     segment count steps.
//  3. The live horizontal segment count equals the live vertical
//     segment count.
//  4. Every live segment's two endpoints agree with the corner
//     bookkeeping: the vertex whose Outgoing is the segment sits at the
//     segment's Start, and the vertex whose Incoming is the segment sits
//     at its End. Vertices are found by segment rather than by point,
//     since two loops touching at a pinch point put two vertices on one
//     grid corner. This is the structural form the "OUTGOING count
//     equals INCOMING count" check takes once a corner carries both
//     roles in a single Vertex rather than two objects.
//
// CheckInvariants is meant to run immediately after Build. Check 3 in
// particular only holds at this point: every corner Build stitches joins
// one horizontal and one vertical segment, so each loop alternates
// orientation and the two counts are equal. Splitting a chord adds two
// segments of one orientation, and resolve's Steiner-point insertion
// replaces one struck segment with two of the same orientation, so the
// counts are no longer expected to match once rectangulation runs.
func CheckInvariants(g *Graph) error {
	live := make([]Segment, 0, len(g.Segments))
	for _, s := range g.Segments {
		if !g.IsRemoved(s.ID) {
			live = append(live, s)
		}
	}

	if err := checkNextPrevAgreement(g, live); err != nil {
		return err
	}
	if err := checkLoopClosure(g, live); err != nil {
		return err
	}
	if err := checkBalancedAxisCounts(live); err != nil {
		return err
	}
	if err := checkCornerBookkeeping(g, live); err != nil {
		return err
	}

	return nil
}

func checkNextPrevAgreement(g *Graph, live []Segment) error {
	for _, s := range live {
		if g.Segments[s.Next].Prev != s.ID {
			return fmt.Errorf("%w: segment %d: next.prev = %d, want %d", ErrInvariantViolation, s.ID, g.Segments[s.Next].Prev, s.ID)
		}
		if g.Segments[s.Prev].Next != s.ID {
			return fmt.Errorf("%w: segment %d: prev.next = %d, want %d", ErrInvariantViolation, s.ID, g.Segments[s.Prev].Next, s.ID)
		}
	}
	return nil
}

func checkLoopClosure(g *Graph, live []Segment) error {
	bound := len(live)
	for _, start := range live {
		cur := start.Next
		steps := 1
		for cur != start.ID {
			if steps > bound {
				return fmt.Errorf("%w: segment %d did not close its loop within %d steps", ErrInvariantViolation, start.ID, bound)
			}
			cur = g.Segments[cur].Next
			steps++
		}
	}
	return nil
}

func checkBalancedAxisCounts(live []Segment) error {
	var h, v int
	for _, s := range live {
		if s.Orientation == geom.Horizontal {
			h++
		} else {
			v++
		}
	}
	if h != v {
		return fmt.Errorf("%w: horizontal segment count %d differs from vertical count %d", ErrInvariantViolation, h, v)
	}
	return nil
}

func checkCornerBookkeeping(g *Graph, live []Segment) error {
	outOf := make(map[SegmentID]VertexID, len(g.Vertices))
	inOf := make(map[SegmentID]VertexID, len(g.Vertices))
	for _, v := range g.Vertices {
		outOf[v.Outgoing], inOf[v.Incoming] = v.ID, v.ID
	}
	for _, s := range live {
		startV, ok := outOf[s.ID]
		if !ok {
			return fmt.Errorf("%w: segment %d start %v has no registered vertex", ErrInvariantViolation, s.ID, s.Start)
		}
		if g.Vertex(startV).Point != s.Start {
			return fmt.Errorf("%w: segment %d: outgoing vertex at %v, want %v", ErrInvariantViolation, s.ID, g.Vertex(startV).Point, s.Start)
		}

		endV, ok := inOf[s.ID]
		if !ok {
			return fmt.Errorf("%w: segment %d end %v has no registered vertex", ErrInvariantViolation, s.ID, s.End)
		}
		if g.Vertex(endV).Point != s.End {
			return fmt.Errorf("%w: segment %d: incoming vertex at %v, want %v", ErrInvariantViolation, s.ID, g.Vertex(endV).Point, s.End)
		}
	}
	return nil
}
