package loop

import (
	"fmt"

	"github.com/katalvlaran/rectraster/geom"
)

// ErrNotARectangle is returned by EmitRectangle when a loop does not
// walk as exactly four corners forming an axis-aligned rectangle. By
// the time the root package calls EmitRectangle every loop must already
// be concavity-free (split and resolve have run), so this indicates an
// internal invariant violation rather than malformed input.
var ErrNotARectangle = fmt.Errorf("loop: walked loop is not a rectangle")

// Loops walks every live segment's Next chain and returns one ordered
// slice of SegmentIDs per closed cycle found. Segments marked removed
// (via Graph.MarkRemoved) are skipped.
// Complexity: O(n) in the number of live segments.
func Loops(g *Graph) [][]SegmentID {
	visited := make(map[SegmentID]bool, len(g.Segments))
	var loops [][]SegmentID

	for _, s := range g.Segments {
		if visited[s.ID] || g.IsRemoved(s.ID) {
			continue
		}

		var cycle []SegmentID
		cur := s.ID
		for {
			visited[cur] = true
			cycle = append(cycle, cur)
			cur = g.Segments[cur].Next
			if cur == s.ID {
				break
			}
		}
		loops = append(loops, cycle)
	}

	return loops
}

// ConcaveVertices returns every Vertex in the arena still marked
// concave. diagonal.FindChords pairs these up to decide where the
// polygon can be cut.
func ConcaveVertices(g *Graph) []VertexID {
	var out []VertexID
	for _, v := range g.Vertices {
		if v.Concave {
			out = append(out, v.ID)
		}
	}
	return out
}

// EmitRectangle walks one loop (as returned by Loops) and returns its
// bounding rectangle. It fails unless the loop turns at exactly four
// corners (consecutive segments of the same orientation, as a chord or
// Steiner cut leaves behind, count as one straight side), its bounds
// have positive width and height, and every segment endpoint lies on
// one of the four bounding lines. The traversal direction is not
// checked.
// Complexity: O(len(cycle)).
func EmitRectangle(g *Graph, cycle []SegmentID) (geom.Rectangle, error) {
	corners := 0
	for i, id := range cycle {
		if g.Segments[id].Orientation != g.Segments[cycle[(i+1)%len(cycle)]].Orientation {
			corners++
		}
	}
	if corners != 4 {
		return geom.Rectangle{}, fmt.Errorf("%w: %d corners in %d segments", ErrNotARectangle, corners, len(cycle))
	}

	minX, minY := int(^uint(0)>>1), int(^uint(0)>>1)
	maxX, maxY := -minX-1, -minY-1
	for _, id := range cycle {
		s := g.Segments[id]
		for _, p := range []geom.Point{s.Start, s.End} {
			if p.X < minX {
				minX = p.X
			}
			if p.X > maxX {
				maxX = p.X
			}
			if p.Y < minY {
				minY = p.Y
			}
			if p.Y > maxY {
				maxY = p.Y
			}
		}
	}

	r := geom.Rectangle{Min: geom.Point{X: minX, Y: minY}, Max: geom.Point{X: maxX, Y: maxY}}
	if r.Width() <= 0 || r.Height() <= 0 {
		return geom.Rectangle{}, fmt.Errorf("%w: degenerate bounds %v", ErrNotARectangle, r)
	}

	for _, id := range cycle {
		s := g.Segments[id]
		onBoundary := (s.Start.X == minX || s.Start.X == maxX || s.Start.Y == minY || s.Start.Y == maxY) &&
			(s.End.X == minX || s.End.X == maxX || s.End.Y == minY || s.End.Y == maxY)
		if !onBoundary {
			return geom.Rectangle{}, fmt.Errorf("%w: segment %v->%v not aligned to bounds %v", ErrNotARectangle, s.Start, s.End, r)
		}
	}

	return r, nil
}
