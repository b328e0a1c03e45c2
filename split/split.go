package split

import (
	"github.com/katalvlaran/rectraster/diagonal"
	"github.com/katalvlaran/rectraster/geom"
	"github.com/katalvlaran/rectraster/loop"
)

// Chord cuts g along c, wiring two new segments along the chord and four
// new non-concave vertices, and marks the chord's two original concave
// vertices non-concave (they remain in the arena — any diagonal.Chord
// endpoint VertexID collected earlier stays valid — but no longer appear
// in loop.ConcaveVertices).
// Complexity: O(1).
func Chord(g *loop.Graph, c diagonal.Chord) {
	spA, sA := g.Vertex(c.A).Incoming, g.Vertex(c.A).Outgoing
	spB, sB := g.Vertex(c.B).Incoming, g.Vertex(c.B).Outgoing

	sab := g.AddSegment(c.Orientation, c.PA, c.PB, direction(c.Orientation, c.PA, c.PB))
	sba := g.AddSegment(c.Orientation, c.PB, c.PA, direction(c.Orientation, c.PB, c.PA))

	g.Segment(spA).Next = sab
	g.Segment(sab).Prev = spA
	g.Segment(sab).Next = sB
	g.Segment(sB).Prev = sab

	g.Segment(spB).Next = sba
	g.Segment(sba).Prev = spB
	g.Segment(sba).Next = sA
	g.Segment(sA).Prev = sba

	g.AddVertex(c.PA, spA, sab, false)
	g.AddVertex(c.PB, sab, sB, false)
	g.AddVertex(c.PB, spB, sba, false)
	g.AddVertex(c.PA, sba, sA, false)

	g.Vertex(c.A).Concave = false
	g.Vertex(c.B).Concave = false
}

// direction reports the Direction of a segment running from `from` to
// `to` along orientation's axis.
func direction(orientation geom.Orientation, from, to geom.Point) geom.Direction {
	if orientation == geom.Horizontal {
		if to.X > from.X {
			return geom.Positive
		}
		return geom.Negative
	}
	if to.Y > from.Y {
		return geom.Positive
	}
	return geom.Negative
}
