package split_test

import (
	"testing"

	"github.com/katalvlaran/rectraster/diagonal"
	"github.com/katalvlaran/rectraster/geom"
	"github.com/katalvlaran/rectraster/loop"
	"github.com/katalvlaran/rectraster/split"
	"github.com/stretchr/testify/require"
)

// buildSquareLoop returns a single 4-segment closed loop around the unit
// square, plus two concave vertices sitting at opposite corners — a
// minimal host for exercising Chord's pointer rewiring.
func buildSquareLoop(t *testing.T) (g *loop.Graph, vA, vB loop.VertexID) {
	t.Helper()
	g = &loop.Graph{}

	p0, p1, p2, p3 := geom.Point{X: 0, Y: 0}, geom.Point{X: 1, Y: 0}, geom.Point{X: 1, Y: 1}, geom.Point{X: 0, Y: 1}
	s0 := g.AddSegment(geom.Horizontal, p0, p1, geom.Positive)
	s1 := g.AddSegment(geom.Vertical, p1, p2, geom.Positive)
	s2 := g.AddSegment(geom.Horizontal, p2, p3, geom.Negative)
	s3 := g.AddSegment(geom.Vertical, p3, p0, geom.Negative)

	link := func(prev, next loop.SegmentID) {
		g.Segment(prev).Next = next
		g.Segment(next).Prev = prev
	}
	link(s0, s1)
	link(s1, s2)
	link(s2, s3)
	link(s3, s0)

	vA = g.AddVertex(p0, s3, s0, true)
	vB = g.AddVertex(p2, s1, s2, true)

	return g, vA, vB
}

func TestChord_SplitsOneLoopIntoTwo(t *testing.T) {
	g, vA, vB := buildSquareLoop(t)

	c := diagonal.Chord{
		Orientation: geom.Horizontal,
		A:           vA, B: vB,
		PA: g.Vertex(vA).Point, PB: g.Vertex(vB).Point,
	}

	split.Chord(g, c)

	require.False(t, g.Vertex(vA).Concave)
	require.False(t, g.Vertex(vB).Concave)

	loops := loop.Loops(g)
	require.Len(t, loops, 2)
	for _, cyc := range loops {
		require.Len(t, cyc, 3)
	}
}
