package loop

import (
	"errors"

	"github.com/katalvlaran/rectraster/geom"
)

// SegmentID indexes Graph.Segments. VertexID indexes Graph.Vertices.
type SegmentID int

// VertexID indexes Graph.Vertices.
type VertexID int

// invalidID marks an unset arena reference.
const invalidID = -1

// Segment is one boundary edge of a stitched loop. Start/End are fixed at
// construction (from scan.RawSegment); Prev/Next are filled in by Build
// and mutated afterward by split and resolve as the pipeline cuts loops
// along chords.
type Segment struct {
	ID          SegmentID
	Orientation geom.Orientation
	Start, End  geom.Point
	Direction   geom.Direction

	Prev, Next SegmentID
}

// Vertex is a corner shared by exactly two consecutive Segments in a
// loop: Incoming ends there, Outgoing begins there. Concave records
// whether the interior angle at this corner is a reflex (270 degree)
// turn — the only kind of vertex diagonal.FindChords ever considers.
type Vertex struct {
	ID       VertexID
	Point    geom.Point
	Incoming SegmentID
	Outgoing SegmentID
	Concave  bool
}

// Graph is the mutable arena holding every Segment and Vertex produced
// by Build, later rewritten in place by split (chord cuts) and resolve
// (Steiner-point cuts). A Segment or Vertex's ID never changes once
// allocated; removal is by marking (see Graph.removed) rather than
// compaction, so outstanding IDs collected earlier in the pipeline
// (e.g. a diagonal.Chord's endpoint VertexIDs) stay valid.
type Graph struct {
	Segments []Segment
	Vertices []Vertex

	byPoint map[geom.Point]VertexID
	removed map[SegmentID]bool
}

// ErrUnequalEndpointCounts is returned by Build when the horizontal and
// vertical raw segment lists don't have the same number of endpoints —
// which can only happen if the raster scan that produced them is
// internally inconsistent (every horizontal segment endpoint must
// coincide with a vertical segment endpoint).
var ErrUnequalEndpointCounts = errors.New("loop: horizontal and vertical endpoint counts differ")

// ErrDanglingSegment is returned by Build if stitching leaves any
// segment without both a Prev and a Next link.
var ErrDanglingSegment = errors.New("loop: segment left unlinked after stitching")

// AddSegment appends a new segment with unset Prev/Next and returns its
// ID. Callers (split, resolve) are responsible for relinking the arena
// around it.
func (g *Graph) AddSegment(orientation geom.Orientation, start, end geom.Point, dir geom.Direction) SegmentID {
	id := SegmentID(len(g.Segments))
	g.Segments = append(g.Segments, Segment{
		ID:          id,
		Orientation: orientation,
		Start:       start,
		End:         end,
		Direction:   dir,
		Prev:        invalidID,
		Next:        invalidID,
	})
	return id
}

// AddVertex appends a new corner vertex and indexes it by point.
func (g *Graph) AddVertex(p geom.Point, incoming, outgoing SegmentID, concave bool) VertexID {
	id := VertexID(len(g.Vertices))
	g.Vertices = append(g.Vertices, Vertex{
		ID:       id,
		Point:    p,
		Incoming: incoming,
		Outgoing: outgoing,
		Concave:  concave,
	})
	if g.byPoint == nil {
		g.byPoint = make(map[geom.Point]VertexID)
	}
	g.byPoint[p] = id
	return id
}

// VertexAt looks up the vertex most recently registered at p. Where two
// loops touch at a pinch point, p carries two vertices and only the
// later one is returned.
func (g *Graph) VertexAt(p geom.Point) (VertexID, bool) {
	id, ok := g.byPoint[p]
	return id, ok
}

// MarkRemoved excludes a segment from future loop walks without
// compacting the arena. resolve uses this when a Steiner cut replaces
// a segment with two shorter ones.
func (g *Graph) MarkRemoved(id SegmentID) {
	if g.removed == nil {
		g.removed = make(map[SegmentID]bool)
	}
	g.removed[id] = true
}

// IsRemoved reports whether id was excluded via MarkRemoved.
func (g *Graph) IsRemoved(id SegmentID) bool {
	return g.removed[id]
}

// Segment returns the live segment record for id.
func (g *Graph) Segment(id SegmentID) *Segment {
	return &g.Segments[id]
}

// Vertex returns the live vertex record for id.
func (g *Graph) Vertex(id VertexID) *Vertex {
	return &g.Vertices[id]
}
