package diagonal

import (
	"github.com/katalvlaran/rectraster/geom"
	"github.com/katalvlaran/rectraster/loop"
)

// Chord is a candidate diagonal between two concave vertices that share
// a coordinate on the axis perpendicular to Orientation. A is always the
// endpoint with the smaller coordinate along Orientation's own axis.
type Chord struct {
	Orientation geom.Orientation
	A, B        loop.VertexID
	PA, PB      geom.Point
}

// Lo, Hi returns the chord's own-axis span: the X range for a
// Horizontal chord, the Y range for a Vertical chord.
func (c Chord) Lo() int {
	if c.Orientation == geom.Horizontal {
		return c.PA.X
	}
	return c.PA.Y
}

// Hi is the chord's own-axis upper bound (see Lo).
func (c Chord) Hi() int {
	if c.Orientation == geom.Horizontal {
		return c.PB.X
	}
	return c.PB.Y
}

// Shared is the chord's fixed coordinate on the perpendicular axis: Y
// for a Horizontal chord, X for a Vertical chord.
func (c Chord) Shared() int {
	if c.Orientation == geom.Horizontal {
		return c.PA.Y
	}
	return c.PA.X
}

// SegmentHit is the payload carried by BuildCrossingTree's intervals: the
// segment found straddling a stabbed coordinate, and its value on the
// perpendicular axis (the coordinate a caller checks against its own
// betweenness test). Exported so resolve can reuse BuildCrossingTree
// directly for its nearest-segment ray cast.
type SegmentHit struct {
	Segment loop.SegmentID
	Cross   int
}
