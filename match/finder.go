package match

import (
	"github.com/katalvlaran/rectraster/diagonal"
	"github.com/katalvlaran/rectraster/intervaltree"
)

// crossingIndex pairs the slice positions of a crossing (horizontal,
// vertical) chord, the form SelectChords needs to name bipartite-graph
// vertices without re-deriving the crossing test.
type crossingIndex struct {
	h, v int
}

// findCrossingIndices is the shared engine behind FindCrossings and
// SelectChords.
// Complexity: O(V log V + H log V) via an interval tree over the
// vertical chords' Y spans, reusing the Lo/Hi-span-with-payload shape
// diagonal.BuildCrossingTree uses for segment crossing queries.
func findCrossingIndices(hChords, vChords []diagonal.Chord) []crossingIndex {
	var intervals []intervaltree.Interval
	for i, v := range vChords {
		intervals = append(intervals, intervaltree.Interval{
			Lo: v.Lo(), Hi: v.Hi(), Payload: i,
		})
	}
	tree := intervaltree.New(intervals)

	var out []crossingIndex
	for hi, h := range hChords {
		tree.Stab(h.Shared(), func(iv intervaltree.Interval) (intervaltree.Signal, interface{}) {
			vi := iv.Payload.(int)
			v := vChords[vi]
			if v.Lo() < h.Shared() && h.Shared() < v.Hi() &&
				h.Lo() < v.Shared() && v.Shared() < h.Hi() {
				out = append(out, crossingIndex{h: hi, v: vi})
			}
			return intervaltree.Continue, nil
		})
	}

	return out
}

// FindCrossings reports every (horizontal, vertical) chord pair that
// crosses: the vertical chord's fixed X lies strictly inside the
// horizontal chord's X span, and the horizontal chord's fixed Y lies
// strictly inside the vertical chord's Y span. Touching at an endpoint
// does not count as crossing.
func FindCrossings(hChords, vChords []diagonal.Chord) []Crossing {
	indices := findCrossingIndices(hChords, vChords)
	crossings := make([]Crossing, len(indices))
	for i, c := range indices {
		crossings[i] = Crossing{H: hChords[c.h], V: vChords[c.v]}
	}

	return crossings
}
