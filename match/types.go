package match

import "github.com/katalvlaran/rectraster/diagonal"

// Crossing pairs a horizontal chord with a vertical chord whose spans
// cross each other's shared coordinate strictly.
type Crossing struct {
	H diagonal.Chord
	V diagonal.Chord
}
