package match_test

import (
	"testing"

	"github.com/katalvlaran/rectraster/diagonal"
	"github.com/katalvlaran/rectraster/geom"
	"github.com/katalvlaran/rectraster/loop"
	"github.com/katalvlaran/rectraster/match"
	"github.com/stretchr/testify/require"
)

func hChord(x1, y, x2 int) diagonal.Chord {
	return diagonal.Chord{
		Orientation: geom.Horizontal,
		A:           loop.VertexID(0), B: loop.VertexID(0),
		PA: geom.Point{X: x1, Y: y}, PB: geom.Point{X: x2, Y: y},
	}
}

func vChord(x, y1, y2 int) diagonal.Chord {
	return diagonal.Chord{
		Orientation: geom.Vertical,
		A:           loop.VertexID(0), B: loop.VertexID(0),
		PA: geom.Point{X: x, Y: y1}, PB: geom.Point{X: x, Y: y2},
	}
}

func TestFindCrossings_SpecSeedExample(t *testing.T) {
	hChords := []diagonal.Chord{
		hChord(1, 1, 3),
		hChord(1, 2, 6),
		hChord(1, 4, 4),
		hChord(1, 5, 6),
	}
	vChords := []diagonal.Chord{
		vChord(2, 1, 3),
		vChord(5, 3, 6),
	}

	crossings := match.FindCrossings(hChords, vChords)
	require.Len(t, crossings, 2)

	require.Equal(t, hChords[1], crossings[0].H)
	require.Equal(t, vChords[0], crossings[0].V)
	require.Equal(t, hChords[3], crossings[1].H)
	require.Equal(t, vChords[1], crossings[1].V)
}

func TestFindCrossings_NoCrossings(t *testing.T) {
	hChords := []diagonal.Chord{hChord(0, 0, 2)}
	vChords := []diagonal.Chord{vChord(5, 0, 2)}

	require.Empty(t, match.FindCrossings(hChords, vChords))
}
