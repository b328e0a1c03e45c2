package match_test

import (
	"testing"

	"github.com/katalvlaran/rectraster/diagonal"
	"github.com/katalvlaran/rectraster/match"
	"github.com/stretchr/testify/require"
)

func TestSelectChords_SpecSeedExample_DropsOneChordPerCrossing(t *testing.T) {
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

	selH, selV := match.SelectChords(hChords, vChords)

	require.Len(t, selH, 2)
	require.Contains(t, selH, hChords[0])
	require.Contains(t, selH, hChords[2])

	require.Len(t, selV, 2)
	require.Contains(t, selV, vChords[0])
	require.Contains(t, selV, vChords[1])

	require.ElementsMatch(t, match.FindCrossings(selH, selV), nil)
}

func TestSelectChords_NoCrossings_KeepsEverything(t *testing.T) {
	hChords := []diagonal.Chord{hChord(0, 0, 2)}
	vChords := []diagonal.Chord{vChord(5, 0, 2)}

	selH, selV := match.SelectChords(hChords, vChords)
	require.Equal(t, hChords, selH)
	require.Equal(t, vChords, selV)
}

func TestSelectChords_EmptyInputs(t *testing.T) {
	selH, selV := match.SelectChords(nil, nil)
	require.Empty(t, selH)
	require.Empty(t, selV)
}
