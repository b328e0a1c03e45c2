package loop_test

import (
	"testing"

	"github.com/katalvlaran/rectraster/loop"
	"github.com/stretchr/testify/require"
)

func TestEmitRectangle_WrongSegmentCount(t *testing.T) {
	g := buildFromGrid(t, [][]int{{1}})
	loops := loop.Loops(g)
	_, err := loop.EmitRectangle(g, loops[0][:3])
	require.ErrorIs(t, err, loop.ErrNotARectangle)
}

func TestLoops_SkipsRemovedSegments(t *testing.T) {
	g := buildFromGrid(t, [][]int{{1, 0}, {0, 1}})
	all := loop.Loops(g)
	require.Len(t, all, 2)

	for _, id := range all[0] {
		g.MarkRemoved(id)
	}

	remaining := loop.Loops(g)
	require.Len(t, remaining, 1)
}
