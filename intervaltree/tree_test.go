package intervaltree_test

import (
	"sort"
	"testing"

	"github.com/katalvlaran/rectraster/intervaltree"
	"github.com/stretchr/testify/require"
)

func TestStab_EmptyTree(t *testing.T) {
	tree := intervaltree.New(nil)
	hits := tree.StabAll(5)
	require.Empty(t, hits)
}

func TestStab_ClosedIntervalSemantics(t *testing.T) {
	tree := intervaltree.New([]intervaltree.Interval{{Lo: 2, Hi: 5, Payload: "a"}})

	require.Empty(t, tree.StabAll(1))
	require.Len(t, tree.StabAll(2), 1, "x == Lo must count as a hit")
	require.Len(t, tree.StabAll(3), 1)
	require.Len(t, tree.StabAll(5), 1, "x == Hi must count as a hit")
	require.Empty(t, tree.StabAll(6))
}

func TestStab_DuplicatesPreserved(t *testing.T) {
	ivs := []intervaltree.Interval{
		{Lo: 0, Hi: 10, Payload: 1},
		{Lo: 0, Hi: 10, Payload: 2},
	}
	tree := intervaltree.New(ivs)
	hits := tree.StabAll(5)
	require.Len(t, hits, 2)
}

func TestStab_PartitionAcrossMedian(t *testing.T) {
	// Endpoints: 0,2,4,6,8,10,12,14 -> median picks one of them; intervals
	// span the full range so every x in [0,14] must hit at least the
	// interval(s) that contain it, regardless of which endpoint is chosen
	// as the split point.
	ivs := []intervaltree.Interval{
		{Lo: 0, Hi: 4, Payload: "A"},
		{Lo: 2, Hi: 6, Payload: "B"},
		{Lo: 8, Hi: 12, Payload: "C"},
		{Lo: 10, Hi: 14, Payload: "D"},
	}
	tree := intervaltree.New(ivs)

	payloadsAt := func(x int) []string {
		hits := tree.StabAll(x)
		out := make([]string, len(hits))
		for i, h := range hits {
			out[i] = h.Payload.(string)
		}
		sort.Strings(out)
		return out
	}

	require.Equal(t, []string{"A"}, payloadsAt(0))
	require.Equal(t, []string{"A", "B"}, payloadsAt(3))
	require.Equal(t, []string{"B"}, payloadsAt(6))
	require.Empty(t, payloadsAt(7))
	require.Equal(t, []string{"C"}, payloadsAt(8))
	require.Equal(t, []string{"C", "D"}, payloadsAt(11))
	require.Equal(t, []string{"D"}, payloadsAt(14))
}

func TestStab_ShortCircuit(t *testing.T) {
	ivs := []intervaltree.Interval{
		{Lo: 0, Hi: 10, Payload: "first"},
		{Lo: 0, Hi: 10, Payload: "second"},
	}
	tree := intervaltree.New(ivs)

	visited := 0
	val, stopped := tree.Stab(5, func(iv intervaltree.Interval) (intervaltree.Signal, interface{}) {
		visited++
		return intervaltree.Stop, iv.Payload
	})
	require.True(t, stopped)
	require.Equal(t, 1, visited)
	require.Contains(t, []string{"first", "second"}, val)
}

func TestStab_NoStopReturnsFalse(t *testing.T) {
	tree := intervaltree.New([]intervaltree.Interval{{Lo: 0, Hi: 10}})
	val, stopped := tree.Stab(20, func(intervaltree.Interval) (intervaltree.Signal, interface{}) {
		return intervaltree.Stop, "unreachable"
	})
	require.False(t, stopped)
	require.Nil(t, val)
}
