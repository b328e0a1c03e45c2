package scan_test

import (
	"testing"

	"github.com/katalvlaran/rectraster/geom"
	"github.com/katalvlaran/rectraster/raster"
	"github.com/katalvlaran/rectraster/scan"
	"github.com/stretchr/testify/require"
)

func mustSource(t *testing.T, grid [][]int) raster.Source {
	t.Helper()
	src, err := raster.NewDenseSource(grid)
	require.NoError(t, err)
	return src
}

func TestScan_EmptyRaster(t *testing.T) {
	src := mustSource(t, [][]int{{0, 0}, {0, 0}})
	res, err := scan.Scan(src)
	require.NoError(t, err)
	require.Empty(t, res.Horizontal)
	require.Empty(t, res.Vertical)
}

func TestScan_FullyFilledRaster(t *testing.T) {
	src := mustSource(t, [][]int{{1, 1}, {1, 1}})
	res, err := scan.Scan(src)
	require.NoError(t, err)

	require.ElementsMatch(t, []scan.RawSegment{
		{Orientation: geom.Horizontal, Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 2, Y: 0}},
		{Orientation: geom.Horizontal, Start: geom.Point{X: 2, Y: 2}, End: geom.Point{X: 0, Y: 2}},
	}, res.Horizontal)
	require.ElementsMatch(t, []scan.RawSegment{
		{Orientation: geom.Vertical, Start: geom.Point{X: 0, Y: 2}, End: geom.Point{X: 0, Y: 0}},
		{Orientation: geom.Vertical, Start: geom.Point{X: 2, Y: 0}, End: geom.Point{X: 2, Y: 2}},
	}, res.Vertical)
}

func TestScan_SingleFilledPixel(t *testing.T) {
	src := mustSource(t, [][]int{{1}})
	res, err := scan.Scan(src)
	require.NoError(t, err)

	require.ElementsMatch(t, []scan.RawSegment{
		{Orientation: geom.Horizontal, Start: geom.Point{X: 0, Y: 0}, End: geom.Point{X: 1, Y: 0}},
		{Orientation: geom.Horizontal, Start: geom.Point{X: 1, Y: 1}, End: geom.Point{X: 0, Y: 1}},
	}, res.Horizontal)
	require.ElementsMatch(t, []scan.RawSegment{
		{Orientation: geom.Vertical, Start: geom.Point{X: 0, Y: 1}, End: geom.Point{X: 0, Y: 0}},
		{Orientation: geom.Vertical, Start: geom.Point{X: 1, Y: 0}, End: geom.Point{X: 1, Y: 1}},
	}, res.Vertical)
}

func TestScan_Checkerboard2x2_VerticalSegments(t *testing.T) {
	src := mustSource(t, [][]int{{1, 0}, {0, 1}})
	res, err := scan.Scan(src)
	require.NoError(t, err)

	require.ElementsMatch(t, []scan.RawSegment{
		{Orientation: geom.Vertical, Start: geom.Point{X: 0, Y: 1}, End: geom.Point{X: 0, Y: 0}},
		{Orientation: geom.Vertical, Start: geom.Point{X: 1, Y: 0}, End: geom.Point{X: 1, Y: 1}},
		{Orientation: geom.Vertical, Start: geom.Point{X: 1, Y: 2}, End: geom.Point{X: 1, Y: 1}},
		{Orientation: geom.Vertical, Start: geom.Point{X: 2, Y: 1}, End: geom.Point{X: 2, Y: 2}},
	}, res.Vertical)
	require.Len(t, res.Horizontal, 4)
}

// Every emitted segment must have Start != End: a wall sweep never closes
// a run on the same row/column it opened, because the transition that
// opens a run and the transition that closes it are always separated by
// at least one minor step.
func TestScan_NoDegenerateSegments(t *testing.T) {
	src := mustSource(t, [][]int{
		{1, 1, 0, 1},
		{1, 0, 0, 1},
		{0, 0, 1, 1},
	})
	res, err := scan.Scan(src)
	require.NoError(t, err)

	for _, s := range append(append([]scan.RawSegment{}, res.Horizontal...), res.Vertical...) {
		require.NotEqual(t, s.Start, s.End)
	}
}
