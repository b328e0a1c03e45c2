package geom_test

import (
	"testing"

	"github.com/katalvlaran/rectraster/geom"
	"github.com/stretchr/testify/require"
)

func TestOrientationOther(t *testing.T) {
	require.Equal(t, geom.Vertical, geom.Horizontal.Other())
	require.Equal(t, geom.Horizontal, geom.Vertical.Other())
}

func TestDirectionFlip(t *testing.T) {
	require.Equal(t, geom.Negative, geom.Positive.Flip())
	require.Equal(t, geom.Positive, geom.Negative.Flip())
}

func TestRectangleDimensions(t *testing.T) {
	r := geom.Rectangle{Min: geom.Point{X: 1, Y: 2}, Max: geom.Point{X: 4, Y: 6}}
	require.Equal(t, 3, r.Width())
	require.Equal(t, 4, r.Height())
	require.Equal(t, 12, r.Area())
}

func TestStringers(t *testing.T) {
	require.Equal(t, "Horizontal", geom.Horizontal.String())
	require.Equal(t, "Vertical", geom.Vertical.String())
	require.Equal(t, "Positive", geom.Positive.String())
	require.Equal(t, "Negative", geom.Negative.String())
}
