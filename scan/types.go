package scan

import "github.com/katalvlaran/rectraster/geom"

// RawSegment is one boundary edge emitted by Scan, before it has been
// wired into the loop package's arena. Start and End already encode
// travel direction: filled raster area lies to the right of Start->End.
type RawSegment struct {
	Orientation geom.Orientation
	Start, End  geom.Point
}

// Result holds the two segment sets Scan produces. Horizontal and
// Vertical segments are independent edge lists; loop.Build is what
// stitches them into closed polygons.
type Result struct {
	Horizontal []RawSegment
	Vertical   []RawSegment
}
