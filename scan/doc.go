// Package scan performs the first rectangulation pass: a two-direction
// sweep of a raster.Source that emits the raw axis-parallel boundary
// segments between foreground and background pixels, already oriented so
// that filled area lies to the right of each segment's direction of
// travel.
//
// The scan walks "walls" — the grid lines between adjacent columns (for
// vertical segments) or adjacent rows (for horizontal segments),
// including the synthetic walls before index 0 and after the last index,
// where the out-of-bounds side is treated as background. For each wall
// the scan tracks the pair of pixel values straddling it as it sweeps
// along the wall; a boundary segment is emitted every time that pair
// transitions from "equal" (no edge here) to "different" (an edge), is
// closed the next time the pair changes again, and a new run opens
// immediately if the new pair is itself "different".
//
// Swapping rows for columns to turn the vertical template into the
// horizontal pass is a mirror, not a rotation, so it flips chirality:
// the vertical pass reads direction off the column-side ("lower") pixel
// of the straddling pair, while the horizontal pass must read it off the
// row-side ("upper") pixel to keep every emitted segment obeying the
// same filled-on-the-right convention. scanWalls takes that as a
// parameter instead of hard-coding it twice.
package scan
