// Package split cuts a loop graph along a chord, replacing one concave
// vertex at each endpoint with two non-concave ones and threading two new
// opposite-direction segments along the chord — one serving each of the
// two loops the cut produces.
//
// The four-pointer rewiring follows spec.md §4.F literally: letting spA,
// sA be A's incoming/outgoing segments and spB, sB be B's, the new
// segments sab (A to B) and sba (B to A) are spliced in as
// spA -> sab -> sB and spB -> sba -> sA.
package split
