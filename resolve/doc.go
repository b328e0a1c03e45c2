// Package resolve implements spec.md §4.G, the Concave Resolver: the
// pipeline's last cut, run after split has consumed every matched chord
// pair. Any vertex still marked concave at this point either had no
// collinear partner in package diagonal or lost its chord to a crossing
// in package match, so it is resolved unilaterally by firing a ray from
// the vertex along its
// outgoing segment's perpendicular axis and cutting at the nearest
// boundary segment the ray strikes.
//
// The ray cast reuses diagonal.BuildCrossingTree exactly as the chord
// finder does: a fresh tree over every live segment of the struck
// orientation, stabbed at the vertex's own-axis coordinate. The only
// new mechanics here are (1) picking a direction instead of comparing
// two known endpoints, and (2) the struck segment isn't a vertex's
// Incoming/Outgoing — it's some other segment's interior, which has to
// be split into two collinear pieces before package split's four-
// pointer rewiring can attach a chord to it.
package resolve
