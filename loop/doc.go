// Package loop turns scan's raw boundary segments into closed polygon
// loops: a doubly-linked cycle of Segments per connected boundary, with
// each corner Vertex classified convex or concave.
//
// Segments and Vertices live in flat arenas addressed by integer ID
// (SegmentID, VertexID) rather than by pointer, following the pipeline's
// arena convention (spec.md's stitching description and the corner-turn
// invariants it is built from favor index-based storage: diagonal,
// split and resolve all mutate this arena in place as the pipeline
// progresses, and pointer cycles would make that bookkeeping harder to
// reason about).
//
// Stitching pairs each segment's two endpoints (one Outgoing builder
// vertex at its Start, one Incoming at its End) into corners by sorting
// the Horizontal-segment endpoints and the Vertical-segment endpoints
// independently and zipping same-index entries together. The two sort
// comparators are deliberately asymmetric — see Build's doc comment —
// which is what keeps "pinch points" (two different loops touching at
// one grid corner, as in a checkerboard pattern) from being stitched
// into each other.
package loop
