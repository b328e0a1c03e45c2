// Package rectraster converts a binary raster into a minimal set of
// axis-aligned rectangles covering its foreground pixels.
//
// The pipeline runs six packages in sequence: scan extracts raw
// boundary segments from the raster, loop stitches them into closed
// doubly-linked loops and marks concave corners, diagonal finds
// candidate chords between collinear concave vertex pairs, match
// selects a maximum non-crossing subset of those chords via König's
// theorem over a bipartite matching, split cuts the polygon along each
// selected chord, and resolve eliminates whatever concave vertices
// remain by casting a ray to the nearest opposing wall. What's left is
// a set of loops with exactly four convex corners each — rectangles.
package rectraster
