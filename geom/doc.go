// Package geom defines the plain value types shared by every stage of the
// rectangulation pipeline: integer points, the two axis orientations, the
// two traversal directions, and the final axis-aligned rectangle.
//
// Nothing in this package allocates or mutates shared state; every type is
// a small, comparable value safe to copy freely between pipeline stages.
package geom
