// Package intervaltree implements a static, immutable, center-balanced 1D
// interval tree over closed intervals, supporting stabbing-point queries
// via a short-circuiting visitor.
//
// Construction recursively splits the interval set on the median of all
// endpoints: intervals entirely below the median recurse left, entirely
// above recurse right, and intervals straddling the median are kept at the
// current node in two sorted views (by Lo ascending and by Hi ascending)
// so that a query can stop scanning as soon as it passes the query point.
//
// Queries are closed-interval: x == Lo and x == Hi both count as hits.
// Duplicate intervals are preserved, never deduplicated.
//
// The tree is built once and never mutated; the rectangulation pipeline
// rebuilds it from scratch whenever the underlying segment set changes
// (after chord splitting — spec §5, a known and accepted inefficiency)
// rather than supporting incremental insertion.
package intervaltree
