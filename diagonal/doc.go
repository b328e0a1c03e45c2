// Package diagonal finds chord candidates: axis-aligned segments between
// two concave vertices that share a coordinate on the perpendicular axis
// and whose connecting open interval crosses no existing boundary
// segment of the opposite orientation.
//
// The crossing check uses package intervaltree: a tree over one orientation's
// segments keyed by each segment's own-axis span, carrying its
// perpendicular coordinate as payload. FindChords builds one such tree
// per orientation and stabs it at the candidate chord's shared
// coordinate; resolve rebuilds the same trees once chord splitting has
// changed the segment set, since the pipeline does not maintain them
// incrementally (spec.md §5, an accepted inefficiency).
package diagonal
