// Package match selects a maximum non-crossing subset of chord candidates.
//
// Two chords of opposite orientation cross when each one's own-axis span
// strictly contains the other's shared coordinate — touching at an
// endpoint does not count. FindCrossings builds the bipartite crossing
// graph between the horizontal and vertical chord lists; SelectChords
// turns that graph into a maximum independent set via König's theorem:
// MIS size = V - minimum vertex cover.
//
// The minimum vertex cover comes from a maximum bipartite matching found
// with Kuhn's augmenting-path algorithm, run directly over the crossing
// adjacency lists (no flow network, no generic graph type). Once the
// matching is maximum, a BFS alternates unmatched edges (horizontal to
// vertical) with matched edges (vertical back to horizontal) starting
// from every unmatched horizontal vertex; the two reached sets give the
// cover as (H \ reached) ∪ (V reached), per spec.md §9.
package match
