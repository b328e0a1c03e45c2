package intervaltree

import "sort"

// New builds a Tree over intervals. An empty input yields an empty, valid
// Tree (Stab always returns nil, false).
// Complexity: O(n log n) time, O(n) space.
func New(intervals []Interval) *Tree {
	return &Tree{root: build(intervals)}
}

// build recursively partitions intervals around the median of all their
// endpoints. Spec §4.A steps 1-4.
func build(intervals []Interval) *node {
	if len(intervals) == 0 {
		return nil
	}

	endpoints := make([]int, 0, len(intervals)*2)
	for _, iv := range intervals {
		endpoints = append(endpoints, iv.Lo, iv.Hi)
	}
	sort.Ints(endpoints)
	mid := endpoints[len(endpoints)/2]

	var left, right, straddle []Interval
	for _, iv := range intervals {
		switch {
		case iv.Hi < mid:
			left = append(left, iv)
		case iv.Lo > mid:
			right = append(right, iv)
		default:
			straddle = append(straddle, iv)
		}
	}

	byLo := append([]Interval(nil), straddle...)
	sort.Slice(byLo, func(i, j int) bool { return byLo[i].Lo < byLo[j].Lo })
	byHi := append([]Interval(nil), straddle...)
	sort.Slice(byHi, func(i, j int) bool { return byHi[i].Hi < byHi[j].Hi })

	return &node{
		mid:          mid,
		straddleByLo: byLo,
		straddleByHi: byHi,
		left:         build(left),
		right:        build(right),
	}
}

// Stab visits every interval containing x, in the order fixed by spec
// §4.A, until visit returns Stop or the query is exhausted. It returns the
// value accompanying the Stop signal, or (nil, false) if visit never
// stopped the scan.
// Complexity: O(log n + k) where k is the number of intervals visited
// before a Stop (or the straddling-set size at the deepest matching node).
func (t *Tree) Stab(x int, visit Visitor) (interface{}, bool) {
	return t.root.stab(x, visit)
}

func (n *node) stab(x int, visit Visitor) (interface{}, bool) {
	if n == nil {
		return nil, false
	}

	switch {
	case x < n.mid:
		if v, stopped := n.left.stab(x, visit); stopped {
			return v, true
		}
		for _, iv := range n.straddleByLo {
			if iv.Lo > x {
				break
			}
			if sig, v := visit(iv); sig == Stop {
				return v, true
			}
		}
		return nil, false

	case x > n.mid:
		if v, stopped := n.right.stab(x, visit); stopped {
			return v, true
		}
		for i := len(n.straddleByHi) - 1; i >= 0; i-- {
			iv := n.straddleByHi[i]
			if iv.Hi < x {
				break
			}
			if sig, v := visit(iv); sig == Stop {
				return v, true
			}
		}
		return nil, false

	default: // x == n.mid: every straddling interval matches.
		for _, iv := range n.straddleByLo {
			if sig, v := visit(iv); sig == Stop {
				return v, true
			}
		}
		return nil, false
	}
}

// StabAll collects every interval containing x, ignoring short-circuiting.
// Convenience wrapper over Stab for callers that always want the full hit
// set (the pipeline's chord-crossing checks use Stab directly instead, to
// stop at the first crossing found).
func (t *Tree) StabAll(x int) []Interval {
	var hits []Interval
	t.Stab(x, func(iv Interval) (Signal, interface{}) {
		hits = append(hits, iv)
		return Continue, nil
	})

	return hits
}
