package match

import "github.com/katalvlaran/rectraster/diagonal"

// SelectChords returns the largest subset of hChords and vChords that
// contains no crossing pair, per spec.md §4.E / §9: build the bipartite
// crossing graph, run a Kuhn's-algorithm augmenting-path matcher to find
// a maximum matching, then derive the König minimum vertex cover via an
// alternating-path BFS seeded from the unmatched horizontal vertices.
// The maximum independent set (the chords kept) is everything outside
// that cover.
// Complexity: O(V*E) for Kuhn's algorithm on the crossing graph, plus
// O(V+E) for the alternating-path BFS.
func SelectChords(hChords, vChords []diagonal.Chord) (selectedH, selectedV []diagonal.Chord) {
	crossings := findCrossingIndices(hChords, vChords)

	adjH := make([][]int, len(hChords))
	for _, c := range crossings {
		adjH[c.h] = append(adjH[c.h], c.v)
	}

	// matchV[v] is the horizontal index currently matched to vertical
	// index v, or -1 if v is unmatched.
	matchV := make([]int, len(vChords))
	for i := range matchV {
		matchV[i] = -1
	}

	for h := range hChords {
		visited := make([]bool, len(vChords))
		tryAugment(h, adjH, visited, matchV)
	}

	matchH := make([]int, len(hChords))
	for i := range matchH {
		matchH[i] = -1
	}
	for v, h := range matchV {
		if h != -1 {
			matchH[h] = v
		}
	}

	zh, zv := alternatingReach(adjH, matchH, matchV)

	// König: minimum vertex cover = (H \ Zh) ∪ Zv. The independent set
	// we keep is everything else: Zh on the horizontal side, V \ Zv on
	// the vertical side.
	for h, c := range hChords {
		if zh[h] {
			selectedH = append(selectedH, c)
		}
	}
	for v, c := range vChords {
		if !zv[v] {
			selectedV = append(selectedV, c)
		}
	}

	return selectedH, selectedV
}

// tryAugment looks for an augmenting path starting at horizontal vertex
// h, following Kuhn's algorithm: visit each of h's unvisited crossing
// partners, and either claim an unmatched one or recurse through its
// current match to free it up.
func tryAugment(h int, adjH [][]int, visited []bool, matchV []int) bool {
	for _, v := range adjH[h] {
		if visited[v] {
			continue
		}
		visited[v] = true
		if matchV[v] == -1 || tryAugment(matchV[v], adjH, visited, matchV) {
			matchV[v] = h
			return true
		}
	}
	return false
}

// alternatingReach runs the BFS König's theorem needs: starting from
// every unmatched horizontal vertex, alternate unmatched edges
// (horizontal to vertical) with matched edges (vertical back to
// horizontal), and return the two reachable sets.
func alternatingReach(adjH [][]int, matchH, matchV []int) (zh, zv []bool) {
	zh = make([]bool, len(matchH))
	zv = make([]bool, len(matchV))

	var queue []int
	for h, v := range matchH {
		if v == -1 {
			zh[h] = true
			queue = append(queue, h)
		}
	}

	for len(queue) > 0 {
		h := queue[0]
		queue = queue[1:]
		for _, v := range adjH[h] {
			if zv[v] {
				continue
			}
			zv[v] = true
			if next := matchV[v]; next != -1 && !zh[next] {
				zh[next] = true
				queue = append(queue, next)
			}
		}
	}

	return zh, zv
}
