package intervaltree

// Interval is a closed 1D interval [Lo, Hi] carrying an opaque Payload
// back to the caller (in the rectangulation pipeline, a
// diagonal.SegmentHit naming the originating segment, or a chord index in
// package match). Lo must be <= Hi.
type Interval struct {
	Lo, Hi  int
	Payload interface{}
}

// Signal is returned by a Visitor to control whether Stab keeps scanning.
type Signal bool

const (
	// Continue tells Stab to keep visiting remaining candidate intervals.
	Continue Signal = false
	// Stop tells Stab to halt immediately; the accompanying value is
	// propagated back as Stab's result.
	Stop Signal = true
)

// Visitor is invoked once per candidate interval found by Stab, in the
// order described by the package doc comment. Returning Stop short-circuits
// the remainder of the query; the returned value becomes Stab's result.
type Visitor func(iv Interval) (Signal, interface{})

// node is one level of the center-balanced tree. A nil *node represents an
// empty subtree.
type node struct {
	mid int

	// straddleByLo holds intervals with Lo <= mid <= Hi, sorted by Lo
	// ascending. straddleByHi holds the same set sorted by Hi ascending.
	straddleByLo []Interval
	straddleByHi []Interval

	left, right *node
}

// Tree is an immutable interval tree, safe for concurrent read-only Stab
// calls (it holds no mutable state after construction).
type Tree struct {
	root *node
}
