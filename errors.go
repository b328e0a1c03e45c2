package rectraster

import "fmt"

// Kind classifies why Decompose or Contours failed, per spec.md §7's
// three-way error taxonomy.
type Kind int

const (
	// InvalidInput means the raster itself is unusable: a bad shape or
	// a source that errors on read.
	InvalidInput Kind = iota
	// MalformedGeometry means the scanned boundary segments could not
	// be stitched into closed loops — a bug in the scan stage, or a
	// raster whose boundary geometry the pipeline does not support.
	MalformedGeometry
	// InternalInvariant means an invariant the pipeline depends on
	// (loop closure, a resolver's ray always finding a wall, a final
	// loop always reducing to four corners) failed partway through.
	// Never recoverable — it indicates a bug in this library, not bad
	// input.
	InternalInvariant
)

// String implements fmt.Stringer for diagnostics.
func (k Kind) String() string {
	switch k {
	case InvalidInput:
		return "InvalidInput"
	case MalformedGeometry:
		return "MalformedGeometry"
	case InternalInvariant:
		return "InternalInvariant"
	default:
		return "Kind(?)"
	}
}

// Error wraps a pipeline failure with the Kind that classifies it.
// Unwrap exposes the underlying sentinel so callers can errors.Is
// against e.g. loop.ErrUnequalEndpointCounts without caring that
// rectraster re-wrapped it.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("rectraster: %s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func invalidInputf(format string, args ...interface{}) error {
	return &Error{Kind: InvalidInput, Err: fmt.Errorf(format, args...)}
}

func malformedGeometryf(format string, args ...interface{}) error {
	return &Error{Kind: MalformedGeometry, Err: fmt.Errorf(format, args...)}
}

func internalInvariantf(format string, args ...interface{}) error {
	return &Error{Kind: InternalInvariant, Err: fmt.Errorf(format, args...)}
}
