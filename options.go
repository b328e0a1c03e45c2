package rectraster

import "context"

// options holds Decompose/Contours configuration. It currently exposes
// only a context, checked at stage boundaries (spec.md §5: "no operation
// suspends" inside a stage) so a caller can cancel between pipeline
// phases without the algorithm itself gaining suspend points.
type options struct {
	ctx context.Context
}

// Option configures a Decompose or Contours call via the functional-
// options pattern.
type Option func(*options)

// WithContext sets the context checked between pipeline stages. The
// default is context.Background(), i.e. no cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *options) { o.ctx = ctx }
}

func newOptions(opts []Option) *options {
	o := &options{ctx: context.Background()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

func (o *options) checkContext() error {
	select {
	case <-o.ctx.Done():
		return o.ctx.Err()
	default:
		return nil
	}
}
