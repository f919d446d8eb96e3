package stdinarg

// Option configures an argument wrapper.
type Option func(*options)

type options struct {
	guard *Guard
}

// WithGuard resolves "-" through g instead of the process-wide Default guard.
func WithGuard(g *Guard) Option {
	return func(o *options) {
		o.guard = g
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
