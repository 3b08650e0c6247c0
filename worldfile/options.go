package worldfile

// Option configures Parse and LoadFile.
type Option func(*options)

type options struct {
	strict       bool
	maxObstacles int
}

// WithStrict makes any warning fatal. The returned error wraps ErrStrict and lists every warning.
// Notices stay non-fatal.
func WithStrict() Option {
	return func(o *options) {
		o.strict = true
	}
}

// WithMaxObstacles rejects descriptions with more than n obstacles. n <= 0 means no limit.
func WithMaxObstacles(n int) Option {
	return func(o *options) {
		o.maxObstacles = n
	}
}

func newOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
