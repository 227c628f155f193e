package decorator

import "go.uber.org/zap"

type option struct {
	Tracker Tracker
	Logger  *zap.Logger
}

func newOption(opts ...Option) *option {
	o := &option{}
	for _, opt := range opts {
		opt(o)
	}
	if o.Tracker == nil {
		o.Tracker = nopTracker{}
	}
	if o.Logger == nil {
		o.Logger = zap.NewNop()
	}
	return o
}

type Option func(*option)

// WithTracker reports every acquired and released node to tracker.
func WithTracker(tracker Tracker) Option {
	return func(o *option) {
		o.Tracker = tracker
	}
}

// WithLogger sets the logger used for lifecycle messages, they are all logged at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(o *option) {
		o.Logger = logger
	}
}
