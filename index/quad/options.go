package quad

import "log/slog"

type options struct {
	logger *slog.Logger
}

// Option configures an Index.
type Option func(*options)

// WithLogger sets the logger used for build and search diagnostics.
// If nil is passed, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		o.logger = logger
	}
}

func newOptions(opts []Option) options {
	o := options{logger: slog.New(slog.DiscardHandler)}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
