package nearby

import (
	"log/slog"
	"runtime"

	"github.com/viant/sqlite-nearby/index"
	"github.com/viant/sqlite-nearby/index/quad"
)

type options struct {
	logger      *slog.Logger
	parallelism int
	newIndex    func() index.Index
	metrics     *Metrics
}

// Option configures a Service.
type Option func(*options)

// WithLogger sets the logger used by the service.
// If nil is passed, logging is disabled.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		o.logger = logger
	}
}

// WithParallelism bounds the number of friends evaluated at once.
// Values below 1 select runtime.GOMAXPROCS(0).
func WithParallelism(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = runtime.GOMAXPROCS(0)
		}
		o.parallelism = n
	}
}

// WithIndexFactory sets the constructor for the index built over the
// user's walk. The default is a quadtree index sharing the service logger.
func WithIndexFactory(fn func() index.Index) Option {
	return func(o *options) {
		o.newIndex = fn
	}
}

// WithMetrics sets the metrics updated by the service. If nil is passed,
// unregistered metrics are used.
func WithMetrics(m *Metrics) Option {
	return func(o *options) {
		o.metrics = m
	}
}

func newOptions(opts []Option) options {
	o := options{
		logger:      slog.New(slog.DiscardHandler),
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.metrics == nil {
		o.metrics = NewMetrics(nil)
	}
	if o.newIndex == nil {
		logger := o.logger
		o.newIndex = func() index.Index { return quad.New(quad.WithLogger(logger)) }
	}
	return o
}
