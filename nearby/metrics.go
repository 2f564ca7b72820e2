package nearby

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Outcome label values of Metrics.Walks.
const (
	outcomeFound  = "found"
	outcomeNoPath = "no_path"
	outcomeError  = "error"
)

// Metrics holds the counters and histograms updated by a Service.
type Metrics struct {
	Walks          *prometheus.CounterVec
	FriendsSkipped prometheus.Counter
	NearbyFound    prometheus.Counter
	WalkDuration   prometheus.Histogram
	FriendsPerWalk prometheus.Histogram
}

// NewMetrics creates the service metrics and registers them with
// registerer. A nil registerer leaves them unregistered.
func NewMetrics(registerer prometheus.Registerer) *Metrics {
	return &Metrics{
		Walks: promauto.With(registerer).NewCounterVec(prometheus.CounterOpts{
			Namespace: "nearby",
			Name:      "walks_total",
			Help:      "Total number of walk queries by outcome.",
		}, []string{"outcome"}),
		FriendsSkipped: promauto.With(registerer).NewCounter(prometheus.CounterOpts{
			Namespace: "nearby",
			Name:      "friends_skipped_total",
			Help:      "Total number of friends skipped because their walk could not be resolved.",
		}),
		NearbyFound: promauto.With(registerer).NewCounter(prometheus.CounterOpts{
			Namespace: "nearby",
			Name:      "friends_nearby_total",
			Help:      "Total number of friends reported walking nearby.",
		}),
		WalkDuration: promauto.With(registerer).NewHistogram(prometheus.HistogramOpts{
			Namespace: "nearby",
			Name:      "walk_duration_seconds",
			Help:      "Time spent resolving a walk and its nearby friends.",
			Buckets:   prometheus.ExponentialBuckets(0.0005, 4, 8),
		}),
		FriendsPerWalk: promauto.With(registerer).NewHistogram(prometheus.HistogramOpts{
			Namespace: "nearby",
			Name:      "friends_per_walk",
			Help:      "Number of friends evaluated per walk.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		}),
	}
}
