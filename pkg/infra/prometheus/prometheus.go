package prometheus

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

// Latency buckets in milliseconds: the classifier budget tops out at 5s, so
// most observations land under 1s with a tail for slow remote calls.
var latencyBuckets = []float64{
	5, 10, 25,
	50, 100, 250,
	500, 1000, 2500,
	5000, 10000,
}

var (
	ClassifierCallsTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedguard_classifier_calls_total",
			Help: "Total calls to the toxicity classification service",
		},
		[]string{"endpoint", "outcome"}, // endpoint: predict|censor, outcome: ok|fail_open
	)

	ClassifierLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feedguard_classifier_latency_ms",
			Help:    "Toxicity service call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"endpoint"},
	)

	ModerationCacheLookups = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedguard_moderation_cache_lookups_total",
			Help: "Verdict cache lookups by result",
		},
		[]string{"result"}, // hit|miss
	)

	ModerationVerdicts = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedguard_moderation_verdicts_total",
			Help: "Settled verdicts published to composers",
		},
		[]string{"level"},
	)

	StaleVerdictsDiscarded = promauto.With(registerer).NewCounter(
		prometheus.CounterOpts{
			Name: "feedguard_moderation_stale_verdicts_total",
			Help: "Classification results discarded because the buffer changed",
		},
	)

	RequestTotal = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "feedguard_requests_total",
			Help: "Total HTTP requests processed",
		},
		[]string{"method", "status"},
	)

	RequestLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "feedguard_request_latency_ms",
			Help:    "HTTP request latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"route"},
	)
)

func Initialize() {
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}

// Registry exposes the feedguard registry for the /metrics handler.
func Registry() *prometheus.Registry {
	return registry
}
