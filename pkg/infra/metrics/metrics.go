package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var registry = prometheus.NewRegistry()

var registerer = prometheus.WrapRegistererWith(nil, registry)

// Latency buckets in milliseconds, skewed towards the slow end since model
// backends routinely take seconds.
var latencyBuckets = []float64{
	50, 100, 250,
	500, 1000, 2500,
	5000, 10000, 30000,
}

var (
	RunsExecuted = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "aisec_runs_executed_total",
			Help: "Total number of model runs completed",
		},
		[]string{"vendor"},
	)

	RunsFailed = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "aisec_runs_failed_total",
			Help: "Total number of model runs that failed at the backend",
		},
		[]string{"vendor"},
	)

	LeakageDetections = promauto.With(registerer).NewCounterVec(
		prometheus.CounterOpts{
			Name: "aisec_leakage_detections_total",
			Help: "Total number of evaluations that flagged leakage",
		},
		[]string{"vendor", "risk_level"},
	)

	BackendLatency = promauto.With(registerer).NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "aisec_backend_latency_ms",
			Help:    "Model backend call latency in milliseconds",
			Buckets: latencyBuckets,
		},
		[]string{"vendor"},
	)

	QueueDepth = promauto.With(registerer).NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "aisec_run_queue_depth",
			Help: "Number of run jobs waiting in the queue",
		},
		[]string{"queue"},
	)
)

func Initialize() {
	registry.MustRegister(
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	prometheus.DefaultRegisterer = registry
	prometheus.DefaultGatherer = registry
}
