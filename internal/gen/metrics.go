package gen

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// passMetrics holds the Prometheus metrics for generation passes. They are
// registered once against the default registry and exposed by the dev
// server's /metrics endpoint.
type passMetrics struct {
	passesTotal  *prometheus.CounterVec
	passDuration prometheus.Histogram
	routeCount   prometheus.Gauge
	pathCount    prometheus.Gauge
}

var (
	globalMetrics     *passMetrics
	globalMetricsOnce sync.Once
)

// metrics returns the singleton pass metrics.
func metrics() *passMetrics {
	globalMetricsOnce.Do(func() {
		globalMetrics = &passMetrics{
			passesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
				Namespace: "routegen",
				Name:      "passes_total",
				Help:      "Total number of generation passes by status",
			}, []string{"status"}),

			passDuration: promauto.NewHistogram(prometheus.HistogramOpts{
				Namespace: "routegen",
				Name:      "pass_duration_seconds",
				Help:      "Generation pass duration in seconds",
				Buckets:   prometheus.DefBuckets,
			}),

			routeCount: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "routegen",
				Name:      "routes",
				Help:      "Route records produced by the last successful pass",
			}),

			pathCount: promauto.NewGauge(prometheus.GaugeOpts{
				Namespace: "routegen",
				Name:      "route_paths",
				Help:      "Typed route paths produced by the last successful pass",
			}),
		}
	})
	return globalMetrics
}

// recordPass records one completed pass.
func recordPass(res PassResult) {
	m := metrics()

	status := "success"
	if res.Err != nil {
		status = "error"
	}
	m.passesTotal.WithLabelValues(status).Inc()
	m.passDuration.Observe(res.Duration.Seconds())

	if res.Err == nil {
		m.routeCount.Set(float64(res.Routes))
		m.pathCount.Set(float64(res.Paths))
	}
}
