package obs

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Registry holds every collector exported on /metrics.
var Registry = prometheus.NewRegistry()

var (
	RequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "delivery_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: []float64{0.005, 0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
		},
		[]string{"route", "method", "status"},
	)

	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "delivery_predictions_total",
			Help: "Single predictions by outcome",
		},
		[]string{"outcome"},
	)

	DashboardSubsetSize = prometheus.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "delivery_dashboard_subset_records",
			Help:    "Number of records left after filtering per dashboard request",
			Buckets: []float64{0, 10, 50, 100, 250, 500, 1000, 5000},
		},
	)

	DatasetRecords = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "delivery_dataset_records",
			Help: "Number of records in the loaded dataset",
		},
	)
)

func init() {
	Registry.MustRegister(
		RequestDuration,
		PredictionsTotal,
		DashboardSubsetSize,
		DatasetRecords,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
}

// MetricsHandler serves the Registry in the Prometheus text format.
func MetricsHandler() http.Handler {
	return promhttp.HandlerFor(Registry, promhttp.HandlerOpts{Registry: Registry})
}
