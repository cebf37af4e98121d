package analysis

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	analysisRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "expense_bot",
			Subsystem: "analysis",
			Name:      "requests_total",
		},
		[]string{"status"},
	)

	histogramAnalysisTime = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "expense_bot",
			Subsystem: "analysis",
			Name:      "histogram_response_time_seconds",
			Buckets:   []float64{0.1, 0.25, 0.5, 1, 2, 5, 10, 20, 30, 60},
		},
	)
)

func observeAnalysis(status Status) {
	analysisRequests.WithLabelValues(status.String()).Inc()
}

func observeLatency(elapsed time.Duration) {
	histogramAnalysisTime.Observe(elapsed.Seconds())
}
