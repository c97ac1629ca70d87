// Package metrics provides Prometheus metrics for seller-forecast.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UpstreamRequests counts forecasting API calls by endpoint and outcome.
	UpstreamRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sellerforecast",
			Name:      "upstream_requests_total",
			Help:      "Total number of forecasting API requests",
		},
		[]string{"endpoint", "status"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "sellerforecast",
			Name:      "upstream_request_duration_seconds",
			Help:      "Duration of forecasting API requests in seconds",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"endpoint"},
	)

	// SummariesTotal counts computed summaries by timeframe.
	SummariesTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sellerforecast",
			Name:      "summaries_total",
			Help:      "Total number of forecast summaries computed",
		},
		[]string{"timeframe"},
	)

	SnapshotFlushes = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "sellerforecast",
			Name:      "snapshot_flushes_total",
			Help:      "Snapshot flushes to the store by result",
		},
		[]string{"result"},
	)

	SnapshotBatchSize = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "sellerforecast",
			Name:      "snapshot_batch_size",
			Help:      "Distribution of snapshot batch sizes",
			Buckets:   []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
		},
	)
)
