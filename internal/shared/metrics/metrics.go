// Package metrics exposes Prometheus instrumentation for the service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// UploadsTotal counts accepted image uploads.
	UploadsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "image_uploads_total",
		Help: "Total number of accepted image uploads",
	})

	// UploadsRejectedTotal counts uploads rejected before any write, by reason.
	UploadsRejectedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "image_uploads_rejected_total",
		Help: "Total number of rejected image uploads",
	}, []string{"reason"})

	// AnalysesTotal counts skin analyses by outcome.
	AnalysesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "skin_analyses_total",
		Help: "Total number of skin analyses",
	}, []string{"status"})

	// AnalysisDuration tracks end-to-end analysis latency.
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "skin_analysis_duration_seconds",
		Help:    "Duration of skin analysis in seconds",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
	})

	// RecommendationsTotal counts generated recommendation responses.
	RecommendationsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "recommendations_generated_total",
		Help: "Total number of generated recommendation responses",
	})
)
