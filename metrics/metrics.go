// Package metrics exposes the Prometheus instrumentation shared by the
// probing and analysis services.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ProbeTotal counts latency probes by result.
	ProbeTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tailmesh_probe_total",
		Help: "Latency probes by result (ok, no_answer, error)",
	}, []string{"result"})

	// ProbeDuration tracks the wall time of a single latency probe.
	ProbeDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tailmesh_probe_duration_seconds",
		Help:    "Duration of a single latency probe",
		Buckets: prometheus.ExponentialBuckets(0.005, 2, 10), // 5ms to ~2.5s
	})

	// AnalysisTotal counts analysis requests by outcome.
	AnalysisTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "tailmesh_analysis_total",
		Help: "Analysis requests by outcome",
	}, []string{"outcome"})

	// AnalysisDuration tracks end-to-end analysis duration, dominated
	// by the O(n^2) probe phase.
	AnalysisDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "tailmesh_analysis_duration_seconds",
		Help:    "End to end analysis duration",
		Buckets: prometheus.ExponentialBuckets(0.1, 2, 12), // 100ms to ~3.5min
	})
)
