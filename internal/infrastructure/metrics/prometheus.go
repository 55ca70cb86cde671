// Package metrics expone métricas Prometheus del cálculo de necesidades de materiales.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Resultados posibles de un cálculo.
const (
	StatusOK      = "ok"
	StatusEmpty   = "empty"
	StatusInvalid = "invalid"
	StatusError   = "error"
)

var (
	ComputationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "planning_computations_total",
			Help: "Total de cálculos de necesidades de materiales por resultado",
		},
		[]string{"status"},
	)

	ComputeDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planning_compute_duration_seconds",
			Help:    "Duración total del cálculo (carga + netting)",
			Buckets: prometheus.DefBuckets,
		},
	)

	LoadDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "planning_load_duration_seconds",
			Help:    "Duración de cada carga de datos de entrada",
			Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		},
		[]string{"source"},
	)

	RequirementRows = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "planning_requirement_rows",
			Help:    "Materiales devueltos por cálculo",
			Buckets: []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
		},
	)
)

// ObserveLoad registra la duración de una carga desde start.
func ObserveLoad(source string, start time.Time) {
	LoadDuration.WithLabelValues(source).Observe(time.Since(start).Seconds())
}

// ObserveComputation registra el resultado y la duración de un cálculo completo.
func ObserveComputation(status string, rows int, start time.Time) {
	ComputationsTotal.WithLabelValues(status).Inc()
	ComputeDuration.Observe(time.Since(start).Seconds())
	if status == StatusOK || status == StatusEmpty {
		RequirementRows.Observe(float64(rows))
	}
}
