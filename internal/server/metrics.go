package server

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	calculationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "uqual",
		Name:      "calculations_total",
		Help:      "Calculations processed, by calculator type and outcome.",
	}, []string{"calculator", "outcome"})

	calculationDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: "uqual",
		Name:      "calculation_duration_seconds",
		Help:      "Time spent in the sanitize/validate/calculate pipeline.",
		Buckets:   prometheus.DefBuckets,
	}, []string{"calculator"})
)
