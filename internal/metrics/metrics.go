package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// SessionsStarted counts monitoring sessions that were successfully started.
	SessionsStarted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manufac_monitoring_sessions_started_total",
		Help: "Number of monitoring sessions started.",
	})

	// SessionsCompleted counts monitoring sessions that ran to completion.
	SessionsCompleted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manufac_monitoring_sessions_completed_total",
		Help: "Number of monitoring sessions that ended.",
	})

	// SamplesRecorded counts production-run sample rows written by the monitor.
	SamplesRecorded = promauto.NewCounter(prometheus.CounterOpts{
		Name: "manufac_production_samples_recorded_total",
		Help: "Number of production-run samples persisted.",
	})
)
