package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	AlertTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_alert_transitions_total",
		Help: "Alert lifecycle transitions by resulting status",
	}, []string{"status"})

	IncidentTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_incident_transitions_total",
		Help: "Incident status transitions by target status",
	}, []string{"status"})

	GuardDenials = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_station_guard_denials_total",
		Help: "Alert creations refused by the station guard, by reason",
	}, []string{"reason"})

	MaterializeFailures = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_incident_materialize_failures_total",
		Help: "Incident creations after alert acceptance that failed and were swallowed",
	})

	UnitsAutoDeactivated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "dispatch_units_auto_deactivated_total",
		Help: "Units cleared by the end-of-shift sweep",
	})

	SweepDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "dispatch_unit_sweep_duration_seconds",
		Help:    "Duration of the end-of-shift unit sweep",
		Buckets: prometheus.DefBuckets,
	})

	PublishFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "dispatch_publish_failures_total",
		Help: "Event publish failures by event name",
	}, []string{"event"})
)
