package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Lifecycle counters. Labels carry the transition name so dashboards can
// break down throughput per operation.
var (
	FlightTransitions = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sharebrasil",
		Name:      "flight_transitions_total",
		Help:      "Completed flight lifecycle transitions.",
	}, []string{"transition"})

	FlightTransitionRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "sharebrasil",
		Name:      "flight_transition_rejections_total",
		Help:      "Lifecycle transitions rejected by the state machine.",
	}, []string{"transition"})

	NotificationFailures = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "sharebrasil",
		Name:      "notification_failures_total",
		Help:      "Notification writes that failed after a committed transition.",
	})
)
