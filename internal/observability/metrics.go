// Package observability exposes Prometheus metrics for the signup service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for signup and unregister attempts.
const (
	OutcomeAccepted      = "accepted"
	OutcomeNotFound      = "not_found"
	OutcomeDuplicate     = "duplicate"
	OutcomeFull          = "full"
	OutcomeNotRegistered = "not_registered"
	OutcomeError         = "error"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "signup_attempts_total",
		Help:      "Number of signup attempts grouped by activity and outcome.",
	}, []string{"activity", "outcome"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "unregister_attempts_total",
		Help:      "Number of unregister attempts grouped by activity and outcome.",
	}, []string{"activity", "outcome"})

	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "signup_service",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current number of participants enrolled per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rosterSizeGauge)
}

// RecordSignup counts one signup attempt.
func RecordSignup(activity, outcome string) {
	signupCounter.WithLabelValues(activity, outcome).Inc()
}

// RecordUnregister counts one unregister attempt.
func RecordUnregister(activity, outcome string) {
	unregisterCounter.WithLabelValues(activity, outcome).Inc()
}

// SetRosterSize updates the roster size gauge for an activity.
func SetRosterSize(activity string, size int) {
	rosterSizeGauge.WithLabelValues(activity).Set(float64(size))
}
