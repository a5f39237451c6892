// Package observability registers Prometheus metrics for the activities service.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	signupCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "signups_total",
		Help:      "Number of successful signups per activity.",
	}, []string{"activity"})

	unregisterCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "unregistrations_total",
		Help:      "Number of successful unregistrations per activity.",
	}, []string{"activity"})

	rejectionCounter = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "activities_service",
		Subsystem: "http",
		Name:      "rejected_requests_total",
		Help:      "Number of requests rejected before mutating the roster, grouped by reason.",
	}, []string{"reason"})

	rosterSizeGauge = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "activities_service",
		Subsystem: "roster",
		Name:      "participants",
		Help:      "Current number of registered participants per activity.",
	}, []string{"activity"})
)

func init() {
	prometheus.MustRegister(signupCounter, unregisterCounter, rejectionCounter, rosterSizeGauge)
}

// RecordSignup increments the signup counter for the activity.
func RecordSignup(activity string) {
	signupCounter.WithLabelValues(activity).Inc()
}

// RecordUnregister increments the unregistration counter for the activity.
func RecordUnregister(activity string) {
	unregisterCounter.WithLabelValues(activity).Inc()
}

// RecordRejection increments the rejected-request counter for the reason.
func RecordRejection(reason string) {
	rejectionCounter.WithLabelValues(reason).Inc()
}

// SetRosterSize updates the per-activity participant gauge.
func SetRosterSize(activity string, count int) {
	rosterSizeGauge.WithLabelValues(activity).Set(float64(count))
}
