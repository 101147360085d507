// Package metrics exposes the intake pipeline's Prometheus counters.
package metrics

import (
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Submission outcomes.
const (
	OutcomeAccepted     = "accepted"
	OutcomeUnauthorized = "unauthorized"
	OutcomeRejected     = "rejected"
	OutcomeError        = "error"
)

// SubmissionsTotal counts complaint submissions by outcome.
var SubmissionsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Namespace: "crime_reporting",
	Subsystem: "intake",
	Name:      "complaint_submissions_total",
	Help:      "Complaint submission attempts partitioned by outcome.",
}, []string{"outcome"})

// Handler serves the default Prometheus registry.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
