package auth

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var authChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "publisher_auth_checks_total",
		Help: "Total number of publisher key checks by outcome.",
	},
	[]string{"outcome"},
)

func recordAuth(outcome string) {
	authChecksTotal.WithLabelValues(outcome).Inc()
}
