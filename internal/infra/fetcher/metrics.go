package fetcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var imageChecksTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "image_checks_total",
		Help: "Total number of image reachability checks by result.",
	},
	[]string{"result"},
)

func recordImageCheck(result string) {
	imageChecksTotal.WithLabelValues(result).Inc()
}
