package article

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var articleOpsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "article_operations_total",
		Help: "Total number of successful article write operations by kind.",
	},
	[]string{"operation"},
)

func recordArticleOp(operation string) {
	articleOpsTotal.WithLabelValues(operation).Inc()
}
