package reconciler

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var ReconcileTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "schedule_reconcile_total",
		Help: "Schedule reconciliations by resolution path",
	},
	[]string{"path"},
)
