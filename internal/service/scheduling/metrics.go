package scheduling

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeScheduled             = "scheduled"
	outcomeScheduledWithWarnings = "scheduled_with_warnings"
	outcomeInvalid               = "invalid"
	outcomeProductionNotComplete = "production_not_complete"
	outcomeConflict              = "conflict"
	outcomeFailed                = "failed"
)

var SchedulingOutcomesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "scheduling_outcomes_total",
		Help: "Delivery scheduling requests by outcome",
	},
	[]string{"outcome"},
)
