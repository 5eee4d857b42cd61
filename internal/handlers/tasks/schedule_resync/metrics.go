package schedule_resync

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ResyncedSchedulesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schedule_resync_synced_total",
			Help: "Locally held schedules acknowledged by the backend on resync",
		},
	)

	RejectedSchedulesTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "schedule_resync_rejected_total",
			Help: "Locally held schedules dropped on resync because their day no longer has room",
		},
	)

	PendingSchedules = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "schedule_resync_pending",
			Help: "Schedules still held only in the local projection after the last resync",
		},
	)
)
