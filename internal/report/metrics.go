package report

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	skippedRecords = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "camptrack",
		Subsystem: "report",
		Name:      "skipped_records_total",
		Help:      "Records left out of reports because their dates could not be parsed.",
	}, []string{"kind"})

	shortageDays = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "camptrack",
		Subsystem: "report",
		Name:      "shortage_days",
		Help:      "Shortage days found across all camps by the most recent alert sweep.",
	})
)
