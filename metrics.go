package main

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	chartRenders = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "pav_chart_renders_total",
		Help: "Charts computed, by highlight mode.",
	}, []string{"mode"})

	rowsLoaded = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "pav_rows_loaded",
		Help: "Player rows held by the dashboard.",
	})

	etlRowsWritten = promauto.NewCounter(prometheus.CounterOpts{
		Name: "pav_etl_rows_written_total",
		Help: "Player rows written by the load command.",
	})
)
