package driver_activity

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ActiveDriversGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "drivers_active_total",
			Help: "Number of drivers with recent location samples",
		},
	)

	OpenTripsGauge = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "driver_trips_open_total",
			Help: "Number of trips currently in started status",
		},
	)
)
