package statusevents

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var EventPublishTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "freight_status_events_published_total",
		Help: "Total number of freight status change events published to Kafka",
	},
	[]string{"result"},
)
