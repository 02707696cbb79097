package gem

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Process-wide aggregates: with several Repo instances alive at once, these
// count across all of them.
var (
	gemsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gemstore",
		Name:      "gems_created_total",
		Help:      "Number of hidden gems created.",
	})

	gemUpdates = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "gemstore",
		Name:      "gem_updates_total",
		Help:      "Number of field updates applied, by field.",
	}, []string{"field"})

	gemsNotFound = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "gemstore",
		Name:      "gems_not_found_total",
		Help:      "Number of lookups and updates that hit a missing id.",
	})

	gemsLive = promauto.NewGauge(prometheus.GaugeOpts{
		Namespace: "gemstore",
		Name:      "gems_live",
		Help:      "Number of hidden gems currently in the store.",
	})
)
