package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	SessionsLogged = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "gymtrack_sessions_logged_total",
		Help: "Sessions logged, by duration in minutes.",
	}, []string{"duration"})

	PurchasesCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gymtrack_purchases_created_total",
		Help: "Purchases created.",
	})

	PurchasesExhausted = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gymtrack_purchases_exhausted_total",
		Help: "Purchases whose last remaining session was consumed.",
	})

	PartnersLinked = promauto.NewCounter(prometheus.CounterOpts{
		Name: "gymtrack_partners_linked_total",
		Help: "Purchases retroactively linked to a partner account.",
	})
)
