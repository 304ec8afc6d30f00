package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	// VehicleMigrationsTotal counts subtype migrations performed by the
	// connector, labelled by source and target kind.
	VehicleMigrationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carconnectivity_skoda_vehicle_migrations_total",
			Help: "Total number of vehicle subtype migrations (origin-copy constructions).",
		},
		[]string{"from", "to"},
	)

	// ExtraKeysTotal counts API responses that carried keys outside the
	// documented schema, labelled by the context the payload was seen in.
	ExtraKeysTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "carconnectivity_skoda_api_extra_keys_total",
			Help: "Total number of API payloads containing unexpected keys.",
		},
		[]string{"where"},
	)
)

func init() {
	prometheus.MustRegister(VehicleMigrationsTotal)
	prometheus.MustRegister(ExtraKeysTotal)
}
