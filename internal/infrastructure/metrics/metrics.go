package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the room and game counters exposed on /metrics. Each
// instance carries its own registry so tests can build one without
// colliding with the default global registry.
type Metrics struct {
	registry *prometheus.Registry

	RoomsCreated  prometheus.Counter
	RoomsDeleted  prometheus.Counter
	RoomJoins     prometheus.Counter
	RoomLeaves    prometheus.Counter
	HostTransfers prometheus.Counter
	GamesStarted  prometheus.Counter
	GamesFinished prometheus.Counter
	ActiveRooms   prometheus.Gauge
}

// NewMetrics creates and registers the service metrics
func NewMetrics(namespace string) *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		RoomsCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_created_total",
			Help:      "Total number of rooms created",
		}),
		RoomsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "rooms_deleted_total",
			Help:      "Total number of rooms deleted",
		}),
		RoomJoins: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "room_joins_total",
			Help:      "Total number of successful room joins",
		}),
		RoomLeaves: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "room_leaves_total",
			Help:      "Total number of successful room leaves",
		}),
		HostTransfers: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "host_transfers_total",
			Help:      "Total number of host transfers",
		}),
		GamesStarted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_started_total",
			Help:      "Total number of games started",
		}),
		GamesFinished: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "games_finished_total",
			Help:      "Total number of games finished",
		}),
		ActiveRooms: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_rooms",
			Help:      "Number of open rooms",
		}),
	}

	m.registry.MustRegister(
		m.RoomsCreated,
		m.RoomsDeleted,
		m.RoomJoins,
		m.RoomLeaves,
		m.HostTransfers,
		m.GamesStarted,
		m.GamesFinished,
		m.ActiveRooms,
	)

	return m
}

// SeedActiveRooms primes the active-rooms gauge from the store's current
// room count, so the gauge survives process restarts instead of resetting
// to zero
func (m *Metrics) SeedActiveRooms(count int64) {
	m.ActiveRooms.Set(float64(count))
}

// Handler returns the HTTP handler serving this registry
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
