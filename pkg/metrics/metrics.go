// Package metrics provides Prometheus instrumentation for PooledObjects.
// It exposes counters for checkout activity, gauges for slab occupancy, and
// a latency histogram for the checkout path, all labelled by pool name.
//
// # Basic Usage
//
//	collector := metrics.NewCollector("connections")
//	p := pool.New[*conn]("connections", pool.WithCollector(collector))
//
// Metrics are registered once at package load via promauto; creating
// multiple collectors for the same pool name is safe and shares the
// underlying series.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	spawnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pooledobjects",
			Subsystem: "pool",
			Name:      "spawns_total",
			Help:      "Total number of checkout attempts by outcome",
		},
		[]string{"pool", "status"},
	)

	despawnsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pooledobjects",
			Subsystem: "pool",
			Name:      "despawns_total",
			Help:      "Total number of instances returned to the pool",
		},
		[]string{"pool"},
	)

	instancesCreated = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pooledobjects",
			Subsystem: "pool",
			Name:      "instances_created_total",
			Help:      "Total number of instances built by the factory, by trigger",
		},
		[]string{"pool", "trigger"},
	)

	exhaustionsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "pooledobjects",
			Subsystem: "pool",
			Name:      "exhaustions_total",
			Help:      "Total number of checkouts that found no free instance",
		},
		[]string{"pool", "behaviour"},
	)

	poolSize = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "pooledobjects",
			Subsystem: "pool",
			Name:      "instances",
			Help:      "Current slab size",
		},
		[]string{"pool"},
	)

	poolAvailable = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Namespace: "pooledobjects",
			Subsystem: "pool",
			Name:      "available_instances",
			Help:      "Current number of free instances",
		},
		[]string{"pool"},
	)

	spawnLatency = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "pooledobjects",
			Subsystem: "pool",
			Name:      "spawn_duration_seconds",
			Help:      "Duration of the checkout path including any growth",
			Buckets:   []float64{0.000001, 0.000005, 0.00001, 0.00005, 0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05},
		},
		[]string{"pool"},
	)
)

// Collector records pool activity against the package-level Prometheus
// series, pre-bound to one pool name. Each pool should get its own collector.
type Collector struct {
	pool string
}

// NewCollector creates a metrics collector labelled with the pool name.
func NewCollector(poolName string) *Collector {
	return &Collector{pool: poolName}
}

// RecordSpawn records one checkout attempt with its outcome and duration.
// Statuses: success, sentinel, exhausted, not_initialized.
func (c *Collector) RecordSpawn(status string, d time.Duration) {
	spawnsTotal.WithLabelValues(c.pool, status).Inc()
	spawnLatency.WithLabelValues(c.pool).Observe(d.Seconds())
}

// RecordDespawn records one returned instance.
func (c *Collector) RecordDespawn() {
	despawnsTotal.WithLabelValues(c.pool).Inc()
}

// RecordCreated records n factory-built instances. Triggers: initialize,
// add_one, double.
func (c *Collector) RecordCreated(n int, trigger string) {
	instancesCreated.WithLabelValues(c.pool, trigger).Add(float64(n))
}

// RecordExhaustion records a checkout that found every slot taken.
func (c *Collector) RecordExhaustion(behaviour string) {
	exhaustionsTotal.WithLabelValues(c.pool, behaviour).Inc()
}

// SetSize updates the slab size gauge.
func (c *Collector) SetSize(n int) {
	poolSize.WithLabelValues(c.pool).Set(float64(n))
}

// SetAvailable updates the free-instance gauge.
func (c *Collector) SetAvailable(n int) {
	poolAvailable.WithLabelValues(c.pool).Set(float64(n))
}
