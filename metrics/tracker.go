// Package metrics exports the lifecycle of decorator chains as Prometheus metrics.
package metrics

import (
	"fmt"
	"sync/atomic"

	"github.com/go-leo/design-pattern/decorator"
	"github.com/prometheus/client_golang/prometheus"
)

var _ decorator.Tracker = (*Tracker)(nil)

// Tracker counts acquired and released chain nodes by name.
type Tracker struct {
	acquired *prometheus.CounterVec // Nodes constructed by name
	released *prometheus.CounterVec // Nodes released by name
	live     prometheus.Gauge       // Nodes constructed but not yet released
	count    atomic.Int64
}

// NewTracker creates the tracker metrics and registers them with reg.
func NewTracker(reg prometheus.Registerer) (*Tracker, error) {
	t := &Tracker{
		acquired: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "decorator",
			Subsystem: "nodes",
			Name:      "acquired_total",
			Help:      "Total number of chain nodes constructed",
		}, []string{"name"}),
		released: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "decorator",
			Subsystem: "nodes",
			Name:      "released_total",
			Help:      "Total number of chain nodes released",
		}, []string{"name"}),
		live: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "decorator",
			Subsystem: "nodes",
			Name:      "live",
			Help:      "Current number of chain nodes not yet released",
		}),
	}
	for _, c := range []prometheus.Collector{t.acquired, t.released, t.live} {
		if err := reg.Register(c); err != nil {
			return nil, fmt.Errorf("metrics: register collector: %w", err)
		}
	}
	return t, nil
}

func (t *Tracker) Acquired(n decorator.Node) {
	t.acquired.WithLabelValues(n.Name).Inc()
	t.live.Inc()
	t.count.Add(1)
}

func (t *Tracker) Released(n decorator.Node) {
	t.released.WithLabelValues(n.Name).Inc()
	t.live.Dec()
	t.count.Add(-1)
}

// Live returns the number of nodes not yet released.
func (t *Tracker) Live() int {
	return int(t.count.Load())
}
