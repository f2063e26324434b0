package status

import (
	"fmt"
	"sync/atomic"
)

// Registry groups the counters and gauges published by the game packages
// Producers cache the returned pointers once and update them lock-free
type Registry struct {
	Counters *MetricMap[atomic.Int64]
	Gauges   *MetricMap[AtomicFloat]
}

// NewRegistry creates an empty registry
func NewRegistry() *Registry {
	return &Registry{
		Counters: NewMetricMap[atomic.Int64](),
		Gauges:   NewMetricMap[AtomicFloat](),
	}
}

// Counter returns the counter for key, or nil on a nil registry
// Callers treat a nil counter as disabled via Inc/Add helpers
func (r *Registry) Counter(key string) *atomic.Int64 {
	if r == nil {
		return nil
	}
	return r.Counters.Get(key)
}

// Gauge returns the gauge for key, or nil on a nil registry
func (r *Registry) Gauge(key string) *AtomicFloat {
	if r == nil {
		return nil
	}
	return r.Gauges.Get(key)
}

// Lines renders every metric as "key value" in key order, counters first
func (r *Registry) Lines() []string {
	if r == nil {
		return nil
	}
	lines := make([]string, 0, r.Counters.Count()+r.Gauges.Count())
	r.Counters.Range(func(key string, v *atomic.Int64) {
		lines = append(lines, fmt.Sprintf("%s %d", key, v.Load()))
	})
	r.Gauges.Range(func(key string, v *AtomicFloat) {
		lines = append(lines, fmt.Sprintf("%s %.2f", key, v.Get()))
	})
	return lines
}

// Inc adds one to c when c is not nil
func Inc(c *atomic.Int64) {
	if c != nil {
		c.Add(1)
	}
}

// Add adds delta to c when c is not nil
func Add(c *atomic.Int64, delta int64) {
	if c != nil {
		c.Add(delta)
	}
}

// Set stores v into g when g is not nil
func Set(g *AtomicFloat, v float64) {
	if g != nil {
		g.Set(v)
	}
}
