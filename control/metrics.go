// control/metrics.go
// Author: momentics <momentics@gmail.com>
//
// Runtime metrics collector. Static counters are stored in a
// thread-safe map; probes are evaluated lazily at snapshot time so live
// figures like ring occupancy stay current without a publisher loop.

package control

import (
	"sync"
	"time"
)

// MetricsRegistry holds static metrics and registered live probes.
type MetricsRegistry struct {
	mu      sync.RWMutex
	metrics map[string]any
	probes  map[string]func() any
	updated time.Time
}

// NewMetricsRegistry creates an empty registry.
func NewMetricsRegistry() *MetricsRegistry {
	return &MetricsRegistry{
		metrics: make(map[string]any),
		probes:  make(map[string]func() any),
	}
}

// Set sets or updates a static metric key.
func (mr *MetricsRegistry) Set(key string, value any) {
	mr.mu.Lock()
	mr.metrics[key] = value
	mr.updated = time.Now()
	mr.mu.Unlock()
}

// RegisterProbe registers a function evaluated on every snapshot.
// A probe shadows a static metric of the same name.
func (mr *MetricsRegistry) RegisterProbe(name string, fn func() any) {
	mr.mu.Lock()
	mr.probes[name] = fn
	mr.mu.Unlock()
}

// Probe evaluates a single registered probe by name.
func (mr *MetricsRegistry) Probe(name string) (any, bool) {
	mr.mu.RLock()
	fn, ok := mr.probes[name]
	mr.mu.RUnlock()
	if !ok {
		return nil, false
	}
	return fn(), true
}

// GetSnapshot returns the latest metrics, probes evaluated in place.
func (mr *MetricsRegistry) GetSnapshot() map[string]any {
	mr.mu.RLock()
	defer mr.mu.RUnlock()
	out := make(map[string]any, len(mr.metrics)+len(mr.probes))
	for k, v := range mr.metrics {
		out[k] = v
	}
	for k, fn := range mr.probes {
		out[k] = fn()
	}
	return out
}
