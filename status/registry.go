// Package status is a lock-free runtime metrics registry. Systems cache
// metric pointers at construction and write from their update paths
// without locks; the debug HUD reads the same atomics each frame.
//
// Metric namespace:
//
//	scheduler.ticks        scheduler.step_errors
//	collectibles.live      collectibles.spawned    collectibles.reaped
//	reveals.active         reveals.presented
//	facts.project          facts.profile
//	run.score              run.high_score
package status

import "sync/atomic"

// Registry is the central metrics facade
type Registry struct {
	Bools  *MetricMap[atomic.Bool]
	Ints   *MetricMap[atomic.Int64]
	Floats *MetricMap[AtomicFloat]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools:  NewMetricMap[atomic.Bool](),
		Ints:   NewMetricMap[atomic.Int64](),
		Floats: NewMetricMap[AtomicFloat](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count() + r.Floats.Count()
}
