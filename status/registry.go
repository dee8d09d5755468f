// Package status exposes live hero metrics that any goroutine can read without locking the frame loop
package status

import (
	"log/slog"
	"sync/atomic"
)

// Metric keys published by the hero
const (
	KeyFrames     = "hero.frames"
	KeyKeystrokes = "flow.keystrokes"
	KeyMismatches = "flow.mismatches"
	KeyState      = "flow.state"
	KeyStage      = "flow.stage"
	KeyIntensity  = "wave.intensity"
	KeyWaveTime   = "wave.time"
)

// Registry is the central metrics facade
// Writers cache pointers at mount; the frame loop writes directly to atomics
type Registry struct {
	Ints    *MetricMap[atomic.Int64]
	Floats  *MetricMap[AtomicFloat]
	Strings *MetricMap[AtomicString]
}

// NewRegistry creates an initialized Registry
func NewRegistry() *Registry {
	return &Registry{
		Ints:    NewMetricMap[atomic.Int64](),
		Floats:  NewMetricMap[AtomicFloat](),
		Strings: NewMetricMap[AtomicString](),
	}
}

// TotalCount returns total metrics across all types
func (r *Registry) TotalCount() int {
	return r.Ints.Count() + r.Floats.Count() + r.Strings.Count()
}

// LogValue groups every metric under its key
func (r *Registry) LogValue() slog.Value {
	attrs := make([]slog.Attr, 0, r.TotalCount())
	r.Ints.Range(func(k string, v *atomic.Int64) {
		attrs = append(attrs, slog.Int64(k, v.Load()))
	})
	r.Floats.Range(func(k string, v *AtomicFloat) {
		attrs = append(attrs, slog.Float64(k, v.Get()))
	})
	r.Strings.Range(func(k string, v *AtomicString) {
		attrs = append(attrs, slog.String(k, v.Load()))
	})
	return slog.GroupValue(attrs...)
}
