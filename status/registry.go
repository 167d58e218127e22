package status

import (
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// Registry is the run statistics facade
// Writers cache metric pointers once and update the atomics directly
type Registry struct {
	Bools *MetricMap[atomic.Bool]
	Ints  *MetricMap[atomic.Int64]
}

// NewRegistry creates an empty Registry
func NewRegistry() *Registry {
	return &Registry{
		Bools: NewMetricMap[atomic.Bool](),
		Ints:  NewMetricMap[atomic.Int64](),
	}
}

// Int returns the current value of an integer metric, zero if unregistered
func (r *Registry) Int(key string) int64 {
	if !r.Ints.Has(key) {
		return 0
	}
	return r.Ints.Get(key).Load()
}

// Bool returns the current value of a boolean metric, false if unregistered
func (r *Registry) Bool(key string) bool {
	if !r.Bools.Has(key) {
		return false
	}
	return r.Bools.Get(key).Load()
}

// TotalCount returns the number of registered metrics across all types
func (r *Registry) TotalCount() int {
	return r.Bools.Count() + r.Ints.Count()
}

// Fields snapshots every metric for structured logging
func (r *Registry) Fields() logrus.Fields {
	fields := make(logrus.Fields, r.TotalCount())
	r.Bools.Range(func(key string, v *atomic.Bool) {
		fields[key] = v.Load()
	})
	r.Ints.Range(func(key string, v *atomic.Int64) {
		fields[key] = v.Load()
	})
	return fields
}
