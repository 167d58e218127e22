package status

import (
	"slices"
	"strings"
	"sync"
)

// MetricMap is a thread-safe set of named metrics of type T.
// Metrics are never removed, so a pointer returned by Get stays valid and
// can be cached by the writer.
type MetricMap[T any] struct {
	mu    sync.RWMutex
	index map[string]int
	keys  []string
	items []*T
}

// NewMetricMap creates an empty MetricMap
func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{
		index: make(map[string]int),
	}
}

// Get returns the metric for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if ptr, ok := m.lookup(key); ok {
		return ptr
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Lost the race to another registration
	if i, ok := m.index[key]; ok {
		return m.items[i]
	}

	ptr := new(T)
	m.index[key] = len(m.items)
	m.keys = append(m.keys, key)
	m.items = append(m.items, ptr)
	return ptr
}

// Has reports whether key was ever registered
func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.lookup(key)
	return ok
}

// Range visits a snapshot of the metrics in sorted key order.
// fn runs without the lock held and may register new metrics.
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	m.mu.RLock()
	keys, items := m.keys, m.items
	m.mu.RUnlock()

	order := make([]int, len(keys))
	for i := range order {
		order[i] = i
	}
	slices.SortFunc(order, func(a, b int) int {
		return strings.Compare(keys[a], keys[b])
	})

	for _, i := range order {
		fn(keys[i], items[i])
	}
}

// Count returns the number of registered metrics
func (m *MetricMap[T]) Count() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.items)
}

func (m *MetricMap[T]) lookup(key string) (*T, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	i, ok := m.index[key]
	if !ok {
		return nil, false
	}
	return m.items[i], true
}
