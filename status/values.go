package status

import (
	"maps"
	"math"
	"slices"
	"sync"
	"sync/atomic"
)

// MetricMap lazily allocates one metric of type T per key
// Callers cache the returned pointer and update it without further lookups
type MetricMap[T any] struct {
	items sync.Map // string -> *T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{}
}

// Get returns the metric for key, allocating it on first use
func (m *MetricMap[T]) Get(key string) *T {
	if v, ok := m.items.Load(key); ok {
		return v.(*T)
	}
	v, _ := m.items.LoadOrStore(key, new(T))
	return v.(*T)
}

func (m *MetricMap[T]) Has(key string) bool {
	_, ok := m.items.Load(key)
	return ok
}

func (m *MetricMap[T]) Count() int {
	n := 0
	m.items.Range(func(any, any) bool {
		n++
		return true
	})
	return n
}

// Range visits metrics sorted by key
func (m *MetricMap[T]) Range(fn func(key string, ptr *T)) {
	snapshot := make(map[string]*T)
	m.items.Range(func(k, v any) bool {
		snapshot[k.(string)] = v.(*T)
		return true
	})
	for _, k := range slices.Sorted(maps.Keys(snapshot)) {
		fn(k, snapshot[k])
	}
}

// AtomicFloat is a float64 metric; the zero value reads 0
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Set(v float64) { f.bits.Store(math.Float64bits(v)) }

func (f *AtomicFloat) Get() float64 { return math.Float64frombits(f.bits.Load()) }

// Add adds delta and returns the sum
func (f *AtomicFloat) Add(delta float64) float64 {
	return f.apply(func(v float64) float64 { return v + delta })
}

// Max keeps the larger of the current value and v
func (f *AtomicFloat) Max(v float64) float64 {
	return f.apply(func(cur float64) float64 { return math.Max(cur, v) })
}

func (f *AtomicFloat) apply(op func(float64) float64) float64 {
	for {
		bits := f.bits.Load()
		next := op(math.Float64frombits(bits))
		if f.bits.CompareAndSwap(bits, math.Float64bits(next)) {
			return next
		}
	}
}

// AtomicString is a short label metric such as the current phase
type AtomicString struct {
	v atomic.Pointer[string]
}

func (s *AtomicString) Store(v string) { s.v.Store(&v) }

// Load returns "" until the first Store
func (s *AtomicString) Load() string {
	p := s.v.Load()
	if p == nil {
		return ""
	}
	return *p
}
