package status

import (
	"math"
	"sync"
	"sync/atomic"
	"unicode/utf8"
)

// MaxStringLen bounds stored strings in bytes; stage names are authored and can run long
const MaxStringLen = 40

// MetricMap lazily registers named metrics of one type
// Writers cache the pointer returned by Get; the map lock is only taken on lookup
type MetricMap[T any] struct {
	mu    sync.Mutex
	items map[string]*T
}

func NewMetricMap[T any]() *MetricMap[T] {
	return &MetricMap[T]{items: make(map[string]*T)}
}

// Get returns the metric for key, registering a zero value on first use
func (m *MetricMap[T]) Get(key string) *T {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.items[key]
	if !ok {
		p = new(T)
		m.items[key] = p
	}
	return p
}

// Len returns the number of registered metrics
func (m *MetricMap[T]) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// collect loads every metric of m into out
func collect[T any](m *MetricMap[T], out map[string]any, load func(*T) any) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for k, p := range m.items {
		out[k] = load(p)
	}
}

// AtomicFloat holds a float64 as its bit pattern
type AtomicFloat struct {
	bits atomic.Uint64
}

func (f *AtomicFloat) Store(v float64) { f.bits.Store(math.Float64bits(v)) }
func (f *AtomicFloat) Load() float64   { return math.Float64frombits(f.bits.Load()) }

// AtomicString holds a display string; zero value loads as ""
type AtomicString struct {
	ptr atomic.Pointer[string]
}

// Store truncates v to MaxStringLen bytes without splitting a rune
func (s *AtomicString) Store(v string) {
	if len(v) > MaxStringLen {
		cut := MaxStringLen
		for cut > 0 && !utf8.RuneStart(v[cut]) {
			cut--
		}
		v = v[:cut]
	}
	s.ptr.Store(&v)
}

func (s *AtomicString) Load() string {
	if p := s.ptr.Load(); p != nil {
		return *p
	}
	return ""
}
