package history

import (
	"math"
	"sync"
	"time"
)

// DefaultHistorySize is the default number of samples retained per plugin
// (40 minutes at a 2s sampling interval).
const DefaultHistorySize = 1200

// Store keeps the sample history of every registered plugin using ring buffers.
// It provides thread-safe access so a sampler goroutine can push while
// another caller snapshots tables for rendering.
type Store struct {
	mu      sync.RWMutex
	size    int
	order   []string
	plugins map[string]*pluginHistory
}

// pluginHistory holds the ring buffers for a single plugin.
type pluginHistory struct {
	items  []Item
	keep   bool
	dates  *ringBuffer[time.Time]
	series map[string]*ringBuffer[float64]
}

// ringBuffer is a fixed-size circular buffer.
type ringBuffer[T any] struct {
	data  []T
	head  int
	count int
	size  int
}

// NewStore creates a store retaining up to size samples per plugin.
func NewStore(size int) *Store {
	if size <= 0 {
		size = DefaultHistorySize
	}
	return &Store{
		size:    size,
		plugins: make(map[string]*pluginHistory),
	}
}

// Size returns the per-plugin sample capacity.
func (s *Store) Size() int {
	return s.size
}

// Register declares a plugin with its chartable items. Plugins registered
// with keepHistory false never expose a history table. Registering an
// existing plugin replaces its items and keeps the recorded samples.
func (s *Store) Register(plugin string, items []Item, keepHistory bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plugins[plugin]
	if !ok {
		p = &pluginHistory{
			dates:  newRingBuffer[time.Time](s.size),
			series: make(map[string]*ringBuffer[float64]),
		}
		s.plugins[plugin] = p
		s.order = append(s.order, plugin)
	}
	p.items = append([]Item(nil), items...)
	p.keep = keepHistory
}

// Push appends one sample for plugin. Series absent from values get NaN for
// this sample; series seen for the first time are back-filled with NaN so
// every series stays aligned with the date axis.
func (s *Store) Push(plugin string, at time.Time, values map[string]float64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plugins[plugin]
	if !ok || !p.keep {
		return
	}

	p.dates.push(at)

	for key, buf := range p.series {
		v, ok := values[key]
		if !ok {
			v = math.NaN()
		}
		buf.push(v)
	}

	for key, v := range values {
		if key == DateKey {
			continue
		}
		if _, ok := p.series[key]; ok {
			continue
		}
		buf := newRingBuffer[float64](s.size)
		for i := 0; i < p.dates.count-1; i++ {
			buf.push(math.NaN())
		}
		buf.push(v)
		p.series[key] = buf
	}
}

// Plugins returns plugin names in registration order.
func (s *Store) Plugins() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]string(nil), s.order...)
}

// Items returns the declared items of plugin.
func (s *Store) Items(plugin string) []Item {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plugins[plugin]
	if !ok {
		return nil
	}
	return append([]Item(nil), p.items...)
}

// History returns a snapshot of plugin's history, or nil when the plugin is
// unknown or keeps no history.
func (s *Store) History(plugin string) *Table {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plugins[plugin]
	if !ok || !p.keep {
		return nil
	}

	t := &Table{
		dates:  p.dates.getAll(),
		series: make(map[string][]float64, len(p.series)),
	}
	for key, buf := range p.series {
		t.series[key] = buf.getAll()
	}
	return t
}

// ResetHistory drops every recorded sample of plugin.
func (s *Store) ResetHistory(plugin string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.plugins[plugin]
	if !ok {
		return
	}
	p.dates = newRingBuffer[time.Time](s.size)
	p.series = make(map[string]*ringBuffer[float64])
}

// Count returns the number of samples stored for plugin.
func (s *Store) Count(plugin string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.plugins[plugin]
	if !ok {
		return 0
	}
	return p.dates.count
}

func newRingBuffer[T any](size int) *ringBuffer[T] {
	return &ringBuffer[T]{
		data: make([]T, size),
		size: size,
	}
}

func (r *ringBuffer[T]) push(value T) {
	r.data[r.head] = value
	r.head = (r.head + 1) % r.size
	if r.count < r.size {
		r.count++
	}
}

// getAll returns the stored values oldest first.
func (r *ringBuffer[T]) getAll() []T {
	result := make([]T, r.count)
	start := (r.head - r.count + r.size) % r.size
	for i := 0; i < r.count; i++ {
		result[i] = r.data[(start+i)%r.size]
	}
	return result
}
