package intern

import "sync"

// Table maps canonical keys to their single shared instance.
//
// Thread-safety: all methods are safe for concurrent use. Lookups take a read
// lock; creation upgrades to the write lock and re-checks so that two racing
// callers still observe the same instance.
type Table[K comparable, V any] struct {
	mu      sync.RWMutex
	entries map[K]V
}

// New creates an empty Table.
func New[K comparable, V any]() *Table[K, V] {
	return &Table[K, V]{entries: make(map[K]V)}
}

// Get returns the instance stored under key, calling create to build and
// store it if absent. create runs at most once per key.
func (t *Table[K, V]) Get(key K, create func() V) V {
	t.mu.RLock()
	v, ok := t.entries[key]
	t.mu.RUnlock()
	if ok {
		return v
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if v, ok := t.entries[key]; ok {
		return v
	}
	v = create()
	t.entries[key] = v
	return v
}

// Lookup returns the instance stored under key without creating one.
func (t *Table[K, V]) Lookup(key K) (V, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	v, ok := t.entries[key]
	return v, ok
}

// Len returns the number of interned instances.
func (t *Table[K, V]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}
