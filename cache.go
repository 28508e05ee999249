package tsym

import "sync"

// cacheRegistry is the process-wide registry of component L (§4.13): every
// memo map registers a clear closure at construction, and clearAll invokes
// all of them. Grounded on the original's src/cache.h, which keeps the
// registry to exactly this — a slice of clear closures, no generic
// observer/pub-sub machinery.
type cacheRegistry struct {
	mu       sync.Mutex
	clearFns []func() int
}

var globalCacheRegistry = &cacheRegistry{}

func (r *cacheRegistry) register(clear func() int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clearFns = append(r.clearFns, clear)
}

// ClearAllCaches invokes every registered memo map's clear closure (lifecycle
// operation of §6). Per §5, callers in a multi-threaded embedding must only
// call this when no other goroutine is inside the core — no finer-grained
// consistency is promised.
func ClearAllCaches() {
	globalCacheRegistry.mu.Lock()
	fns := append([]func() int(nil), globalCacheRegistry.clearFns...)
	globalCacheRegistry.mu.Unlock()

	total := 0
	for _, fn := range fns {
		total += fn()
	}
	logCacheCleared("all", total)
}

// memoMap is a single memo cache, keyed by a comparable value built from
// operand structural hashes (a uint64 or a small struct of them). §5 requires each memo map to be safe under
// multi-threaded use, hence the RWMutex; the single-writer discipline of
// §4.13 is preserved because a given key is only ever populated once with
// an equivalent value regardless of which goroutine races to compute it.
type memoMap[K comparable, V any] struct {
	mu sync.RWMutex
	m  map[K]V
}

func newMemoMap[K comparable, V any]() *memoMap[K, V] {
	mm := &memoMap[K, V]{m: make(map[K]V)}
	globalCacheRegistry.register(func() int {
		mm.mu.Lock()
		defer mm.mu.Unlock()
		n := len(mm.m)
		mm.m = make(map[K]V)
		return n
	})
	return mm
}

func (mm *memoMap[K, V]) get(k K) (V, bool) {
	mm.mu.RLock()
	defer mm.mu.RUnlock()
	v, ok := mm.m[k]
	return v, ok
}

func (mm *memoMap[K, V]) put(k K, v V) {
	mm.mu.Lock()
	defer mm.mu.Unlock()
	mm.m[k] = v
}
