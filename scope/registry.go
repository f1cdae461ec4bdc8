package scope

import (
	"sync"

	cache "github.com/rishavk/scoped-ttl-cache"
	"golang.org/x/sync/singleflight"
)

/*
This file defines how cache instances are tied to logical scopes.

The cache itself has no opinion about ownership. But the way it is meant
to be used is: one scope (a request, a session, a long-lived component)
owns ONE cache instance for its whole lifetime, reuses it across every
operation inside that lifetime, and drops it when the scope ends.

Registry makes that ownership explicit instead of leaving it to a
process-wide singleton:
- Acquire returns the scope's cache, creating it on first use
- Every later Acquire for the same scope returns the SAME instance
- Release ends the scope and drops its cache

The cache holds no external resources, so "drop" really is the whole
teardown. Once nothing references the instance, the garbage collector
takes it.
*/
type Registry[K any, V any] struct {
	// mu protects the scope map.
	mu sync.Mutex

	// caches maps scope ID -> that scope's one cache instance.
	caches map[string]*cache.Cache[K, V]

	// cfg is the configuration every scope's cache is built with.
	cfg cache.Config

	// singleflight collapses concurrent first-time Acquires for the
	// same scope, so two goroutines racing into a fresh scope cannot
	// each build a cache and lose one of them.
	sf singleflight.Group
}

// NewRegistry creates a Registry whose scopes all share one cache
// configuration. The configuration is validated lazily, when the first
// scope's cache is built.
func NewRegistry[K any, V any](cfg cache.Config) *Registry[K, V] {
	return &Registry[K, V]{
		caches: make(map[string]*cache.Cache[K, V]),
		cfg:    cfg,
	}
}

/*
Acquire returns the cache owned by the given scope, creating it if this
is the scope's first use.

Repeated calls with the same scope ID return the same instance until
Release is called for that ID. Creation errors (invalid configuration)
are returned as-is and nothing is registered.
*/
func (r *Registry[K, V]) Acquire(scopeID string) (*cache.Cache[K, V], error) {

	// Fast path: the scope already has its cache.
	r.mu.Lock()
	if c, ok := r.caches[scopeID]; ok {
		r.mu.Unlock()
		return c, nil
	}
	r.mu.Unlock()

	/*
		singleflight ensures that:
		- If many goroutines enter the same fresh scope at once,
		  only ONE of them builds the cache.
		- Others wait and receive the same instance.
	*/
	v, err, _ := r.sf.Do(scopeID, func() (any, error) {

		// Re-check under the lock; another flight may have finished
		// between our fast path and this call.
		r.mu.Lock()
		if c, ok := r.caches[scopeID]; ok {
			r.mu.Unlock()
			return c, nil
		}
		r.mu.Unlock()

		c, err := cache.New[K, V](r.cfg)
		if err != nil {
			return nil, err
		}

		r.mu.Lock()
		r.caches[scopeID] = c
		r.mu.Unlock()
		return c, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*cache.Cache[K, V]), nil
}

// Release ends a scope and drops its cache. Releasing an unknown scope
// is a no-op, so teardown paths can call it unconditionally.
func (r *Registry[K, V]) Release(scopeID string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.caches, scopeID)
}

// ReleaseAll drops every scope at once.
func (r *Registry[K, V]) ReleaseAll() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.caches = make(map[string]*cache.Cache[K, V])
}

// Len returns how many scopes currently hold a cache.
func (r *Registry[K, V]) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.caches)
}
