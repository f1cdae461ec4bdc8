package cache

import (
	"sync"
	"time"

	api "github.com/rishavk/scoped-ttl-cache/api"
	"github.com/rishavk/scoped-ttl-cache/keycodec"
	"github.com/rishavk/scoped-ttl-cache/types"
)

// Cache must keep satisfying the public contract in api.
var _ api.Store[string, int] = (*Cache[string, int])(nil)

/*
Cache is the main implementation: a bounded, time-expiring, in-process
key/value store.

This struct is the single source of truth. It owns:
- the entry map (the only mutable state)
- the TTL and capacity, fixed at construction
- the metrics sink

There is no sub-component decomposition on purpose. The whole of the
logic is one cohesive eviction policy, and splitting it across policy
objects would only obscure the ordering that makes it correct
(prune, then evict, then insert).

A note on the eviction policy, because it is easy to mislabel:
evicting the entry with the soonest ExpireAt is NOT least-recently-used.
Every entry gets the same fixed TTL from its own insertion time, so
"soonest to expire" is exactly "oldest inserted". What this cache does
is FIFO-under-uniform-TTL. If you need true recency-based eviction,
this is the wrong tool.

The performance trade-off is also deliberate: Set does two full O(n)
scans (prune, then find-oldest) instead of maintaining an auxiliary
ordering structure incrementally. For the capacities this cache is
built for (default 100 entries), two map scans are cheaper to own than
a min-heap or an intrusive list that has to be kept consistent on
every operation.
*/
type Cache[K any, V any] struct {
	// mu serializes Get/Set/Clear/Len. All three mutate or inspect the
	// same map, and the prune-then-evict-then-insert sequence in Set
	// must be atomic with respect to everything else or the capacity
	// invariant can be violated.
	mu sync.Mutex

	// entries maps canonical key -> entry. At most one entry per
	// canonical key at any time; insertion overwrites.
	entries map[string]*types.CacheEntry[V]

	// ttl is the fixed lifetime given to every entry at insertion.
	ttl time.Duration

	// capacity is the maximum entry count. After any Set completes,
	// len(entries) <= capacity.
	capacity int

	// metrics is never nil; construction substitutes NoopMetrics.
	metrics types.Metrics
}

/*
New creates a Cache from the given configuration.

Configuration is validated eagerly: a non-positive TTL or capacity is
rejected here, at construction, rather than surfacing later as a cache
that silently never expires or never bounds anything.
*/
func New[K any, V any](cfg Config) (*Cache[K, V], error) {
	cfg = cfg.withDefaults()
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &Cache[K, V]{
		entries:  make(map[string]*types.CacheEntry[V]),
		ttl:      cfg.TTL,
		capacity: cfg.Capacity,
		metrics:  cfg.Metrics,
	}, nil
}

/*
Get retrieves the value stored under key.

BEHAVIOR:
---------
1. The key is canonicalized. A key with no stable canonical form is
   reported as an error, never silently mis-served.
2. If nothing is stored under the canonical key, the result is absent.
3. If an entry exists but its TTL has run out, it is deleted right here
   (lazy expiry) and the result is absent.
4. Otherwise the stored value is returned.

Get has NO side effect on the entry's lifetime (reads do not extend
TTL) and never triggers capacity eviction. It costs one map lookup
regardless of cache size.
*/
func (c *Cache[K, V]) Get(key K) (V, bool, error) {
	var zero V

	ck, err := keycodec.Canonical(key)
	if err != nil {
		return zero, false, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	ent, ok := c.entries[ck]
	if !ok {
		c.metrics.Miss()
		return zero, false, nil
	}

	// An expired entry is logically absent even though it is still
	// physically stored. Remove it now that we've observed it.
	if ent.Expired(time.Now()) {
		delete(c.entries, ck)
		c.metrics.Expire()
		c.metrics.Miss()
		return zero, false, nil
	}

	c.metrics.Hit()
	return ent.Value, true, nil
}

/*
Set stores value under key, overwriting any previous entry for the
same canonical key.

The write path runs three steps, in this order, atomically:

1. PRUNE: every expired entry is deleted. This runs before the
   capacity check so that entries which are already dead do not count
   against capacity and can never be the reason a live entry gets
   evicted.

2. EVICT IF FULL: if the cache is at capacity AND this Set will
   actually grow it (the canonical key is not already present), the
   entry with the soonest ExpireAt is removed. Checking for the
   existing key first matters: an overwrite never changes the entry
   count, so evicting for one would throw away a live entry for
   nothing. At most one entry is evicted per Set, which is all it can
   ever take, since each Set adds at most one entry.

3. INSERT: a fresh entry is stored with ExpireAt = now + TTL.

The whole call is O(n) in the current entry count. That is the price
of not maintaining an auxiliary ordering structure, and it is paid on
writes only; Get stays O(1).
*/
func (c *Cache[K, V]) Set(key K, value V) error {
	ck, err := keycodec.Canonical(key)
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()

	c.pruneLocked(now)

	if _, exists := c.entries[ck]; !exists && len(c.entries) >= c.capacity {
		c.evictOldestLocked()
	}

	c.entries[ck] = &types.CacheEntry[V]{
		Key:      ck,
		Value:    value,
		ExpireAt: now.Add(c.ttl),
	}
	return nil
}

/*
Clear removes every entry unconditionally.

There is no failure mode: the cache holds no external resources, so
dropping the map is the whole operation. A cleared cache is immediately
usable again.
*/
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[string]*types.CacheEntry[V])
	c.metrics.Clear()
}

// Len returns the current number of stored entries.
//
// Note: this includes entries that have expired but have not been
// observed yet. Lazy expiry removes them on the next Get; the prune
// pass removes them on the next Set.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// pruneLocked deletes every expired entry. Full scan of the map,
// called with c.mu held.
func (c *Cache[K, V]) pruneLocked(now time.Time) {
	for ck, ent := range c.entries {
		if ent.Expired(now) {
			delete(c.entries, ck)
			c.metrics.Expire()
		}
	}
}

// evictOldestLocked removes the entry with the soonest ExpireAt.
// Under a uniform TTL that is always the oldest-inserted entry, so this
// is FIFO eviction. Ties go to whichever entry the scan reaches first.
// Called with c.mu held; does nothing on an empty map.
func (c *Cache[K, V]) evictOldestLocked() {
	var (
		oldestKey string
		oldestAt  time.Time
		found     bool
	)

	for ck, ent := range c.entries {
		if !found || ent.ExpireAt.Before(oldestAt) {
			oldestKey = ck
			oldestAt = ent.ExpireAt
			found = true
		}
	}

	if found {
		delete(c.entries, oldestKey)
		c.metrics.Eviction()
	}
}
