package types

import "time"

/*
CacheEntry is one key/value pair as stored inside the cache.

The entry is created on Set, read on Get, and destroyed by prune,
eviction, or Clear. Nothing outside the cache ever holds onto one.

ExpireAt is computed exactly once, at insertion time, as now + TTL.
It is NEVER pushed forward on reads. This matters for eviction:
because every entry gets the same fixed TTL from its own insertion
time, "soonest to expire" is the same thing as "oldest inserted",
and the eviction policy depends on that equivalence.
*/
type CacheEntry[V any] struct {
	// Key is the canonical string form of the caller's key.
	// We keep it on the entry so eviction can report which key
	// was removed without a reverse lookup.
	Key string

	// Value is the cached value itself.
	Value V

	// ExpireAt is the wall-clock instant after which this entry
	// is logically absent, even if it is still physically stored.
	ExpireAt time.Time
}

// Expired reports whether the entry is past its lifetime at the given instant.
// An entry with ExpireAt <= now is treated as already gone: Get must not
// return it, and the next prune pass will delete it.
func (e *CacheEntry[V]) Expired(now time.Time) bool {
	return !e.ExpireAt.After(now)
}
