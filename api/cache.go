package cache

/*
Store defines the PUBLIC API of the cache.
This is a contract that guarantees certain behaviors, without exposing internals.
All of the details like (key canonicalization, expiry bookkeeping, eviction
ordering, locking) are hidden behind this interface.
*/
type Store[K any, V any] interface {

	/*
		Get retrieves the value associated with the given key.

		BEHAVIOR:
		-------------------
		1. If the key exists and its TTL has not run out:
		   - Return the value and true (cache hit)

		2. If the key does NOT exist, or exists but has expired:
		   - Return the zero value and false (cache miss)
		   - An expired entry is removed on the spot (lazy expiry)

		IMPORTANT:
		----------
		- Reading a key does NOT extend its lifetime
		- Reading never evicts anything for capacity reasons
		- The error return fires only for keys that cannot be
		  canonicalized (nil, cyclic, unencodable); a plain miss
		  is NOT an error
	*/
	Get(key K) (V, bool, error)

	/*
		Set stores a key-value pair in the cache.

		BEHAVIOR:
		---------
		- Expired entries are pruned first, so dead entries never
		  count against capacity
		- If the cache is full and the key is new, the entry closest
		  to expiry is evicted to make room
		- The value is stored with a fresh TTL, overwriting any
		  previous value under the same key

		IMPORTANT:
		----------
		- The TTL is the cache-wide one fixed at construction;
		  there is no per-entry TTL
		- Overwriting an existing key never triggers eviction,
		  because it does not grow the cache
	*/
	Set(key K, value V) error

	/*
		Clear removes every entry immediately.

		BEHAVIOR:
		---------
		- Unconditional, no return value, no failure mode
		- The cache remains fully usable afterwards

		USE CASES:
		----------
		- Scope teardown
		- Data consistency after bulk updates
		- Tests cleanup
	*/
	Clear()

	/*
		Len returns how many entries are currently stored.

		CAVEAT:
		-------
		The count includes entries whose TTL has run out but which
		have not been observed (and therefore removed) yet. Treat it
		as an observability helper, not an exact liveness count.
	*/
	Len() int
}
