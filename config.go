package cache

import (
	"errors"
	"time"

	"github.com/rishavk/scoped-ttl-cache/types"
)

// Defaults applied when a Config field is left at its zero value.
const (
	// DefaultTTL is how long an entry lives when no TTL is configured.
	DefaultTTL = 5 * time.Minute

	// DefaultCapacity is the maximum entry count when none is configured.
	DefaultCapacity = 100
)

// Construction errors. A cache with a non-positive TTL or capacity is not
// a smaller cache, it is a broken one (a capacity that never bounds anything,
// entries that are born dead), so we refuse to build it instead of letting
// the degenerate behavior leak out at runtime.
var (
	ErrInvalidTTL      = errors.New("cache: ttl must be positive")
	ErrInvalidCapacity = errors.New("cache: capacity must be positive")
)

/*
Config carries the two knobs the cache has, plus an optional metrics sink.

Both knobs are captured once at construction and are immutable for the
cache's lifetime. There is deliberately no way to change them later:
the eviction policy relies on every entry having been given the SAME
TTL, so a mutable TTL would silently break eviction ordering.

Zero values mean "use the default", so Config{} is a valid configuration.
Explicitly negative values are rejected.
*/
type Config struct {
	// TTL is the fixed lifetime of every entry, measured from its own
	// insertion time. Reads never extend it. Default: 5 minutes.
	TTL time.Duration

	// Capacity is the maximum number of entries the cache will hold.
	// Inserting beyond it evicts the entry closest to expiry.
	// Default: 100.
	Capacity int

	// Metrics receives cache lifecycle events (hits, misses, expirations,
	// evictions, clears). Nil means "don't measure anything".
	Metrics types.Metrics
}

// withDefaults fills in unset fields. It does NOT validate; defaulting and
// validation are separate steps so an explicit bad value is reported as bad
// rather than quietly replaced.
func (c Config) withDefaults() Config {
	if c.TTL == 0 {
		c.TTL = DefaultTTL
	}
	if c.Capacity == 0 {
		c.Capacity = DefaultCapacity
	}
	if c.Metrics == nil {
		// Ensure metrics is always non-nil.
		// This avoids defensive nil checks throughout the codebase.
		c.Metrics = types.NoopMetrics{}
	}
	return c
}

// validate rejects configurations that can never behave sensibly.
// Called after defaulting, so only explicitly negative (or otherwise
// non-positive) values can still be present here.
func (c Config) validate() error {
	if c.TTL <= 0 {
		return ErrInvalidTTL
	}
	if c.Capacity <= 0 {
		return ErrInvalidCapacity
	}
	return nil
}
