package types

// This file defines how the cache reports what it is doing.

/*
Metrics is an interface that defines what the cache wants to measure.
Each method represents an event in the cache lifecycle. The cache will call these methods whenever something happens.
*/
type Metrics interface {

	// Hit is called when Get finds a live entry and returns its value.
	Hit()

	// Miss is called when Get finds nothing under the key.
	Miss()

	// Expire is called once per entry removed because its TTL ran out,
	// whether that happens lazily on Get or during the prune pass in Set.
	Expire()

	// Eviction is called when a live entry is removed because the cache
	// is full and needs space for a new key.
	Eviction()

	// Clear is called when the whole cache is wiped at once.
	Clear()
}

/*
NoopMetrics is a "do nothing" implementation of Metrics.

Why do we need this?
--------------------
We don't want to force every user of the cache
to implement metrics.

If someone does not care about metrics,
we still want the cache to work without:
- nil pointer checks everywhere
- if metrics != nil conditions

So we provide a default implementation
that simply ignores all metric events.
*/
type NoopMetrics struct{}

// All methods below intentionally do nothing.
// This satisfies the Metrics interface without side effects.

func (NoopMetrics) Hit()      {}
func (NoopMetrics) Miss()     {}
func (NoopMetrics) Expire()   {}
func (NoopMetrics) Eviction() {}
func (NoopMetrics) Clear()    {}
