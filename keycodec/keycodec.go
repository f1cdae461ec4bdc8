package keycodec

import (
	"encoding/json"
	"errors"
	"fmt"
)

/*
This file decides HOW a caller-supplied key becomes the string the cache
actually indexes on.

The cache accepts arbitrary key types, but the underlying storage is a
plain map keyed by string. So every key must be reduced to ONE canonical
string, and that reduction must be deterministic: two keys that mean the
same thing must always produce the same string, or we get false misses
for keys that are logically identical.

Naive structural serialization does not give us that for free. The usual
failure mode is composite keys whose fields can be visited in different
orders on different calls. We avoid it like this:

- Strings are taken as-is. No serialization, no escaping, no ambiguity.
- Everything else goes through encoding/json, which sorts map keys
  before writing them. Semantically equal maps serialize identically
  regardless of insertion order.
- The two forms get distinct prefixes so a string key can never collide
  with the serialized form of a non-string key ("5" vs 5).

Caller contract: a composite key type that implements json.Marshaler
itself must produce stable output for equal values. We cannot check
that; we only guarantee determinism for what encoding/json controls.
*/

// ErrUnsupportedKey is returned for keys that have no stable canonical
// form: nil, channels, functions, cyclic structures, NaN, and anything
// else encoding/json refuses to serialize.
var ErrUnsupportedKey = errors.New("keycodec: key cannot be canonicalized")

// Prefixes keep the string namespace and the serialized namespace apart.
const (
	stringPrefix = "s:"
	jsonPrefix   = "j:"
)

/*
Canonical converts a caller key into its canonical string form.

1. Reject nil outright
2. Fast path: string keys are used directly (the common case)
3. Everything else is serialized with encoding/json

A key that cannot be serialized is a caller defect, not a cache state,
so it is reported as a named error instead of being silently mis-served.
*/
func Canonical(key any) (string, error) {
	if key == nil {
		return "", fmt.Errorf("%w: nil key", ErrUnsupportedKey)
	}

	if s, ok := key.(string); ok {
		return stringPrefix + s, nil
	}

	b, err := json.Marshal(key)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrUnsupportedKey, err)
	}
	return jsonPrefix + string(b), nil
}
