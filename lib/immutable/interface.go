package immutable

import (
	"github.com/noshiro-pf/immu/lib/optional"
)

// --------------------------------------------------------------------------
// Helper Types
// --------------------------------------------------------------------------

// Entry is a single key-value pair of a Map.
type Entry[K, V any] struct {
	Key   K
	Value V
}

// E is a shorthand constructor for Entry.
func E[K, V any](k K, v V) Entry[K, V] {
	return Entry[K, V]{Key: k, Value: v}
}

// EqFunc compares two values for equality. It is injected into a Map at
// construction time and decides when Set/Update may return the receiver
// unchanged instead of allocating a new instance.
type EqFunc[V any] func(a, b V) bool

// --------------------------------------------------------------------------
// Map Interface
// --------------------------------------------------------------------------

// Map is a persistent key-value container. It is immutable: every mutating
// method returns a new Map and leaves the receiver unchanged, so instances
// are safe for concurrent reads without synchronization.
//
// Iteration order (ForEach, Keys, Values, Entries) is the insertion order of
// the instance and is stable for its entire lifetime.
type Map[K, V any] interface {

	// --------------------------------------------------------------------------
	// Read Operations
	// --------------------------------------------------------------------------

	// Len returns the number of entries.
	Len() int

	// Has reports whether a value is associated with key.
	Has(key K) bool

	// Get returns the value associated with key, or none if the key is
	// absent. An absent key is not an error.
	Get(key K) optional.Value[V]

	// Every reports whether pred holds for all entries. It short-circuits on
	// the first entry for which pred is false. Every returns true for an
	// empty map.
	Every(pred func(key K, value V) bool) bool

	// Some reports whether pred holds for at least one entry. It
	// short-circuits on the first entry for which pred is true.
	Some(pred func(key K, value V) bool) bool

	// ForEach calls fn for every entry in iteration order.
	ForEach(fn func(key K, value V))

	// Keys returns the keys in iteration order. The returned slice is a
	// fresh copy owned by the caller.
	Keys() []K

	// Values returns the values in iteration order. The returned slice is a
	// fresh copy owned by the caller.
	Values() []V

	// Entries returns all entries in iteration order. The returned slice is
	// a fresh copy owned by the caller.
	Entries() []Entry[K, V]

	// ValueEqual compares two values with the container's equality
	// predicate.
	ValueEqual(a, b V) bool

	// --------------------------------------------------------------------------
	// Write Operations (copy-on-write)
	// --------------------------------------------------------------------------

	// Set returns a Map with key associated to value. If key is already
	// associated with a value equal to value under the container's equality
	// predicate, the receiver itself is returned unchanged.
	Set(key K, value V) Map[K, V]

	// Delete returns a Map without key. If key is absent the receiver itself
	// is returned unchanged.
	Delete(key K) Map[K, V]

	// Update returns a Map with the value for key replaced by fn(current).
	// If key is absent the receiver itself is returned unchanged; fn is not
	// called. If fn returns a value equal to the current one under the
	// container's equality predicate, the receiver is returned unchanged.
	Update(key K, fn func(current V) V) Map[K, V]

	// WithMutations applies an ordered batch of Set/Delete/Update actions
	// against one private working copy and returns a single new instance.
	// Callers never observe an intermediate state. If the batch results in
	// no effective change, the receiver itself is returned.
	WithMutations(fn func(tx MapTx[K, V])) Map[K, V]

	// MapValues returns a Map with every value replaced by fn(key, value).
	MapValues(fn func(key K, value V) V) Map[K, V]

	// MapKeys returns a Map with every key replaced by fn(key). If fn is not
	// injective, colliding keys are re-deduplicated with the last writer in
	// iteration order winning.
	MapKeys(fn func(key K) K) Map[K, V]

	// MapEntries returns a Map with every entry replaced by fn(entry),
	// re-deduplicating colliding keys like MapKeys.
	MapEntries(fn func(entry Entry[K, V]) Entry[K, V]) Map[K, V]
}

// MapTx is the mutable working copy handed to a WithMutations callback.
// It must not be retained or used after the callback returns.
type MapTx[K, V any] interface {
	Set(key K, value V)
	Delete(key K)
	Update(key K, fn func(current V) V)
}

// --------------------------------------------------------------------------
// Set Interface
// --------------------------------------------------------------------------

// Set is a persistent unique-element container with the same copy-on-write
// discipline as Map. Element order is unspecified.
type Set[K any] interface {

	// --------------------------------------------------------------------------
	// Read Operations
	// --------------------------------------------------------------------------

	// Len returns the number of elements.
	Len() int

	// Has reports whether elem is in the set.
	Has(elem K) bool

	// Every reports whether pred holds for all elements, short-circuiting.
	// Every returns true for an empty set.
	Every(pred func(elem K) bool) bool

	// Some reports whether pred holds for at least one element,
	// short-circuiting.
	Some(pred func(elem K) bool) bool

	// ForEach calls fn for every element. Order is unspecified.
	ForEach(fn func(elem K))

	// ToSlice returns all elements in unspecified order. The returned slice
	// is a fresh copy owned by the caller.
	ToSlice() []K

	// --------------------------------------------------------------------------
	// Write Operations (copy-on-write)
	// --------------------------------------------------------------------------

	// Add returns a Set containing elem. If elem is already present the
	// receiver itself is returned unchanged.
	Add(elem K) Set[K]

	// Delete returns a Set without elem. If elem is absent the receiver
	// itself is returned unchanged.
	Delete(elem K) Set[K]

	// WithMutations applies an ordered batch of Add/Delete actions against
	// one private working copy and returns a single new instance. If the
	// batch results in no effective change, the receiver itself is returned.
	WithMutations(fn func(tx SetTx[K])) Set[K]

	// Map returns a Set with every element replaced by fn(elem),
	// re-deduplicating collisions of a non-injective fn.
	Map(fn func(elem K) K) Set[K]

	// Filter returns a Set with the elements for which pred holds.
	Filter(pred func(elem K) bool) Set[K]

	// FilterNot returns a Set with the elements for which pred does not
	// hold.
	FilterNot(pred func(elem K) bool) Set[K]
}

// SetTx is the mutable working copy handed to a WithMutations callback.
// It must not be retained or used after the callback returns.
type SetTx[K any] interface {
	Add(elem K)
	Delete(elem K)
}
