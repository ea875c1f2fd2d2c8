package immutable

import (
	"github.com/noshiro-pf/immu/lib/optional"
)

// --------------------------------------------------------------------------
// Structural Equality
// --------------------------------------------------------------------------

// EqualMaps reports whether a and b hold the same entries, independent of
// iteration order. Values are compared with a's equality predicate. Unlike
// EqualSets, comparing sizes and keys alone is not enough here: equal key
// sets can still map to different values.
func EqualMaps[K, V any](a, b Map[K, V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	return a.Every(func(k K, v V) bool {
		bv, exists := b.Get(k).Unwrap()
		return exists && a.ValueEqual(v, bv)
	})
}

// EqualSets reports whether a and b hold the same elements. The size check
// plus one-sided membership is sufficient precisely because sets hold no
// duplicates; this shortcut is not valid for maps.
func EqualSets[K any](a, b Set[K]) bool {
	return a.Len() == b.Len() && a.Every(b.Has)
}

// --------------------------------------------------------------------------
// Set Algebra
// --------------------------------------------------------------------------

// Union returns a set holding every element of a and b. It is commutative
// up to EqualSets.
func Union[K any](a, b Set[K]) Set[K] {
	return a.WithMutations(func(tx SetTx[K]) {
		b.ForEach(tx.Add)
	})
}

// Intersect returns the elements present in both a and b. It iterates the
// smaller operand, so the cost is O(min(|a|,|b|)) membership probes.
func Intersect[K any](a, b Set[K]) Set[K] {
	if b.Len() < a.Len() {
		a, b = b, a
	}
	return a.Filter(b.Has)
}

// Subtract returns the elements of a that are absent from b.
func Subtract[K any](a, b Set[K]) Set[K] {
	return a.FilterNot(b.Has)
}

// SetDiff describes the element-level change from an old set to a new one.
type SetDiff[K any] struct {
	Added   Set[K] // elements of the new set absent from the old
	Deleted Set[K] // elements of the old set absent from the new
}

// Diff computes the change from oldSet to newSet.
func Diff[K any](oldSet, newSet Set[K]) SetDiff[K] {
	return SetDiff[K]{
		Added:   Subtract(newSet, oldSet),
		Deleted: Subtract(oldSet, newSet),
	}
}

// IsSubset reports whether every element of a is in b.
func IsSubset[K any](a, b Set[K]) bool {
	return a.Every(b.Has)
}

// IsSuperset reports whether every element of b is in a.
func IsSuperset[K any](a, b Set[K]) bool {
	return IsSubset(b, a)
}

// --------------------------------------------------------------------------
// Validated Views
// --------------------------------------------------------------------------

// ValidateMap returns Some(m) if pred holds for every entry of m, and none
// otherwise. It is the explicit replacement for using Every as a
// flow-sensitive type guard: callers get the whole container back only once
// it is known to satisfy the predicate.
func ValidateMap[K, V any](m Map[K, V], pred func(key K, value V) bool) optional.Value[Map[K, V]] {
	if m.Every(pred) {
		return optional.Some(m)
	}
	return optional.None[Map[K, V]]()
}

// ValidateSet returns Some(s) if pred holds for every element of s, and
// none otherwise.
func ValidateSet[K any](s Set[K], pred func(elem K) bool) optional.Value[Set[K]] {
	if s.Every(pred) {
		return optional.Some(s)
	}
	return optional.None[Set[K]]()
}

// --------------------------------------------------------------------------
// Type-Changing Transforms
// --------------------------------------------------------------------------

// Go methods cannot introduce new type parameters, so the type-changing
// counterparts of MapValues/MapKeys/MapEntries/Map live here as package
// functions. They always build hash-table backed results.

// MapTo returns a Map with every value replaced by fn(key, value), allowing
// the value type to change.
func MapTo[K comparable, V1, V2 any](m Map[K, V1], fn func(key K, value V1) V2) Map[K, V2] {
	entries := make([]Entry[K, V2], 0, m.Len())
	m.ForEach(func(k K, v V1) {
		entries = append(entries, Entry[K, V2]{Key: k, Value: fn(k, v)})
	})
	return NewMap(entries...)
}

// MapKeysTo returns a Map with every key replaced by fn(key), allowing the
// key type to change. Collisions of a non-injective fn are re-deduplicated
// with the last writer in iteration order winning.
func MapKeysTo[K1 any, K2 comparable, V any](m Map[K1, V], fn func(key K1) K2) Map[K2, V] {
	entries := make([]Entry[K2, V], 0, m.Len())
	m.ForEach(func(k K1, v V) {
		entries = append(entries, Entry[K2, V]{Key: fn(k), Value: v})
	})
	return NewMap(entries...)
}

// MapEntriesTo returns a Map with every entry replaced by fn(entry),
// allowing both key and value types to change. Collisions are
// re-deduplicated like in MapKeysTo.
func MapEntriesTo[K1, V1 any, K2 comparable, V2 any](m Map[K1, V1], fn func(entry Entry[K1, V1]) Entry[K2, V2]) Map[K2, V2] {
	entries := make([]Entry[K2, V2], 0, m.Len())
	m.ForEach(func(k K1, v V1) {
		entries = append(entries, fn(Entry[K1, V1]{Key: k, Value: v}))
	})
	return NewMap(entries...)
}

// SetTo returns a Set with every element replaced by fn(elem), allowing the
// element type to change.
func SetTo[K1 any, K2 comparable](s Set[K1], fn func(elem K1) K2) Set[K2] {
	elems := make([]K2, 0, s.Len())
	s.ForEach(func(e K1) { elems = append(elems, fn(e)) })
	return NewSet(elems...)
}
