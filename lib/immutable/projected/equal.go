package projected

import "github.com/noshiro-pf/immu/lib/immutable"

// EqualMaps compares two projected maps by their projected storage, not by
// their logical keys. Containers built from different but compatible
// projection pairs over equal logical keys therefore compare unequal unless
// the projected representations coincide. For logical comparison through
// the caller-facing key type, use immutable.EqualMaps on the interfaces.
func EqualMaps[K any, KM comparable, V any](a, b *Map[K, KM, V]) bool {
	return immutable.EqualMaps(a.Raw(), b.Raw())
}

// EqualSets compares two projected sets by their projected storage. See
// EqualMaps for the contrast with immutable.EqualSets.
func EqualSets[K any, KM comparable](a, b *Set[K, KM]) bool {
	return immutable.EqualSets(a.Raw(), b.Raw())
}
