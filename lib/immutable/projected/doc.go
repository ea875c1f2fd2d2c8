// Package projected lets arbitrary composite key types (structs, tuples of
// values) be used with the immutable containers, whose hash-table backing
// only accepts comparable storage keys.
//
// A KeyProjection declares a bijection-like pair of pure functions between
// the caller-facing key type K and a comparable storage key type KM. The
// Map and Set in this package implement the immutable.Map / immutable.Set
// interfaces by projecting every key through ToKey before delegating to the
// hash-table engine, and by applying FromKey during iteration to
// reconstruct caller-facing keys.
//
// MapKeys is intentionally restricted to functions K -> K: changing the
// key's shape would invalidate the supplied projection pair.
//
// Equality compares the projected storage. Two containers built from
// different but compatible projection pairs over equal logical keys compare
// unequal unless the projected representations coincide; this is a
// documented surface behavior of the projection design, not a defect.
//
// A non-injective ToKey is not detected by the plain constructors; colliding
// keys resolve silently to the last writer. The strict constructors
// (NewMapStrict, NewSetStrict) reject collisions and FromKey round-trip
// mismatches at construction time.
package projected
