package testing

import (
	"testing"

	"github.com/noshiro-pf/immu/lib/immutable"
)

// MapFactory builds a fresh Map instance for the implementation under test.
type MapFactory func(entries ...immutable.Entry[string, int]) immutable.Map[string, int]

// RunMapTests runs the full behavioral contract suite against a Map
// implementation.
func RunMapTests(t *testing.T, name string, factory MapFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Get&Has", func(t *testing.T) {
			testMapGetHas(t, factory)
		})

		t.Run("Set", func(t *testing.T) {
			testMapSet(t, factory)
		})

		t.Run("SetShortCircuit", func(t *testing.T) {
			testMapSetShortCircuit(t, factory)
		})

		t.Run("Delete", func(t *testing.T) {
			testMapDelete(t, factory)
		})

		t.Run("Update", func(t *testing.T) {
			testMapUpdate(t, factory)
		})

		t.Run("WithMutations", func(t *testing.T) {
			testMapWithMutations(t, factory)
		})

		t.Run("Transforms", func(t *testing.T) {
			testMapTransforms(t, factory)
		})

		t.Run("Every&Some", func(t *testing.T) {
			testMapEverySome(t, factory)
		})

		t.Run("IterationOrder", func(t *testing.T) {
			testMapIterationOrder(t, factory)
		})

		t.Run("Equality", func(t *testing.T) {
			testMapEquality(t, factory)
		})

		t.Run("Immutability", func(t *testing.T) {
			testMapImmutability(t, factory)
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

// Lookups return the stored value for present keys and none for absent
// keys; an absent key is never an error.
func testMapGetHas(t *testing.T, factory MapFactory) {
	m := factory(immutable.E("a", 1), immutable.E("b", 2))

	if m.Len() != 2 {
		t.Errorf("expected len 2, got %d", m.Len())
	}

	if !m.Has("a") || !m.Has("b") {
		t.Error("expected inserted keys to be present")
	}

	if v, ok := m.Get("a").Unwrap(); !ok || v != 1 {
		t.Errorf("expected Some(1) for key a, got (%d, %v)", v, ok)
	}

	if m.Has("missing") {
		t.Error("expected absent key to report Has == false")
	}

	if m.Get("missing").IsSome() {
		t.Error("expected none for absent key")
	}
}

// Set inserts new pairs and overwrites existing ones, always leaving the
// receiver unchanged.
func testMapSet(t *testing.T, factory MapFactory) {
	m := factory(immutable.E("a", 1))

	m2 := m.Set("b", 2)
	if m2.Len() != 2 {
		t.Errorf("expected len 2 after insert, got %d", m2.Len())
	}
	if m.Len() != 1 {
		t.Errorf("expected original to keep len 1, got %d", m.Len())
	}

	m3 := m2.Set("a", 10)
	if v, _ := m3.Get("a").Unwrap(); v != 10 {
		t.Errorf("expected overwrite to 10, got %d", v)
	}
	if v, _ := m2.Get("a").Unwrap(); v != 1 {
		t.Errorf("expected original value 1 to survive, got %d", v)
	}

	// duplicate keys at construction: last writer wins
	dup := factory(immutable.E("k", 1), immutable.E("k", 2))
	if dup.Len() != 1 {
		t.Errorf("expected duplicate construction keys to deduplicate, got len %d", dup.Len())
	}
	if v, _ := dup.Get("k").Unwrap(); v != 2 {
		t.Errorf("expected last writer to win at construction, got %d", v)
	}
}

// Setting a key to a value equal to the stored one returns the receiver
// itself; this rule applies uniformly to Set, Update and WithMutations.
func testMapSetShortCircuit(t *testing.T, factory MapFactory) {
	m := factory(immutable.E("a", 1))

	if m.Set("a", 1) != m {
		t.Error("expected Set with equal value to return the same instance")
	}
	if m.Set("a", 2) == m {
		t.Error("expected Set with different value to return a new instance")
	}
	if m.Update("a", func(v int) int { return v }) != m {
		t.Error("expected Update producing an equal value to return the same instance")
	}
}

// Delete removes present keys and is an identity no-op for absent ones.
func testMapDelete(t *testing.T, factory MapFactory) {
	m := factory(immutable.E("a", 1), immutable.E("b", 2))

	m2 := m.Delete("a")
	if m2.Len() != 1 || m2.Has("a") {
		t.Error("expected key a to be gone after Delete")
	}
	if !m.Has("a") {
		t.Error("expected original to keep key a")
	}

	if m.Delete("missing") != m {
		t.Error("expected Delete of absent key to return the same instance")
	}
}

// Update applies the function to present keys and is an identity no-op for
// absent ones.
func testMapUpdate(t *testing.T, factory MapFactory) {
	m := factory(immutable.E("n", 10))

	m2 := m.Update("n", func(v int) int { return v * 2 })
	if v, _ := m2.Get("n").Unwrap(); v != 20 {
		t.Errorf("expected 20 after update, got %d", v)
	}

	called := false
	m3 := m.Update("missing", func(v int) int { called = true; return v })
	if m3 != m {
		t.Error("expected Update of absent key to return the same instance")
	}
	if called {
		t.Error("expected update function not to be called for an absent key")
	}
}

// WithMutations applies the batch in order against one working copy and
// returns a single new instance, or the receiver if nothing changed.
func testMapWithMutations(t *testing.T, factory MapFactory) {
	m := factory(immutable.E("a", 1), immutable.E("b", 2))

	m2 := m.WithMutations(func(tx immutable.MapTx[string, int]) {
		tx.Set("c", 3)
		tx.Delete("a")
		tx.Update("b", func(v int) int { return v + 10 })
		tx.Set("c", 4) // later action in the batch wins
	})

	if m2.Len() != 2 {
		t.Errorf("expected len 2 after batch, got %d", m2.Len())
	}
	if m2.Has("a") {
		t.Error("expected batch delete of a to apply")
	}
	if v, _ := m2.Get("b").Unwrap(); v != 12 {
		t.Errorf("expected batch update to yield 12, got %d", v)
	}
	if v, _ := m2.Get("c").Unwrap(); v != 4 {
		t.Errorf("expected later batch action to win, got %d", v)
	}

	// untouched original
	if m.Len() != 2 || !m.Has("a") {
		t.Error("expected original to be unchanged by the batch")
	}

	// an ineffective batch returns the receiver
	m3 := m.WithMutations(func(tx immutable.MapTx[string, int]) {
		tx.Set("a", 1)
		tx.Delete("missing")
		tx.Update("missing", func(v int) int { return v + 1 })
	})
	if m3 != m {
		t.Error("expected an ineffective batch to return the same instance")
	}
}

// MapValues, MapKeys and MapEntries rebuild the container; non-injective
// key transforms deduplicate with the last writer in iteration order
// winning.
func testMapTransforms(t *testing.T, factory MapFactory) {
	m := factory(immutable.E("a", 1), immutable.E("b", 2), immutable.E("c", 3))

	doubled := m.MapValues(func(_ string, v int) int { return v * 2 })
	if v, _ := doubled.Get("b").Unwrap(); v != 4 {
		t.Errorf("expected doubled value 4, got %d", v)
	}

	renamed := m.MapKeys(func(k string) string { return k + k })
	if !renamed.Has("aa") || renamed.Has("a") {
		t.Error("expected MapKeys to rename keys")
	}

	collapsed := m.MapKeys(func(string) string { return "x" })
	if collapsed.Len() != 1 {
		t.Errorf("expected collapsed map to have len 1, got %d", collapsed.Len())
	}
	if v, _ := collapsed.Get("x").Unwrap(); v != 3 {
		t.Errorf("expected last writer (c=3) to win the collision, got %d", v)
	}

	shifted := m.MapEntries(func(e immutable.Entry[string, int]) immutable.Entry[string, int] {
		return immutable.E(e.Key+"!", e.Value+100)
	})
	if v, _ := shifted.Get("a!").Unwrap(); v != 101 {
		t.Errorf("expected shifted entry a!=101, got %d", v)
	}
}

// Every is a short-circuiting AND, Some a short-circuiting OR.
func testMapEverySome(t *testing.T, factory MapFactory) {
	m := factory(immutable.E("a", 1), immutable.E("b", 2), immutable.E("c", 3))

	if !m.Every(func(_ string, v int) bool { return v > 0 }) {
		t.Error("expected Every to hold for all-positive values")
	}
	if m.Every(func(_ string, v int) bool { return v > 1 }) {
		t.Error("expected Every to fail when one value violates the predicate")
	}
	if !m.Some(func(_ string, v int) bool { return v == 3 }) {
		t.Error("expected Some to find value 3")
	}
	if m.Some(func(_ string, v int) bool { return v > 99 }) {
		t.Error("expected Some to fail when no value matches")
	}

	empty := factory()
	if !empty.Every(func(string, int) bool { return false }) {
		t.Error("expected Every to hold vacuously on an empty map")
	}
	if empty.Some(func(string, int) bool { return true }) {
		t.Error("expected Some to fail on an empty map")
	}
}

// Iteration follows insertion order and is stable across repeated
// iterations of the same instance.
func testMapIterationOrder(t *testing.T, factory MapFactory) {
	m := factory(immutable.E("x", 1), immutable.E("y", 2), immutable.E("z", 3))

	want := []string{"x", "y", "z"}
	for round := 0; round < 3; round++ {
		got := m.Keys()
		if len(got) != len(want) {
			t.Fatalf("expected %d keys, got %d", len(want), len(got))
		}
		for i := range want {
			if got[i] != want[i] {
				t.Fatalf("round %d: expected key %q at position %d, got %q", round, want[i], i, got[i])
			}
		}
	}

	// overwriting keeps the key's original position
	m2 := m.Set("x", 100)
	if keys := m2.Keys(); keys[0] != "x" {
		t.Errorf("expected overwritten key to keep its position, got %v", keys)
	}

	// Values and Entries align with Keys
	vals := m.Values()
	entries := m.Entries()
	keys := m.Keys()
	for i := range keys {
		if entries[i].Key != keys[i] || entries[i].Value != vals[i] {
			t.Fatalf("expected aligned iteration views at position %d", i)
		}
	}
}

// EqualMaps is structural and order-independent, and behaves like an
// equivalence relation.
func testMapEquality(t *testing.T, factory MapFactory) {
	a := factory(immutable.E("a", 1), immutable.E("b", 2), immutable.E("c", 3))
	b := factory(immutable.E("c", 3), immutable.E("a", 1), immutable.E("b", 2))
	c := factory(immutable.E("b", 2), immutable.E("c", 3), immutable.E("a", 1))

	if !immutable.EqualMaps(a, a) {
		t.Error("expected equality to be reflexive")
	}
	if !immutable.EqualMaps(a, b) || !immutable.EqualMaps(b, a) {
		t.Error("expected equality to be symmetric and order-independent")
	}
	if !immutable.EqualMaps(a, b) || !immutable.EqualMaps(b, c) || !immutable.EqualMaps(a, c) {
		t.Error("expected equality to be transitive")
	}

	// same keys, different value: sizes match but maps differ
	d := factory(immutable.E("a", 1), immutable.E("b", 2), immutable.E("c", 99))
	if immutable.EqualMaps(a, d) {
		t.Error("expected maps with a differing value to compare unequal")
	}

	if immutable.EqualMaps(a, factory(immutable.E("a", 1))) {
		t.Error("expected maps of different size to compare unequal")
	}

	// set idempotence: m.Set(k,v).Set(k,v) == m.Set(k,v)
	m1 := a.Set("k", 7)
	if !immutable.EqualMaps(m1.Set("k", 7), m1) {
		t.Error("expected Set to be idempotent under equality")
	}
}

// No operation may mutate the receiver; snapshots taken before a burst of
// derived instances must survive it untouched.
func testMapImmutability(t *testing.T, factory MapFactory) {
	m := factory(immutable.E("a", 1), immutable.E("b", 2))
	before := m.Entries()

	_ = m.Set("c", 3)
	_ = m.Set("a", 99)
	_ = m.Delete("b")
	_ = m.Update("a", func(v int) int { return -v })
	_ = m.MapValues(func(_ string, v int) int { return v * 1000 })
	_ = m.WithMutations(func(tx immutable.MapTx[string, int]) {
		tx.Delete("a")
		tx.Delete("b")
	})

	after := m.Entries()
	if len(before) != len(after) {
		t.Fatalf("expected entry count to survive derived mutations, got %d != %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("expected entry %d to survive derived mutations, got %v != %v", i, before[i], after[i])
		}
	}
}
