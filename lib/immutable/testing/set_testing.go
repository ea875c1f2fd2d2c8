package testing

import (
	"sort"
	"testing"

	"github.com/noshiro-pf/immu/lib/immutable"
)

// SetFactory builds a fresh Set instance for the implementation under test.
type SetFactory func(elems ...string) immutable.Set[string]

// RunSetTests runs the full behavioral contract suite against a Set
// implementation, including the set algebra laws.
func RunSetTests(t *testing.T, name string, factory SetFactory) {
	t.Run(name, func(t *testing.T) {
		t.Run("Add&Has", func(t *testing.T) {
			testSetAddHas(t, factory)
		})

		t.Run("Delete", func(t *testing.T) {
			testSetDelete(t, factory)
		})

		t.Run("WithMutations", func(t *testing.T) {
			testSetWithMutations(t, factory)
		})

		t.Run("Map&Filter", func(t *testing.T) {
			testSetMapFilter(t, factory)
		})

		t.Run("Every&Some", func(t *testing.T) {
			testSetEverySome(t, factory)
		})

		t.Run("Equality", func(t *testing.T) {
			testSetEquality(t, factory)
		})

		t.Run("AlgebraLaws", func(t *testing.T) {
			testSetAlgebraLaws(t, factory)
		})

		t.Run("Diff", func(t *testing.T) {
			testSetDiff(t, factory)
		})

		t.Run("Subset&Superset", func(t *testing.T) {
			testSetSubset(t, factory)
		})

		t.Run("Immutability", func(t *testing.T) {
			testSetImmutability(t, factory)
		})
	})
}

// --------------------------------------------------------------------------
// Test functions
// --------------------------------------------------------------------------

// Elements are deduplicated at construction; Add of a present element is an
// identity no-op.
func testSetAddHas(t *testing.T, factory SetFactory) {
	s := factory("a", "b", "a")

	if s.Len() != 2 {
		t.Errorf("expected construction to deduplicate, got len %d", s.Len())
	}
	if !s.Has("a") || !s.Has("b") || s.Has("c") {
		t.Error("expected membership to match inserted elements")
	}

	s2 := s.Add("c")
	if s2.Len() != 3 || !s2.Has("c") {
		t.Error("expected Add to insert a new element")
	}
	if s.Len() != 2 {
		t.Error("expected original to be unchanged by Add")
	}

	if s.Add("a") != s {
		t.Error("expected Add of present element to return the same instance")
	}
}

// Delete removes present elements and is an identity no-op for absent ones.
func testSetDelete(t *testing.T, factory SetFactory) {
	s := factory("a", "b")

	s2 := s.Delete("a")
	if s2.Len() != 1 || s2.Has("a") {
		t.Error("expected element a to be gone after Delete")
	}
	if !s.Has("a") {
		t.Error("expected original to keep element a")
	}

	if s.Delete("missing") != s {
		t.Error("expected Delete of absent element to return the same instance")
	}
}

// WithMutations applies the batch in order and returns one new instance, or
// the receiver if nothing changed.
func testSetWithMutations(t *testing.T, factory SetFactory) {
	s := factory("a", "b")

	s2 := s.WithMutations(func(tx immutable.SetTx[string]) {
		tx.Add("c")
		tx.Delete("a")
		tx.Add("d")
		tx.Delete("d")
	})

	want := factory("b", "c")
	if !immutable.EqualSets(s2, want) {
		t.Errorf("expected batch result {b,c}, got %v", s2.ToSlice())
	}

	s3 := s.WithMutations(func(tx immutable.SetTx[string]) {
		tx.Add("a")
		tx.Delete("missing")
	})
	if s3 != s {
		t.Error("expected an ineffective batch to return the same instance")
	}
}

// Map re-deduplicates collisions; Filter and FilterNot partition the set.
func testSetMapFilter(t *testing.T, factory SetFactory) {
	s := factory("a", "bb", "ccc")

	collapsed := s.Map(func(string) string { return "x" })
	if collapsed.Len() != 1 || !collapsed.Has("x") {
		t.Error("expected non-injective Map to deduplicate to {x}")
	}

	long := s.Filter(func(e string) bool { return len(e) > 1 })
	short := s.FilterNot(func(e string) bool { return len(e) > 1 })
	if !immutable.EqualSets(long, factory("bb", "ccc")) {
		t.Errorf("expected Filter to keep long elements, got %v", long.ToSlice())
	}
	if !immutable.EqualSets(short, factory("a")) {
		t.Errorf("expected FilterNot to keep short elements, got %v", short.ToSlice())
	}
	if !immutable.EqualSets(immutable.Union(long, short), s) {
		t.Error("expected Filter and FilterNot to partition the set")
	}
}

// Every is a short-circuiting AND, Some a short-circuiting OR.
func testSetEverySome(t *testing.T, factory SetFactory) {
	s := factory("a", "b", "c")

	if !s.Every(func(e string) bool { return len(e) == 1 }) {
		t.Error("expected Every to hold for single-char elements")
	}
	if s.Every(func(e string) bool { return e == "a" }) {
		t.Error("expected Every to fail when an element violates the predicate")
	}
	if !s.Some(func(e string) bool { return e == "c" }) {
		t.Error("expected Some to find element c")
	}
	if s.Some(func(e string) bool { return e == "z" }) {
		t.Error("expected Some to fail when nothing matches")
	}

	empty := factory()
	if !empty.Every(func(string) bool { return false }) {
		t.Error("expected Every to hold vacuously on an empty set")
	}
}

// EqualSets is order-independent and an equivalence relation; the
// size-plus-membership shortcut is valid because sets hold no duplicates.
func testSetEquality(t *testing.T, factory SetFactory) {
	a := factory("x", "y", "z")
	b := factory("z", "x", "y")
	c := factory("y", "z", "x")

	if !immutable.EqualSets(a, a) {
		t.Error("expected equality to be reflexive")
	}
	if !immutable.EqualSets(a, b) || !immutable.EqualSets(b, a) {
		t.Error("expected equality to be symmetric and order-independent")
	}
	if !immutable.EqualSets(a, b) || !immutable.EqualSets(b, c) || !immutable.EqualSets(a, c) {
		t.Error("expected equality to be transitive")
	}
	if immutable.EqualSets(a, factory("x", "y")) {
		t.Error("expected sets of different size to compare unequal")
	}
	if immutable.EqualSets(a, factory("x", "y", "w")) {
		t.Error("expected sets with different elements to compare unequal")
	}
}

// Commutativity of union/intersection and the partition law
// subtract(a,b) ∪ intersect(a,b) == a.
func testSetAlgebraLaws(t *testing.T, factory SetFactory) {
	a := factory("1", "2", "3", "4")
	b := factory("3", "4", "5")

	if !immutable.EqualSets(immutable.Union(a, b), immutable.Union(b, a)) {
		t.Error("expected union to be commutative")
	}
	if !immutable.EqualSets(immutable.Intersect(a, b), immutable.Intersect(b, a)) {
		t.Error("expected intersection to be commutative")
	}

	if !immutable.EqualSets(immutable.Union(a, b), factory("1", "2", "3", "4", "5")) {
		t.Error("expected union to hold all elements of both operands")
	}
	if !immutable.EqualSets(immutable.Intersect(a, b), factory("3", "4")) {
		t.Error("expected intersection to hold the shared elements")
	}
	if !immutable.EqualSets(immutable.Subtract(a, b), factory("1", "2")) {
		t.Error("expected subtraction to drop shared elements")
	}

	recombined := immutable.Union(immutable.Subtract(a, b), immutable.Intersect(a, b))
	if !immutable.EqualSets(recombined, a) {
		t.Error("expected subtract ∪ intersect to reconstruct the left operand")
	}

	// union with a subset short-circuits to the left operand
	if immutable.Union(a, factory("1", "2")) != a {
		t.Error("expected union with a subset to return the left instance unchanged")
	}
}

// Diff decomposes into the two directed subtractions.
func testSetDiff(t *testing.T, factory SetFactory) {
	oldSet := factory("1", "2", "3")
	newSet := factory("2", "3", "4")

	d := immutable.Diff(oldSet, newSet)
	if !immutable.EqualSets(d.Deleted, factory("1")) {
		t.Errorf("expected deleted {1}, got %v", d.Deleted.ToSlice())
	}
	if !immutable.EqualSets(d.Added, factory("4")) {
		t.Errorf("expected added {4}, got %v", d.Added.ToSlice())
	}
	if !immutable.EqualSets(d.Deleted, immutable.Subtract(oldSet, newSet)) {
		t.Error("expected Diff.Deleted == Subtract(old, new)")
	}
	if !immutable.EqualSets(d.Added, immutable.Subtract(newSet, oldSet)) {
		t.Error("expected Diff.Added == Subtract(new, old)")
	}
}

// Subset and superset checks, including the degenerate empty and equal
// cases.
func testSetSubset(t *testing.T, factory SetFactory) {
	a := factory("1", "2")
	b := factory("1", "2", "3")

	if !immutable.IsSubset(a, b) || immutable.IsSubset(b, a) {
		t.Error("expected {1,2} ⊆ {1,2,3} and not the reverse")
	}
	if !immutable.IsSuperset(b, a) || immutable.IsSuperset(a, b) {
		t.Error("expected {1,2,3} ⊇ {1,2} and not the reverse")
	}
	if !immutable.IsSubset(a, a) || !immutable.IsSuperset(a, a) {
		t.Error("expected a set to be subset and superset of itself")
	}
	if !immutable.IsSubset(factory(), a) {
		t.Error("expected the empty set to be a subset of anything")
	}
}

// No operation may mutate the receiver.
func testSetImmutability(t *testing.T, factory SetFactory) {
	s := factory("a", "b", "c")
	before := s.ToSlice()
	sort.Strings(before)

	_ = s.Add("d")
	_ = s.Delete("a")
	_ = s.Map(func(string) string { return "x" })
	_ = s.Filter(func(string) bool { return false })
	_ = s.WithMutations(func(tx immutable.SetTx[string]) {
		tx.Delete("a")
		tx.Delete("b")
		tx.Delete("c")
	})

	after := s.ToSlice()
	sort.Strings(after)
	if len(before) != len(after) {
		t.Fatalf("expected element count to survive derived mutations, got %d != %d", len(before), len(after))
	}
	for i := range before {
		if before[i] != after[i] {
			t.Fatalf("expected element %q to survive derived mutations, got %q", before[i], after[i])
		}
	}
}
