package immutable_test

import (
	"strconv"
	"testing"

	"github.com/noshiro-pf/immu/lib/immutable"
	immutabletesting "github.com/noshiro-pf/immu/lib/immutable/testing"
)

func TestHashSet(t *testing.T) {
	immutabletesting.RunSetTests(t, "HashSet", func(elems ...string) immutable.Set[string] {
		return immutable.NewSet(elems...)
	})
}

func BenchmarkHashSet(b *testing.B) {
	immutabletesting.RunSetBenchmarks(b, "HashSet", func(elems ...string) immutable.Set[string] {
		return immutable.NewSet(elems...)
	})
}

// The diff of {1,2,3} and {2,3,4} is deleted={1}, added={4}.
func TestSetDiffScenario(t *testing.T) {
	oldSet := immutable.NewSet(1, 2, 3)
	newSet := immutable.NewSet(2, 3, 4)

	d := immutable.Diff(oldSet, newSet)
	if !immutable.EqualSets(d.Deleted, immutable.NewSet(1)) {
		t.Errorf("expected deleted {1}, got %v", d.Deleted.ToSlice())
	}
	if !immutable.EqualSets(d.Added, immutable.NewSet(4)) {
		t.Errorf("expected added {4}, got %v", d.Added.ToSlice())
	}
}

func TestSetToGoSet(t *testing.T) {
	s := immutable.NewSet("a", "b")

	raw := immutable.ToGoSet(s)
	if len(raw) != 2 {
		t.Fatalf("expected 2 elements, got %d", len(raw))
	}
	if _, ok := raw["a"]; !ok {
		t.Error("expected element a in the copy")
	}

	delete(raw, "a")
	if !s.Has("a") {
		t.Error("expected mutation of the copy not to affect the set")
	}
}

func TestSetTo(t *testing.T) {
	s := immutable.NewSet(1, 2, 3)

	strs := immutable.SetTo(s, strconv.Itoa)
	if !immutable.EqualSets(strs, immutable.NewSet("1", "2", "3")) {
		t.Errorf("expected string projection, got %v", strs.ToSlice())
	}

	// non-injective transform deduplicates
	parity := immutable.SetTo(s, func(n int) int { return n % 2 })
	if parity.Len() != 2 {
		t.Errorf("expected parity classes {0,1}, got %v", parity.ToSlice())
	}
}

func TestValidateSet(t *testing.T) {
	s := immutable.NewSet(2, 4, 6)

	even := func(n int) bool { return n%2 == 0 }
	if v := immutable.ValidateSet(s, even); v.IsNone() {
		t.Error("expected validation to succeed for an all-even set")
	}
	if v := immutable.ValidateSet(s.Add(3), even); v.IsSome() {
		t.Error("expected validation to fail once an odd element appears")
	}
}
