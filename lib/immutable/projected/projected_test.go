package projected_test

import (
	"fmt"
	"strconv"
	"strings"
	"testing"

	"github.com/noshiro-pf/immu/lib/immutable"
	"github.com/noshiro-pf/immu/lib/immutable/projected"
	immutabletesting "github.com/noshiro-pf/immu/lib/immutable/testing"
)

// prefixProjection stores string keys under a marked storage key, so the
// contract suite exercises the full translation path in both directions.
var prefixProjection = projected.KeyProjection[string, string]{
	ToKey:   func(k string) string { return "k:" + k },
	FromKey: func(km string) string { return strings.TrimPrefix(km, "k:") },
}

func TestProjectedMap(t *testing.T) {
	immutabletesting.RunMapTests(t, "ProjectedMap", func(entries ...immutable.Entry[string, int]) immutable.Map[string, int] {
		return projected.NewMap(prefixProjection, entries...)
	})
}

func TestProjectedSet(t *testing.T) {
	immutabletesting.RunSetTests(t, "ProjectedSet", func(elems ...string) immutable.Set[string] {
		return projected.NewSet(prefixProjection, elems...)
	})
}

func BenchmarkProjectedMap(b *testing.B) {
	immutabletesting.RunMapBenchmarks(b, "ProjectedMap", func(entries ...immutable.Entry[string, int]) immutable.Map[string, int] {
		return projected.NewMap(prefixProjection, entries...)
	})
}

// --------------------------------------------------------------------------
// Composite key projections
// --------------------------------------------------------------------------

// point is the kind of composite key the projection layer exists for.
type point struct {
	X, Y int
}

var pointProjection = projected.KeyProjection[point, string]{
	ToKey: func(p point) string {
		return fmt.Sprintf("%d,%d", p.X, p.Y)
	},
	FromKey: func(km string) point {
		parts := strings.SplitN(km, ",", 2)
		x, _ := strconv.Atoi(parts[0])
		y, _ := strconv.Atoi(parts[1])
		return point{X: x, Y: y}
	},
}

// With an injective ToKey, every inserted pair round-trips through the
// projection.
func TestProjectionRoundTrip(t *testing.T) {
	entries := []immutable.Entry[point, string]{
		immutable.E(point{0, 0}, "origin"),
		immutable.E(point{1, 2}, "a"),
		immutable.E(point{-3, 7}, "b"),
	}
	m := projected.NewMap(pointProjection, entries...)

	for _, e := range entries {
		if v, ok := m.Get(e.Key).Unwrap(); !ok || v != e.Value {
			t.Errorf("expected %v -> %q to round-trip, got (%q, %v)", e.Key, e.Value, v, ok)
		}
	}

	// a fresh but semantically equal key must hit the same slot
	if v, _ := m.Get(point{X: 1, Y: 2}).Unwrap(); v != "a" {
		t.Error("expected semantically equal keys to address the same entry")
	}

	// iteration reconstructs caller-facing keys
	for _, k := range m.Keys() {
		if !m.Has(k) {
			t.Errorf("expected reconstructed key %v to be usable for lookup", k)
		}
	}
}

func TestProjectedSetWithCompositeKeys(t *testing.T) {
	s := projected.NewSet(pointProjection, point{1, 1}, point{2, 2}, point{1, 1})

	if s.Len() != 2 {
		t.Errorf("expected duplicate composite keys to deduplicate, got %d", s.Len())
	}
	if !s.Has(point{2, 2}) {
		t.Error("expected membership through the projection")
	}

	d := immutable.Diff(s, s.Add(point{3, 3}))
	if !immutable.EqualSets(d.Added, projected.NewSet(pointProjection, point{3, 3})) {
		t.Errorf("expected added {(3,3)}, got %v", d.Added.ToSlice())
	}
}

// --------------------------------------------------------------------------
// Strict construction
// --------------------------------------------------------------------------

// The strict constructors reject ToKey collisions instead of resolving them
// silently.
func TestStrictRejectsCollision(t *testing.T) {
	lossy := projected.KeyProjection[point, int]{
		ToKey:   func(p point) int { return p.X },
		FromKey: func(km int) point { return point{X: km} },
	}

	if _, err := projected.NewMapStrict(lossy,
		immutable.E(point{1, 0}, "a"),
		immutable.E(point{1, 5}, "b"),
	); err == nil {
		t.Error("expected strict map construction to reject colliding keys")
	}

	if _, err := projected.NewSetStrict(lossy, point{2, 0}, point{2, 9}); err == nil {
		t.Error("expected strict set construction to reject colliding keys")
	}

	// collision-free input passes
	if _, err := projected.NewMapStrict(lossy, immutable.E(point{1, 0}, "a"), immutable.E(point{2, 0}, "b")); err != nil {
		t.Errorf("expected collision-free strict construction to succeed, got %v", err)
	}
}

func TestStrictRejectsBrokenRoundTrip(t *testing.T) {
	broken := projected.KeyProjection[string, string]{
		ToKey:   func(k string) string { return strings.ToUpper(k) },
		FromKey: func(km string) string { return km }, // loses the original case
	}

	if _, err := projected.NewSetStrict(broken, "abc"); err == nil {
		t.Error("expected strict construction to reject a FromKey that does not round-trip")
	}
}

// --------------------------------------------------------------------------
// Surface behavior
// --------------------------------------------------------------------------

// Storage equality compares projected representations: equal logical keys
// under different storage representations compare unequal, while the
// logical comparison through the interface still sees them as equal.
func TestEqualityIsProjectionSensitive(t *testing.T) {
	decimal := projected.KeyProjection[point, string]{
		ToKey:   pointProjection.ToKey,
		FromKey: pointProjection.FromKey,
	}
	hexed := projected.KeyProjection[point, string]{
		ToKey: func(p point) string {
			return fmt.Sprintf("%x,%x", p.X, p.Y)
		},
		FromKey: func(km string) point {
			parts := strings.SplitN(km, ",", 2)
			x, _ := strconv.ParseInt(parts[0], 16, 64)
			y, _ := strconv.ParseInt(parts[1], 16, 64)
			return point{X: int(x), Y: int(y)}
		},
	}

	a := projected.NewSet(decimal, point{10, 20}).(*projected.Set[point, string])
	b := projected.NewSet(hexed, point{10, 20}).(*projected.Set[point, string])
	c := projected.NewSet(decimal, point{10, 20}).(*projected.Set[point, string])

	if projected.EqualSets(a, b) {
		t.Error("expected storage equality to fail across incompatible projections")
	}
	if !projected.EqualSets(a, c) {
		t.Error("expected storage equality to hold under the same projection")
	}

	// the logical view resolves membership through each side's own
	// projection, so it considers the two sets equal
	if !immutable.EqualSets[point](a, b) {
		t.Error("expected logical equality to hold for equal logical keys")
	}
}

func TestRawExposesProjectedStorage(t *testing.T) {
	m := projected.NewMap(pointProjection, immutable.E(point{1, 2}, "a")).(*projected.Map[point, string, string])

	raw := m.Raw()
	if v, ok := raw.Get("1,2").Unwrap(); !ok || v != "a" {
		t.Errorf("expected raw storage keyed by projected key, got (%q, %v)", v, ok)
	}
}
