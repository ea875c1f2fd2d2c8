package registry_test

import (
	"sync"
	"testing"

	"github.com/noshiro-pf/immu/lib/immutable"
	"github.com/noshiro-pf/immu/lib/registry"
)

func TestPublishLoad(t *testing.T) {
	r := registry.New[immutable.Set[int]]("test")

	if r.Load("evens").IsSome() {
		t.Error("expected none before anything is published")
	}

	r.Publish("evens", immutable.NewSet(2, 4))

	snap, ok := r.Load("evens").Unwrap()
	if !ok || !immutable.EqualSets(snap, immutable.NewSet(2, 4)) {
		t.Errorf("expected published snapshot back, got %v", snap)
	}

	// republish replaces
	r.Publish("evens", immutable.NewSet(2, 4, 6))
	snap, _ = r.Load("evens").Unwrap()
	if snap.Len() != 3 {
		t.Errorf("expected replacement snapshot, got %v", snap.ToSlice())
	}
}

func TestDropAndNames(t *testing.T) {
	r := registry.New[int]("test")

	r.Publish("a", 1)
	r.Publish("b", 2)

	if r.Len() != 2 {
		t.Errorf("expected 2 snapshots, got %d", r.Len())
	}
	if names := r.Names(); len(names) != 2 {
		t.Errorf("expected 2 names, got %v", names)
	}

	if !r.Drop("a") {
		t.Error("expected Drop of a published name to report true")
	}
	if r.Drop("a") {
		t.Error("expected Drop of an absent name to report false")
	}
	if r.Len() != 1 {
		t.Errorf("expected 1 snapshot after drop, got %d", r.Len())
	}
}

// Concurrent Updates on one name must not lose increments: each call
// derives the next snapshot from the latest published one.
func TestConcurrentUpdate(t *testing.T) {
	const (
		goroutines = 8
		perG       = 200
	)
	r := registry.New[immutable.Map[string, int]]("test")
	r.Publish("counters", immutable.NewMap(immutable.E("hits", 0)))

	var wg sync.WaitGroup
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < perG; i++ {
				r.Update("counters", func(cur immutable.Map[string, int], ok bool) immutable.Map[string, int] {
					return cur.Update("hits", func(n int) int { return n + 1 })
				})
			}
		}()
	}
	wg.Wait()

	snap, _ := r.Load("counters").Unwrap()
	if hits, _ := snap.Get("hits").Unwrap(); hits != goroutines*perG {
		t.Errorf("expected %d hits, got %d", goroutines*perG, hits)
	}
}

// Update on an unpublished name sees ok == false and initializes the slot.
func TestUpdateInitializes(t *testing.T) {
	r := registry.New[immutable.Set[string]]("test")

	next := r.Update("tags", func(cur immutable.Set[string], ok bool) immutable.Set[string] {
		if !ok {
			cur = immutable.NewSet[string]()
		}
		return cur.Add("fresh")
	})

	if !next.Has("fresh") {
		t.Error("expected the initializing update to apply")
	}
	if snap, ok := r.Load("tags").Unwrap(); !ok || !immutable.EqualSets(snap, next) {
		t.Error("expected the initialized snapshot to be published")
	}
}
