package container_test

import (
	"testing"

	"github.com/noshiro-pf/immu/lib/container"
)

// Enqueuing a, b, c and dequeuing three times yields a, b, c, then none.
func TestQueueFIFO(t *testing.T) {
	q := container.NewQueue[string]()

	q.Enqueue("a")
	q.Enqueue("b")
	q.Enqueue("c")

	for _, want := range []string{"a", "b", "c"} {
		got, ok := q.Dequeue().Unwrap()
		if !ok || got != want {
			t.Fatalf("expected %q, got (%q, %v)", want, got, ok)
		}
	}

	if q.Dequeue().IsSome() {
		t.Error("expected none from an empty queue")
	}
	if !q.IsEmpty() || q.Len() != 0 {
		t.Error("expected drained queue to be empty")
	}
}

func TestQueueSeed(t *testing.T) {
	q := container.NewQueue(1, 2, 3)

	if q.Len() != 3 {
		t.Errorf("expected seeded len 3, got %d", q.Len())
	}
	if q.Cap() != 8 {
		t.Errorf("expected capacity max(8, 2*3) = 8, got %d", q.Cap())
	}

	if v, _ := q.Dequeue().Unwrap(); v != 1 {
		t.Errorf("expected seed order to be preserved, got %d first", v)
	}
}

func TestQueueInitialCapacityPolicy(t *testing.T) {
	if got := container.NewQueue[int]().Cap(); got != 8 {
		t.Errorf("expected minimum capacity 8, got %d", got)
	}

	seed := make([]int, 16)
	if got := container.NewQueue(seed...).Cap(); got != 32 {
		t.Errorf("expected capacity 2*16 = 32, got %d", got)
	}
}

// Interleaved enqueue/dequeue drives the head and tail cursors across the
// wrap-around boundary many times.
func TestQueueWrapAround(t *testing.T) {
	q := container.NewQueue[int]()

	next, expect := 0, 0
	for round := 0; round < 100; round++ {
		for i := 0; i < 5; i++ {
			q.Enqueue(next)
			next++
		}
		for i := 0; i < 5; i++ {
			got, ok := q.Dequeue().Unwrap()
			if !ok || got != expect {
				t.Fatalf("round %d: expected %d, got (%d, %v)", round, expect, got, ok)
			}
			expect++
		}
	}

	if q.Cap() != 8 {
		t.Errorf("expected no growth while count stays below capacity, got cap %d", q.Cap())
	}
}

// 10,000 elements pushed through the doubling boundary drain in exactly the
// original order with no loss or duplication.
func TestQueueGrowth(t *testing.T) {
	const n = 10000
	q := container.NewQueue[int]()

	// stagger the head so growth happens with a wrapped window
	q.Enqueue(-1)
	q.Enqueue(-2)
	q.Dequeue()
	q.Dequeue()

	for i := 0; i < n; i++ {
		q.Enqueue(i)
	}
	if q.Len() != n {
		t.Fatalf("expected len %d, got %d", n, q.Len())
	}

	for i := 0; i < n; i++ {
		got, ok := q.Dequeue().Unwrap()
		if !ok || got != i {
			t.Fatalf("expected %d at position %d, got (%d, %v)", i, i, got, ok)
		}
	}
	if q.Dequeue().IsSome() {
		t.Error("expected the queue to be exactly drained")
	}
}

// Capacity doubles and never shrinks.
func TestQueueCapacityNeverShrinks(t *testing.T) {
	q := container.NewQueue[int]()

	for i := 0; i < 100; i++ {
		q.Enqueue(i)
	}
	grown := q.Cap()
	if grown < 100 {
		t.Fatalf("expected capacity >= 100 after growth, got %d", grown)
	}

	for q.Dequeue().IsSome() {
	}
	if q.Cap() != grown {
		t.Errorf("expected capacity to stay at %d after draining, got %d", grown, q.Cap())
	}
}

// Dequeued slots are cleared so held pointers become collectable.
func TestQueueClearsDequeuedSlots(t *testing.T) {
	q := container.NewQueue[*int]()

	v := new(int)
	q.Enqueue(v)
	if got, _ := q.Dequeue().Unwrap(); got != v {
		t.Fatal("expected the enqueued pointer back")
	}

	// re-grow over the same slots; no stale pointer may surface
	for i := 0; i < 8; i++ {
		q.Enqueue(nil)
	}
	for i := 0; i < 8; i++ {
		if got, ok := q.Dequeue().Unwrap(); !ok || got != nil {
			t.Fatalf("expected nil at position %d, got %v", i, got)
		}
	}
}

func BenchmarkQueue(b *testing.B) {
	q := container.NewQueue[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		if i%2 == 1 {
			q.Dequeue()
		}
	}
}
