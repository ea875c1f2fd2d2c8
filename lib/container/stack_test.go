package container_test

import (
	"testing"

	"github.com/noshiro-pf/immu/lib/container"
)

// Pushing a, b, c and popping three times yields c, b, a, then none.
func TestStackLIFO(t *testing.T) {
	s := container.NewStack[string]()

	s.Push("a")
	s.Push("b")
	s.Push("c")

	for _, want := range []string{"c", "b", "a"} {
		got, ok := s.Pop().Unwrap()
		if !ok || got != want {
			t.Fatalf("expected %q, got (%q, %v)", want, got, ok)
		}
	}

	if s.Pop().IsSome() {
		t.Error("expected none from an empty stack")
	}
	if !s.IsEmpty() || s.Len() != 0 {
		t.Error("expected drained stack to be empty")
	}
}

// The last seed element is on top.
func TestStackSeed(t *testing.T) {
	s := container.NewStack(1, 2, 3)

	if s.Len() != 3 {
		t.Errorf("expected seeded len 3, got %d", s.Len())
	}
	if s.Cap() != 8 {
		t.Errorf("expected capacity max(8, 2*3) = 8, got %d", s.Cap())
	}
	if v, _ := s.Pop().Unwrap(); v != 3 {
		t.Errorf("expected last seed element on top, got %d", v)
	}
}

func TestStackInitialCapacityPolicy(t *testing.T) {
	if got := container.NewStack[int]().Cap(); got != 8 {
		t.Errorf("expected minimum capacity 8, got %d", got)
	}

	seed := make([]int, 10)
	if got := container.NewStack(seed...).Cap(); got != 20 {
		t.Errorf("expected capacity 2*10 = 20, got %d", got)
	}
}

// 10,000 elements pushed through the doubling boundary drain in exactly
// reverse order with no loss or duplication.
func TestStackGrowth(t *testing.T) {
	const n = 10000
	s := container.NewStack[int]()

	for i := 0; i < n; i++ {
		s.Push(i)
	}
	if s.Len() != n {
		t.Fatalf("expected len %d, got %d", n, s.Len())
	}

	for i := n - 1; i >= 0; i-- {
		got, ok := s.Pop().Unwrap()
		if !ok || got != i {
			t.Fatalf("expected %d, got (%d, %v)", i, got, ok)
		}
	}
	if s.Pop().IsSome() {
		t.Error("expected the stack to be exactly drained")
	}
}

// Capacity doubles and never shrinks.
func TestStackCapacityNeverShrinks(t *testing.T) {
	s := container.NewStack[int]()

	for i := 0; i < 100; i++ {
		s.Push(i)
	}
	grown := s.Cap()
	if grown < 100 {
		t.Fatalf("expected capacity >= 100 after growth, got %d", grown)
	}

	for s.Pop().IsSome() {
	}
	if s.Cap() != grown {
		t.Errorf("expected capacity to stay at %d after draining, got %d", grown, s.Cap())
	}
}

// Popped slots are cleared so held pointers become collectable.
func TestStackClearsPoppedSlots(t *testing.T) {
	s := container.NewStack[*int]()

	v := new(int)
	s.Push(v)
	if got, _ := s.Pop().Unwrap(); got != v {
		t.Fatal("expected the pushed pointer back")
	}

	s.Push(nil)
	if got, ok := s.Pop().Unwrap(); !ok || got != nil {
		t.Fatalf("expected nil from the reused slot, got %v", got)
	}
}

func BenchmarkStack(b *testing.B) {
	s := container.NewStack[int]()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Push(i)
		if i%2 == 1 {
			s.Pop()
		}
	}
}
