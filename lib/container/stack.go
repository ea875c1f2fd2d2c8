package container

import (
	"github.com/noshiro-pf/immu/lib/optional"
)

// --------------------------------------------------------------------------
// Dynamic Array Stack (LIFO)
// --------------------------------------------------------------------------

// Stack is a LIFO stack over a growable flat buffer. Elements live in
// [0, count); slots at index >= count are always zeroed so popped values do
// not pin their references.
//
// Thread-safety: Stack is not safe for concurrent use. It must be owned by
// a single goroutine or externally synchronized.
type Stack[T any] struct {
	buf   []T
	count int
}

// NewStack creates a stack holding the seed elements, the last seed element
// on top. The initial capacity is max(8, 2*len(seed)), the same policy as
// NewQueue.
func NewStack[T any](seed ...T) *Stack[T] {
	capacity := max(minCapacity, 2*len(seed))
	s := &Stack[T]{buf: make([]T, capacity)}
	copy(s.buf, seed)
	s.count = len(seed)
	return s
}

// Len returns the number of stacked elements.
func (s *Stack[T]) Len() int { return s.count }

// IsEmpty reports whether the stack holds no elements.
func (s *Stack[T]) IsEmpty() bool { return s.count == 0 }

// Cap returns the current capacity of the backing buffer.
func (s *Stack[T]) Cap() int { return len(s.buf) }

// Push places v on top of the stack, doubling the backing buffer if it is
// full. Amortized O(1), worst case O(n) on the doubling step.
func (s *Stack[T]) Push(v T) {
	if s.count == len(s.buf) {
		next := make([]T, 2*len(s.buf))
		copy(next, s.buf[:s.count])
		s.buf = next
	}
	s.buf[s.count] = v
	s.count++
}

// Pop removes and returns the top element, or none if the stack is empty.
// The vacated slot is cleared so the element becomes collectable.
func (s *Stack[T]) Pop() optional.Value[T] {
	if s.count == 0 {
		return optional.None[T]()
	}
	s.count--
	v := s.buf[s.count]
	var zero T
	s.buf[s.count] = zero
	return optional.Some(v)
}
