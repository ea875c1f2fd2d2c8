// Package container provides mutable, single-owner linear containers: a
// ring-buffer FIFO queue and a growable-array LIFO stack.
//
// Both containers grow by doubling their backing buffer when full and never
// shrink, giving amortized O(1) insertion with an O(n) worst case on the
// doubling step. Vacated slots are cleared to the zero value so that held
// references become collectable.
//
// Unlike the containers in lib/immutable, these structures mutate in place
// and hold internal cursors. They are NOT safe for concurrent use: they are
// meant as single-owner work queues and stacks, owned by one goroutine at a
// time or externally synchronized by the caller.
package container
