// Package registry provides a concurrent publication layer for immutable
// snapshots.
//
// The containers in lib/immutable are safe to share read-only across
// goroutines precisely because they never change after construction; what
// they do not provide is a place where many goroutines agree on the
// "current" snapshot of a named collection. Registry fills that gap: a
// concurrent map from names to snapshot values where writers publish whole
// new instances and readers always observe a complete, consistent one.
//
// Update applies a read-modify-publish function atomically per name, so two
// goroutines racing to derive the next snapshot from the current one
// resolve to a single winner per slot instead of losing updates.
//
// Every operation increments a per-registry VictoriaMetrics counter
// (immu_registry_ops_total) for observability.
package registry
