package registry

import (
	"fmt"

	"github.com/VictoriaMetrics/metrics"
	"github.com/noshiro-pf/immu/lib/optional"
	"github.com/puzpuzpuz/xsync/v3"
)

// --------------------------------------------------------------------------
// Registry Type
// --------------------------------------------------------------------------

// Registry maps names to immutable snapshot values of type V. V is expected
// to be an immutable value (an immutable.Map, immutable.Set, or anything
// else that is never mutated after construction); the registry hands out
// whatever was published without copying.
//
// Thread-safety: all methods are safe for concurrent use.
type Registry[V any] struct {
	name      string
	snapshots *xsync.MapOf[string, V]
}

// New creates an empty registry. The name labels the registry's metrics.
func New[V any](name string) *Registry[V] {
	return &Registry[V]{
		name:      name,
		snapshots: xsync.NewMapOf[string, V](),
	}
}

// count increments the per-operation counter for this registry.
func (r *Registry[V]) count(op string) {
	metrics.GetOrCreateCounter(
		fmt.Sprintf(`immu_registry_ops_total{registry=%q,op=%q}`, r.name, op),
	).Inc()
}

// --------------------------------------------------------------------------
// Operations
// --------------------------------------------------------------------------

// Publish stores snap as the current snapshot for key, replacing any
// previous one.
func (r *Registry[V]) Publish(key string, snap V) {
	r.count("publish")
	r.snapshots.Store(key, snap)
}

// Load returns the current snapshot for key, or none if nothing has been
// published under that name.
func (r *Registry[V]) Load(key string) optional.Value[V] {
	r.count("load")
	if v, ok := r.snapshots.Load(key); ok {
		return optional.Some(v)
	}
	return optional.None[V]()
}

// Update atomically replaces the snapshot for key with fn(current, ok),
// where ok reports whether a snapshot existed. Concurrent Updates on the
// same key are serialized, so no published snapshot is lost to a
// read-modify-publish race. The new snapshot is returned.
func (r *Registry[V]) Update(key string, fn func(current V, ok bool) V) V {
	r.count("update")
	next, _ := r.snapshots.Compute(key, func(current V, loaded bool) (V, bool) {
		return fn(current, loaded), false
	})
	return next
}

// Drop removes the snapshot for key and reports whether one existed.
func (r *Registry[V]) Drop(key string) bool {
	r.count("drop")
	_, existed := r.snapshots.LoadAndDelete(key)
	return existed
}

// Names returns the names with a published snapshot, in unspecified order.
func (r *Registry[V]) Names() []string {
	out := make([]string, 0, r.snapshots.Size())
	r.snapshots.Range(func(k string, _ V) bool {
		out = append(out, k)
		return true
	})
	return out
}

// Len returns the number of published snapshots.
func (r *Registry[V]) Len() int { return r.snapshots.Size() }
