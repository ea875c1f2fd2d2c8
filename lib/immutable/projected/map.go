package projected

import (
	"github.com/noshiro-pf/immu/lib/immutable"
	"github.com/noshiro-pf/immu/lib/optional"
)

// --------------------------------------------------------------------------
// Construction
// --------------------------------------------------------------------------

// NewMap creates an immutable.Map keyed by K but stored under the projected
// key type KM. Entries whose keys project to the same storage key are
// deduplicated silently, last writer winning.
func NewMap[K any, KM comparable, V any](proj KeyProjection[K, KM], entries ...immutable.Entry[K, V]) immutable.Map[K, V] {
	return NewMapEq[K, KM, V](proj, nil, entries...)
}

// NewMapEq creates a projected map with an explicit value equality
// predicate, forwarded to the backing engine.
func NewMapEq[K any, KM comparable, V any](proj KeyProjection[K, KM], eq immutable.EqFunc[V], entries ...immutable.Entry[K, V]) immutable.Map[K, V] {
	projected := make([]immutable.Entry[KM, V], 0, len(entries))
	for _, e := range entries {
		projected = append(projected, immutable.Entry[KM, V]{Key: proj.ToKey(e.Key), Value: e.Value})
	}
	return &Map[K, KM, V]{proj: proj, inner: immutable.NewMapEq(eq, projected...)}
}

// NewMapStrict is NewMap with the projection invariants enforced: it fails
// if two entry keys collide on the same storage key or if FromKey does not
// round-trip a produced storage key.
func NewMapStrict[K any, KM comparable, V any](proj KeyProjection[K, KM], entries ...immutable.Entry[K, V]) (immutable.Map[K, V], error) {
	keys := make([]K, 0, len(entries))
	for _, e := range entries {
		keys = append(keys, e.Key)
	}
	if err := proj.checkStrict(keys); err != nil {
		return nil, err
	}
	return NewMap(proj, entries...), nil
}

// --------------------------------------------------------------------------
// Projected Map Implementation
// --------------------------------------------------------------------------

// Map implements immutable.Map[K, V] by translating keys through a
// KeyProjection at the public boundary and delegating every operation to a
// hash-table backed immutable.Map[KM, V].
type Map[K any, KM comparable, V any] struct {
	proj  KeyProjection[K, KM]
	inner immutable.Map[KM, V]
}

// Raw exposes the backing storage map keyed by projected keys. It is safe
// to hand out because the backing map is itself immutable.
func (m *Map[K, KM, V]) Raw() immutable.Map[KM, V] { return m.inner }

// wrap rebinds a new backing map to the same projection. When the delegated
// operation short-circuited and returned the identical backing instance,
// the receiver itself is returned so that identity short-circuits survive
// the projection layer.
func (m *Map[K, KM, V]) wrap(inner immutable.Map[KM, V]) immutable.Map[K, V] {
	if inner == m.inner {
		return m
	}
	return &Map[K, KM, V]{proj: m.proj, inner: inner}
}

// --------------------------------------------------------------------------
// Read Operations
// --------------------------------------------------------------------------

func (m *Map[K, KM, V]) Len() int { return m.inner.Len() }

func (m *Map[K, KM, V]) Has(key K) bool {
	return m.inner.Has(m.proj.ToKey(key))
}

func (m *Map[K, KM, V]) Get(key K) optional.Value[V] {
	return m.inner.Get(m.proj.ToKey(key))
}

func (m *Map[K, KM, V]) Every(pred func(K, V) bool) bool {
	return m.inner.Every(func(km KM, v V) bool { return pred(m.proj.FromKey(km), v) })
}

func (m *Map[K, KM, V]) Some(pred func(K, V) bool) bool {
	return m.inner.Some(func(km KM, v V) bool { return pred(m.proj.FromKey(km), v) })
}

func (m *Map[K, KM, V]) ForEach(fn func(K, V)) {
	m.inner.ForEach(func(km KM, v V) { fn(m.proj.FromKey(km), v) })
}

func (m *Map[K, KM, V]) Keys() []K {
	raw := m.inner.Keys()
	out := make([]K, 0, len(raw))
	for _, km := range raw {
		out = append(out, m.proj.FromKey(km))
	}
	return out
}

func (m *Map[K, KM, V]) Values() []V { return m.inner.Values() }

func (m *Map[K, KM, V]) Entries() []immutable.Entry[K, V] {
	raw := m.inner.Entries()
	out := make([]immutable.Entry[K, V], 0, len(raw))
	for _, e := range raw {
		out = append(out, immutable.Entry[K, V]{Key: m.proj.FromKey(e.Key), Value: e.Value})
	}
	return out
}

func (m *Map[K, KM, V]) ValueEqual(a, b V) bool { return m.inner.ValueEqual(a, b) }

// --------------------------------------------------------------------------
// Write Operations
// --------------------------------------------------------------------------

func (m *Map[K, KM, V]) Set(key K, value V) immutable.Map[K, V] {
	return m.wrap(m.inner.Set(m.proj.ToKey(key), value))
}

func (m *Map[K, KM, V]) Delete(key K) immutable.Map[K, V] {
	return m.wrap(m.inner.Delete(m.proj.ToKey(key)))
}

func (m *Map[K, KM, V]) Update(key K, fn func(V) V) immutable.Map[K, V] {
	return m.wrap(m.inner.Update(m.proj.ToKey(key), fn))
}

func (m *Map[K, KM, V]) WithMutations(fn func(immutable.MapTx[K, V])) immutable.Map[K, V] {
	return m.wrap(m.inner.WithMutations(func(tx immutable.MapTx[KM, V]) {
		fn(&projMapTx[K, KM, V]{proj: m.proj, inner: tx})
	}))
}

func (m *Map[K, KM, V]) MapValues(fn func(K, V) V) immutable.Map[K, V] {
	return m.wrap(m.inner.MapValues(func(km KM, v V) V {
		return fn(m.proj.FromKey(km), v)
	}))
}

// MapKeys stays K -> K: the projection pair only speaks K, so a transform
// changing the key's shape has no valid storage representation here. Use
// immutable.MapKeysTo on a rebuilt plain map for type-changing transforms.
func (m *Map[K, KM, V]) MapKeys(fn func(K) K) immutable.Map[K, V] {
	return m.wrap(m.inner.MapKeys(func(km KM) KM {
		return m.proj.ToKey(fn(m.proj.FromKey(km)))
	}))
}

func (m *Map[K, KM, V]) MapEntries(fn func(immutable.Entry[K, V]) immutable.Entry[K, V]) immutable.Map[K, V] {
	return m.wrap(m.inner.MapEntries(func(e immutable.Entry[KM, V]) immutable.Entry[KM, V] {
		out := fn(immutable.Entry[K, V]{Key: m.proj.FromKey(e.Key), Value: e.Value})
		return immutable.Entry[KM, V]{Key: m.proj.ToKey(out.Key), Value: out.Value}
	}))
}

// --------------------------------------------------------------------------
// Mutation Batches
// --------------------------------------------------------------------------

// projMapTx translates batch actions into the storage key domain.
type projMapTx[K any, KM comparable, V any] struct {
	proj  KeyProjection[K, KM]
	inner immutable.MapTx[KM, V]
}

func (tx *projMapTx[K, KM, V]) Set(key K, value V) {
	tx.inner.Set(tx.proj.ToKey(key), value)
}

func (tx *projMapTx[K, KM, V]) Delete(key K) {
	tx.inner.Delete(tx.proj.ToKey(key))
}

func (tx *projMapTx[K, KM, V]) Update(key K, fn func(V) V) {
	tx.inner.Update(tx.proj.ToKey(key), fn)
}
