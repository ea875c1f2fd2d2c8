package immutable

import (
	"reflect"

	"github.com/noshiro-pf/immu/lib/optional"
)

// --------------------------------------------------------------------------
// Construction
// --------------------------------------------------------------------------

// NewMap creates a Map from the given entries. Duplicate keys are
// deduplicated with the last writer winning; the key keeps the position of
// its first occurrence. Values are compared with reflect.DeepEqual; use
// NewMapEq to inject a cheaper or stricter predicate.
func NewMap[K comparable, V any](entries ...Entry[K, V]) Map[K, V] {
	return NewMapEq[K, V](nil, entries...)
}

// NewMapEq creates a Map like NewMap but with an explicit value equality
// predicate. The predicate decides when Set/Update return the receiver
// unchanged and how EqualMaps compares values. A nil eq falls back to
// reflect.DeepEqual.
func NewMapEq[K comparable, V any](eq EqFunc[V], entries ...Entry[K, V]) Map[K, V] {
	if eq == nil {
		eq = func(a, b V) bool { return reflect.DeepEqual(a, b) }
	}
	m := &hashMap[K, V]{
		keys: make([]K, 0, len(entries)),
		data: make(map[K]V, len(entries)),
		eq:   eq,
	}
	for _, e := range entries {
		if _, exists := m.data[e.Key]; !exists {
			m.keys = append(m.keys, e.Key)
		}
		m.data[e.Key] = e.Value
	}
	return m
}

// ToGoMap copies a Map into a native Go map for interop with range loops and
// other host idioms. The copy is owned by the caller; mutating it does not
// affect the Map.
func ToGoMap[K comparable, V any](m Map[K, V]) map[K]V {
	out := make(map[K]V, m.Len())
	m.ForEach(func(k K, v V) { out[k] = v })
	return out
}

// --------------------------------------------------------------------------
// Hash Table Implementation
// --------------------------------------------------------------------------

// hashMap implements Map over a native Go map plus an insertion-ordered key
// slice. The slice is what makes iteration order stable: a bare Go map
// re-randomizes its order on every range loop, which would violate the
// stability guarantee even on an immutable instance.
type hashMap[K comparable, V any] struct {
	keys []K     // insertion order
	data map[K]V // backing table
	eq   EqFunc[V]
}

// clone copies the backing storage for a copy-on-write step.
func (m *hashMap[K, V]) clone() *hashMap[K, V] {
	next := &hashMap[K, V]{
		keys: make([]K, len(m.keys)),
		data: make(map[K]V, len(m.data)),
		eq:   m.eq,
	}
	copy(next.keys, m.keys)
	for k, v := range m.data {
		next.data[k] = v
	}
	return next
}

// --------------------------------------------------------------------------
// Read Operations
// --------------------------------------------------------------------------

func (m *hashMap[K, V]) Len() int { return len(m.keys) }

func (m *hashMap[K, V]) Has(key K) bool {
	_, exists := m.data[key]
	return exists
}

func (m *hashMap[K, V]) Get(key K) optional.Value[V] {
	if v, exists := m.data[key]; exists {
		return optional.Some(v)
	}
	return optional.None[V]()
}

func (m *hashMap[K, V]) Every(pred func(K, V) bool) bool {
	for _, k := range m.keys {
		if !pred(k, m.data[k]) {
			return false
		}
	}
	return true
}

func (m *hashMap[K, V]) Some(pred func(K, V) bool) bool {
	for _, k := range m.keys {
		if pred(k, m.data[k]) {
			return true
		}
	}
	return false
}

func (m *hashMap[K, V]) ForEach(fn func(K, V)) {
	for _, k := range m.keys {
		fn(k, m.data[k])
	}
}

func (m *hashMap[K, V]) Keys() []K {
	out := make([]K, len(m.keys))
	copy(out, m.keys)
	return out
}

func (m *hashMap[K, V]) Values() []V {
	out := make([]V, 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, m.data[k])
	}
	return out
}

func (m *hashMap[K, V]) Entries() []Entry[K, V] {
	out := make([]Entry[K, V], 0, len(m.keys))
	for _, k := range m.keys {
		out = append(out, Entry[K, V]{Key: k, Value: m.data[k]})
	}
	return out
}

func (m *hashMap[K, V]) ValueEqual(a, b V) bool { return m.eq(a, b) }

// --------------------------------------------------------------------------
// Write Operations
// --------------------------------------------------------------------------

func (m *hashMap[K, V]) Set(key K, value V) Map[K, V] {
	if old, exists := m.data[key]; exists && m.eq(old, value) {
		return m
	}
	next := m.clone()
	if _, exists := next.data[key]; !exists {
		next.keys = append(next.keys, key)
	}
	next.data[key] = value
	return next
}

func (m *hashMap[K, V]) Delete(key K) Map[K, V] {
	if _, exists := m.data[key]; !exists {
		return m
	}
	next := &hashMap[K, V]{
		keys: make([]K, 0, len(m.keys)-1),
		data: make(map[K]V, len(m.data)-1),
		eq:   m.eq,
	}
	for _, k := range m.keys {
		if k == key {
			continue
		}
		next.keys = append(next.keys, k)
		next.data[k] = m.data[k]
	}
	return next
}

func (m *hashMap[K, V]) Update(key K, fn func(V) V) Map[K, V] {
	old, exists := m.data[key]
	if !exists {
		return m
	}
	return m.Set(key, fn(old))
}

func (m *hashMap[K, V]) WithMutations(fn func(MapTx[K, V])) Map[K, V] {
	tx := &mapTx[K, V]{working: m.clone()}
	fn(tx)
	tx.done = true
	if !tx.changed {
		return m
	}
	return tx.working
}

func (m *hashMap[K, V]) MapValues(fn func(K, V) V) Map[K, V] {
	next := &hashMap[K, V]{
		keys: make([]K, len(m.keys)),
		data: make(map[K]V, len(m.data)),
		eq:   m.eq,
	}
	copy(next.keys, m.keys)
	for _, k := range m.keys {
		next.data[k] = fn(k, m.data[k])
	}
	return next
}

func (m *hashMap[K, V]) MapKeys(fn func(K) K) Map[K, V] {
	entries := make([]Entry[K, V], 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, Entry[K, V]{Key: fn(k), Value: m.data[k]})
	}
	return NewMapEq(m.eq, entries...)
}

func (m *hashMap[K, V]) MapEntries(fn func(Entry[K, V]) Entry[K, V]) Map[K, V] {
	entries := make([]Entry[K, V], 0, len(m.keys))
	for _, k := range m.keys {
		entries = append(entries, fn(Entry[K, V]{Key: k, Value: m.data[k]}))
	}
	return NewMapEq(m.eq, entries...)
}

// --------------------------------------------------------------------------
// Mutation Batches
// --------------------------------------------------------------------------

// mapTx is the private working copy behind Map.WithMutations.
type mapTx[K comparable, V any] struct {
	working *hashMap[K, V]
	changed bool
	done    bool
}

func (tx *mapTx[K, V]) Set(key K, value V) {
	tx.assertLive()
	w := tx.working
	if old, exists := w.data[key]; exists {
		if !w.eq(old, value) {
			w.data[key] = value
			tx.changed = true
		}
		return
	}
	w.keys = append(w.keys, key)
	w.data[key] = value
	tx.changed = true
}

func (tx *mapTx[K, V]) Delete(key K) {
	tx.assertLive()
	w := tx.working
	if _, exists := w.data[key]; !exists {
		return
	}
	delete(w.data, key)
	for i, k := range w.keys {
		if k == key {
			w.keys = append(w.keys[:i], w.keys[i+1:]...)
			break
		}
	}
	tx.changed = true
}

func (tx *mapTx[K, V]) Update(key K, fn func(V) V) {
	tx.assertLive()
	if old, exists := tx.working.data[key]; exists {
		tx.Set(key, fn(old))
	}
}

func (tx *mapTx[K, V]) assertLive() {
	if tx.done {
		panic("immutable: MapTx used after WithMutations returned")
	}
}
