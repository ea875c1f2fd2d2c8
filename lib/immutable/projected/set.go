package projected

import (
	"github.com/noshiro-pf/immu/lib/immutable"
)

// --------------------------------------------------------------------------
// Construction
// --------------------------------------------------------------------------

// NewSet creates an immutable.Set of K elements stored under the projected
// key type KM. Elements whose keys project to the same storage key are
// deduplicated silently.
func NewSet[K any, KM comparable](proj KeyProjection[K, KM], elems ...K) immutable.Set[K] {
	projected := make([]KM, 0, len(elems))
	for _, e := range elems {
		projected = append(projected, proj.ToKey(e))
	}
	return &Set[K, KM]{proj: proj, inner: immutable.NewSet(projected...)}
}

// NewSetStrict is NewSet with the projection invariants enforced at
// construction time.
func NewSetStrict[K any, KM comparable](proj KeyProjection[K, KM], elems ...K) (immutable.Set[K], error) {
	if err := proj.checkStrict(elems); err != nil {
		return nil, err
	}
	return NewSet(proj, elems...), nil
}

// --------------------------------------------------------------------------
// Projected Set Implementation
// --------------------------------------------------------------------------

// Set implements immutable.Set[K] by projecting elements into the storage
// key domain and delegating to a hash-table backed immutable.Set[KM].
type Set[K any, KM comparable] struct {
	proj  KeyProjection[K, KM]
	inner immutable.Set[KM]
}

// Raw exposes the backing storage set of projected keys.
func (s *Set[K, KM]) Raw() immutable.Set[KM] { return s.inner }

// wrap rebinds a new backing set, preserving identity short-circuits of the
// delegated operation.
func (s *Set[K, KM]) wrap(inner immutable.Set[KM]) immutable.Set[K] {
	if inner == s.inner {
		return s
	}
	return &Set[K, KM]{proj: s.proj, inner: inner}
}

// --------------------------------------------------------------------------
// Read Operations
// --------------------------------------------------------------------------

func (s *Set[K, KM]) Len() int { return s.inner.Len() }

func (s *Set[K, KM]) Has(elem K) bool {
	return s.inner.Has(s.proj.ToKey(elem))
}

func (s *Set[K, KM]) Every(pred func(K) bool) bool {
	return s.inner.Every(func(km KM) bool { return pred(s.proj.FromKey(km)) })
}

func (s *Set[K, KM]) Some(pred func(K) bool) bool {
	return s.inner.Some(func(km KM) bool { return pred(s.proj.FromKey(km)) })
}

func (s *Set[K, KM]) ForEach(fn func(K)) {
	s.inner.ForEach(func(km KM) { fn(s.proj.FromKey(km)) })
}

func (s *Set[K, KM]) ToSlice() []K {
	raw := s.inner.ToSlice()
	out := make([]K, 0, len(raw))
	for _, km := range raw {
		out = append(out, s.proj.FromKey(km))
	}
	return out
}

// --------------------------------------------------------------------------
// Write Operations
// --------------------------------------------------------------------------

func (s *Set[K, KM]) Add(elem K) immutable.Set[K] {
	return s.wrap(s.inner.Add(s.proj.ToKey(elem)))
}

func (s *Set[K, KM]) Delete(elem K) immutable.Set[K] {
	return s.wrap(s.inner.Delete(s.proj.ToKey(elem)))
}

func (s *Set[K, KM]) WithMutations(fn func(immutable.SetTx[K])) immutable.Set[K] {
	return s.wrap(s.inner.WithMutations(func(tx immutable.SetTx[KM]) {
		fn(&projSetTx[K, KM]{proj: s.proj, inner: tx})
	}))
}

func (s *Set[K, KM]) Map(fn func(K) K) immutable.Set[K] {
	return s.wrap(s.inner.Map(func(km KM) KM {
		return s.proj.ToKey(fn(s.proj.FromKey(km)))
	}))
}

func (s *Set[K, KM]) Filter(pred func(K) bool) immutable.Set[K] {
	return s.wrap(s.inner.Filter(func(km KM) bool {
		return pred(s.proj.FromKey(km))
	}))
}

func (s *Set[K, KM]) FilterNot(pred func(K) bool) immutable.Set[K] {
	return s.Filter(func(e K) bool { return !pred(e) })
}

// --------------------------------------------------------------------------
// Mutation Batches
// --------------------------------------------------------------------------

// projSetTx translates batch actions into the storage key domain.
type projSetTx[K any, KM comparable] struct {
	proj  KeyProjection[K, KM]
	inner immutable.SetTx[KM]
}

func (tx *projSetTx[K, KM]) Add(elem K) {
	tx.inner.Add(tx.proj.ToKey(elem))
}

func (tx *projSetTx[K, KM]) Delete(elem K) {
	tx.inner.Delete(tx.proj.ToKey(elem))
}
