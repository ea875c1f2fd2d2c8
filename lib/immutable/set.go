package immutable

// --------------------------------------------------------------------------
// Construction
// --------------------------------------------------------------------------

// NewSet creates a Set from the given elements, deduplicating them.
func NewSet[K comparable](elems ...K) Set[K] {
	s := &hashSet[K]{data: make(map[K]struct{}, len(elems))}
	for _, e := range elems {
		s.data[e] = struct{}{}
	}
	return s
}

// ToGoSet copies a Set into a native Go map used as a set, for interop with
// range loops. The copy is owned by the caller.
func ToGoSet[K comparable](s Set[K]) map[K]struct{} {
	out := make(map[K]struct{}, s.Len())
	s.ForEach(func(e K) { out[e] = struct{}{} })
	return out
}

// --------------------------------------------------------------------------
// Hash Table Implementation
// --------------------------------------------------------------------------

// hashSet implements Set over a native Go map. Element order is
// unspecified, so no ordered index is kept.
type hashSet[K comparable] struct {
	data map[K]struct{}
}

func (s *hashSet[K]) clone() *hashSet[K] {
	next := &hashSet[K]{data: make(map[K]struct{}, len(s.data))}
	for e := range s.data {
		next.data[e] = struct{}{}
	}
	return next
}

// --------------------------------------------------------------------------
// Read Operations
// --------------------------------------------------------------------------

func (s *hashSet[K]) Len() int { return len(s.data) }

func (s *hashSet[K]) Has(elem K) bool {
	_, exists := s.data[elem]
	return exists
}

func (s *hashSet[K]) Every(pred func(K) bool) bool {
	for e := range s.data {
		if !pred(e) {
			return false
		}
	}
	return true
}

func (s *hashSet[K]) Some(pred func(K) bool) bool {
	for e := range s.data {
		if pred(e) {
			return true
		}
	}
	return false
}

func (s *hashSet[K]) ForEach(fn func(K)) {
	for e := range s.data {
		fn(e)
	}
}

func (s *hashSet[K]) ToSlice() []K {
	out := make([]K, 0, len(s.data))
	for e := range s.data {
		out = append(out, e)
	}
	return out
}

// --------------------------------------------------------------------------
// Write Operations
// --------------------------------------------------------------------------

func (s *hashSet[K]) Add(elem K) Set[K] {
	if _, exists := s.data[elem]; exists {
		return s
	}
	next := s.clone()
	next.data[elem] = struct{}{}
	return next
}

func (s *hashSet[K]) Delete(elem K) Set[K] {
	if _, exists := s.data[elem]; !exists {
		return s
	}
	next := s.clone()
	delete(next.data, elem)
	return next
}

func (s *hashSet[K]) WithMutations(fn func(SetTx[K])) Set[K] {
	tx := &setTx[K]{working: s.clone()}
	fn(tx)
	tx.done = true
	if !tx.changed {
		return s
	}
	return tx.working
}

func (s *hashSet[K]) Map(fn func(K) K) Set[K] {
	next := &hashSet[K]{data: make(map[K]struct{}, len(s.data))}
	for e := range s.data {
		next.data[fn(e)] = struct{}{}
	}
	return next
}

func (s *hashSet[K]) Filter(pred func(K) bool) Set[K] {
	next := &hashSet[K]{data: make(map[K]struct{})}
	for e := range s.data {
		if pred(e) {
			next.data[e] = struct{}{}
		}
	}
	return next
}

func (s *hashSet[K]) FilterNot(pred func(K) bool) Set[K] {
	return s.Filter(func(e K) bool { return !pred(e) })
}

// --------------------------------------------------------------------------
// Mutation Batches
// --------------------------------------------------------------------------

// setTx is the private working copy behind Set.WithMutations.
type setTx[K comparable] struct {
	working *hashSet[K]
	changed bool
	done    bool
}

func (tx *setTx[K]) Add(elem K) {
	tx.assertLive()
	if _, exists := tx.working.data[elem]; exists {
		return
	}
	tx.working.data[elem] = struct{}{}
	tx.changed = true
}

func (tx *setTx[K]) Delete(elem K) {
	tx.assertLive()
	if _, exists := tx.working.data[elem]; !exists {
		return
	}
	delete(tx.working.data, elem)
	tx.changed = true
}

func (tx *setTx[K]) assertLive() {
	if tx.done {
		panic("immutable: SetTx used after WithMutations returned")
	}
}
