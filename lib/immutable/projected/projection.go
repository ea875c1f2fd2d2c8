package projected

import "fmt"

// --------------------------------------------------------------------------
// Key Projection
// --------------------------------------------------------------------------

// KeyProjection maps a caller-facing key type K onto a comparable storage
// key type KM.
//
// ToKey must be deterministic and must map semantically equal K values to
// the identical KM value; deduplication is only correct under that
// contract. FromKey must, for every KM actually produced by ToKey, return a
// K acceptable as a replacement for the original. It need not reproduce the
// literal original, only an equality-compatible one.
type KeyProjection[K any, KM comparable] struct {
	ToKey   func(K) KM
	FromKey func(KM) K
}

// checkStrict verifies the projection invariants over a concrete key set:
// no two keys may project to the same storage key, and FromKey must
// round-trip every produced storage key. Used by the strict constructors.
func (p KeyProjection[K, KM]) checkStrict(keys []K) error {
	seen := make(map[KM]struct{}, len(keys))
	for _, k := range keys {
		km := p.ToKey(k)
		if _, dup := seen[km]; dup {
			return fmt.Errorf("projected: ToKey is not injective, storage key %v produced twice", km)
		}
		seen[km] = struct{}{}
		if back := p.ToKey(p.FromKey(km)); back != km {
			return fmt.Errorf("projected: FromKey does not round-trip storage key %v (got %v)", km, back)
		}
	}
	return nil
}
