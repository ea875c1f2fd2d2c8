// Package immutable provides persistent (immutable) associative containers.
// It defines the Map and Set interfaces together with hash-table backed
// implementations, and package-level set algebra over the interfaces.
//
// The package focuses on:
//   - Interface-first design: callers program against Map/Set, concrete
//     implementations stay unexported behind factory functions
//   - Copy-on-write semantics: every "mutating" operation returns a fresh
//     instance and never touches the receiver's backing storage
//   - Structural, order-independent equality with an injectable value
//     equality predicate
//   - Batched mutation via WithMutations, avoiding the intermediate
//     allocations of a naive fold over Set/Delete
//
// Key Components:
//
//   - Map Interface: persistent key-value container. Lookups return
//     optional.Value instead of an error because an absent key is a normal
//     outcome in this domain. Iteration order is the insertion order of the
//     instance and is stable for its whole lifetime.
//
//   - Set Interface: persistent unique-element container. Element order is
//     unspecified. The algebra functions (Union, Intersect, Subtract, Diff,
//     IsSubset, IsSuperset, EqualSets) operate on the interface, so they
//     work uniformly across the plain and projected implementations.
//
//   - Factories: NewMap/NewSet build the hash-table backed implementations
//     for comparable key types. NewMapEq injects a custom value equality
//     predicate used by Set short-circuiting, EqualMaps and Update.
//
//   - Transforms: MapTo, MapKeysTo, MapEntriesTo and SetTo are the
//     type-changing counterparts of the MapValues/MapKeys/MapEntries/Map
//     methods (Go methods cannot introduce new type parameters).
//
//   - Validated Views: ValidateMap/ValidateSet check a predicate over the
//     whole container and return optional.Some of the container only when
//     every element passes, replacing flow-sensitive type narrowing with an
//     explicit constructor.
//
// Note on Concurrency:
//
// All containers in this package are immutable after construction and are
// therefore safe to share read-only across any number of goroutines without
// synchronization. Producing a new instance never mutates the old one.
//
// Note on Complexity:
//
// Mutating operations rebuild the backing storage and are O(n) per call.
// This is a deliberate simplicity tradeoff over a structural-sharing trie;
// WithMutations exists so that batches still pay the rebuild cost only once.
package immutable
