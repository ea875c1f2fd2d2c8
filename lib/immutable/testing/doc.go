// Package testing provides reusable contract test suites and benchmarks for
// implementations of the immutable.Map and immutable.Set interfaces.
//
// Every implementation (the plain hash-table containers and the projected
// variants) is expected to pass the same suite, so behavioral guarantees
// like copy-on-write, identity short-circuits, iteration-order stability
// and the set algebra laws are asserted once and hold everywhere.
//
// Usage:
//
//	func Test(t *testing.T) {
//	    immutabletesting.RunMapTests(t, "HashMap", func(entries ...immutable.Entry[string, int]) immutable.Map[string, int] {
//	        return immutable.NewMap(entries...)
//	    })
//	}
package testing
