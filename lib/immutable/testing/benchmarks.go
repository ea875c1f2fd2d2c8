package testing

import (
	"strconv"
	"testing"

	"github.com/noshiro-pf/immu/lib/immutable"
)

// RunMapBenchmarks runs all benchmarks for a Map implementation.
func RunMapBenchmarks(b *testing.B, name string, factory MapFactory) {
	b.Run(name+"/Get", func(b *testing.B) {
		benchmarkMapGet(b, factory)
	})

	b.Run(name+"/Set", func(b *testing.B) {
		benchmarkMapSet(b, factory)
	})

	b.Run(name+"/SetExisting", func(b *testing.B) {
		benchmarkMapSetExisting(b, factory)
	})

	b.Run(name+"/Delete", func(b *testing.B) {
		benchmarkMapDelete(b, factory)
	})

	b.Run(name+"/WithMutations", func(b *testing.B) {
		benchmarkMapWithMutations(b, factory)
	})
}

// RunSetBenchmarks runs all benchmarks for a Set implementation.
func RunSetBenchmarks(b *testing.B, name string, factory SetFactory) {
	b.Run(name+"/Has", func(b *testing.B) {
		benchmarkSetHas(b, factory)
	})

	b.Run(name+"/Add", func(b *testing.B) {
		benchmarkSetAdd(b, factory)
	})

	b.Run(name+"/Union", func(b *testing.B) {
		benchmarkSetUnion(b, factory)
	})

	b.Run(name+"/Intersect", func(b *testing.B) {
		benchmarkSetIntersect(b, factory)
	})
}

// --------------------------------------------------------------------------
// Fixtures
// --------------------------------------------------------------------------

const benchSize = 1024

func benchMapFixture(factory MapFactory) immutable.Map[string, int] {
	entries := make([]immutable.Entry[string, int], 0, benchSize)
	for i := 0; i < benchSize; i++ {
		entries = append(entries, immutable.E("key-"+strconv.Itoa(i), i))
	}
	return factory(entries...)
}

func benchSetFixture(factory SetFactory, offset int) immutable.Set[string] {
	elems := make([]string, 0, benchSize)
	for i := 0; i < benchSize; i++ {
		elems = append(elems, "elem-"+strconv.Itoa(i+offset))
	}
	return factory(elems...)
}

// --------------------------------------------------------------------------
// Benchmark functions
// --------------------------------------------------------------------------

func benchmarkMapGet(b *testing.B, factory MapFactory) {
	m := benchMapFixture(factory)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Get("key-" + strconv.Itoa(i%benchSize))
	}
}

func benchmarkMapSet(b *testing.B, factory MapFactory) {
	m := benchMapFixture(factory)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Set("new-"+strconv.Itoa(i%benchSize), i)
	}
}

func benchmarkMapSetExisting(b *testing.B, factory MapFactory) {
	m := benchMapFixture(factory)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// equal value, exercises the identity short-circuit
		_ = m.Set("key-"+strconv.Itoa(i%benchSize), i%benchSize)
	}
}

func benchmarkMapDelete(b *testing.B, factory MapFactory) {
	m := benchMapFixture(factory)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.Delete("key-" + strconv.Itoa(i%benchSize))
	}
}

func benchmarkMapWithMutations(b *testing.B, factory MapFactory) {
	m := benchMapFixture(factory)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = m.WithMutations(func(tx immutable.MapTx[string, int]) {
			for j := 0; j < 16; j++ {
				tx.Set("batch-"+strconv.Itoa(j), j)
			}
		})
	}
}

func benchmarkSetHas(b *testing.B, factory SetFactory) {
	s := benchSetFixture(factory, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Has("elem-" + strconv.Itoa(i%(2*benchSize)))
	}
}

func benchmarkSetAdd(b *testing.B, factory SetFactory) {
	s := benchSetFixture(factory, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Add("new-" + strconv.Itoa(i%benchSize))
	}
}

func benchmarkSetUnion(b *testing.B, factory SetFactory) {
	a := benchSetFixture(factory, 0)
	c := benchSetFixture(factory, benchSize/2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = immutable.Union(a, c)
	}
}

func benchmarkSetIntersect(b *testing.B, factory SetFactory) {
	a := benchSetFixture(factory, 0)
	c := benchSetFixture(factory, benchSize/2)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = immutable.Intersect(a, c)
	}
}
