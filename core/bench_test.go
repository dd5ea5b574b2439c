package core_test

import (
	"testing"

	"github.com/katalvlaran/shortpath/core"
)

// BenchmarkAddEdge measures symmetric insertion into a fixed vertex set.
func BenchmarkAddEdge(b *testing.B) {
	const n = 1024
	g := core.NewGraph(n)

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g.AddEdge(i%n, (i*7+1)%n, int64(i%100))
	}
}

// BenchmarkEachNeighbor measures allocation-free neighbor iteration.
func BenchmarkEachNeighbor(b *testing.B) {
	const n = 1000
	g := core.NewGraph(n)
	for i := 1; i < n; i++ {
		g.AddEdge(0, i, int64(i))
	}

	b.ReportAllocs()
	b.ResetTimer()

	var sum int64
	for i := 0; i < b.N; i++ {
		g.EachNeighbor(0, func(_ int, w int64) { sum += w })
	}
	_ = sum
}
