package kruskal_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/dendro/core"
	"github.com/katalvlaran/dendro/kruskal"
)

// BenchmarkBuild_Chain builds a dendrogram over a chain of N leaves.
func BenchmarkBuild_Chain(b *testing.B) {
	const N = 10000
	edges := make([]core.Edge, 0, N-1)
	weights := make(core.NumericEdgeProperty, N-1)
	size := make(core.NumericNodeProperty, N)
	r := rand.New(rand.NewSource(42))
	for i := core.NodeID(0); i < N; i++ {
		size[i] = 1
		if i > 0 {
			e := core.NewEdge(i-1, i)
			edges = append(edges, e)
			weights[e] = r.Float64()
		}
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kruskal.Build(edges, weights, size); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild_Dense builds from a graph with many cycle edges, so
// the union-find filter does real work.
func BenchmarkBuild_Dense(b *testing.B) {
	const (
		N = 1000
		E = 8000
	)
	r := rand.New(rand.NewSource(7))
	edges := make([]core.Edge, 0, E)
	weights := make(core.NumericEdgeProperty, E)
	size := make(core.NumericNodeProperty, N)
	for i := core.NodeID(0); i < N; i++ {
		size[i] = 1
		if i > 0 {
			e := core.NewEdge(i-1, i)
			edges = append(edges, e)
			weights[e] = r.Float64()
		}
	}
	for len(edges) < E {
		u := core.NodeID(r.Intn(N))
		v := core.NodeID(r.Intn(N))
		if u == v {
			continue
		}
		e := core.NewEdge(u, v)
		if _, ok := weights[e]; ok {
			continue
		}
		edges = append(edges, e)
		weights[e] = r.Float64()
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := kruskal.Build(edges, weights, size); err != nil {
			b.Fatal(err)
		}
	}
}
